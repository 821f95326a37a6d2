package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sirupsen/logrus"
)

// LoadCSV reads a league roster file and resolves each player name to its
// canonical ID using nameToID. Rows are team,player[,status]; the first row
// is a header. Names without an exact match fall back to the closest edit
// distance match, which is logged so typos can be corrected upstream.
func LoadCSV(r io.Reader, nameToID map[string]string, log *logrus.Entry) (Rosters, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read roster csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("roster csv is empty")
	}

	rosters := make(Rosters)
	for _, row := range records[1:] {
		if len(row) < 2 {
			continue
		}
		team := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if team == "" || name == "" {
			continue
		}
		status := StatusActive
		if len(row) > 2 {
			status = Status(strings.TrimSpace(row[2]))
		}

		playerID, ok := nameToID[name]
		if !ok {
			matched, dist, found := closestName(name, nameToID)
			if !found {
				log.WithField("player", name).Error("No player match found, skipping roster entry")
				continue
			}
			playerID = nameToID[matched]
			log.WithFields(logrus.Fields{
				"player":    name,
				"matched":   matched,
				"player_id": playerID,
				"distance":  dist,
			}).Warn("No exact roster name match, using closest player")
		}

		rosters[team] = append(rosters[team], Entry{PlayerID: playerID, Status: status})
	}

	if len(rosters) == 0 {
		return nil, fmt.Errorf("roster csv contained no usable rows")
	}
	return rosters, nil
}

// closestName finds the known player name with the smallest edit distance.
func closestName(name string, nameToID map[string]string) (string, int, bool) {
	best := ""
	bestDist := -1
	for candidate := range nameToID {
		dist := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(candidate))
		if bestDist == -1 || dist < bestDist {
			bestDist = dist
			best = candidate
		}
	}
	return best, bestDist, bestDist != -1
}
