package storage

import (
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/hoopstats/fantasy-sim/internal/value"
)

// SeasonAggregates computes per-player aggregates for one season, the
// input of the value calculator. Players under minGames are excluded.
func (s *Store) SeasonAggregates(season, minGames int) ([]value.Aggregate, error) {
	var rows []value.Aggregate
	err := s.db.Model(&GameLog{}).
		Select(`player_id,
			count(id) AS games_played,
			avg(points) AS avg_points,
			avg(total_rebounds) AS avg_rebounds,
			avg(assists) AS avg_assists,
			avg(steals) AS avg_steals,
			avg(blocks) AS avg_blocks,
			avg(three_pointers) AS avg_threes,
			avg(turnovers) AS avg_turnovers,
			sum(field_goals) AS total_fgm,
			sum(field_goal_attempts) AS total_fga,
			sum(free_throws) AS total_ftm,
			sum(free_throw_attempts) AS total_fta`).
		Where("season = ?", season).
		Group("player_id").
		Having("count(id) >= ?", minGames).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate season %d: %w", season, err)
	}
	return rows, nil
}

// UpsertSeasonValues writes value lines, replacing any existing row for
// the same player and season.
func (s *Store) UpsertSeasonValues(values []PlayerSeasonValue) error {
	if len(values) == 0 {
		return nil
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}, {Name: "season"}},
		UpdateAll: true,
	}).Create(&values).Error
	if err != nil {
		return fmt.Errorf("failed to upsert season values: %w", err)
	}
	return nil
}

// availabilitySeason is the pseudo-season play probabilities are stored
// under, separate from any real season's value line.
const availabilitySeason = 1

// SaveAvailability upserts each player's estimated play probability.
func (s *Store) SaveAvailability(probs map[string]float64) error {
	var players []Player
	if err := s.db.Select("id", "player_id").Find(&players).Error; err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}
	rowIDs := make(map[string]uint, len(players))
	for _, p := range players {
		rowIDs[p.RefID] = p.ID
	}

	values := make([]PlayerSeasonValue, 0, len(probs))
	for refID, prob := range probs {
		rowID, ok := rowIDs[refID]
		if !ok {
			continue
		}
		values = append(values, PlayerSeasonValue{
			PlayerRowID:    rowID,
			Season:         availabilitySeason,
			PlayLikelihood: prob,
		})
	}
	if len(values) == 0 {
		return nil
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}, {Name: "season"}},
		DoUpdates: clause.AssignmentColumns([]string{"play_likelihood"}),
	}).Create(&values).Error
	if err != nil {
		return fmt.Errorf("failed to save availability: %w", err)
	}
	return nil
}

// SeasonValueRow pairs a value line with the player's display name.
type SeasonValueRow struct {
	Name  string
	RefID string
	PlayerSeasonValue
}

// SeasonValues returns the stored value lines for a season, best first.
func (s *Store) SeasonValues(season int) ([]SeasonValueRow, error) {
	var rows []SeasonValueRow
	err := s.db.Model(&PlayerSeasonValue{}).
		Select("players.name AS name, players.player_id AS ref_id, player_season_values.*").
		Joins("JOIN players ON players.id = player_season_values.player_id").
		Where("player_season_values.season = ?", season).
		Order("player_season_values.total_score DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load season values: %w", err)
	}
	return rows, nil
}

// RatedPlayer pairs an Elo rating with the player's identifiers.
type RatedPlayer struct {
	Name  string
	RefID string
	EloRating
}

// RatedPlayers returns every rating joined with its player, best first.
func (s *Store) RatedPlayers() ([]RatedPlayer, error) {
	var rows []RatedPlayer
	err := s.db.Model(&EloRating{}).
		Select("players.name AS name, players.player_id AS ref_id, elo_ratings.*").
		Joins("JOIN players ON players.id = elo_ratings.player_id").
		Order("elo_ratings.overall DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load rated players: %w", err)
	}
	return rows, nil
}
