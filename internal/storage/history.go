package storage

import (
	"fmt"

	"github.com/hoopstats/fantasy-sim/internal/stats"
)

type historyRow struct {
	RefID string
	GameLog
}

// Histories returns every game each requested player logged in the given
// seasons, oldest first, keyed by the player's string identifier. Players
// with no rows in those seasons map to an empty slice so rookies are
// distinguishable from unknown identifiers only by the caller's roster.
func (s *Store) Histories(playerIDs []string, seasons []int) (map[string][]stats.Game, error) {
	histories := make(map[string][]stats.Game, len(playerIDs))
	for _, id := range playerIDs {
		histories[id] = nil
	}
	if len(playerIDs) == 0 || len(seasons) == 0 {
		return histories, nil
	}

	var rows []historyRow
	err := s.db.Model(&GameLog{}).
		Select("players.player_id AS ref_id, game_logs.*").
		Joins("JOIN players ON players.id = game_logs.player_id").
		Where("players.player_id IN ?", playerIDs).
		Where("game_logs.season IN ?", seasons).
		Order("game_logs.game_date").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load game histories: %w", err)
	}

	for _, row := range rows {
		histories[row.RefID] = append(histories[row.RefID], toGame(row.GameLog))
	}
	return histories, nil
}

// AllGameLogs loads every logged game grouped by internal player row ID.
// The rating simulator draws from the full unweighted history.
func (s *Store) AllGameLogs() (map[uint][]stats.Game, error) {
	var logs []GameLog
	if err := s.db.Order("game_date").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to load game logs: %w", err)
	}
	games := make(map[uint][]stats.Game)
	for _, g := range logs {
		games[g.PlayerRowID] = append(games[g.PlayerRowID], toGame(g))
	}
	return games, nil
}

func toGame(g GameLog) stats.Game {
	return stats.Game{
		Season: g.Season,
		Played: g.Played(),
		Line: stats.Line{
			Points:            float64(g.Points),
			Rebounds:          float64(g.TotalRebounds),
			Assists:           float64(g.Assists),
			Steals:            float64(g.Steals),
			Blocks:            float64(g.Blocks),
			ThreesMade:        float64(g.ThreePointers),
			Turnovers:         float64(g.Turnovers),
			FieldGoalsMade:    float64(g.FieldGoals),
			FieldGoalAttempts: float64(g.FieldGoalAttempts),
			FreeThrowsMade:    float64(g.FreeThrows),
			FreeThrowAttempts: float64(g.FreeThrowAttempts),
		},
	}
}
