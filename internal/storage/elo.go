package storage

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EloRatings loads every stored rating keyed by player row ID.
func (s *Store) EloRatings() (map[uint]EloRating, error) {
	var rows []EloRating
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load elo ratings: %w", err)
	}
	ratings := make(map[uint]EloRating, len(rows))
	for _, r := range rows {
		ratings[r.PlayerRowID] = r
	}
	return ratings, nil
}

// SaveEloRatings upserts ratings on player_id and bumps the simulation
// counter in the same transaction.
func (s *Store) SaveEloRatings(ratings []EloRating, runs int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if len(ratings) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "player_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"overall", "pts_elo", "reb_elo", "ast_elo", "stl_elo",
					"blk_elo", "tpm_elo", "to_elo", "fg_pct_elo", "ft_pct_elo",
				}),
			}).Create(&ratings).Error
			if err != nil {
				return fmt.Errorf("failed to upsert elo ratings: %w", err)
			}
		}

		var info SimulationInfo
		if err := tx.First(&info).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				return fmt.Errorf("failed to load simulation info: %w", err)
			}
			info = SimulationInfo{SimulationCount: runs}
			return tx.Create(&info).Error
		}
		info.SimulationCount += runs
		return tx.Save(&info).Error
	})
}
