package storage

import (
	"fmt"
)

// NameIndex maps canonical player names to their string identifiers,
// used by the roster importer's name resolution.
func (s *Store) NameIndex() (map[string]string, error) {
	var players []Player
	if err := s.db.Select("name", "player_id").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	index := make(map[string]string, len(players))
	for _, p := range players {
		index[p.Name] = p.RefID
	}
	return index, nil
}

// DisplayNames maps string identifiers back to canonical names for output
// and diagnostics.
func (s *Store) DisplayNames() (map[string]string, error) {
	var players []Player
	if err := s.db.Select("name", "player_id").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.RefID] = p.Name
	}
	return names, nil
}

// Players returns all player records.
func (s *Store) Players() ([]Player, error) {
	var players []Player
	if err := s.db.Order("name").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	return players, nil
}
