package storage

import (
	"time"
)

// Player is the canonical player record. RefID is the stable string
// identifier (basketball-reference style) used everywhere outside the
// database; ID is the internal row key the other tables reference.
type Player struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	RefID     string `gorm:"column:player_id;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GameLog is one player box score line.
type GameLog struct {
	ID                 uint      `gorm:"primaryKey"`
	PlayerRowID        uint      `gorm:"column:player_id;not null;index"`
	GameDate           time.Time `gorm:"not null;index"`
	Season             int       `gorm:"not null;index"`
	Team               string    `gorm:"index"`
	HomeAway           string
	Opponent           string `gorm:"index"`
	Result             string
	Score              string
	Started            int
	MinutesPlayed      string
	FieldGoals         int
	FieldGoalAttempts  int
	FieldGoalPct       float64
	ThreePointers      int
	ThreePointAttempts int
	ThreePointPct      float64
	FreeThrows         int
	FreeThrowAttempts  int
	FreeThrowPct       float64
	OffensiveRebounds  int
	DefensiveRebounds  int
	TotalRebounds      int
	Assists            int
	Steals             int
	Blocks             int
	Turnovers          int
	PersonalFouls      int
	Points             int
	GameScore          float64
	PlusMinus          int
	CreatedAt          time.Time
}

// Played reports whether the player actually took the floor. Box scores
// record DNPs with a missing or zero minutes string.
func (g GameLog) Played() bool {
	return g.MinutesPlayed != "" && g.MinutesPlayed != "00:00"
}

// EloRating holds a player's overall and per-category ratings.
type EloRating struct {
	ID          uint    `gorm:"primaryKey"`
	PlayerRowID uint    `gorm:"column:player_id;not null;uniqueIndex"`
	Overall     float64 `gorm:"not null;default:1500"`
	Points      float64 `gorm:"column:pts_elo;not null;default:1500"`
	Rebounds    float64 `gorm:"column:reb_elo;not null;default:1500"`
	Assists     float64 `gorm:"column:ast_elo;not null;default:1500"`
	Steals      float64 `gorm:"column:stl_elo;not null;default:1500"`
	Blocks      float64 `gorm:"column:blk_elo;not null;default:1500"`
	ThreesMade  float64 `gorm:"column:tpm_elo;not null;default:1500"`
	Turnovers   float64 `gorm:"column:to_elo;not null;default:1500"`
	FGPct       float64 `gorm:"column:fg_pct_elo;not null;default:1500"`
	FTPct       float64 `gorm:"column:ft_pct_elo;not null;default:1500"`
	Dropped     bool    `gorm:"not null;default:false"`
}

// PlayerSeasonValue is the normalized 9-category value line for one
// player and season, written by the value calculator.
type PlayerSeasonValue struct {
	PlayerRowID    uint `gorm:"column:player_id;primaryKey;autoIncrement:false"`
	Season         int  `gorm:"primaryKey;autoIncrement:false"`
	PointsScore    float64
	ReboundsScore  float64
	AssistsScore   float64
	StealsScore    float64
	BlocksScore    float64
	ThreesScore    float64
	TurnoversScore float64
	FGPctScore     float64
	FTPctScore     float64
	TotalScore     float64 `gorm:"index"`
	PlayLikelihood float64
	UpdatedAt      time.Time
}

// SimulationInfo tracks how many rating simulations have been run.
// A single row is expected.
type SimulationInfo struct {
	ID              uint `gorm:"primaryKey"`
	SimulationCount int  `gorm:"not null;default:0"`
}

func (SimulationInfo) TableName() string { return "simulation_info" }
