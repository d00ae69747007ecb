package entity

import (
	"time"

	"gorm.io/gorm"
)

// Score is one leaderboard entry of the mini-game. Level is the grid size
// the round was played at (minimum 2x2).
type Score struct {
	gorm.Model
	Username string    `gorm:"not null" json:"username"`
	Points   int       `gorm:"not null" json:"points"`
	Level    int       `gorm:"not null" json:"level"`
	PlayedAt time.Time `json:"playedAt"`
}
