// Package game contains the jackpot game entities and their in-memory store.
package game

import (
	"time"

	"github.com/google/uuid"
)

// Session tracks a player's balance across jackpot rounds.
type Session struct {
	ID        string    `json:"id"`
	Player    string    `json:"player"`
	Balance   int64     `json:"balance"`
	Rounds    int       `json:"rounds"`
	Wins      int       `json:"wins"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession creates a session for the given player with the starting balance.
func NewSession(player string, balance int64) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New().String(),
		Player:    player,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
