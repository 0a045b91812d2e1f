// Package jackpot implements the jackpot number guessing game.
package jackpot

import "github.com/example/modular-calculator-demo/domain/game"

// StartRequest opens a new game session.
type StartRequest struct {
	Player string `json:"player"`
}

// StartResponse carries the new session.
type StartResponse struct {
	Session *game.Session `json:"session,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// PlayRequest plays one round in an existing session.
type PlayRequest struct {
	SessionID string `json:"session_id"`
	Stake     int64  `json:"stake"`
	Guess     int    `json:"guess"`
}

// PlayResponse carries the round outcome.
type PlayResponse struct {
	Session *game.Session `json:"session,omitempty"`
	Jackpot int           `json:"jackpot,omitempty"`
	Won     bool          `json:"won,omitempty"`
	Payout  int64         `json:"payout,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// GetSessionRequest fetches a session by ID.
type GetSessionRequest struct {
	SessionID string `json:"session_id"`
}

// GetSessionResponse carries the session if found.
type GetSessionResponse struct {
	Session *game.Session `json:"session,omitempty"`
	Error   string        `json:"error,omitempty"`
}
