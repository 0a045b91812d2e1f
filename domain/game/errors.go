package game

import "errors"

// Domain errors for the jackpot game.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidStake    = errors.New("insufficient balance or invalid gamble amount")
	ErrInvalidGuess    = errors.New("invalid guess")
)
