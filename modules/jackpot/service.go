package jackpot

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/example/modular-calculator-demo/domain/game"
)

// Game rules.
const (
	InitialBalance int64 = 3000
	MaxStake       int64 = 500
	JackpotMin           = 0
	JackpotMax           = 5
)

// RoundResult is the outcome of one jackpot round.
type RoundResult struct {
	Session *game.Session
	Jackpot int
	Won     bool
	Payout  int64
}

// Service runs jackpot game sessions.
type Service struct {
	store *game.Store
	rng   *rand.Rand
	mu    sync.Mutex
}

// NewService creates a new jackpot service.
func NewService(store *game.Store) *Service {
	return NewServiceWithRand(store, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewServiceWithRand creates a jackpot service with a caller-supplied
// random source, for deterministic tests.
func NewServiceWithRand(store *game.Store, rng *rand.Rand) *Service {
	return &Service{
		store: store,
		rng:   rng,
	}
}

// StartSession opens a new session with the initial balance.
func (s *Service) StartSession(player string) (*game.Session, error) {
	if player == "" {
		player = "player"
	}

	session := game.NewSession(player, InitialBalance)
	if err := s.store.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession fetches a session by ID.
func (s *Service) GetSession(id string) (*game.Session, error) {
	return s.store.GetByID(id)
}

// Play stakes an amount on a guessed number. A correct guess doubles the
// stake; an incorrect guess loses it.
func (s *Service) Play(sessionID string, stake int64, guess int) (*RoundResult, error) {
	session, err := s.store.GetByID(sessionID)
	if err != nil {
		return nil, err
	}

	if stake <= 0 || stake > session.Balance || stake > MaxStake {
		return nil, game.ErrInvalidStake
	}
	if guess < JackpotMin || guess > JackpotMax {
		return nil, fmt.Errorf("%w: choose %d-%d", game.ErrInvalidGuess, JackpotMin, JackpotMax)
	}

	jackpot := s.draw()
	won := jackpot == guess

	var payout int64
	session.Balance -= stake
	if won {
		payout = stake * 2
		session.Balance += payout
		session.Wins++
	}
	session.Rounds++

	if err := s.store.Update(session); err != nil {
		return nil, err
	}

	return &RoundResult{
		Session: session,
		Jackpot: jackpot,
		Won:     won,
		Payout:  payout,
	}, nil
}

// draw picks the round's jackpot number.
func (s *Service) draw() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(JackpotMax-JackpotMin+1) + JackpotMin
}
