package jackpot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/example/modular-calculator-demo/domain/game"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module provides the jackpot game as a mono module.
type Module struct {
	service *Service
	store   *game.Store
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)

// NewModule creates a new jackpot module over a shared session store.
func NewModule(store *game.Store) *Module {
	return &Module{store: store}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "jackpot"
}

// Init initializes the game service.
func (m *Module) Init(_ mono.ServiceContainer) error {
	m.service = NewService(m.store)
	return nil
}

// Start starts the module.
func (m *Module) Start(_ context.Context) error {
	log.Println("[jackpot] Module started")
	return nil
}

// Stop stops the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[jackpot] Module stopped")
	return nil
}

// RegisterServices registers request-reply services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container,
		"start",
		json.Unmarshal,
		json.Marshal,
		m.handleStart,
	); err != nil {
		return fmt.Errorf("failed to register start service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container,
		"play",
		json.Unmarshal,
		json.Marshal,
		m.handlePlay,
	); err != nil {
		return fmt.Errorf("failed to register play service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container,
		"get-session",
		json.Unmarshal,
		json.Marshal,
		m.handleGetSession,
	); err != nil {
		return fmt.Errorf("failed to register get-session service: %w", err)
	}

	log.Println("[jackpot] Registered services: start, play, get-session")
	return nil
}

// handleStart opens a new session.
func (m *Module) handleStart(_ context.Context, req StartRequest, _ *mono.Msg) (StartResponse, error) {
	session, err := m.service.StartSession(req.Player)
	if err != nil {
		return StartResponse{}, err
	}
	return StartResponse{Session: session}, nil
}

// handlePlay plays one round. Rule violations come back as user-facing
// messages rather than service errors.
func (m *Module) handlePlay(_ context.Context, req PlayRequest, _ *mono.Msg) (PlayResponse, error) {
	result, err := m.service.Play(req.SessionID, req.Stake, req.Guess)
	if err != nil {
		if errors.Is(err, game.ErrInvalidStake) || errors.Is(err, game.ErrInvalidGuess) ||
			errors.Is(err, game.ErrSessionNotFound) {
			return PlayResponse{Error: err.Error()}, nil
		}
		return PlayResponse{}, err
	}

	return PlayResponse{
		Session: result.Session,
		Jackpot: result.Jackpot,
		Won:     result.Won,
		Payout:  result.Payout,
	}, nil
}

// handleGetSession fetches a session by ID.
func (m *Module) handleGetSession(_ context.Context, req GetSessionRequest, _ *mono.Msg) (GetSessionResponse, error) {
	session, err := m.service.GetSession(req.SessionID)
	if err != nil {
		if errors.Is(err, game.ErrSessionNotFound) {
			return GetSessionResponse{Error: err.Error()}, nil
		}
		return GetSessionResponse{}, err
	}
	return GetSessionResponse{Session: session}, nil
}

// GetService returns the service instance.
func (m *Module) GetService() *Service {
	return m.service
}
