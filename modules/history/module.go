package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/modular-calculator-demo/domain/calc"
	"github.com/example/modular-calculator-demo/modules/eventbus"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Module persists calculation history as a mono module. It subscribes to
// calculation events on the bus and records every successful calculation.
type Module struct {
	db     *gorm.DB
	repo   *Repository
	bus    *eventbus.EventBus
	dbPath string
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new history module backed by a SQLite file at dbPath.
func NewModule(dbPath string, bus *eventbus.EventBus) *Module {
	return &Module{
		dbPath: dbPath,
		bus:    bus,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "history"
}

// Start opens the database, runs migrations and subscribes to the event bus.
func (m *Module) Start(_ context.Context) error {
	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db
	m.repo = NewRepository(db)

	if err := m.repo.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if m.bus != nil {
		m.bus.Subscribe(calc.EventCalculationDone, m.onCalculationDone)
	}

	log.Printf("[history] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop closes the database connection.
func (m *Module) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[history] Module stopped")
	return nil
}

// onCalculationDone records a successful calculation from the event bus.
func (m *Module) onCalculationDone(event calc.Event) {
	if _, err := m.repo.Append(event.Source, event.Expression, event.Result, event.Timestamp); err != nil {
		log.Printf("[history] Error recording calculation: %v", err)
	}
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.Ping(); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"database": m.dbPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container,
		"list",
		json.Unmarshal,
		json.Marshal,
		m.handleList,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container,
		"clear",
		json.Unmarshal,
		json.Marshal,
		m.handleClear,
	); err != nil {
		return fmt.Errorf("failed to register clear service: %w", err)
	}

	log.Println("[history] Registered services: list, clear")
	return nil
}

// handleList returns recent history entries, newest first.
func (m *Module) handleList(_ context.Context, req ListRequest, _ *mono.Msg) (ListResponse, error) {
	entries, err := m.repo.List(req.Limit)
	if err != nil {
		return ListResponse{}, err
	}

	total, err := m.repo.Count()
	if err != nil {
		return ListResponse{}, err
	}

	records := make([]calc.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.Record())
	}

	return ListResponse{Records: records, Total: total}, nil
}

// handleClear wipes the calculation log.
func (m *Module) handleClear(ctx context.Context, _ ClearRequest, _ *mono.Msg) (ClearResponse, error) {
	removed, err := m.repo.Clear()
	if err != nil {
		return ClearResponse{}, err
	}

	if m.bus != nil {
		m.bus.PublishHistoryCleared(ctx)
	}

	log.Printf("[history] Cleared %d entries", removed)
	return ClearResponse{Removed: removed}, nil
}

// GetRepository returns the repository instance.
func (m *Module) GetRepository() *Repository {
	return m.repo
}
