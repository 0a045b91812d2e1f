package api

import (
	"context"
	"fmt"
	"log"

	"github.com/example/modular-calculator-demo/modules/cache"
	"github.com/example/modular-calculator-demo/modules/history"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// APIModule is the HTTP API module.
type APIModule struct {
	app      *fiber.App
	port     int
	handlers *Handlers
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule listening on the given port.
func NewModule(port int) *APIModule {
	return &APIModule{
		port:     port,
		handlers: &Handlers{},
	}
}

// SetCache attaches an optional result cache. Requests without a cache go
// straight to the converter module.
func (m *APIModule) SetCache(c *cache.Cache) {
	m.handlers.resultCache = c
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"scientific", "standard", "programmer", "converter", "history", "jackpot"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "scientific":
		m.handlers.scientificContainer = container
	case "standard":
		m.handlers.standardContainer = container
	case "programmer":
		m.handlers.programmerContainer = container
	case "converter":
		m.handlers.converterContainer = container
	case "history":
		m.handlers.historyAdapter = history.NewAdapter(container)
	case "jackpot":
		m.handlers.jackpotContainer = container
	}
}

// Start initializes the Fiber HTTP server.
func (m *APIModule) Start(_ context.Context) error {
	if m.handlers.scientificContainer == nil || m.handlers.standardContainer == nil ||
		m.handlers.programmerContainer == nil || m.handlers.converterContainer == nil ||
		m.handlers.historyAdapter == nil || m.handlers.jackpotContainer == nil {
		return fmt.Errorf("module dependencies not set")
	}

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	// Add middleware
	m.app.Use(recover.New())
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	m.app.Use(cors.New())

	// Setup routes
	m.setupRoutes()

	// Start server in goroutine
	go func() {
		if err := m.app.Listen(fmt.Sprintf(":%d", m.port)); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on :%d", m.port)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"port": m.port,
		},
	}
}

// setupRoutes configures all API routes.
func (m *APIModule) setupRoutes() {
	// Health check endpoint
	m.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{
			Status: "healthy",
			Module: "api",
		})
	})

	// API v1 routes
	v1 := m.app.Group("/api/v1")

	calculate := v1.Group("/calculate")
	calculate.Post("/scientific", m.handlers.EvaluateScientific)
	calculate.Post("/standard", m.handlers.EvaluateStandard)
	calculate.Post("/programmer/base", m.handlers.ConvertBase)
	calculate.Post("/programmer/bitwise", m.handlers.Bitwise)

	v1.Post("/convert", m.handlers.Convert)
	v1.Get("/convert/categories", m.handlers.Categories)

	v1.Get("/history", m.handlers.ListHistory)
	v1.Delete("/history", m.handlers.ClearHistory)

	jackpotRoutes := v1.Group("/jackpot")
	jackpotRoutes.Post("/sessions", m.handlers.StartSession)
	jackpotRoutes.Get("/sessions/:id", m.handlers.GetSession)
	jackpotRoutes.Post("/sessions/:id/play", m.handlers.Play)

	v1.Get("/cache/stats", m.handlers.CacheStats)
}

// customErrorHandler handles Fiber errors.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
