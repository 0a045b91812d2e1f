package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/modular-calculator-demo/domain/game"
	apimod "github.com/example/modular-calculator-demo/modules/api"
	cachemod "github.com/example/modular-calculator-demo/modules/cache"
	convertermod "github.com/example/modular-calculator-demo/modules/converter"
	eventbusmod "github.com/example/modular-calculator-demo/modules/eventbus"
	historymod "github.com/example/modular-calculator-demo/modules/history"
	jackpotmod "github.com/example/modular-calculator-demo/modules/jackpot"
	programmermod "github.com/example/modular-calculator-demo/modules/programmer"
	scientificmod "github.com/example/modular-calculator-demo/modules/scientific"
	standardmod "github.com/example/modular-calculator-demo/modules/standard"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration from environment
	httpPort := getEnvInt("API_PORT", 8080)
	dbPath := getEnv("HISTORY_DB_PATH", "./calculations.db")
	redisAddr := getEnv("REDIS_ADDR", "")
	cacheTTL := getEnvDuration("CACHE_TTL", 5*time.Minute)
	natsPort := getEnvInt("NATS_PORT", 4222)

	log.Println("=== Modular Calculator Demo ===")
	log.Printf("HTTP Port: %d", httpPort)
	log.Printf("NATS Port: %d", natsPort)
	log.Printf("History DB: %s", dbPath)
	if redisAddr != "" {
		log.Printf("Redis: %s (TTL: %s)", redisAddr, cacheTTL)
	} else {
		log.Println("Redis: disabled")
	}

	// Shared infrastructure
	bus := eventbusmod.New()
	sessions := game.NewStore()

	// Create modules
	eventbusModule := eventbusmod.NewModule(bus)
	scientificModule := scientificmod.NewModule(bus)
	standardModule := standardmod.NewModule(bus)
	programmerModule := programmermod.NewModule(bus)
	converterModule := convertermod.NewModule(bus)
	historyModule := historymod.NewModule(dbPath, bus)
	jackpotModule := jackpotmod.NewModule(sessions)
	apiModule := apimod.NewModule(httpPort)

	var cacheModule *cachemod.Module
	if redisAddr != "" {
		cacheModule = cachemod.NewModuleWithConfig(redisAddr, "calc:", cacheTTL)
	}

	// Create mono application with embedded NATS
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
		mono.WithNATSPort(natsPort),
	)
	if err != nil {
		log.Fatalf("Failed to create mono application: %v", err)
	}

	// Register modules
	app.Register(eventbusModule)
	app.Register(scientificModule)
	app.Register(standardModule)
	app.Register(programmerModule)
	app.Register(converterModule)
	app.Register(historyModule)
	app.Register(jackpotModule)
	if cacheModule != nil {
		app.Register(cacheModule)
	}
	app.Register(apiModule)

	// Start modules (this handles Init and Start)
	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	// Wire up the optional result cache after start
	if cacheModule != nil {
		apiModule.SetCache(cacheModule.GetCache())
	}

	log.Println("=== Application Started ===")
	log.Printf("API available at http://localhost:%d", httpPort)
	log.Println("Endpoints:")
	log.Println("  GET    /health                                 - Health check")
	log.Println("  POST   /api/v1/calculate/scientific            - Scientific function")
	log.Println("  POST   /api/v1/calculate/standard              - Arithmetic expression")
	log.Println("  POST   /api/v1/calculate/programmer/base       - Base conversion")
	log.Println("  POST   /api/v1/calculate/programmer/bitwise    - Bitwise operation")
	log.Println("  POST   /api/v1/convert                         - Unit conversion")
	log.Println("  GET    /api/v1/convert/categories              - Unit catalog")
	log.Println("  GET    /api/v1/history                         - Calculation log")
	log.Println("  DELETE /api/v1/history                         - Clear log")
	log.Println("  POST   /api/v1/jackpot/sessions                - New game session")
	log.Println("  GET    /api/v1/jackpot/sessions/:id            - Session state")
	log.Println("  POST   /api/v1/jackpot/sessions/:id/play       - Play a round")
	log.Println("  GET    /api/v1/cache/stats                     - Cache statistics")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown")

	// Setup graceful shutdown using gelmium/graceful-shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	// Wait for shutdown signal and exit with appropriate code
	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvDuration returns environment variable as duration or default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("Warning: invalid duration value for %s: %s, using default: %s", key, value, defaultValue)
	}
	return defaultValue
}
