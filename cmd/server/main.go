package main

import (
	"context"
	"fmt"
	"log"
	netHttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"lead-ingest/config"
	httpRoutes "lead-ingest/http"
	"lead-ingest/http/handlers"
	"lead-ingest/logger"
	"lead-ingest/registry"
	"lead-ingest/services"
	"lead-ingest/storage"
	"lead-ingest/utils"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Parse and validate the partner registry
	reg, err := registry.Parse(config.AppConfig.PartnerAPIKeys)
	if err != nil {
		logger.Fatal("Error parsing partner registry: %v", err)
	}
	logger.Info("Partner registry loaded with %d API key(s)", reg.Len())

	// Initialize the backing store (fatal if unreachable)
	store, err := buildStore(context.Background())
	if err != nil {
		logger.Fatal("Error initializing backing store: %v", err)
	}

	// Initialize Kafka producer (non-fatal, disabled when no brokers)
	services.InitProducer()

	// Setup routes
	leads := handlers.NewLeadService(store, reg)
	httpRoutes.SetupRoutes(leads)

	// Set up graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting on %s", config.AppConfig.ListenAddr)
		log.Fatal(netHttp.ListenAndServe(config.AppConfig.ListenAddr, nil))
	}()

	// Wait for shutdown signal
	<-sigChan
	logger.Info("Shutdown signal received, closing Kafka producer...")

	if err := services.CloseProducer(); err != nil {
		logger.Error("Error closing Kafka producer: %v", err)
	}

	logger.Info("Server shutdown complete")
}

// buildStore constructs the configured RowStore backend.
func buildStore(ctx context.Context) (storage.RowStore, error) {
	switch config.AppConfig.StoreBackend {
	case utils.BackendSheets:
		cred := config.AppConfig.GoogleCredJSON
		if cred == "" {
			return nil, fmt.Errorf("GOOGLE_CRED_JSON env-var (service-account JSON) is missing")
		}
		return storage.NewGoogleSheetsStore(
			ctx,
			[]byte(cred),
			config.AppConfig.GoogleSheetID,
			config.AppConfig.SheetTitle,
			config.AppConfig.TabName,
		)
	case utils.BackendXLSX:
		return storage.NewXLSXStore(config.AppConfig.XLSXPath, config.AppConfig.TabName)
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q (want %q or %q)",
			config.AppConfig.StoreBackend, utils.BackendSheets, utils.BackendXLSX)
	}
}
