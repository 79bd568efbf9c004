// Command ingest loads or refreshes the song catalog from a CSV file.
// Re-running it with the same file is idempotent; the first malformed
// row aborts the run.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/jaehwan-dev/maxdex/internal/config"
	"github.com/jaehwan-dev/maxdex/internal/ingest"
	"github.com/jaehwan-dev/maxdex/internal/logger"
	"github.com/jaehwan-dev/maxdex/internal/services"
	"github.com/jaehwan-dev/maxdex/internal/store"
)

func main() {
	var (
		csvPath = pflag.StringP("file", "f", "", "CSV file to load (overrides CSV_FILE_NAME)")
		dbPath  = pflag.String("db", "", "SQLite database path (overrides DB_PATH)")
	)
	pflag.Parse()

	cfg := config.Load()
	if *csvPath != "" {
		cfg.CSVPath = *csvPath
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if cfg.CSVPath == "" {
		log.Fatal("No CSV file given: set CSV_FILE_NAME or pass --file")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	db, err := store.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		appLogger.Error("Failed to init DB", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	f, err := os.Open(cfg.CSVPath)
	if err != nil {
		appLogger.Error("Failed to open CSV file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	source, err := ingest.NewCSVSource(f)
	if err != nil {
		appLogger.Error("Failed to read CSV header", "error", err)
		os.Exit(1)
	}

	importService := services.NewImportService(db, appLogger)
	summary, err := importService.Run(context.Background(), source)
	if err != nil {
		appLogger.Error("Import failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d songs (catalog now holds %d)\n", summary.Upserted, summary.CatalogSize)
}
