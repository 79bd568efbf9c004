package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/jaehwan-dev/maxdex/internal/domain"
	"github.com/jaehwan-dev/maxdex/internal/logger"
	"github.com/jaehwan-dev/maxdex/internal/store"
)

// SongSource yields songs one at a time and returns io.EOF when the
// source is exhausted.
type SongSource interface {
	Next() (*domain.Song, error)
}

// ImportService bulk-loads the catalog from an external row source,
// upserting each song by id. Re-running an import with the same source
// converges the store to the same state.
type ImportService struct {
	Store  *store.DB
	Logger *logger.Logger
}

func NewImportService(st *store.DB, log *logger.Logger) *ImportService {
	return &ImportService{Store: st, Logger: log.WithComponent("import")}
}

// ImportSummary reports what a finished import run did.
type ImportSummary struct {
	RunID       string
	Upserted    int
	CatalogSize int
}

// Run drains the source, upserting every song. The first row that fails
// to map, and the first storage fault, abort the whole run; songs
// upserted before the abort stay committed.
func (s *ImportService) Run(ctx context.Context, source SongSource) (*ImportSummary, error) {
	runID := uuid.New().String()
	log := s.Logger.WithRun(runID)
	log.Info("import started")

	upserted := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("import run %s cancelled: %w", runID, err)
		}

		song, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("import run %s aborted: %w", runID, err)
		}

		if _, err := s.Store.UpsertSong(song); err != nil {
			return nil, fmt.Errorf("import run %s aborted: %w", runID, err)
		}
		upserted++
	}

	size, err := s.Store.CountSongs()
	if err != nil {
		return nil, fmt.Errorf("import run %s: %w", runID, err)
	}

	log.Info("import finished", "upserted", upserted, "catalog_size", size)
	return &ImportSummary{RunID: runID, Upserted: upserted, CatalogSize: size}, nil
}
