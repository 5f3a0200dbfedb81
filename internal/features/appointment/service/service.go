package service

import (
	"context"
	"errors"

	"github.com/aouiniamine/sofia-ops/internal/database"
	"github.com/aouiniamine/sofia-ops/internal/features/appointment/repository"
	"go.uber.org/zap"
)

// WipeResult describes what happened to one candidate database.
type WipeResult struct {
	Path    string
	Found   bool
	Before  int64
	Deleted int64
	After   int64
	Err     error
}

type WipeService struct {
	paths []string
	open  func(path string) (*database.Database, error)
	log   *zap.Logger
}

func NewWipeService(paths []string, log *zap.Logger) *WipeService {
	return &WipeService{
		paths: paths,
		open:  database.OpenExisting,
		log:   log,
	}
}

// Wipe deletes all appointments from every configured database that exists.
// Missing files are skipped and a failure on one database does not stop the
// others.
func (s *WipeService) Wipe(ctx context.Context) []WipeResult {
	results := make([]WipeResult, 0, len(s.paths))
	for _, path := range s.paths {
		if err := ctx.Err(); err != nil {
			results = append(results, WipeResult{Path: path, Err: err})
			continue
		}
		results = append(results, s.wipeOne(ctx, path))
	}
	return results
}

func (s *WipeService) wipeOne(ctx context.Context, path string) WipeResult {
	result := WipeResult{Path: path}

	db, err := s.open(path)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			result.Found = true
			result.Err = err
		}
		s.log.Info("database skipped", zap.String("path", path), zap.Error(err))
		return result
	}
	defer db.Close()
	result.Found = true

	repo := repository.New(db.DB)

	if result.Before, err = repo.Count(ctx); err != nil {
		result.Err = err
		return result
	}

	if result.Before > 0 {
		if result.Deleted, err = repo.DeleteAll(ctx); err != nil {
			result.Err = err
			return result
		}
	}

	if result.After, err = repo.Count(ctx); err != nil {
		result.Err = err
		return result
	}

	s.log.Info("appointments wiped",
		zap.String("path", path),
		zap.Int64("before", result.Before),
		zap.Int64("deleted", result.Deleted),
		zap.Int64("after", result.After),
	)
	return result
}
