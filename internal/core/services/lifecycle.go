package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driving"
	"github.com/custodia-labs/minutes-cli/internal/logger"
)

// Ensure LifecycleService implements the interface.
var _ driving.LifecycleManager = (*LifecycleService)(nil)

// LifecycleService exposes selection, archival and restore transitions
// over the transcript store. Every operation is idempotent; archived
// records stay queryable and reversible, there is no terminal state.
type LifecycleService struct {
	store driven.TranscriptStore
}

// NewLifecycleService creates a lifecycle service.
func NewLifecycleService(store driven.TranscriptStore) *LifecycleService {
	return &LifecycleService{store: store}
}

// List returns records, optionally including archived ones.
func (s *LifecycleService) List(ctx context.Context, includeArchived bool) ([]domain.TranscriptRecord, error) {
	return s.store.List(ctx, includeArchived)
}

// Select marks records as included or excluded.
func (s *LifecycleService) Select(ctx context.Context, ids []string, selected domain.Selection) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.store.SetSelection(ctx, ids, selected); err != nil {
		return fmt.Errorf("set selection: %w", err)
	}
	logger.Debug("selection %s applied to %d records", selected, len(ids))
	return nil
}

// Archive archives records by ID.
func (s *LifecycleService) Archive(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.store.ArchiveByIDs(ctx, ids); err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	return nil
}

// Restore un-archives records by ID, preserving selection and export
// fields.
func (s *LifecycleService) Restore(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.store.RestoreByIDs(ctx, ids); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	return nil
}

// RestoreAll un-archives every archived record.
func (s *LifecycleService) RestoreAll(ctx context.Context) (int, error) {
	count, err := s.store.RestoreAllArchived(ctx)
	if err != nil {
		return 0, fmt.Errorf("restore all: %w", err)
	}
	logger.Info("restored %d archived records", count)
	return count, nil
}

// ArchiveExcluded archives all records the user has excluded.
func (s *LifecycleService) ArchiveExcluded(ctx context.Context) (int, error) {
	count, err := s.store.ArchiveExcluded(ctx)
	if err != nil {
		return 0, fmt.Errorf("archive excluded: %w", err)
	}
	logger.Info("archived %d excluded records", count)
	return count, nil
}

// ArchiveExported archives all records that have been exported.
func (s *LifecycleService) ArchiveExported(ctx context.Context) (int, error) {
	count, err := s.store.ArchiveExported(ctx)
	if err != nil {
		return 0, fmt.Errorf("archive exported: %w", err)
	}
	logger.Info("archived %d exported records", count)
	return count, nil
}

// Reset deletes every stored record.
func (s *LifecycleService) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	logger.Info("store reset")
	return nil
}
