package store

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/store/schema"
)

// CreateRun persists a new run
func (s *pgStore) CreateRun(ctx context.Context, run *schema.IndexingRun) error {
	if run.Status == "" {
		run.Status = schema.RunStatusRunning
	}
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to create indexing run: %w", err)
	}
	return nil
}

// FinishRun stores the final state of a run
func (s *pgStore) FinishRun(ctx context.Context, id string, update RunUpdate) error {
	result := s.db.WithContext(ctx).Model(&schema.IndexingRun{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       update.Status,
			"wallet_count": update.WalletCount,
			"discovered":   update.Discovered,
			"stored":       update.Stored,
			"errored":      update.Errored,
			"report":       datatypes.JSON(update.Report),
			"error":        update.Error,
			"finished_at":  update.FinishedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to finish indexing run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRunNotFound
	}
	return nil
}

// GetRun retrieves a run by ID
func (s *pgStore) GetRun(ctx context.Context, id string) (*schema.IndexingRun, error) {
	var run schema.IndexingRun
	found, err := s.firstOnPrimary(func(db *gorm.DB) error {
		return db.WithContext(ctx).Where("id = ?", id).First(&run).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get indexing run: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &run, nil
}
