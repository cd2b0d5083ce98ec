package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/store/schema"
)

// UpsertIndexRecord stages an observation. Import status and the artwork
// reference of an existing record are preserved.
func (s *pgStore) UpsertIndexRecord(ctx context.Context, input UpsertIndexInput) (*schema.ArtworkIndex, UpsertOutcome, error) {
	if input.ContractAddress == "" || input.TokenID == "" {
		return nil, "", domain.ErrMissingTokenKey
	}
	if input.SeenAt.IsZero() {
		input.SeenAt = time.Now().UTC()
	}

	var record schema.ArtworkIndex
	var outcome UpsertOutcome

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lock := func() error {
			return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("contract_address = ? AND token_id = ? AND observation_type = ?",
					input.ContractAddress, input.TokenID, input.ObservationType).
				Take(&record).Error
		}

		err := lock()
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to lock staged record: %w", err)
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = schema.ArtworkIndex{
				ContractAddress: input.ContractAddress,
				TokenID:         input.TokenID,
				ObservationType: input.ObservationType,
				DataSource:      input.DataSource,
				Blockchain:      input.Blockchain,
				Wallet:          input.Wallet,
				Title:           input.Title,
				Payload:         input.Payload,
				PayloadHash:     input.PayloadHash,
				ImportStatus:    domain.ImportStatusPending,
				LastSeenAt:      input.SeenAt,
			}

			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "contract_address"}, {Name: "token_id"}, {Name: "observation_type"}},
				DoNothing: true,
			}).Create(&record)
			if result.Error != nil {
				return fmt.Errorf("failed to create staged record: %w", result.Error)
			}
			if result.RowsAffected == 1 {
				outcome = UpsertCreated
				return nil
			}

			// Lost the insert race: continue from the committed row
			record = schema.ArtworkIndex{}
			if err := lock(); err != nil {
				return fmt.Errorf("failed to lock staged record: %w", err)
			}
		}

		updates := map[string]interface{}{
			"last_seen_at": input.SeenAt,
		}
		outcome = UpsertUnchanged
		if record.PayloadHash != input.PayloadHash {
			updates["data_source"] = input.DataSource
			updates["blockchain"] = input.Blockchain
			updates["wallet"] = input.Wallet
			updates["title"] = input.Title
			updates["payload"] = input.Payload
			updates["payload_hash"] = input.PayloadHash
			updates["updated_at"] = input.SeenAt
			outcome = UpsertUpdated
		}

		// UpdateColumns leaves updated_at alone for unchanged payloads
		if err := tx.Model(&record).UpdateColumns(updates).Error; err != nil {
			return fmt.Errorf("failed to update staged record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return &record, outcome, nil
}

// GetIndexRecord retrieves a staged record by ID
func (s *pgStore) GetIndexRecord(ctx context.Context, id int64) (*schema.ArtworkIndex, error) {
	var record schema.ArtworkIndex
	found, err := s.firstOnPrimary(func(db *gorm.DB) error {
		return db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get staged record: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &record, nil
}

// ListPendingIndexRecords lists pending records oldest first, together with
// processing records whose claim has outlived the lease
func (s *pgStore) ListPendingIndexRecords(ctx context.Context, since *time.Time, limit int) ([]schema.ArtworkIndex, error) {
	query := s.db.WithContext(ctx).
		Where(claimableCondition, domain.ImportStatusPending, domain.ImportStatusProcessing, staleClaimCutoff()).
		Order("id ASC")
	if since != nil {
		query = query.Where("updated_at >= ?", *since)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []schema.ArtworkIndex
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending staged records: %w", err)
	}
	return records, nil
}

// UpdateIndexStatus moves a staged record to a new status inside a row lock
func (s *pgStore) UpdateIndexStatus(ctx context.Context, id int64, to domain.ImportStatus, update IndexStatusUpdate) (*schema.ArtworkIndex, error) {
	if update.At.IsZero() {
		update.At = time.Now().UTC()
	}

	var record schema.ArtworkIndex
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).Take(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIndexNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock staged record: %w", err)
		}

		if record.ImportStatus == domain.ImportStatusProcessing && to == domain.ImportStatusProcessing {
			// An abandoned claim is taken over; a live one is left to its holder
			if !domain.IsStaleClaim(record.ImportStatus, record.ClaimedAt, update.At) {
				return fmt.Errorf("%w: record %d", domain.ErrRecordClaimed, id)
			}
		} else if !domain.CanTransition(record.ImportStatus, to) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, record.ImportStatus, to)
		}

		updates := map[string]interface{}{
			"import_status": to,
			"claimed_at":    nil,
		}
		switch to {
		case domain.ImportStatusProcessing:
			updates["attempts"] = gorm.Expr("attempts + 1")
			updates["claimed_at"] = update.At
		case domain.ImportStatusImported:
			updates["artwork_id"] = update.ArtworkID
			updates["imported_at"] = update.At
			updates["last_error"] = nil
		case domain.ImportStatusFailed:
			updates["last_error"] = update.Error
		case domain.ImportStatusPending:
			// Reset and decoupling both clear the reference
			updates["artwork_id"] = nil
			updates["last_error"] = nil
		}

		if err := tx.Model(&record).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update staged record status: %w", err)
		}
		return tx.Where("id = ?", id).Take(&record).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ResetFailedIndexRecords moves every failed record, and every processing
// record whose claim has outlived the lease, back to pending
func (s *pgStore) ResetFailedIndexRecords(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Model(&schema.ArtworkIndex{}).
		Where(claimableCondition, domain.ImportStatusFailed, domain.ImportStatusProcessing, staleClaimCutoff()).
		Updates(map[string]interface{}{
			"import_status": domain.ImportStatusPending,
			"last_error":    nil,
			"claimed_at":    nil,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to reset failed staged records: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ListIndexRecords pages over distinct (contract, token) pairs and collapses
// the staged rows of each pair to one
func (s *pgStore) ListIndexRecords(ctx context.Context, filter IndexFilter) ([]schema.ArtworkIndex, int64, error) {
	base := func() *gorm.DB {
		q := s.db.WithContext(ctx).Model(&schema.ArtworkIndex{})
		if filter.Blockchain != nil {
			q = q.Where("blockchain = ?", *filter.Blockchain)
		}
		if filter.Status != nil {
			q = q.Where("import_status = ?", *filter.Status)
		}
		if query := strings.TrimSpace(filter.Query); query != "" {
			like := "%" + escapeLike(query) + "%"
			q = q.Where("(title ILIKE ? OR contract_address ILIKE ? OR token_id = ?)", like, like, query)
		}
		return q
	}

	var total int64
	distinctKeys := base().Select("contract_address, token_id").Group("contract_address, token_id")
	if err := s.db.WithContext(ctx).Table("(?) AS k", distinctKeys).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count staged records: %w", err)
	}

	type key struct {
		ContractAddress string
		TokenID         string
	}
	var keys []key
	keysQuery := base().
		Select("contract_address, token_id, MAX(updated_at) AS latest").
		Group("contract_address, token_id").
		Order("latest DESC, contract_address, token_id")
	if filter.Limit > 0 {
		keysQuery = keysQuery.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		keysQuery = keysQuery.Offset(filter.Offset)
	}
	if err := keysQuery.Scan(&keys).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list staged record keys: %w", err)
	}
	if len(keys) == 0 {
		return []schema.ArtworkIndex{}, total, nil
	}

	pairs := make([][]interface{}, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, []interface{}{k.ContractAddress, k.TokenID})
	}

	var records []schema.ArtworkIndex
	if err := base().Where("(contract_address, token_id) IN ?", pairs).Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list staged records: %w", err)
	}

	collapsed := Collapse(records)

	// Keep the page order of the keys
	byKey := make(map[domain.TokenKey]schema.ArtworkIndex, len(collapsed))
	for _, r := range collapsed {
		byKey[r.TokenKey()] = r
	}
	ordered := make([]schema.ArtworkIndex, 0, len(keys))
	for _, k := range keys {
		if r, ok := byKey[domain.TokenKey{ContractAddress: k.ContractAddress, TokenID: k.TokenID}]; ok {
			ordered = append(ordered, r)
		}
	}

	return ordered, total, nil
}

// CountIndexRecordsByStatus counts staged records per import status
func (s *pgStore) CountIndexRecordsByStatus(ctx context.Context) (map[domain.ImportStatus]int64, error) {
	var rows []struct {
		ImportStatus domain.ImportStatus
		Count        int64
	}
	err := s.db.WithContext(ctx).Model(&schema.ArtworkIndex{}).
		Select("import_status, COUNT(*) AS count").
		Group("import_status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count staged records: %w", err)
	}

	counts := map[domain.ImportStatus]int64{
		domain.ImportStatusPending:    0,
		domain.ImportStatusProcessing: 0,
		domain.ImportStatusImported:   0,
		domain.ImportStatusFailed:     0,
	}
	for _, r := range rows {
		counts[r.ImportStatus] = r.Count
	}
	return counts, nil
}

// claimableCondition matches one status plus abandoned processing claims.
// Arguments: status, processing status, stale claim cutoff.
const claimableCondition = "(import_status = ? OR (import_status = ? AND (claimed_at IS NULL OR claimed_at <= ?)))"

// staleClaimCutoff is the latest claim time that counts as abandoned now
func staleClaimCutoff() time.Time {
	return time.Now().UTC().Add(-domain.PROCESSING_LEASE)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
