package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/types"
)

// NewIndexInput serializes normalized data into a staging upsert. The hash
// is taken over the canonical (JCS) JSON so key order never counts as a change.
func NewIndexInput(
	json adapter.JSON,
	data *domain.IndexerData,
	source domain.DataSource,
	observationType domain.ObservationType,
	wallet string,
	seenAt time.Time,
) (UpsertIndexInput, error) {
	payload, err := json.MarshalCanonical(data)
	if err != nil {
		return UpsertIndexInput{}, fmt.Errorf("failed to serialize payload: %w", err)
	}
	hash := sha256.Sum256(payload)

	return UpsertIndexInput{
		ContractAddress: data.ContractAddress,
		TokenID:         data.TokenID,
		ObservationType: observationType,
		DataSource:      source,
		Blockchain:      data.Blockchain,
		Wallet:          types.NonEmptyStringPtr(domain.NormalizeAddress(wallet)),
		Title:           data.Title,
		Payload:         payload,
		PayloadHash:     hex.EncodeToString(hash[:]),
		SeenAt:          seenAt,
	}, nil
}

// DecodePayload restores the normalized data of a staged record
func DecodePayload(json adapter.JSON, payload []byte) (*domain.IndexerData, error) {
	var data domain.IndexerData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to decode staged payload: %w", err)
	}
	return &data, nil
}
