package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/feral-file/ff-catalog-indexer/internal/api/shared/constants"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/orchestrator"
)

// ImportRequest is the body of POST /import: a single IndexerData object or an array of them
type ImportRequest struct {
	Records []domain.IndexerData
}

// UnmarshalJSON accepts both an object and an array
func (r *ImportRequest) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errors.New("empty body")
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &r.Records)
	}

	var record domain.IndexerData
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return err
	}
	r.Records = []domain.IndexerData{record}
	return nil
}

// Validate checks the batch size; each record is validated when it is staged
// so one bad record does not reject the whole batch
func (r ImportRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Records, validation.Required, validation.Length(1, constants.MAX_IMPORT_BATCH_SIZE), validation.Skip),
	)
}

// IndexAndImportRequest is the body of POST /index-and-import. Empty fields mean all.
type IndexAndImportRequest struct {
	Wallet          string                 `json:"wallet,omitempty"`
	Blockchain      domain.Blockchain      `json:"blockchain,omitempty"`
	ObservationType domain.ObservationType `json:"observation_type,omitempty"`
}

// Validate validates the request body
func (r IndexAndImportRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Wallet, validation.By(func(value interface{}) error {
			wallet, _ := value.(string)
			if wallet != "" && !domain.IsValidAddress(wallet) {
				return validation.NewError("validation_wallet", "must be a valid Ethereum or Tezos address")
			}
			return nil
		})),
		validation.Field(&r.Blockchain, validation.In(domain.BlockchainEthereum, domain.BlockchainTezos)),
		validation.Field(&r.ObservationType, validation.In(domain.ObservationOwned, domain.ObservationCreated)),
	)
}

// ToRequest converts the body to an orchestrator request
func (r IndexAndImportRequest) ToRequest() orchestrator.Request {
	return orchestrator.Request{
		Wallet:          r.Wallet,
		Blockchain:      r.Blockchain,
		ObservationType: r.ObservationType,
		Trigger:         "api",
	}
}

// PromoteRequest is the body of POST /promote. Without ids every pending
// record is promoted, optionally only those updated since a time.
type PromoteRequest struct {
	IndexIDs []int64   `json:"index_ids,omitempty"`
	Since    *time.Time `json:"since,omitempty"`
	Limit    int        `json:"limit,omitempty"`
}

// Validate validates the request body
func (r PromoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IndexIDs, validation.Length(0, constants.MAX_PROMOTE_IDS), validation.Each(validation.Required, validation.Min(int64(1)))),
		validation.Field(&r.Limit, validation.Min(0)),
	)
}
