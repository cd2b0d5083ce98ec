package orchestrator

import (
	"time"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/store/schema"
)

// maxReportedErrors caps the error messages kept per pass
const maxReportedErrors = 20

// Request selects what a run indexes. Empty fields mean "all".
type Request struct {
	Wallet          string                 `json:"wallet,omitempty"`
	Blockchain      domain.Blockchain      `json:"blockchain,omitempty"`
	ObservationType domain.ObservationType `json:"observation_type,omitempty"`
	// Trigger identifies the caller: api, cli or workflow
	Trigger string `json:"trigger,omitempty"`
}

// WalletTarget is one wallet to index on one blockchain
type WalletTarget struct {
	Address    string            `json:"address"`
	Blockchain domain.Blockchain `json:"blockchain"`
}

// Counts are the token counters of a pass, a wallet or a run
type Counts struct {
	// Discovered is the number of collectible tokens returned by the provider
	Discovered int `json:"discovered"`
	// Stored is the number of staged records created or changed
	Stored int `json:"stored"`
	// Unchanged is the number of tokens already staged with the same payload
	Unchanged int `json:"unchanged"`
	// Errored is the number of tokens that could not be normalized or staged
	Errored int `json:"errored"`
	// Filtered is the number of non-collectible tokens dropped by the provider adapter
	Filtered int `json:"filtered"`
}

func (c *Counts) add(o Counts) {
	c.Discovered += o.Discovered
	c.Stored += o.Stored
	c.Unchanged += o.Unchanged
	c.Errored += o.Errored
	c.Filtered += o.Filtered
}

// PassReport is the outcome of paging one observation type of one wallet
type PassReport struct {
	ObservationType domain.ObservationType `json:"observation_type"`
	Pages           int                    `json:"pages"`
	Counts
	// Error is set when the pass stopped early because a page failed
	Error  *string  `json:"error,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

func (p *PassReport) recordError(msg string) {
	p.Errored++
	if len(p.Errors) < maxReportedErrors {
		p.Errors = append(p.Errors, msg)
	}
}

// WalletReport is the outcome of indexing one wallet
type WalletReport struct {
	Wallet     string            `json:"wallet"`
	Blockchain domain.Blockchain `json:"blockchain"`
	Provider   domain.DataSource `json:"provider,omitempty"`
	Passes     []PassReport      `json:"passes"`
	Counts
	// Error is set when the wallet could not be indexed at all
	Error *string `json:"error,omitempty"`
	// ChangedImported lists imported records whose payload changed; they are promoted again
	ChangedImported []int64 `json:"changed_imported,omitempty"`
}

// HasErrors reports whether anything in the wallet failed
func (w *WalletReport) HasErrors() bool {
	if w.Error != nil || w.Errored > 0 {
		return true
	}
	for _, p := range w.Passes {
		if p.Error != nil {
			return true
		}
	}
	return false
}

// PromotionSummary is the outcome of the promotion step of a run
type PromotionSummary struct {
	Processed int      `json:"processed"`
	Imported  int      `json:"imported"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// RunReport is returned by every run, including failed and canceled ones
type RunReport struct {
	ID          string            `json:"id"`
	Request     Request           `json:"request"`
	Status      schema.RunStatus  `json:"status"`
	StartedAt   time.Time         `json:"started_at"`
	FinishedAt  *time.Time        `json:"finished_at,omitempty"`
	Wallets     []WalletReport    `json:"wallets"`
	Totals      Counts            `json:"totals"`
	WalletCount int               `json:"wallet_count"`
	Failures    int               `json:"wallet_failures"`
	Promotion   *PromotionSummary `json:"promotion,omitempty"`
	Error       *string           `json:"error,omitempty"`
}

// AddWallet appends a wallet report and rolls its counts into the totals
func (r *RunReport) AddWallet(w WalletReport) {
	r.Wallets = append(r.Wallets, w)
	r.Totals.add(w.Counts)
	if w.HasErrors() {
		r.Failures++
	}
}

// ChangedImported collects the imported records to promote again
func (r *RunReport) ChangedImported() []int64 {
	var ids []int64
	for _, w := range r.Wallets {
		ids = append(ids, w.ChangedImported...)
	}
	return ids
}
