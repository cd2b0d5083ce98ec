package schema

import (
	"time"

	"gorm.io/datatypes"
)

// RunStatus represents the status of an indexing run
type RunStatus string

const (
	// RunStatusRunning is the status of a run in progress
	RunStatusRunning RunStatus = "running"
	// RunStatusCompleted is the status of a run that visited every wallet
	RunStatusCompleted RunStatus = "completed"
	// RunStatusCanceled is the status of a run stopped between wallets or pages
	RunStatusCanceled RunStatus = "canceled"
	// RunStatusFailed is the status of a run aborted by a storage failure
	RunStatusFailed RunStatus = "failed"
)

// IndexingRun represents the indexing_runs table - one row per indexAndImport call
type IndexingRun struct {
	// ID is the ULID of the run
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Trigger identifies the caller (api, cli, workflow)
	Trigger string    `gorm:"column:trigger;not null;type:text"`
	Status  RunStatus `gorm:"column:status;not null;type:text;index"`
	// Wallet, Blockchain and ObservationType are the optional run filters
	Wallet          *string `gorm:"column:wallet;type:text"`
	Blockchain      *string `gorm:"column:blockchain;type:text"`
	ObservationType *string `gorm:"column:observation_type;type:text"`
	WalletCount     int     `gorm:"column:wallet_count;not null;default:0"`
	Discovered      int     `gorm:"column:discovered;not null;default:0"`
	Stored          int     `gorm:"column:stored;not null;default:0"`
	Errored         int     `gorm:"column:errored;not null;default:0"`
	// Report is the full run report
	Report     datatypes.JSON `gorm:"column:report;type:jsonb"`
	Error      *string        `gorm:"column:error;type:text"`
	StartedAt  time.Time      `gorm:"column:started_at;not null;default:now();type:timestamptz"`
	FinishedAt *time.Time     `gorm:"column:finished_at;type:timestamptz"`
}

// TableName specifies the table name for the IndexingRun model
func (IndexingRun) TableName() string {
	return "indexing_runs"
}

// Models lists every model in migration order
func Models() []interface{} {
	return []interface{}{
		&Artist{},
		&ArtistAddress{},
		&Collection{},
		&CollectionArtist{},
		&Artwork{},
		&ArtworkArtist{},
		&ArtworkIndex{},
		&IndexingRun{},
	}
}
