package domain

import "errors"

var (
	// ErrIndexNotFound is returned when a staged index record does not exist
	ErrIndexNotFound = errors.New("index record not found")

	// ErrArtworkNotFound is returned when an artwork does not exist
	ErrArtworkNotFound = errors.New("artwork not found")

	// ErrInvalidTransition is returned when a staged record cannot move to the requested status
	ErrInvalidTransition = errors.New("invalid import status transition")

	// ErrRecordClaimed is returned when a staged record is being promoted under a live claim
	ErrRecordClaimed = errors.New("staged record is already being promoted")

	// ErrUnsupportedBlockchain is returned when no adapter serves a blockchain
	ErrUnsupportedBlockchain = errors.New("unsupported blockchain")

	// ErrInvalidObservationType is returned for unknown observation types
	ErrInvalidObservationType = errors.New("invalid observation type")

	// ErrStorageUnavailable is returned when the storage boundary cannot be reached; it aborts a run
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMissingTokenKey is returned when a record carries no contract address or token id
	ErrMissingTokenKey = errors.New("missing contract address or token id")

	// ErrInvalidAddress is returned for a malformed wallet address
	ErrInvalidAddress = errors.New("invalid wallet address")

	// ErrInvalidRecord is returned when a record cannot be normalized into valid data
	ErrInvalidRecord = errors.New("invalid record")

	// ErrNoAPIKey is returned when a provider requiring a key has none configured
	ErrNoAPIKey = errors.New("no API key provided")

	// ErrRunNotFound is returned when an indexing run does not exist
	ErrRunNotFound = errors.New("indexing run not found")
)
