package messaging

import (
	"context"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
)

// Publisher defines the interface for publishing catalog events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishCatalogEvent publishes a catalog change event
	PublishCatalogEvent(ctx context.Context, event *domain.CatalogEvent) error
	// Close closes the connection
	Close()
}

// Noop is a publisher that drops every event, used when no broker is configured
type Noop struct{}

func (Noop) PublishCatalogEvent(context.Context, *domain.CatalogEvent) error { return nil }

func (Noop) Close() {}
