package store

import (
	"context"
	"errors"

	"InvestAdvisor/internal/model"
)

// ErrNotFound is returned by Get when no document exists for a client.
var ErrNotFound = errors.New("document not found")

// DocumentStore persists one recommendation document per client.
// Upsert has merge semantics: top-level fields present in an earlier
// write but absent from the new one are preserved. Each client's write
// is atomic; no cross-key transaction is offered.
type DocumentStore interface {
	Ping(ctx context.Context) error
	Upsert(ctx context.Context, clientID string, doc *model.Document) error
	Get(ctx context.Context, clientID string) ([]byte, error)
	Close() error
}
