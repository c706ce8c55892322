package store

import (
	"context"

	"InvestAdvisor/internal/model"
)

// NoopStore is a no-op implementation used when SQLite is not configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) Ping(_ context.Context) error                              { return nil }
func (n *NoopStore) Upsert(_ context.Context, _ string, _ *model.Document) error { return nil }
func (n *NoopStore) Get(_ context.Context, _ string) ([]byte, error)           { return nil, ErrNotFound }
func (n *NoopStore) Close() error                                              { return nil }
