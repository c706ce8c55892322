package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"InvestAdvisor/internal/model"
)

// SQLiteStore persists recommendation documents as JSON rows keyed by
// client ID.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so the read API can serve while the worker writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite document store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS recommendation_docs (
			client_id  TEXT PRIMARY KEY,
			doc        TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_docs_updated ON recommendation_docs(updated_at)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// Ping is the batch setup health check.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Upsert writes the document for one client. Merge semantics: the new
// document's top-level JSON fields overwrite the stored ones, and
// stored fields the new document does not carry are preserved.
func (s *SQLiteStore) Upsert(ctx context.Context, clientID string, doc *model.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback()

	var existing string
	err = tx.QueryRowContext(ctx,
		`SELECT doc FROM recommendation_docs WHERE client_id = ?`, clientID).Scan(&existing)
	switch {
	case err == sql.ErrNoRows:
		// First write, nothing to merge.
	case err != nil:
		return fmt.Errorf("read existing document: %w", err)
	default:
		data, err = mergeDocs([]byte(existing), data)
		if err != nil {
			return fmt.Errorf("merge document: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO recommendation_docs (client_id, doc, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(client_id) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`,
		clientID, string(data), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return tx.Commit()
}

// Get returns the stored document JSON for one client.
func (s *SQLiteStore) Get(ctx context.Context, clientID string) ([]byte, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM recommendation_docs WHERE client_id = ?`, clientID).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return []byte(doc), nil
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite document store")
	return s.db.Close()
}

// mergeDocs overlays the new document's top-level fields on the old one.
func mergeDocs(oldDoc, newDoc []byte) ([]byte, error) {
	var oldMap, newMap map[string]json.RawMessage
	if err := json.Unmarshal(oldDoc, &oldMap); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(newDoc, &newMap); err != nil {
		return nil, err
	}
	for k, v := range newMap {
		oldMap[k] = v
	}
	return json.Marshal(oldMap)
}
