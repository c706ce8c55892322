package loader

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"InvestAdvisor/internal/model"
)

// Snapshot is one full read of the data lake, the read-only input of a
// batch run.
type Snapshot struct {
	Clients      []model.Client
	Products     []model.Product
	Transactions []model.Transaction
	Interactions []model.Interaction
	Market       []model.MarketRecord
	FetchedAt    time.Time
}

// LatestMarket returns the most recent market record, or a zero value
// if the dataset is empty.
func (s *Snapshot) LatestMarket() model.MarketRecord {
	var latest model.MarketRecord
	for _, m := range s.Market {
		if m.Date.After(latest.Date) {
			latest = m
		}
	}
	return latest
}

// Loader fetches and decodes all datasets from a Source.
type Loader struct {
	Source Source
}

// NewLoader creates a new Loader.
func NewLoader(source Source) *Loader {
	return &Loader{Source: source}
}

// Load fetches the five datasets concurrently and decodes them into
// typed collections. A fetch or coercion failure degrades that one
// dataset to empty with a warning; only when every dataset fails does
// Load return an error, which the caller treats as a batch setup
// failure.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{FetchedAt: time.Now()}

	datasets := []struct {
		name   string
		decode func([]Record) error
	}{
		{DatasetClients, func(r []Record) error {
			rows, err := decodeClients(r)
			snap.Clients = rows
			return err
		}},
		{DatasetProducts, func(r []Record) error {
			rows, err := decodeProducts(r)
			snap.Products = rows
			return err
		}},
		{DatasetTransactions, func(r []Record) error {
			rows, err := decodeTransactions(r)
			snap.Transactions = rows
			return err
		}},
		{DatasetInteractions, func(r []Record) error {
			rows, err := decodeInteractions(r)
			snap.Interactions = rows
			return err
		}},
		{DatasetMarket, func(r []Record) error {
			rows, err := decodeMarket(r)
			snap.Market = rows
			return err
		}},
	}

	errs := make([]error, len(datasets))
	var wg sync.WaitGroup
	wg.Add(len(datasets))
	for i, ds := range datasets {
		go func(i int, name string, decode func([]Record) error) {
			defer wg.Done()
			recs, err := l.Source.Fetch(ctx, name)
			if err != nil {
				log.Printf("[WARN] dataset %s unavailable, treating as empty: %v", name, err)
				errs[i] = err
				return
			}
			if len(recs) == 0 {
				log.Printf("[WARN] dataset %s is absent or empty", name)
				return
			}
			if err := decode(recs); err != nil {
				log.Printf("[WARN] dataset %s failed coercion, treating as empty: %v", name, err)
				errs[i] = fmt.Errorf("decode %s: %w", name, err)
			}
		}(i, ds.name, ds.decode)
	}
	wg.Wait()

	failures := 0
	var first error
	for _, err := range errs {
		if err != nil {
			failures++
			if first == nil {
				first = err
			}
		}
	}
	if failures == len(datasets) {
		return nil, fmt.Errorf("all datasets unavailable: %w", first)
	}

	log.Printf("[INFO] data lake loaded: %d clients, %d products, %d transactions, %d interactions, %d market rows",
		len(snap.Clients), len(snap.Products), len(snap.Transactions), len(snap.Interactions), len(snap.Market))
	return snap, nil
}
