// Package worker runs the recommendation batch: load the data lake,
// build a profile and a ranked product list per client, and persist
// one document per client.
package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"InvestAdvisor/internal/loader"
	"InvestAdvisor/internal/model"
	"InvestAdvisor/internal/notifier"
	"InvestAdvisor/internal/profile"
	"InvestAdvisor/internal/runstate"
	"InvestAdvisor/internal/scoring"
	"InvestAdvisor/internal/store"
)

// Worker is the batch orchestrator.
type Worker struct {
	Loader   *loader.Loader
	Store    store.DocumentStore
	State    *runstate.Manager
	Notifier notifier.Notifier
}

// New creates a Worker.
func New(l *loader.Loader, s store.DocumentStore, state *runstate.Manager, n notifier.Notifier) *Worker {
	return &Worker{Loader: l, Store: s, State: state, Notifier: n}
}

// Run executes one full batch pass over all clients. Only a setup
// failure (store health check or full data-lake retrieval) returns an
// error, so the invoking trigger can redeliver; a failure on one
// client is logged and the loop moves on.
func (w *Worker) Run(ctx context.Context, messageID string) error {
	started := time.Now()
	log.Printf("[INFO] batch run started, message=%s", messageID)

	if err := w.Store.Ping(ctx); err != nil {
		return fmt.Errorf("store health check: %w", err)
	}

	snap, err := w.Loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load data lake: %w", err)
	}

	processed, failed := 0, 0
	for i := range snap.Clients {
		client := snap.Clients[i]
		if err := w.processClient(ctx, client, snap); err != nil {
			log.Printf("[ERROR] client %s failed, continuing: %v", client.ID, err)
			failed++
			continue
		}
		processed++
	}

	market := snap.LatestMarket()
	w.State.RecordRun(messageID, processed, failed, market)

	summary := notifier.FormatRunSummary(messageID, processed, failed, time.Since(started), market)
	if err := w.Notifier.Send(ctx, summary); err != nil {
		log.Printf("[ERROR] send run summary: %v", err)
	}

	log.Printf("[INFO] batch run finished: %d processed, %d failed, elapsed %s",
		processed, failed, time.Since(started).Round(time.Millisecond))
	return nil
}

// processClient builds and persists one client's document. A panic
// anywhere below is converted to an error so the batch keeps going.
func (w *Worker) processClient(ctx context.Context, client model.Client, snap *loader.Snapshot) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing client: %v", r)
		}
	}()

	prof := profile.Build(client, snap.Transactions, snap.Interactions)
	recs := scoring.Rank(client, snap.Products, snap.Transactions, snap.Interactions)

	doc := &model.Document{
		ClientProfile:   prof,
		Recommendations: recs,
	}
	if err := w.Store.Upsert(ctx, client.ID, doc); err != nil {
		return fmt.Errorf("persist document: %w", err)
	}
	return nil
}
