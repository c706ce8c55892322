package runstate

import (
	"log"
	"sync"
	"time"

	"InvestAdvisor/internal/model"
)

// Manager guards the run state with a mutex and persists every change.
type Manager struct {
	mu       sync.Mutex
	state    *RunState
	filePath string
}

// NewManager creates a Manager, loading or initializing state from disk.
func NewManager(filePath string) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	return &Manager{state: state, filePath: filePath}, nil
}

// GetState returns a copy of the current run state.
func (m *Manager) GetState() RunState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.state
}

// RecordRun updates the state after a completed batch run.
func (m *Manager) RecordRun(messageID string, processed, failed int, market model.MarketRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.TotalRuns++
	m.state.LastRunAt = time.Now()
	m.state.LastMessageID = messageID
	m.state.ClientsProcessed = processed
	m.state.ClientsFailed = failed
	if market.IndexName != "" {
		m.state.IndexName = market.IndexName
		m.state.IndexValue = market.IndexValue
		m.state.SelicRate = market.SelicRate
	}

	if err := SaveState(m.filePath, m.state); err != nil {
		log.Printf("[ERROR] failed to save run state: %v", err)
	}
}
