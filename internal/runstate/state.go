package runstate

import (
	"encoding/json"
	"os"
	"time"
)

// RunState tracks batch-run bookkeeping across restarts.
type RunState struct {
	TotalRuns        int       `json:"total_runs"`
	LastRunAt        time.Time `json:"last_run_at"`
	LastMessageID    string    `json:"last_message_id"`
	ClientsProcessed int       `json:"clients_processed"`
	ClientsFailed    int       `json:"clients_failed"`
	IndexName        string    `json:"index_name"`
	IndexValue       float64   `json:"index_value"`
	SelicRate        float64   `json:"selic_rate"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// LoadState reads the run state from a JSON file. Returns a zero state if the file doesn't exist.
func LoadState(filePath string) (*RunState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &RunState{}, nil
		}
		return nil, err
	}
	var state RunState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveState writes the run state to a JSON file.
func SaveState(filePath string, state *RunState) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
