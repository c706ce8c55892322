package loader

import "context"

// MockSource returns controllable fixed data for development and testing.
type MockSource struct {
	Data map[string][]Record
	Errs map[string]error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Fetch(_ context.Context, dataset string) ([]Record, error) {
	if err := m.Errs[dataset]; err != nil {
		return nil, err
	}
	return m.Data[dataset], nil
}
