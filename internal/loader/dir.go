package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DirSource reads datasets from CSV files in a local data-lake
// directory, one <dataset>.csv per logical dataset.
type DirSource struct {
	Dir string
}

// NewDirSource creates a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

func (s *DirSource) Name() string { return "dir:" + s.Dir }

func (s *DirSource) Fetch(_ context.Context, dataset string) ([]Record, error) {
	path := filepath.Join(s.Dir, dataset+".csv")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return parseCSV(f, dataset)
}
