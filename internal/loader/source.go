package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
)

// Logical dataset names in the data lake.
const (
	DatasetClients      = "clientes"
	DatasetProducts     = "produtos"
	DatasetTransactions = "transacoes"
	DatasetInteractions = "interacoes"
	DatasetMarket       = "dados_mercado"
)

// Record is one raw row of a dataset, column name → string value.
type Record map[string]string

// Source fetches raw records for a named dataset. An absent dataset
// yields (nil, nil); only transport or parse failures return an error.
type Source interface {
	Fetch(ctx context.Context, dataset string) ([]Record, error)
	Name() string
}

// parseCSV reads a header row plus data rows into Records. Rows shorter
// than the header are skipped with a warning; extra trailing fields are
// ignored.
func parseCSV(r io.Reader, dataset string) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", dataset, err)
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s row: %w", dataset, err)
		}
		if len(row) < len(header) {
			log.Printf("[WARN] %s: skipping short row (%d fields, expected %d)", dataset, len(row), len(header))
			continue
		}
		rec := make(Record, len(header))
		for i, col := range header {
			rec[col] = row[i]
		}
		records = append(records, rec)
	}
	return records, nil
}
