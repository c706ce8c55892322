package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fullMockData() map[string][]Record {
	return map[string][]Record{
		DatasetClients: {{
			"id_cliente":                "CLI001",
			"nome_cliente":              "Ana Souza",
			"idade":                     "34",
			"renda_mensal_estimada":     "12000.50",
			"patrimonio_total_estimado": "250000",
			"perfil_risco":              "Conservative",
			"objetivo_investimento":     "Retirement",
			"data_cadastro":             "2023-05-10",
			"ultima_interacao":          "2024-01-15 09:30:00",
		}},
		DatasetProducts: {{
			"id_produto":                  "PROD001",
			"nome_produto":                "Premium Fixed Income Fund",
			"tipo_produto":                "Fixed Income Fund",
			"risco_associado":             "Low",
			"rentabilidade_historica_12m": "12.0",
			"rentabilidade_historica_36m": "9.0",
			"taxa_administracao":          "0.5",
			"aplicacao_minima":            "1000",
			"liquidez":                    "D+1",
			"status_produto":              "Active",
		}},
		DatasetTransactions: {{
			"id_transacao":     "T1",
			"id_cliente":       "CLI001",
			"id_produto":       "PROD001",
			"tipo_transacao":   "Deposit",
			"valor_transacao":  "1500.00",
			"data_transacao":   "2024-01-10",
			"status_transacao": "Completed",
		}},
		DatasetInteractions: {{
			"id_interacao":               "I1",
			"id_cliente":                 "CLI001",
			"id_produto":                 "PROD001",
			"tipo_interacao":             "view",
			"data_interacao":             "2024-01-12",
			"duracao_interacao_segundos": "180",
			"termo_pesquisa":             "",
		}},
		DatasetMarket: {
			{"data": "2024-01-14", "nome_indice": "IBOV", "valor_indice": "128000", "taxa_selic": "11.25", "cotacao_dolar": "4.92"},
			{"data": "2024-01-15", "nome_indice": "IBOV", "valor_indice": "129500", "taxa_selic": "11.25", "cotacao_dolar": "4.88"},
		},
	}
}

func TestLoad_AllDatasets(t *testing.T) {
	l := NewLoader(&MockSource{Data: fullMockData()})

	snap, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Clients) != 1 || len(snap.Products) != 1 || len(snap.Transactions) != 1 || len(snap.Interactions) != 1 {
		t.Fatalf("unexpected snapshot sizes: %+v", snap)
	}
	c := snap.Clients[0]
	if c.Age != 34 || c.MonthlyIncome != 12000.50 || c.NetWorth != 250000 {
		t.Errorf("client coercion failed: %+v", c)
	}
	if c.RegisteredAt.IsZero() || c.LastInteractionAt.IsZero() {
		t.Errorf("client timestamps not parsed: %+v", c)
	}
	p := snap.Products[0]
	if p.Return12m != 12.0 || p.ManagementFee != 0.5 || p.MinInvestment != 1000 {
		t.Errorf("product coercion failed: %+v", p)
	}
	if snap.Interactions[0].DurationSeconds != 180 {
		t.Errorf("interaction duration coercion failed: %+v", snap.Interactions[0])
	}
	if got := snap.LatestMarket(); got.IndexValue != 129500 {
		t.Errorf("expected latest market row, got %+v", got)
	}
}

func TestLoad_AbsentDatasetIsEmpty(t *testing.T) {
	data := fullMockData()
	delete(data, DatasetInteractions)
	l := NewLoader(&MockSource{Data: data})

	snap, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Interactions) != 0 {
		t.Errorf("expected no interactions, got %d", len(snap.Interactions))
	}
	if len(snap.Clients) != 1 {
		t.Errorf("other datasets must still load, got %d clients", len(snap.Clients))
	}
}

func TestLoad_OneFetchFailureIsIsolated(t *testing.T) {
	l := NewLoader(&MockSource{
		Data: fullMockData(),
		Errs: map[string]error{DatasetMarket: errors.New("connection reset")},
	})

	snap, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("one failing dataset must not fail the load: %v", err)
	}
	if len(snap.Market) != 0 {
		t.Errorf("failed dataset must be empty, got %d rows", len(snap.Market))
	}
	if len(snap.Clients) != 1 || len(snap.Products) != 1 {
		t.Errorf("healthy datasets must survive: %+v", snap)
	}
}

func TestLoad_CoercionFailureDegradesDataset(t *testing.T) {
	data := fullMockData()
	data[DatasetProducts] = []Record{{
		"id_produto":         "PROD001",
		"taxa_administracao": "not-a-number",
	}}
	l := NewLoader(&MockSource{Data: data})

	snap, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("coercion failure must degrade, not fail: %v", err)
	}
	if len(snap.Products) != 0 {
		t.Errorf("failed dataset must yield no rows, got %d", len(snap.Products))
	}
}

func TestLoad_AllDatasetsFailing(t *testing.T) {
	errs := make(map[string]error)
	for _, ds := range []string{DatasetClients, DatasetProducts, DatasetTransactions, DatasetInteractions, DatasetMarket} {
		errs[ds] = errors.New("storage offline")
	}
	l := NewLoader(&MockSource{Errs: errs})

	if _, err := l.Load(context.Background()); err == nil {
		t.Fatal("expected error when every dataset fails")
	}
}

func TestFieldTime_Lenient(t *testing.T) {
	if got := fieldTime(Record{"d": "2024-03-01 10:00:00"}, "d"); got.IsZero() {
		t.Error("datetime layout must parse")
	}
	if got := fieldTime(Record{"d": "2024-03-01"}, "d"); got.IsZero() {
		t.Error("date layout must parse")
	}
	if got := fieldTime(Record{"d": "01/03/2024"}, "d"); !got.IsZero() {
		t.Errorf("unknown layout must yield zero time, got %v", got)
	}
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	csv := "id_produto,nome_produto,status_produto\n" +
		"PROD001,Alpha Fund,Active\n" +
		"PROD002,Beta\n" + // short row, skipped
		"PROD003,Gamma Fund,Inactive,extra\n"
	if err := os.WriteFile(filepath.Join(dir, "produtos.csv"), []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewDirSource(dir)
	recs, err := s.Fetch(context.Background(), DatasetProducts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records (short row skipped), got %d", len(recs))
	}
	if recs[0]["nome_produto"] != "Alpha Fund" {
		t.Errorf("unexpected first record: %v", recs[0])
	}
	if recs[1]["status_produto"] != "Inactive" {
		t.Errorf("extra trailing field must be ignored: %v", recs[1])
	}

	// Absent dataset is not an error.
	recs, err = s.Fetch(context.Background(), DatasetClients)
	if err != nil || recs != nil {
		t.Errorf("absent file: expected (nil, nil), got (%v, %v)", recs, err)
	}
}

func TestParseCSV_EmptyFile(t *testing.T) {
	recs, err := parseCSV(strings.NewReader(""), "produtos")
	if err != nil || recs != nil {
		t.Errorf("empty file: expected (nil, nil), got (%v, %v)", recs, err)
	}
}
