package model

import "time"

// MarketRecord mirrors one row of the "dados_mercado" dataset.
type MarketRecord struct {
	Date       time.Time `json:"data"`
	IndexName  string    `json:"nome_indice"`
	IndexValue float64   `json:"valor_indice"`
	SelicRate  float64   `json:"taxa_selic"`
	DollarRate float64   `json:"cotacao_dolar"`
}
