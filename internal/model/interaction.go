package model

import "time"

// Interaction mirrors one row of the "interacoes" dataset. ProductID
// is empty for interactions that do not reference a product; those are
// an engagement signal only and never affect per-product scoring.
type Interaction struct {
	ID              string    `json:"id_interacao"`
	ClientID        string    `json:"id_cliente"`
	ProductID       string    `json:"id_produto"`
	Kind            string    `json:"tipo_interacao"`
	Date            time.Time `json:"data_interacao"`
	DurationSeconds int       `json:"duracao_interacao_segundos"`
	SearchTerm      string    `json:"termo_pesquisa"`
}
