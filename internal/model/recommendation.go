package model

// Recommendation is a single ranked product suggestion. Score is in
// [0, 1], rounded to two decimals.
type Recommendation struct {
	Product   string  `json:"produto"`
	Score     float64 `json:"pontuacao"`
	Rationale string  `json:"motivo"`
}

// Document is the persisted per-client aggregate: the derived profile
// plus up to MaxRecommendations suggestions, highest score first.
type Document struct {
	ClientProfile

	Recommendations []Recommendation `json:"recomendacoes"`
}

// MaxRecommendations caps the ranked list per client.
const MaxRecommendations = 5
