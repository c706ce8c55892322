// Package scoring ranks investment products against a client using an
// ordered table of additive weighted rules. The same table produces
// the numeric score and the human-readable rationale so the two cannot
// drift apart.
package scoring

import (
	"math"
	"sort"
	"strings"

	"InvestAdvisor/internal/model"
)

// Score computes the relevance score and rationale for one
// (client, product) pair. The score starts at 0.5, each matching rule
// adds its weight, and the sum is clamped to [0, 1] and rounded to two
// decimals. The rationale joins the clauses of the matching
// rationale-bearing rules in their fixed order, comma-separated, or
// falls back to a generic text when none matched.
func Score(client model.Client, product model.Product, txs []model.Transaction, inters []model.Interaction) (float64, string) {
	in := newScoreInput(client, product, txs, inters)

	score := baseScore
	type clause struct {
		rank   int
		reason string
	}
	var clauses []clause

	for _, r := range rules {
		if r.applies(in) {
			score += r.weight
		}
		if r.reason == "" {
			continue
		}
		clauseOn := r.clauseApplies
		if clauseOn == nil {
			clauseOn = r.applies
		}
		if clauseOn(in) {
			clauses = append(clauses, clause{r.rationaleRank, r.reason})
		}
	}

	score = clampRound(score)

	if len(clauses) == 0 {
		return score, ReasonFallback
	}
	sort.SliceStable(clauses, func(i, j int) bool { return clauses[i].rank < clauses[j].rank })
	parts := make([]string, len(clauses))
	for i, c := range clauses {
		parts[i] = c.reason
	}
	return score, strings.Join(parts, ", ")
}

// clampRound truncates a raw rule sum to [0, 1] and rounds to two
// decimals. Out-of-range sums are legal rule outcomes, not errors.
func clampRound(score float64) float64 {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return math.Round(score*100) / 100
}

// Rank scores every active product for the client and returns the top
// entries, highest score first. Ties keep catalog order. The result
// has at most model.MaxRecommendations entries and never includes an
// inactive product.
func Rank(client model.Client, products []model.Product, txs []model.Transaction, inters []model.Interaction) []model.Recommendation {
	recs := []model.Recommendation{}
	for i := range products {
		p := &products[i]
		if !p.IsActive() {
			continue
		}
		score, rationale := Score(client, *p, txs, inters)
		recs = append(recs, model.Recommendation{
			Product:   p.Name,
			Score:     score,
			Rationale: rationale,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })

	if len(recs) > model.MaxRecommendations {
		recs = recs[:model.MaxRecommendations]
	}
	return recs
}
