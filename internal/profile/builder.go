// Package profile derives the per-run behavioral view of a client from
// the raw data-lake collections.
package profile

import (
	"time"

	"InvestAdvisor/internal/model"
)

// Behavior maps a declared risk profile to its coarse behavioral
// category. Anything unrecognized, including empty, is unknown.
func Behavior(rp model.RiskProfile) model.BehaviorCategory {
	switch rp {
	case model.RiskConservative:
		return model.BehaviorConservative
	case model.RiskModerate, model.RiskAggressive:
		return model.BehaviorModerate
	default:
		return model.BehaviorUnknown
	}
}

// Build derives a ClientProfile from the client plus the full
// transaction and interaction collections. Pure apart from the
// GeneratedAt timestamp.
func Build(client model.Client, transactions []model.Transaction, interactions []model.Interaction) model.ClientProfile {
	txs := clientTransactions(client.ID, transactions)
	inters := clientInteractions(client.ID, interactions)

	return model.ClientProfile{
		Client:            client,
		Behavior:          Behavior(client.RiskProfile),
		PurchasedProducts: purchaseHistory(txs),
		TransactionCount:  len(txs),
		TotalDeposited:    totalDeposited(txs),
		InteractionCount:  len(inters),
		GeneratedAt:       time.Now(),
	}
}

func clientTransactions(clientID string, txs []model.Transaction) []model.Transaction {
	var out []model.Transaction
	for _, t := range txs {
		if t.ClientID == clientID {
			out = append(out, t)
		}
	}
	return out
}

func clientInteractions(clientID string, inters []model.Interaction) []model.Interaction {
	var out []model.Interaction
	for _, in := range inters {
		if in.ClientID == clientID {
			out = append(out, in)
		}
	}
	return out
}

// purchaseHistory lists product IDs of completed deposits in
// transaction order. Repeat purchases appear once per transaction.
func purchaseHistory(txs []model.Transaction) []string {
	history := []string{}
	for _, t := range txs {
		if t.IsCompletedDeposit() {
			history = append(history, t.ProductID)
		}
	}
	return history
}

func totalDeposited(txs []model.Transaction) float64 {
	sum := 0.0
	for _, t := range txs {
		if t.IsCompletedDeposit() {
			sum += t.Amount
		}
	}
	return sum
}
