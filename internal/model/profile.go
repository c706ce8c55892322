package model

import "time"

// BehaviorCategory is the coarse behavioral bucket derived from the
// declared risk profile. It is always one of the three values below.
type BehaviorCategory string

const (
	BehaviorConservative BehaviorCategory = "conservative"
	BehaviorModerate     BehaviorCategory = "moderate"
	BehaviorUnknown      BehaviorCategory = "unknown"
)

// ClientProfile is the derived per-run behavioral view of a client.
// It owns no identity of its own and is fully recomputed every batch
// run; only GeneratedAt varies between runs on unchanged input.
type ClientProfile struct {
	Client

	Behavior          BehaviorCategory `json:"comportamento"`
	PurchasedProducts []string         `json:"historico_compras"`
	TransactionCount  int              `json:"total_transacoes"`
	TotalDeposited    float64          `json:"volume_total_aplicado"`
	InteractionCount  int              `json:"total_interacoes"`
	GeneratedAt       time.Time        `json:"gerado_em"`
}
