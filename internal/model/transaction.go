package model

import "time"

// TransactionKind distinguishes money entering or leaving a product.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "Deposit"
	KindWithdrawal TransactionKind = "Withdrawal"
)

// TransactionStatus marks settlement state.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "Completed"
	StatusPending   TransactionStatus = "Pending"
)

// Transaction mirrors one row of the "transacoes" dataset.
type Transaction struct {
	ID        string            `json:"id_transacao"`
	ClientID  string            `json:"id_cliente"`
	ProductID string            `json:"id_produto"`
	Kind      TransactionKind   `json:"tipo_transacao"`
	Amount    float64           `json:"valor_transacao"`
	Date      time.Time         `json:"data_transacao"`
	Status    TransactionStatus `json:"status_transacao"`
}

// IsCompletedDeposit reports whether the transaction counts toward
// purchase history and invested-volume statistics.
func (t *Transaction) IsCompletedDeposit() bool {
	return t.Kind == KindDeposit && t.Status == StatusCompleted
}
