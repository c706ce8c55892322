package model

import "time"

// RiskProfile is the risk appetite a client declared at registration.
type RiskProfile string

const (
	RiskConservative RiskProfile = "Conservative"
	RiskModerate     RiskProfile = "Moderate"
	RiskAggressive   RiskProfile = "Aggressive"
)

// Investment objectives that carry scoring rules.
const (
	ObjectiveEmergencyReserve = "Emergency Reserve"
	ObjectiveRetirement       = "Retirement"
)

// Client mirrors one row of the "clientes" dataset.
type Client struct {
	ID                string      `json:"id_cliente"`
	Name              string      `json:"nome_cliente"`
	Age               int         `json:"idade"`
	MonthlyIncome     float64     `json:"renda_mensal_estimada"`
	NetWorth          float64     `json:"patrimonio_total_estimado"`
	RiskProfile       RiskProfile `json:"perfil_risco"`
	Objective         string      `json:"objetivo_investimento"`
	RegisteredAt      time.Time   `json:"data_cadastro"`
	LastInteractionAt time.Time   `json:"ultima_interacao"`
}
