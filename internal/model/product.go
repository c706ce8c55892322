package model

// RiskTier is the risk classification of a product.
type RiskTier string

const (
	TierLow    RiskTier = "Low"
	TierMedium RiskTier = "Medium"
	TierHigh   RiskTier = "High"
)

// ProductStatus gates whether a product may be recommended.
type ProductStatus string

const (
	ProductActive   ProductStatus = "Active"
	ProductInactive ProductStatus = "Inactive"
)

// LiquiditySameDay is the liquidity class for same-day redemption.
const LiquiditySameDay = "D+0"

// CategoryPrivatePension is the product category matched by the
// retirement scoring rule.
const CategoryPrivatePension = "Private Pension"

// Product mirrors one row of the "produtos" dataset. Return rates and
// the management fee are percentage points (12.0 means 12%).
type Product struct {
	ID            string        `json:"id_produto"`
	Name          string        `json:"nome_produto"`
	Category      string        `json:"tipo_produto"`
	RiskTier      RiskTier      `json:"risco_associado"`
	Return12m     float64       `json:"rentabilidade_historica_12m"`
	Return36m     float64       `json:"rentabilidade_historica_36m"`
	ManagementFee float64       `json:"taxa_administracao"`
	MinInvestment float64       `json:"aplicacao_minima"`
	Liquidity     string        `json:"liquidez"`
	Status        ProductStatus `json:"status_produto"`
}

// IsActive reports whether the product is eligible for recommendation.
func (p *Product) IsActive() bool {
	return p.Status == ProductActive
}
