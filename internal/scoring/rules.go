package scoring

import "InvestAdvisor/internal/model"

// scoreInput bundles one (client, product) pair with the history
// signals the rules need, precomputed once per pair.
type scoreInput struct {
	Client  model.Client
	Product model.Product

	// Completed deposits by this client into this exact product.
	ProductDeposits int
	// Whether the client has any interaction referencing this product,
	// and whether any such interaction lasted over 120 seconds.
	Interacted      bool
	LongInteraction bool
}

func newScoreInput(client model.Client, product model.Product, txs []model.Transaction, inters []model.Interaction) *scoreInput {
	in := &scoreInput{Client: client, Product: product}
	for _, t := range txs {
		if t.ClientID == client.ID && t.ProductID == product.ID && t.IsCompletedDeposit() {
			in.ProductDeposits++
		}
	}
	for _, i := range inters {
		if i.ClientID == client.ID && i.ProductID != "" && i.ProductID == product.ID {
			in.Interacted = true
			if i.DurationSeconds > 120 {
				in.LongInteraction = true
			}
		}
	}
	return in
}

// Rationale clause texts and their fixed output order.
const (
	reasonRiskMatch     = "risk profile match"
	reasonGoodReturn    = "good historical return"
	reasonLowFee        = "low management fee"
	reasonEmergencyFit  = "high liquidity for emergency reserve"
	reasonRetirementFit = "suited for retirement planning"
	reasonAccessible    = "accessible minimum investment"

	// ReasonFallback is used when no rationale clause fired.
	ReasonFallback = "suitable for your profile"
)

const (
	rankRiskMatch = iota
	rankGoodReturn
	rankLowFee
	rankEmergencyFit
	rankRetirementFit
	rankAccessible
	rankNone = -1
)

// rule is one additive scoring adjustment. applies gates the weight;
// reason (when non-empty) is the rationale clause emitted at
// rationaleRank. clauseApplies overrides the clause condition for the
// one rule whose rationale is the complement of its penalty (the
// management fee); when nil the clause fires together with the weight.
type rule struct {
	name          string
	weight        float64
	applies       func(*scoreInput) bool
	reason        string
	rationaleRank int
	clauseApplies func(*scoreInput) bool
}

// baseScore is the starting score before any adjustment.
const baseScore = 0.5

// rules is the ordered adjustment table. Order matches the source
// algorithm for debuggability; all terms are additive, so it does not
// change the final value.
var rules = []rule{
	{
		name:          "conservative client, low-risk product",
		weight:        0.30,
		applies:       riskMatch(model.RiskConservative, model.TierLow),
		reason:        reasonRiskMatch,
		rationaleRank: rankRiskMatch,
	},
	{
		name:          "moderate client, medium-risk product",
		weight:        0.25,
		applies:       riskMatch(model.RiskModerate, model.TierMedium),
		reason:        reasonRiskMatch,
		rationaleRank: rankRiskMatch,
	},
	{
		name:          "aggressive client, high-risk product",
		weight:        0.20,
		applies:       riskMatch(model.RiskAggressive, model.TierHigh),
		reason:        reasonRiskMatch,
		rationaleRank: rankRiskMatch,
	},
	{
		name:          "strong 12-month return",
		weight:        0.10,
		applies:       func(in *scoreInput) bool { return in.Product.Return12m > 10.0 },
		reason:        reasonGoodReturn,
		rationaleRank: rankGoodReturn,
	},
	{
		name:          "high management fee",
		weight:        -0.10,
		applies:       func(in *scoreInput) bool { return in.Product.ManagementFee > 2.0 },
		reason:        reasonLowFee,
		rationaleRank: rankLowFee,
		clauseApplies: func(in *scoreInput) bool { return in.Product.ManagementFee <= 2.0 },
	},
	{
		name:          "strong 36-month return",
		weight:        0.05,
		applies:       func(in *scoreInput) bool { return in.Product.Return36m > 8.0 },
		rationaleRank: rankNone,
	},
	{
		name:   "accessible minimum investment",
		weight: 0.10,
		applies: func(in *scoreInput) bool {
			// Skip entirely when net worth is zero or unknown.
			return in.Client.NetWorth > 0 && in.Product.MinInvestment < in.Client.NetWorth*0.05
		},
		reason:        reasonAccessible,
		rationaleRank: rankAccessible,
	},
	{
		name:          "over-concentration in product",
		weight:        -0.20,
		applies:       func(in *scoreInput) bool { return in.ProductDeposits > 2 },
		rationaleRank: rankNone,
	},
	{
		name:          "interacted with product",
		weight:        0.15,
		applies:       func(in *scoreInput) bool { return in.Interacted },
		rationaleRank: rankNone,
	},
	{
		name:          "long interaction with product",
		weight:        0.05,
		applies:       func(in *scoreInput) bool { return in.LongInteraction },
		rationaleRank: rankNone,
	},
	{
		name:   "emergency reserve liquidity fit",
		weight: 0.20,
		applies: func(in *scoreInput) bool {
			return in.Client.Objective == model.ObjectiveEmergencyReserve && in.Product.Liquidity == model.LiquiditySameDay
		},
		reason:        reasonEmergencyFit,
		rationaleRank: rankEmergencyFit,
	},
	{
		name:   "retirement pension fit",
		weight: 0.25,
		applies: func(in *scoreInput) bool {
			return in.Client.Objective == model.ObjectiveRetirement && in.Product.Category == model.CategoryPrivatePension
		},
		reason:        reasonRetirementFit,
		rationaleRank: rankRetirementFit,
	},
}

func riskMatch(rp model.RiskProfile, tier model.RiskTier) func(*scoreInput) bool {
	return func(in *scoreInput) bool {
		return in.Client.RiskProfile == rp && in.Product.RiskTier == tier
	}
}
