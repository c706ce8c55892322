package loader

import (
	"fmt"
	"strconv"
	"time"

	"InvestAdvisor/internal/model"
)

// Timestamp layouts accepted in the data lake, most specific first.
var timeLayouts = []string{"2006-01-02 15:04:05", "2006-01-02"}

func fieldFloat(rec Record, key string) (float64, error) {
	v := rec[key]
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: invalid float %q", key, v)
	}
	return f, nil
}

func fieldInt(rec Record, key string) (int, error) {
	v := rec[key]
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("field %s: invalid int %q", key, v)
	}
	return n, nil
}

// fieldTime is lenient: unparseable timestamps degrade to the zero
// time rather than failing the dataset. Only numeric coercion is
// strict.
func fieldTime(rec Record, key string) time.Time {
	v := rec[key]
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func decodeClients(recs []Record) ([]model.Client, error) {
	clients := make([]model.Client, 0, len(recs))
	for i, rec := range recs {
		age, err := fieldInt(rec, "idade")
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		income, err := fieldFloat(rec, "renda_mensal_estimada")
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		netWorth, err := fieldFloat(rec, "patrimonio_total_estimado")
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		clients = append(clients, model.Client{
			ID:                rec["id_cliente"],
			Name:              rec["nome_cliente"],
			Age:               age,
			MonthlyIncome:     income,
			NetWorth:          netWorth,
			RiskProfile:       model.RiskProfile(rec["perfil_risco"]),
			Objective:         rec["objetivo_investimento"],
			RegisteredAt:      fieldTime(rec, "data_cadastro"),
			LastInteractionAt: fieldTime(rec, "ultima_interacao"),
		})
	}
	return clients, nil
}

func decodeProducts(recs []Record) ([]model.Product, error) {
	products := make([]model.Product, 0, len(recs))
	for i, rec := range recs {
		r12, err := fieldFloat(rec, "rentabilidade_historica_12m")
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		r36, err := fieldFloat(rec, "rentabilidade_historica_36m")
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		fee, err := fieldFloat(rec, "taxa_administracao")
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		min, err := fieldFloat(rec, "aplicacao_minima")
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		products = append(products, model.Product{
			ID:            rec["id_produto"],
			Name:          rec["nome_produto"],
			Category:      rec["tipo_produto"],
			RiskTier:      model.RiskTier(rec["risco_associado"]),
			Return12m:     r12,
			Return36m:     r36,
			ManagementFee: fee,
			MinInvestment: min,
			Liquidity:     rec["liquidez"],
			Status:        model.ProductStatus(rec["status_produto"]),
		})
	}
	return products, nil
}

func decodeTransactions(recs []Record) ([]model.Transaction, error) {
	txs := make([]model.Transaction, 0, len(recs))
	for i, rec := range recs {
		amount, err := fieldFloat(rec, "valor_transacao")
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		txs = append(txs, model.Transaction{
			ID:        rec["id_transacao"],
			ClientID:  rec["id_cliente"],
			ProductID: rec["id_produto"],
			Kind:      model.TransactionKind(rec["tipo_transacao"]),
			Amount:    amount,
			Date:      fieldTime(rec, "data_transacao"),
			Status:    model.TransactionStatus(rec["status_transacao"]),
		})
	}
	return txs, nil
}

func decodeInteractions(recs []Record) ([]model.Interaction, error) {
	inters := make([]model.Interaction, 0, len(recs))
	for i, rec := range recs {
		duration, err := fieldInt(rec, "duracao_interacao_segundos")
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		inters = append(inters, model.Interaction{
			ID:              rec["id_interacao"],
			ClientID:        rec["id_cliente"],
			ProductID:       rec["id_produto"],
			Kind:            rec["tipo_interacao"],
			Date:            fieldTime(rec, "data_interacao"),
			DurationSeconds: duration,
			SearchTerm:      rec["termo_pesquisa"],
		})
	}
	return inters, nil
}

func decodeMarket(recs []Record) ([]model.MarketRecord, error) {
	rows := make([]model.MarketRecord, 0, len(recs))
	for i, rec := range recs {
		index, err := fieldFloat(rec, "valor_indice")
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		selic, err := fieldFloat(rec, "taxa_selic")
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		dollar, err := fieldFloat(rec, "cotacao_dolar")
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		rows = append(rows, model.MarketRecord{
			Date:       fieldTime(rec, "data"),
			IndexName:  rec["nome_indice"],
			IndexValue: index,
			SelicRate:  selic,
			DollarRate: dollar,
		})
	}
	return rows, nil
}
