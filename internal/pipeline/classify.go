// Package pipeline implements the classification-and-scoring chain for SME
// financial exports. Every stage is a pure function of its typed input;
// stages share nothing but the value types that connect them.
package pipeline

import "github.com/finsight-ai/sme-health/internal/table"

// DatasetKind is the shape a parsed table was classified as.
type DatasetKind string

const (
	MarketData   DatasetKind = "market_data"
	Ledger       DatasetKind = "ledger"
	SingleAmount DatasetKind = "single_amount"
	Unsupported  DatasetKind = "unsupported"
)

// Column alias tables, checked in fixed priority order:
// market data first, then dual-column ledgers, then single-amount lists.
var (
	marketColumns = []string{"open", "high", "low", "close"}
	ledgerColumns = []string{"debit", "credit"}
	amountAliases = []string{"amount", "value", "transaction_amount"}
)

// Classification is the classifier's result. AmountColumn is set only for
// SingleAmount tables and names the alias that matched. Columns always
// carries the table's full header so callers can explain a rejection.
type Classification struct {
	Kind         DatasetKind
	AmountColumn string
	Columns      []string
}

// Classify decides which dataset shape a table matches. Unsupported is a
// normal terminal outcome, not an error.
func Classify(t table.Table) Classification {
	c := Classification{Columns: t.Columns}

	if hasAll(t, marketColumns) {
		c.Kind = MarketData
		return c
	}
	if hasAll(t, ledgerColumns) {
		c.Kind = Ledger
		return c
	}
	for _, alias := range amountAliases {
		if t.Has(alias) {
			c.Kind = SingleAmount
			c.AmountColumn = alias
			return c
		}
	}
	c.Kind = Unsupported
	return c
}

func hasAll(t table.Table, cols []string) bool {
	for _, col := range cols {
		if !t.Has(col) {
			return false
		}
	}
	return true
}
