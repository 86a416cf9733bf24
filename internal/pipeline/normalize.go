package pipeline

import (
	"math"
	"strconv"
	"strings"

	"github.com/finsight-ai/sme-health/internal/table"
)

// Transaction is a row reduced to one signed amount.
// Positive is inflow/revenue, negative is outflow/expense.
type Transaction struct {
	Amount float64
}

// Normalize turns a classified table into signed transactions.
//
// Ledger rows become credit − debit; single-amount rows carry the matched
// column's value directly, no sign inversion. Cells that don't parse as a
// number become 0.0 rather than dropping the row: skipping rows would
// change the aggregate totals, coercing keeps them stable.
//
// MarketData and Unsupported tables never reach this stage; callers
// short-circuit on the classification first.
func Normalize(t table.Table, c Classification) []Transaction {
	txs := make([]Transaction, 0, len(t.Rows))
	switch c.Kind {
	case Ledger:
		for _, row := range t.Rows {
			debit := coerceFloat(row["debit"])
			credit := coerceFloat(row["credit"])
			txs = append(txs, Transaction{Amount: credit - debit})
		}
	case SingleAmount:
		for _, row := range t.Rows {
			txs = append(txs, Transaction{Amount: coerceFloat(row[c.AmountColumn])})
		}
	}
	return txs
}

// coerceFloat parses a cell as a decimal number; anything unparsable,
// empty, or non-finite is exactly 0.0.
func coerceFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
