package pipeline

import "math"

// RiskFlag is a qualitative warning attached to a summary. The string
// values are the wire form; consumers check membership only, so unknown
// tags coming back over the API are tolerated.
type RiskFlag string

const (
	HighExpenseRatio RiskFlag = "High expense ratio"
	NegativeCashFlow RiskFlag = "Negative cash flow"
)

// Summary holds the aggregated cash-flow picture for one dataset.
// TotalExpense is stored as a non-negative magnitude.
type Summary struct {
	TotalRevenue float64
	TotalExpense float64
	NetCashflow  float64
	RiskFlags    []RiskFlag
}

// HasFlag reports membership; extra flags in RiskFlags are ignored.
func (s Summary) HasFlag(f RiskFlag) bool {
	for _, have := range s.RiskFlags {
		if have == f {
			return true
		}
	}
	return false
}

// ExpenseRatio is expense over revenue, 0 when there is no revenue.
func (s Summary) ExpenseRatio() float64 {
	if s.TotalRevenue > 0 {
		return s.TotalExpense / s.TotalRevenue
	}
	return 0
}

// Summarize aggregates signed transactions into a cash-flow summary.
//
// Expense is the magnitude of the sum of the negative amounts: summing
// signed values first and taking the absolute value afterwards keeps the
// result consistent with revenue accumulation if rounding order ever
// matters. Accumulation runs at full precision; the three monetary fields
// are rounded to 2 decimals only at this output boundary. An empty input
// yields an all-zero summary with no flags.
func Summarize(txs []Transaction) Summary {
	var revenue, negatives float64
	for _, tx := range txs {
		switch {
		case tx.Amount > 0:
			revenue += tx.Amount
		case tx.Amount < 0:
			negatives += tx.Amount
		}
	}
	expense := math.Abs(negatives)
	net := revenue - expense

	flags := []RiskFlag{}
	if expense > revenue*0.8 {
		flags = append(flags, HighExpenseRatio)
	}
	if net < 0 {
		flags = append(flags, NegativeCashFlow)
	}

	return Summary{
		TotalRevenue: round2(revenue),
		TotalExpense: round2(expense),
		NetCashflow:  round2(net),
		RiskFlags:    flags,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
