package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finsight-ai/sme-health/internal/table"
)

func txs(vals ...float64) []Transaction {
	out := make([]Transaction, len(vals))
	for i, v := range vals {
		out[i] = Transaction{Amount: v}
	}
	return out
}

func TestSummarizeLedgerScenario(t *testing.T) {
	// [{debit:0,credit:1000}, {debit:300,credit:0}] -> amounts [1000, -300]
	sum := Summarize(txs(1000, -300))

	assert.Equal(t, 1000.00, sum.TotalRevenue)
	assert.Equal(t, 300.00, sum.TotalExpense)
	assert.Equal(t, 700.00, sum.NetCashflow)
	assert.Empty(t, sum.RiskFlags)
}

func TestSummarizeHighExpenseRatio(t *testing.T) {
	sum := Summarize(txs(1000, -900))

	assert.Equal(t, 100.00, sum.NetCashflow)
	assert.Equal(t, []RiskFlag{HighExpenseRatio}, sum.RiskFlags)
	assert.False(t, sum.HasFlag(NegativeCashFlow))
}

func TestSummarizeBothFlags(t *testing.T) {
	sum := Summarize(txs(100, -500))

	assert.True(t, sum.HasFlag(HighExpenseRatio))
	assert.True(t, sum.HasFlag(NegativeCashFlow))
	assert.Equal(t, -400.00, sum.NetCashflow)
}

func TestSummarizeZeroRevenueWithExpense(t *testing.T) {
	// 0.8 * 0 = 0, so any expense trips the ratio flag.
	sum := Summarize(txs(-42))

	assert.Equal(t, 0.00, sum.TotalRevenue)
	assert.Equal(t, 42.00, sum.TotalExpense)
	assert.True(t, sum.HasFlag(HighExpenseRatio))
	assert.True(t, sum.HasFlag(NegativeCashFlow))
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)

	assert.Equal(t, 0.00, sum.TotalRevenue)
	assert.Equal(t, 0.00, sum.TotalExpense)
	assert.Equal(t, 0.00, sum.NetCashflow)
	assert.Empty(t, sum.RiskFlags)
	assert.NotNil(t, sum.RiskFlags, "no flags must serialize as [] not null")
}

func TestSummarizeZeroAmountsIgnored(t *testing.T) {
	// Coerced cells contribute 0 to both sides.
	sum := Summarize(txs(0, 0, 100, 0, -40))
	assert.Equal(t, 100.00, sum.TotalRevenue)
	assert.Equal(t, 40.00, sum.TotalExpense)
}

func TestSummarizeNetIdentity(t *testing.T) {
	cases := [][]float64{
		{1000, -300},
		{0.1, 0.2, -0.3},
		{},
		{-5000},
		{123.45, -67.89, 1000.01, -0.01},
	}
	for _, vals := range cases {
		sum := Summarize(txs(vals...))
		assert.InDelta(t, sum.TotalRevenue-sum.TotalExpense, sum.NetCashflow, 1e-9,
			"revenue - expense must equal net for %v", vals)
	}
}

func TestSummarizeRoundsToTwoDecimals(t *testing.T) {
	sum := Summarize(txs(10.008, -3.3333))
	assert.Equal(t, 10.01, sum.TotalRevenue)
	assert.Equal(t, 3.33, sum.TotalExpense)
	assert.Equal(t, 6.67, sum.NetCashflow)
}

func TestPipelineIdempotent(t *testing.T) {
	tb := table.Table{
		Columns: []string{"debit", "credit"},
		Rows: []table.Row{
			{"debit": "0", "credit": "1000"},
			{"debit": "300", "credit": "0"},
		},
	}
	first := Summarize(Normalize(tb, Classify(tb)))
	second := Summarize(Normalize(tb, Classify(tb)))
	assert.Equal(t, first, second)
}
