package pipeline

// Health labels, keyed off the numeric score.
const (
	LabelHealthy  = "Healthy"
	LabelModerate = "Moderate"
	LabelAtRisk   = "At Risk"
)

// HealthScore is a 0–100 score with its tier label.
type HealthScore struct {
	Score int
	Label string
}

// ScoreHealth derives a health score from a cash-flow summary.
//
// Deductions are additive: −40 for negative net cash flow, −30 or −15 for
// the expense-ratio band (exclusive, first match wins), and −20 when the
// NegativeCashFlow flag is present. The flag deduction stacks with the
// −40 because the flag is derived from the same condition; that double
// penalty is kept as-is pending a ruling from the scoring owners.
func ScoreHealth(s Summary) HealthScore {
	score := 100

	if s.NetCashflow < 0 {
		score -= 40
	}

	ratio := s.ExpenseRatio()
	if ratio > 0.8 {
		score -= 30
	} else if ratio > 0.6 {
		score -= 15
	}

	if s.HasFlag(NegativeCashFlow) {
		score -= 20
	}

	if score < 0 {
		score = 0
	}

	label := LabelAtRisk
	switch {
	case score >= 80:
		label = LabelHealthy
	case score >= 50:
		label = LabelModerate
	}

	return HealthScore{Score: score, Label: label}
}
