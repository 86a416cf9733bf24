package pipeline

// Credit tiers.
const (
	CreditReady    = "Credit Ready"
	CreditCaution  = "Caution"
	CreditHighRisk = "High Risk"
)

// CreditStatus pairs a tier with a human-readable reason.
type CreditStatus struct {
	Status string
	Reason string
}

// AssessCredit maps a health score and net cash flow to a credit tier.
// Thresholds are checked in this fixed order; first match wins.
func AssessCredit(score int, netCashflow float64) CreditStatus {
	if score >= 75 && netCashflow > 0 {
		return CreditStatus{
			Status: CreditReady,
			Reason: "Strong financial health and positive cash flow.",
		}
	}
	if score >= 50 {
		return CreditStatus{
			Status: CreditCaution,
			Reason: "Moderate financial health. Credit possible with conditions.",
		}
	}
	return CreditStatus{
		Status: CreditHighRisk,
		Reason: "Weak financial indicators or negative cash flow.",
	}
}
