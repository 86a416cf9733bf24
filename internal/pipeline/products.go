package pipeline

// RecommendationNote accompanies every product recommendation response.
const RecommendationNote = "Recommendations are indicative and based on financial indicators."

const notEligible = "Not eligible for credit currently. Focus on improving cash flow and reducing expenses."

// RecommendProducts suggests financial products for a credit tier.
// Order is significant: the primary recommendation comes first. High-risk
// businesses get a single advisory string instead of a product name.
func RecommendProducts(creditStatus string, netCashflow, totalRevenue, totalExpense float64) []string {
	// The expense ratio does not take part in eligibility yet; it is
	// computed here so future product thresholds can branch on it.
	ratio := 0.0
	if totalRevenue > 0 {
		ratio = totalExpense / totalRevenue
	}
	_ = ratio

	switch creditStatus {
	case CreditReady:
		if netCashflow > 0 {
			return []string{"Working Capital Loan", "Business Credit Card"}
		}
		return []string{"Invoice Discounting"}
	case CreditCaution:
		return []string{"Overdraft Facility"}
	default:
		return []string{notEligible}
	}
}
