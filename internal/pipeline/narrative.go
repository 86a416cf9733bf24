package pipeline

import "strings"

const (
	positiveCashflowText = "Your business is generating positive cash flow, which is a good sign."
	negativeCashflowText = "Your business is facing negative cash flow. Immediate attention is required."
	highExpenseText      = "Expenses are consuming a large portion of revenue. Cost optimization is recommended."
)

// advisoryList is static: the same three recommendations regardless of
// input. It is intentionally not derived from the data.
var advisoryList = []string{
	"Review recurring expenses and identify non-essential costs.",
	"Negotiate better payment terms with suppliers.",
	"Improve customer payment collection timelines.",
}

// Narrate renders a summary as a plain-language paragraph plus a fixed
// list of advisory recommendations. The cash-flow sentence always comes
// first; the cost-optimization sentence is appended only when the
// HighExpenseRatio flag is present.
func Narrate(s Summary) (string, []string) {
	sentences := []string{positiveCashflowText}
	if s.NetCashflow <= 0 {
		sentences[0] = negativeCashflowText
	}
	if s.HasFlag(HighExpenseRatio) {
		sentences = append(sentences, highExpenseText)
	}

	recs := make([]string, len(advisoryList))
	copy(recs, advisoryList)
	return strings.Join(sentences, " "), recs
}
