package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendProducts(t *testing.T) {
	tests := []struct {
		name   string
		status string
		net    float64
		want   []string
	}{
		{
			name:   "credit ready with positive cash flow",
			status: CreditReady, net: 50,
			want: []string{"Working Capital Loan", "Business Credit Card"},
		},
		{
			name:   "credit ready with zero cash flow",
			status: CreditReady, net: 0,
			want: []string{"Invoice Discounting"},
		},
		{
			name:   "credit ready with negative cash flow",
			status: CreditReady, net: -100,
			want: []string{"Invoice Discounting"},
		},
		{
			name:   "caution",
			status: CreditCaution, net: 500,
			want: []string{"Overdraft Facility"},
		},
		{
			name:   "high risk gets advisory text",
			status: CreditHighRisk, net: -100,
			want: []string{"Not eligible for credit currently. Focus on improving cash flow and reducing expenses."},
		},
		{
			name:   "unknown status treated as high risk",
			status: "Something Else", net: 1000,
			want: []string{"Not eligible for credit currently. Focus on improving cash flow and reducing expenses."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecommendProducts(tt.status, tt.net, 1000, 300)
			assert.Equal(t, tt.want, got, "product order is significant")
		})
	}
}

func TestRecommendProductsIgnoresExpenseRatio(t *testing.T) {
	// The ratio is computed but must not influence the branch yet.
	low := RecommendProducts(CreditReady, 50, 1000, 10)
	high := RecommendProducts(CreditReady, 50, 1000, 990)
	assert.Equal(t, low, high)
}

func TestRecommendProductsZeroRevenue(t *testing.T) {
	got := RecommendProducts(CreditCaution, 10, 0, 0)
	assert.Equal(t, []string{"Overdraft Facility"}, got)
}
