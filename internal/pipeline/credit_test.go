package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessCredit(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		net        float64
		wantStatus string
	}{
		{"high score positive net", 80, 50, CreditReady},
		{"threshold score positive net", 75, 0.01, CreditReady},
		{"high score but zero net", 90, 0, CreditCaution},
		{"high score negative net", 90, -10, CreditCaution},
		{"moderate score", 50, 1000, CreditCaution},
		{"low score", 49, 1000, CreditHighRisk},
		{"zero score negative net", 0, -500, CreditHighRisk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessCredit(tt.score, tt.net)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestAssessCreditReasons(t *testing.T) {
	assert.Equal(t, "Strong financial health and positive cash flow.", AssessCredit(80, 50).Reason)
	assert.Equal(t, "Moderate financial health. Credit possible with conditions.", AssessCredit(60, -1).Reason)
	assert.Equal(t, "Weak financial indicators or negative cash flow.", AssessCredit(10, -1).Reason)
}
