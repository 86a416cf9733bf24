package app

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/finsight-ai/sme-health/internal/apierr"
	"github.com/finsight-ai/sme-health/internal/pipeline"
)

// Stage inputs mirror the previous stage's output structure, so an
// external orchestrator can call the chain stage by stage. Monetary
// fields are pointers: required-ness must not reject a legitimate zero.

type summaryRequest struct {
	TotalRevenue *float64 `json:"total_revenue" validate:"required"`
	TotalExpense *float64 `json:"total_expense" validate:"required"`
	NetCashflow  *float64 `json:"net_cashflow" validate:"required"`
	RiskFlags    []string `json:"risk_flags"`
}

type creditRequest struct {
	FinancialHealthScore *int     `json:"financial_health_score" validate:"required,min=0,max=100"`
	NetCashflow          *float64 `json:"net_cashflow" validate:"required"`
	RiskFlags            []string `json:"risk_flags"`
}

type productRequest struct {
	CreditStatus string   `json:"credit_status" validate:"required"`
	NetCashflow  *float64 `json:"net_cashflow" validate:"required"`
	TotalRevenue *float64 `json:"total_revenue" validate:"required"`
	TotalExpense *float64 `json:"total_expense" validate:"required"`
}

type insightsResponse struct {
	PlainEnglishSummary       string   `json:"plain_english_summary"`
	ActionableRecommendations []string `json:"actionable_recommendations"`
}

type healthScoreResponse struct {
	FinancialHealthScore int    `json:"financial_health_score"`
	Status               string `json:"status"`
}

type creditResponse struct {
	CreditStatus string `json:"credit_status"`
	Explanation  string `json:"explanation"`
}

type productsResponse struct {
	RecommendedProducts []string `json:"recommended_products"`
	Note                string   `json:"note"`
}

func (a *App) handleInsights(w http.ResponseWriter, r *http.Request) {
	a.Met.IncStage("ai_insights")
	sum, apiErr := a.bindSummary(r)
	if apiErr != nil {
		a.renderErr(w, r, apiErr)
		return
	}
	text, recs := pipeline.Narrate(sum)
	render.JSON(w, r, insightsResponse{
		PlainEnglishSummary:       text,
		ActionableRecommendations: recs,
	})
}

func (a *App) handleHealthScore(w http.ResponseWriter, r *http.Request) {
	a.Met.IncStage("health_score")
	sum, apiErr := a.bindSummary(r)
	if apiErr != nil {
		a.renderErr(w, r, apiErr)
		return
	}
	hs := pipeline.ScoreHealth(sum)
	render.JSON(w, r, healthScoreResponse{
		FinancialHealthScore: hs.Score,
		Status:               hs.Label,
	})
}

func (a *App) handleCreditworthiness(w http.ResponseWriter, r *http.Request) {
	a.Met.IncStage("creditworthiness")
	var in creditRequest
	if apiErr := a.bind(r, &in); apiErr != nil {
		a.renderErr(w, r, apiErr)
		return
	}
	if apiErr := finite("net_cashflow", *in.NetCashflow); apiErr != nil {
		a.renderErr(w, r, apiErr)
		return
	}
	cs := pipeline.AssessCredit(*in.FinancialHealthScore, *in.NetCashflow)
	render.JSON(w, r, creditResponse{
		CreditStatus: cs.Status,
		Explanation:  cs.Reason,
	})
}

func (a *App) handleProductRecommendation(w http.ResponseWriter, r *http.Request) {
	a.Met.IncStage("product_recommendation")
	var in productRequest
	if apiErr := a.bind(r, &in); apiErr != nil {
		a.renderErr(w, r, apiErr)
		return
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"net_cashflow", *in.NetCashflow},
		{"total_revenue", *in.TotalRevenue},
		{"total_expense", *in.TotalExpense},
	}
	for _, f := range fields {
		if apiErr := finite(f.name, f.v); apiErr != nil {
			a.renderErr(w, r, apiErr)
			return
		}
	}
	products := pipeline.RecommendProducts(in.CreditStatus, *in.NetCashflow, *in.TotalRevenue, *in.TotalExpense)
	render.JSON(w, r, productsResponse{
		RecommendedProducts: products,
		Note:                pipeline.RecommendationNote,
	})
}

// bind decodes the JSON body into dst and runs struct validation.
func (a *App) bind(r *http.Request, dst any) *apierr.Error {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		return apierr.BadRequest("INVALID_REQUEST", "invalid JSON body")
	}
	if err := a.validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// bindSummary decodes and validates the shared summary input structure,
// then converts it to the pipeline's value type. Unknown risk flag
// strings pass through untouched; consumers only check membership.
func (a *App) bindSummary(r *http.Request) (pipeline.Summary, *apierr.Error) {
	var in summaryRequest
	if apiErr := a.bind(r, &in); apiErr != nil {
		return pipeline.Summary{}, apiErr
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"total_revenue", *in.TotalRevenue},
		{"total_expense", *in.TotalExpense},
		{"net_cashflow", *in.NetCashflow},
	}
	for _, f := range fields {
		if apiErr := finite(f.name, f.v); apiErr != nil {
			return pipeline.Summary{}, apiErr
		}
	}
	flags := make([]pipeline.RiskFlag, 0, len(in.RiskFlags))
	for _, s := range in.RiskFlags {
		flags = append(flags, pipeline.RiskFlag(s))
	}
	return pipeline.Summary{
		TotalRevenue: *in.TotalRevenue,
		TotalExpense: *in.TotalExpense,
		NetCashflow:  *in.NetCashflow,
		RiskFlags:    flags,
	}, nil
}

func finite(field string, v float64) *apierr.Error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return apierr.Validation(field, "must be a finite number")
	}
	return nil
}

func validationError(err error) *apierr.Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apierr.Validation(fe.Field(), fmt.Sprintf("failed on rule %q", fe.Tag()))
	}
	return apierr.BadRequest("VALIDATION_FAILED", "Request validation failed")
}
