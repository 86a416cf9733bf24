package app

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/render"

	"github.com/finsight-ai/sme-health/internal/apierr"
	"github.com/finsight-ai/sme-health/internal/pipeline"
	"github.com/finsight-ai/sme-health/internal/table"
)

// datasetSME is the wire dataset_type for both ledger and single-amount
// tables; the distinction only matters to the normalizer.
const datasetSME = "sme_financial"

const (
	marketDataMessage = "This file appears to be trading/market data (OHLC). " +
		"Financial health analysis is designed for SME cash flow, " +
		"bank statements, or expense data."
	marketDataSuggestion = "Please upload a bank statement, expense sheet, or " +
		"transaction CSV for financial health assessment."
	unsupportedMessage = "No financial amount columns found. " +
		"This platform supports SME financial data."
)

type summaryResponse struct {
	DatasetType  string   `json:"dataset_type"`
	TotalRevenue float64  `json:"total_revenue"`
	TotalExpense float64  `json:"total_expense"`
	NetCashflow  float64  `json:"net_cashflow"`
	RiskFlags    []string `json:"risk_flags"`
}

type marketDataResponse struct {
	DatasetType     string   `json:"dataset_type"`
	Message         string   `json:"message"`
	Suggestion      string   `json:"suggestion"`
	DetectedColumns []string `json:"detected_columns"`
}

type unsupportedResponse struct {
	DatasetType      string   `json:"dataset_type"`
	Message          string   `json:"message"`
	AvailableColumns []string `json:"available_columns"`
}

// handleUpload ingests a CSV export, classifies it and returns either the
// cash-flow summary or an informational non-SME response. MarketData and
// Unsupported are normal classifier branches and render as 200s.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	f, hdr, err := r.FormFile("file")
	if err != nil {
		a.renderErr(w, r, apierr.BadRequest("MISSING_FILE", `multipart field "file" is required`))
		return
	}
	defer f.Close()

	if !strings.EqualFold(filepath.Ext(hdr.Filename), ".csv") {
		a.renderErr(w, r, apierr.BadRequest("UNSUPPORTED_FILE_TYPE", "Only CSV files are supported"))
		return
	}

	tbl, err := table.ReadCSV(io.LimitReader(f, a.Cfg.Upload.MaxBytes))
	if err != nil {
		a.renderErr(w, r, apierr.BadRequest("INVALID_CSV", "could not parse CSV: "+err.Error()))
		return
	}

	cls := pipeline.Classify(tbl)
	switch cls.Kind {
	case pipeline.MarketData:
		a.Met.ObserveUpload(string(cls.Kind), 0, time.Since(start))
		render.JSON(w, r, marketDataResponse{
			DatasetType:     string(pipeline.MarketData),
			Message:         marketDataMessage,
			Suggestion:      marketDataSuggestion,
			DetectedColumns: columnList(cls.Columns),
		})
	case pipeline.Unsupported:
		a.Met.ObserveUpload(string(cls.Kind), 0, time.Since(start))
		render.JSON(w, r, unsupportedResponse{
			DatasetType:      string(pipeline.Unsupported),
			Message:          unsupportedMessage,
			AvailableColumns: columnList(cls.Columns),
		})
	default:
		txs := pipeline.Normalize(tbl, cls)
		sum := pipeline.Summarize(txs)
		a.Met.ObserveUpload(datasetSME, len(txs), time.Since(start))
		a.Log.Info("dataset summarized",
			slog.String("file", hdr.Filename),
			slog.String("kind", string(cls.Kind)),
			slog.Int("rows", len(txs)),
			slog.Int("risk_flags", len(sum.RiskFlags)))
		render.JSON(w, r, summaryResponse{
			DatasetType:  datasetSME,
			TotalRevenue: sum.TotalRevenue,
			TotalExpense: sum.TotalExpense,
			NetCashflow:  sum.NetCashflow,
			RiskFlags:    flagStrings(sum.RiskFlags),
		})
	}
}

func flagStrings(flags []pipeline.RiskFlag) []string {
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		out = append(out, string(f))
	}
	return out
}

func columnList(cols []string) []string {
	if cols == nil {
		return []string{}
	}
	return cols
}
