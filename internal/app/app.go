package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finsight-ai/sme-health/internal/apierr"
	"github.com/finsight-ai/sme-health/internal/config"
	"github.com/finsight-ai/sme-health/internal/metrics"
)

type App struct {
	Cfg config.Config
	Log *slog.Logger
	Met *metrics.Collector

	validate *validator.Validate
}

func New(cfg config.Config, log *slog.Logger, met *metrics.Collector) *App {
	v := validator.New()
	// Report json field names in validation errors, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &App{
		Cfg:      cfg,
		Log:      log.With(slog.String("component", "app")),
		Met:      met,
		validate: v,
	}
}

func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", a.handleRoot)
	r.Post("/upload", a.handleUpload)

	// Assessment stages, independently callable: each accepts the
	// previous stage's output structure as its input.
	r.Post("/ai-insights", a.handleInsights)
	r.Post("/health-score", a.handleHealthScore)
	r.Post("/creditworthiness", a.handleCreditworthiness)
	r.Post("/product-recommendation", a.handleProductRecommendation)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

type rootResponse struct {
	Message string `json:"message"`
}

func (a *App) handleRoot(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, rootResponse{Message: "SME Financial Health AI Backend is running"})
}

func (a *App) renderErr(w http.ResponseWriter, r *http.Request, e *apierr.Error) {
	_ = render.Render(w, r, e)
}

func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	met := metrics.New()
	met.Register(prometheus.DefaultRegisterer)
	a := New(cfg, log, met)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      a.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		cctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(cctx)
	}()

	log.Info("listening", slog.String("addr", cfg.Server.Addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
