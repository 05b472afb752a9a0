// Package httpapi exposes the form intake services over HTTP.
package httpapi

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	goahttp "goa.design/goa/v3/http"
	"goa.design/goa/v3/http/middleware"

	"formintake/internal/config"
	"formintake/internal/domain"
	"formintake/internal/metrics"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// Routes maps each submission path to its form.
var Routes = map[string]*domain.Form{
	"/submit-form":        domain.StudyForm,
	"/submit-work-form":   domain.WorkForm,
	"/submit-invest-form": domain.InvestForm,
}

// NewHandler mounts the submission, health and metrics endpoints and wraps
// them in the middleware chain.
func NewHandler(cfg *config.Config, log *zap.SugaredLogger, inquiries InquirySubmitter, health HealthChecker) http.Handler {
	mux := goahttp.NewMuxer()
	paths := []string{"/health", "/metrics"}

	for path, form := range Routes {
		mux.Handle(http.MethodPost, path, submitHandler(inquiries, form, log))
		paths = append(paths, path)
	}
	mux.Handle(http.MethodGet, "/health", healthHandler(health, log))
	mux.Handle(http.MethodGet, "/metrics", promhttp.Handler().ServeHTTP)

	var handler http.Handler = mux
	handler = metrics.PrometheusMiddleware(paths...)(handler)
	handler = requestLogging(log)(handler)
	handler = middleware.PopulateRequestContext()(handler)
	handler = middleware.RequestID()(handler)
	handler = corsAnyOrigin(&cfg.CORS)(handler)
	return securityHeaders(handler)
}

// NewServer creates the HTTP server with timeouts
func NewServer(cfg *config.AppConfig, handler http.Handler, log *zap.SugaredLogger) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		ErrorLog:     zap.NewStdLog(log.Desugar()),
	}
}
