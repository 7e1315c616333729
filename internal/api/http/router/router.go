package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/agreement-server/internal/api/http/handler"
	"github.com/dtroode/agreement-server/internal/api/http/middleware"
	"github.com/dtroode/agreement-server/internal/logger"
	"github.com/dtroode/agreement-server/internal/metrics"
)

// Router represents the public HTTP router of the agreement server.
// It wires handlers to routes and configures the middleware chain.
type Router struct {
	agreements handler.AgreementService
	drafting   handler.DraftingService
	db         handler.Pinger
	metrics    *metrics.Metrics
	gatherer   prometheus.Gatherer
	logger     *logger.Logger
	maxBody    int64
}

// New creates a new HTTP Router. gatherer may be nil, in which case
// /metrics is not exposed.
func New(
	agreements handler.AgreementService,
	drafting handler.DraftingService,
	db handler.Pinger,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	logger *logger.Logger,
	maxBody int64,
) *Router {
	return &Router{
		agreements: agreements,
		drafting:   drafting,
		db:         db,
		metrics:    m,
		gatherer:   gatherer,
		logger:     logger,
		maxBody:    maxBody,
	}
}

// Register builds the handler tree.
func (r *Router) Register() http.Handler {
	mux := chi.NewRouter()
	mux.Use(
		chimw.RequestID,
		chimw.RealIP,
		middleware.NewLogging(r.logger, r.metrics).Handle,
		chimw.Recoverer,
	)

	r.registerPages(mux)
	r.registerVerification(mux)
	r.registerOps(mux)

	return mux
}

func (r *Router) registerPages(mux chi.Router) {
	templates := handler.NewTemplate(r.drafting, r.logger, r.maxBody)
	agreements := handler.NewAgreement(r.agreements, r.drafting, r.logger, r.maxBody)

	mux.Get("/", templates.Index)
	mux.Get("/templates", templates.List)
	mux.Get("/templates/{id}", templates.Get)
	mux.Post("/suggest-template", templates.Suggest)
	mux.Post("/analyze-text", templates.Analyze)

	mux.Get("/create", agreements.CreateForm)
	mux.Post("/create", agreements.Create)
	mux.Get("/sign/{id}", agreements.SignForm)
	mux.Post("/sign/{id}", agreements.Sign)
	mux.Get("/view/{id}", agreements.View)
	mux.Get("/download/{id}", agreements.Download)
}

func (r *Router) registerVerification(mux chi.Router) {
	agreements := handler.NewAgreement(r.agreements, r.drafting, r.logger, r.maxBody)

	mux.Route("/verify", func(v chi.Router) {
		v.Post("/scan", agreements.Scan)
		v.Get("/{code}", agreements.Verify)
		v.Post("/{code}/challenge", agreements.IssueChallenge)
	})
}

func (r *Router) registerOps(mux chi.Router) {
	health := handler.NewHealth(r.db, r.logger)
	mux.Get("/livez", health.Livez)
	mux.Get("/readyz", health.Readyz)

	if r.gatherer != nil {
		mux.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{}))
	}
}
