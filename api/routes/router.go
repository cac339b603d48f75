package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zimbwa-construction/quotes-backend/api/controllers"
	"github.com/zimbwa-construction/quotes-backend/api/middleware"
	"github.com/zimbwa-construction/quotes-backend/internal/quotes"
	"github.com/zimbwa-construction/quotes-backend/pkg/config"
	"github.com/zimbwa-construction/quotes-backend/pkg/db"
	"github.com/zimbwa-construction/quotes-backend/pkg/logger"
	"github.com/zimbwa-construction/quotes-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	m *metrics.Metrics,
	quoteService quotes.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		m.Middleware,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/quotes", func(r chi.Router) {
		r.Post("/", controllers.SubmitQuote(quoteService, logg))
		r.Get("/", controllers.ListQuotes(quoteService, logg))
		r.Get("/{quoteId}", controllers.GetQuote(quoteService, logg))
	})

	return r
}
