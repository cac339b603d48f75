package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zimbwa-construction/quotes-backend/internal/quotes"
	"github.com/zimbwa-construction/quotes-backend/pkg/config"
	"github.com/zimbwa-construction/quotes-backend/pkg/logger"
	"github.com/zimbwa-construction/quotes-backend/pkg/metrics"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

type stubService struct {
	list []quotes.QuoteDTO
}

func (s stubService) Submit(context.Context, quotes.ClientFields, []quotes.ServiceLine) (*quotes.SubmitResult, error) {
	return &quotes.SubmitResult{QuoteNumber: "LZQ-001", Message: "Quote LZQ-001 created successfully"}, nil
}

func (s stubService) Get(context.Context, uint) (*quotes.QuoteDetailDTO, error) {
	return &quotes.QuoteDetailDTO{}, nil
}

func (s stubService) List(context.Context) ([]quotes.QuoteDTO, error) {
	return s.list, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "dev"
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	return NewRouter(cfg, logg, stubPinger{}, metrics.New(), stubService{
		list: []quotes.QuoteDTO{{ID: 1, QuoteNumber: "LZQ-001"}},
	})
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "dev", rec.Header().Get("X-LZQ-Env"), path)
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestRouterQuoteRoutes(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/quotes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list []quotes.QuoteDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "LZQ-001", list[0].QuoteNumber)
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
