package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tripplanr/itinerary"
	"tripplanr/planner"
	"tripplanr/ratelim"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *httprouter.Router {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<div id=root></div>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	router := httprouter.New()
	AddHealthRoutes(router)
	AddItineraryRoutes(router, itinerary.NewHandler(planner.New(planner.Options{}), nil), ratelim.NewRateLimiter(100, 100, true))
	AddStaticRoutes(router, dir)
	return router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestHealthAndMetrics(t *testing.T) {
	router := newRouter(t)

	rec := serve(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "200", rec.Body.String())

	rec = serve(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestItineraryEndToEnd(t *testing.T) {
	rec := serve(newRouter(t), http.MethodPost, "/api/itinerary",
		`{"destination":"Goa","startDate":"2024-01-01","endDate":"2024-01-05","budget":25000}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "template", rec.Header().Get(itinerary.SourceHeader))
	assert.Contains(t, rec.Body.String(), `"message":"# Goa Travel Itinerary`)
	assert.Contains(t, rec.Body.String(), "## Day 5")
}

func TestSPAFallback(t *testing.T) {
	router := newRouter(t)

	rec := serve(router, http.MethodGet, "/assets/app.js", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())

	for _, path := range []string{"/", "/trip/result", "/assets/missing.js"} {
		rec = serve(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "id=root", path)
	}

	rec = serve(router, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}
