package routes

import (
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"tripplanr/itinerary"
	"tripplanr/ratelim"
	"tripplanr/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func AddHealthRoutes(router *httprouter.Router) {
	router.GET("/health", Index)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
}

func AddItineraryRoutes(router *httprouter.Router, h *itinerary.Handler, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/itinerary", rateLimiter.Limit(h.CreateItinerary)) //Generate an itinerary
	router.POST("/api/itinerary/pdf", rateLimiter.Limit(h.DownloadPDF)) //Itinerary as a PDF download
	router.POST("/api/plan", rateLimiter.Limit(h.CreatePlan))           //Itinerary, videos and attractions together
	router.GET("/api/videos", rateLimiter.Limit(h.GetVideos))           //Videos for a destination
	router.GET("/api/attractions", rateLimiter.Limit(h.GetAttractions)) //Attractions for a destination
}

// AddStaticRoutes serves the single page app from dir; unknown paths get
// index.html so client-side routing works. Unknown /api paths stay 404.
func AddStaticRoutes(router *httprouter.Router, dir string) {
	router.NotFound = SPAHandler(dir)
}

func SPAHandler(dir string) http.Handler {
	root := http.Dir(dir)
	files := http.FileServer(root)
	index := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
			utils.RespondWithError(w, http.StatusNotFound, "Not found")
			return
		}

		if f, err := root.Open(path.Clean(r.URL.Path)); err == nil {
			stat, serr := f.Stat()
			f.Close()
			if serr == nil && !stat.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
		}
		http.ServeFile(w, r, index)
	})
}
