// itinerary.go
package itinerary

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"tripplanr/models"
	"tripplanr/utils"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

const (
	maxBodyBytes   = 1 << 16
	requestTimeout = 45 * time.Second

	// SourceHeader tells the client which tier produced the itinerary.
	SourceHeader = "X-Itinerary-Source"
)

// Planner produces trip content, falling back to templates when a provider
// cannot answer.
type Planner interface {
	Itinerary(ctx context.Context, req models.TripRequest, days int) (string, models.Source)
	Videos(ctx context.Context, destination string) ([]models.VideoCard, models.Source)
	Attractions(ctx context.Context, destination string) ([]models.AttractionCard, models.Source)
	Plan(ctx context.Context, req models.TripRequest, days int) models.PlanResponse
}

type Handler struct {
	planner Planner
	log     *zap.Logger
}

func NewHandler(p Planner, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{planner: p, log: log}
}

// decodeTrip reads and validates a trip request, writing a 400 on failure.
func (h *Handler) decodeTrip(w http.ResponseWriter, r *http.Request) (models.TripRequest, int, bool) {
	var req models.TripRequest
	if err := utils.DecodeJSON(w, r, maxBodyBytes, &req); err != nil {
		h.log.Debug("bad itinerary payload", zap.Error(err))
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return req, 0, false
	}

	days, err := Validate(req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			utils.RespondWithError(w, http.StatusBadRequest, verr.Error())
			return req, 0, false
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error validating request")
		return req, 0, false
	}
	return req, days, true
}

// POST /api/itinerary
func (h *Handler) CreateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, days, ok := h.decodeTrip(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	text, src := h.planner.Itinerary(ctx, req, days)
	h.log.Info("itinerary generated",
		zap.String("destination", req.Destination),
		zap.Int("days", days),
		zap.String("source", string(src)),
	)

	w.Header().Set(SourceHeader, string(src))
	utils.RespondWithJSON(w, http.StatusOK, models.ItineraryResponse{Message: text})
}

// POST /api/plan
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, days, ok := h.decodeTrip(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	plan := h.planner.Plan(ctx, req, days)
	w.Header().Set(SourceHeader, string(plan.Sources["itinerary"]))
	utils.RespondWithJSON(w, http.StatusOK, plan)
}

func destinationParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	destination := strings.TrimSpace(r.URL.Query().Get("destination"))
	if destination == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "destination is required")
		return "", false
	}
	return destination, true
}

// GET /api/videos?destination=
func (h *Handler) GetVideos(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	destination, ok := destinationParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	videos, src := h.planner.Videos(ctx, destination)
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"videos": videos,
		"source": src,
	})
}

// GET /api/attractions?destination=
func (h *Handler) GetAttractions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	destination, ok := destinationParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	attractions, src := h.planner.Attractions(ctx, destination)
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"attractions": attractions,
		"source":      src,
	})
}
