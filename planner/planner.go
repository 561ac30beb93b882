package planner

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"tripplanr/itinerary"
	"tripplanr/mockdata"
	"tripplanr/models"
	"tripplanr/providers/gemini"
	"tripplanr/telemetry"
)

const (
	videoLimit      = 3
	attractionLimit = 5
	publishTimeout  = 2 * time.Second
)

type ItineraryProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type VideoProvider interface {
	SearchTravelVideos(ctx context.Context, destination string, limit int) ([]models.VideoCard, error)
}

type AttractionProvider interface {
	Attractions(ctx context.Context, destination string, limit int) ([]models.AttractionCard, error)
}

// Options wires the optional real providers. A nil provider means that
// content always comes from the template tier.
type Options struct {
	Itineraries ItineraryProvider
	Videos      VideoProvider
	Attractions AttractionProvider
	Events      telemetry.Publisher
	Logger      *zap.Logger
}

// Planner tries the configured provider first and substitutes template
// content when it is missing or fails.
type Planner struct {
	itineraries ItineraryProvider
	videos      VideoProvider
	attractions AttractionProvider
	events      telemetry.Publisher
	log         *zap.Logger
}

func New(opts Options) *Planner {
	p := &Planner{
		itineraries: opts.Itineraries,
		videos:      opts.Videos,
		attractions: opts.Attractions,
		events:      opts.Events,
		log:         opts.Logger,
	}
	if p.events == nil {
		p.events = telemetry.NopPublisher{}
	}
	if p.log == nil {
		p.log = zap.NewNop()
	}
	return p
}

// Itinerary returns markdown for an already validated request.
func (p *Planner) Itinerary(ctx context.Context, req models.TripRequest, days int) (string, models.Source) {
	if p.itineraries != nil {
		start := time.Now()
		text, err := p.itineraries.Generate(ctx, gemini.ItineraryPrompt(req, days))
		p.observe(models.SourceGemini, start, err)
		if err == nil {
			return text, models.SourceGemini
		}
		p.fallback(ctx, models.SourceGemini, "itinerary", req.Destination, err)
	}
	return itinerary.Generate(req.Destination, days, req.Budget), models.SourceTemplate
}

func (p *Planner) Videos(ctx context.Context, destination string) ([]models.VideoCard, models.Source) {
	if p.videos != nil {
		start := time.Now()
		videos, err := p.videos.SearchTravelVideos(ctx, destination, videoLimit)
		p.observe(models.SourceYouTube, start, err)
		if err == nil {
			return videos, models.SourceYouTube
		}
		p.fallback(ctx, models.SourceYouTube, "videos", destination, err)
	}
	return mockdata.ListVideos(destination), models.SourceTemplate
}

func (p *Planner) Attractions(ctx context.Context, destination string) ([]models.AttractionCard, models.Source) {
	if p.attractions != nil {
		start := time.Now()
		places, err := p.attractions.Attractions(ctx, destination, attractionLimit)
		p.observe(models.SourceOpenTripMap, start, err)
		if err == nil {
			return places, models.SourceOpenTripMap
		}
		p.fallback(ctx, models.SourceOpenTripMap, "attractions", destination, err)
	}
	return mockdata.ListAttractions(destination), models.SourceTemplate
}

// Plan produces itinerary, videos and attractions concurrently. Each part is
// settled independently; one slow or failing provider never blocks the
// others from being returned.
func (p *Planner) Plan(ctx context.Context, req models.TripRequest, days int) models.PlanResponse {
	var (
		wg   sync.WaitGroup
		resp models.PlanResponse
		srcs [3]models.Source
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		resp.Itinerary, srcs[0] = p.Itinerary(ctx, req, days)
	}()
	go func() {
		defer wg.Done()
		resp.Videos, srcs[1] = p.Videos(ctx, req.Destination)
	}()
	go func() {
		defer wg.Done()
		resp.Attractions, srcs[2] = p.Attractions(ctx, req.Destination)
	}()
	wg.Wait()

	resp.Sources = map[string]models.Source{
		"itinerary":   srcs[0],
		"videos":      srcs[1],
		"attractions": srcs[2],
	}
	return resp
}

func (p *Planner) observe(provider models.Source, start time.Time, err error) {
	telemetry.ProviderLatency.WithLabelValues(string(provider)).Observe(time.Since(start).Seconds())
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	telemetry.ProviderRequests.WithLabelValues(string(provider), outcome).Inc()
}

func (p *Planner) fallback(ctx context.Context, provider models.Source, op, destination string, err error) {
	telemetry.Fallbacks.WithLabelValues(string(provider)).Inc()
	p.log.Warn("provider failed, serving template content",
		zap.String("provider", string(provider)),
		zap.String("operation", op),
		zap.String("destination", destination),
		zap.Error(err),
	)

	// the request may already be cancelled; the event should still go out
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	ev := telemetry.ProviderEvent{
		Provider:    string(provider),
		Operation:   op,
		Destination: destination,
		Error:       err.Error(),
		FallbackTo:  string(models.SourceTemplate),
		At:          time.Now().UTC(),
	}
	if perr := p.events.Publish(pubCtx, ev); perr != nil {
		p.log.Warn("could not publish provider event", zap.Error(perr))
	}
}
