package planner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tripplanr/itinerary"
	"tripplanr/mockdata"
	"tripplanr/models"
	"tripplanr/telemetry"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItineraries struct {
	text   string
	err    error
	prompt string
}

func (f *fakeItineraries) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

type fakeVideos struct {
	err   error
	delay time.Duration
}

func (f *fakeVideos) SearchTravelVideos(ctx context.Context, d string, limit int) ([]models.VideoCard, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, f.err
	}
	return []models.VideoCard{{ID: "yt1", Title: d + " vlog", URL: "https://www.youtube.com/watch?v=yt1"}}, nil
}

type fakeAttractions struct{ err error }

func (f *fakeAttractions) Attractions(_ context.Context, d string, limit int) ([]models.AttractionCard, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.AttractionCard{{Name: d + " Fort"}}, nil
}

type recordingPublisher struct {
	mu      sync.Mutex
	events  []telemetry.ProviderEvent
	ctxErrs []error
	err     error
}

func (r *recordingPublisher) Publish(ctx context.Context, ev telemetry.ProviderEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	r.ctxErrs = append(r.ctxErrs, ctx.Err())
	return r.err
}

var trip = models.TripRequest{
	Destination:   "Goa",
	StartDate:     "2024-01-01",
	EndDate:       "2024-01-05",
	Budget:        25000,
	TripStyles:    []string{"beach", "solo"},
	Transport:     []string{"train"},
	Accommodation: "hostel",
}

func TestItineraryWithoutProviderUsesTemplate(t *testing.T) {
	events := &recordingPublisher{}
	p := New(Options{Events: events})

	text, src := p.Itinerary(context.Background(), trip, 5)
	assert.Equal(t, models.SourceTemplate, src)
	assert.Equal(t, itinerary.Generate("Goa", 5, 25000), text)
	assert.Empty(t, events.events, "a disabled provider is not a failure")
}

func TestItineraryFromProvider(t *testing.T) {
	gen := &fakeItineraries{text: "# Goa by the model"}
	p := New(Options{Itineraries: gen})

	text, src := p.Itinerary(context.Background(), trip, 5)
	assert.Equal(t, models.SourceGemini, src)
	assert.Equal(t, "# Goa by the model", text)
	assert.Contains(t, gen.prompt, "5-day travel itinerary for Goa")
	assert.Contains(t, gen.prompt, "beach, solo")
	assert.Contains(t, gen.prompt, "hostel")
}

func TestItineraryFallsBackOnProviderError(t *testing.T) {
	events := &recordingPublisher{}
	p := New(Options{Itineraries: &fakeItineraries{err: errors.New("quota exceeded")}, Events: events})

	before := testutil.ToFloat64(telemetry.Fallbacks.WithLabelValues("gemini"))
	errsBefore := testutil.ToFloat64(telemetry.ProviderRequests.WithLabelValues("gemini", "error"))

	text, src := p.Itinerary(context.Background(), trip, 5)
	assert.Equal(t, models.SourceTemplate, src)
	assert.Equal(t, itinerary.Generate("Goa", 5, 25000), text)

	assert.Equal(t, before+1, testutil.ToFloat64(telemetry.Fallbacks.WithLabelValues("gemini")))
	assert.Equal(t, errsBefore+1, testutil.ToFloat64(telemetry.ProviderRequests.WithLabelValues("gemini", "error")))

	require.Len(t, events.events, 1)
	ev := events.events[0]
	assert.Equal(t, "gemini", ev.Provider)
	assert.Equal(t, "itinerary", ev.Operation)
	assert.Equal(t, "Goa", ev.Destination)
	assert.Equal(t, "quota exceeded", ev.Error)
	assert.Equal(t, "template", ev.FallbackTo)
}

func TestFallbackEventSurvivesCancelledRequest(t *testing.T) {
	events := &recordingPublisher{}
	p := New(Options{Videos: &fakeVideos{err: context.Canceled}, Events: events})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	videos, src := p.Videos(ctx, "Goa")
	assert.Equal(t, models.SourceTemplate, src)
	assert.Equal(t, mockdata.ListVideos("Goa"), videos)
	require.Len(t, events.ctxErrs, 1)
	assert.NoError(t, events.ctxErrs[0])
}

func TestPublishFailureDoesNotAffectResult(t *testing.T) {
	events := &recordingPublisher{err: errors.New("redis down")}
	p := New(Options{Attractions: &fakeAttractions{err: errors.New("timeout")}, Events: events})

	attractions, src := p.Attractions(context.Background(), "Goa")
	assert.Equal(t, models.SourceTemplate, src)
	assert.Len(t, attractions, 5)
}

func TestVideosAndAttractionsFromProviders(t *testing.T) {
	p := New(Options{Videos: &fakeVideos{}, Attractions: &fakeAttractions{}})

	videos, src := p.Videos(context.Background(), "Goa")
	assert.Equal(t, models.SourceYouTube, src)
	assert.Equal(t, "Goa vlog", videos[0].Title)

	attractions, src := p.Attractions(context.Background(), "Goa")
	assert.Equal(t, models.SourceOpenTripMap, src)
	assert.Equal(t, "Goa Fort", attractions[0].Name)
}

func TestPlanSettlesEachPartIndependently(t *testing.T) {
	events := &recordingPublisher{}
	p := New(Options{
		Itineraries: &fakeItineraries{text: "# model output"},
		Videos:      &fakeVideos{err: errors.New("403 forbidden"), delay: 20 * time.Millisecond},
		Attractions: &fakeAttractions{},
		Events:      events,
	})

	plan := p.Plan(context.Background(), trip, 5)

	assert.Equal(t, "# model output", plan.Itinerary)
	assert.Equal(t, mockdata.ListVideos("Goa"), plan.Videos)
	assert.Equal(t, "Goa Fort", plan.Attractions[0].Name)
	assert.Equal(t, map[string]models.Source{
		"itinerary":   models.SourceGemini,
		"videos":      models.SourceTemplate,
		"attractions": models.SourceOpenTripMap,
	}, plan.Sources)
	require.Len(t, events.events, 1)
	assert.Equal(t, "youtube", events.events[0].Provider)
}

func TestPlanWithoutProviders(t *testing.T) {
	plan := New(Options{}).Plan(context.Background(), trip, 1)
	assert.Equal(t, itinerary.Generate("Goa", 1, 25000), plan.Itinerary)
	assert.Len(t, plan.Videos, 3)
	assert.Len(t, plan.Attractions, 5)
	for _, src := range plan.Sources {
		assert.Equal(t, models.SourceTemplate, src)
	}
}
