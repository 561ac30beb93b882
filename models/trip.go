package models

// TripRequest is what the planning form submits.
type TripRequest struct {
	Destination   string   `json:"destination"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	Budget        int64    `json:"budget"`
	TripStyles    []string `json:"tripStyles,omitempty"`
	Transport     []string `json:"transport,omitempty"`
	Accommodation string   `json:"accommodation,omitempty"`
}

// ItineraryResponse is the single-field body returned by POST /api/itinerary.
type ItineraryResponse struct {
	Message string `json:"message"`
}

type AttractionCard struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Address     string   `json:"address"`
	Categories  []string `json:"categories"`
}

type VideoCard struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	URL       string `json:"url"`
}

// Source labels where a piece of content came from.
type Source string

const (
	SourceTemplate    Source = "template"
	SourceGemini      Source = "gemini"
	SourceYouTube     Source = "youtube"
	SourceOpenTripMap Source = "opentripmap"
)

// PlanResponse bundles everything the result page renders.
type PlanResponse struct {
	Itinerary   string            `json:"itinerary"`
	Videos      []VideoCard       `json:"videos"`
	Attractions []AttractionCard  `json:"attractions"`
	Sources     map[string]Source `json:"sources"`
}

// Allowed tag values, matching the form options.
var (
	TripStyles     = []string{"adventure", "luxury", "romantic", "family", "solo", "cultural", "beach", "city"}
	TransportModes = []string{"flight", "train", "bus", "car"}
	Accommodations = []string{"hotel", "hostel", "airbnb", "resort"}
)
