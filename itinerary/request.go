package itinerary

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"tripplanr/models"
)

// ValidationError is returned for trip requests the planner refuses to serve.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// maxTripDays caps the trip length a single request may ask for.
const maxTripDays = 30

var dateLayouts = []string{"2006-01-02", time.RFC3339Nano, time.RFC3339}

// ParseDate accepts a plain calendar date or a full ISO timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// DayCount is the inclusive number of days between start and end. Partial
// days round up. A reversed range yields a non-positive count.
func DayCount(start, end time.Time) int {
	start, end = start.UTC(), end.UTC()
	days := epochDay(end) - epochDay(start)
	if end.Sub(midnight(end)) > start.Sub(midnight(start)) {
		days++
	}
	return int(days) + 1
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// epochDay counts whole calendar days from the Unix epoch. Unlike
// time.Duration it does not saturate over long ranges.
func epochDay(t time.Time) int64 {
	return midnight(t).Unix() / 86400
}

// Validate checks a trip request and returns its inclusive day count.
func Validate(req models.TripRequest) (int, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return 0, &ValidationError{Field: "destination", Reason: "must not be empty"}
	}

	start, err := ParseDate(req.StartDate)
	if err != nil {
		return 0, &ValidationError{Field: "startDate", Reason: err.Error()}
	}
	end, err := ParseDate(req.EndDate)
	if err != nil {
		return 0, &ValidationError{Field: "endDate", Reason: err.Error()}
	}
	if end.Before(start) {
		return 0, &ValidationError{Field: "endDate", Reason: "must not be before startDate"}
	}
	days := DayCount(start, end)
	if days > maxTripDays {
		return 0, &ValidationError{Field: "endDate", Reason: fmt.Sprintf("trip must not exceed %d days", maxTripDays)}
	}

	if req.Budget <= 0 {
		return 0, &ValidationError{Field: "budget", Reason: "must be positive"}
	}

	for _, s := range req.TripStyles {
		if !slices.Contains(models.TripStyles, s) {
			return 0, &ValidationError{Field: "tripStyles", Reason: fmt.Sprintf("unknown style %q", s)}
		}
	}
	for _, t := range req.Transport {
		if !slices.Contains(models.TransportModes, t) {
			return 0, &ValidationError{Field: "transport", Reason: fmt.Sprintf("unknown mode %q", t)}
		}
	}
	if req.Accommodation != "" && !slices.Contains(models.Accommodations, req.Accommodation) {
		return 0, &ValidationError{Field: "accommodation", Reason: fmt.Sprintf("unknown type %q", req.Accommodation)}
	}

	return days, nil
}
