package opentripmap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tripplanr/models"
	"tripplanr/providers"
)

const (
	DefaultBaseURL = "https://api.opentripmap.com/0.1/en"
	searchRadius   = 10000 // metres
)

type Client struct {
	apiKey string
	base   string
	http   *http.Client
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey: apiKey,
		base:   DefaultBaseURL,
		http:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) WithBaseURL(base string) *Client {
	c.base = strings.TrimRight(base, "/")
	return c
}

type geoname struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Status  string  `json:"status"`
	Error   string  `json:"error,omitempty"`
}

type feature struct {
	XID   string  `json:"xid"`
	Name  string  `json:"name"`
	Kinds string  `json:"kinds"`
	Rate  float64 `json:"rate"`
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("apikey", c.apiKey)
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path+"?"+q.Encode(), nil)
	if err != nil {
		return providers.RedactKey(err, c.apiKey)
	}

	resp, err := c.http.Do(r)
	if err != nil {
		return providers.RedactKey(err, c.apiKey)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("opentripmap api error: %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Attractions resolves the destination to coordinates and lists the
// best-rated named places around it.
func (c *Client) Attractions(ctx context.Context, destination string, limit int) ([]models.AttractionCard, error) {
	var geo geoname
	if err := c.get(ctx, "/places/geoname", url.Values{"name": {destination}}, &geo); err != nil {
		return nil, err
	}
	if geo.Status != "OK" {
		return nil, fmt.Errorf("geoname lookup for %q failed: %s", destination, geo.Error)
	}

	q := url.Values{}
	q.Set("radius", fmt.Sprint(searchRadius))
	q.Set("lon", fmt.Sprint(geo.Lon))
	q.Set("lat", fmt.Sprint(geo.Lat))
	q.Set("rate", "3")
	q.Set("format", "json")
	q.Set("limit", fmt.Sprint(limit))

	var places []feature
	if err := c.get(ctx, "/places/radius", q, &places); err != nil {
		return nil, err
	}

	cards := make([]models.AttractionCard, 0, len(places))
	for _, p := range places {
		if p.Name == "" {
			continue
		}
		kinds := strings.Split(p.Kinds, ",")
		cards = append(cards, models.AttractionCard{
			Name:        p.Name,
			Description: fmt.Sprintf("%s in %s.", describeKind(kinds[0]), destination),
			Address:     fmt.Sprintf("%s, %s", destination, geo.Country),
			Categories:  kinds,
		})
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("no attractions found near %q", destination)
	}
	return cards, nil
}

func describeKind(kind string) string {
	if kind == "" {
		return "A point of interest"
	}
	words := strings.ReplaceAll(kind, "_", " ")
	return "A notable " + words + " spot"
}
