package youtube

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

const DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

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

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails map[string]struct {
				URL string `json:"url"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// SearchTravelVideos looks up travel guide videos for a destination.
func (c *Client) SearchTravelVideos(ctx context.Context, destination string, limit int) ([]models.VideoCard, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("type", "video")
	q.Set("q", destination+" travel guide")
	q.Set("maxResults", fmt.Sprint(limit))
	q.Set("key", c.apiKey)

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, providers.RedactKey(err, c.apiKey)
	}

	resp, err := c.http.Do(r)
	if err != nil {
		return nil, providers.RedactKey(err, c.apiKey)
	}
	defer resp.Body.Close()

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode error: %w (status %d)", err, resp.StatusCode)
	}
	if sr.Error != nil {
		return nil, fmt.Errorf("youtube api error: %s", sr.Error.Message)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("youtube api error: status %d", resp.StatusCode)
	}

	videos := make([]models.VideoCard, 0, len(sr.Items))
	for _, item := range sr.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, models.VideoCard{
			ID:        item.ID.VideoID,
			Title:     item.Snippet.Title,
			Thumbnail: pickThumbnail(item.Snippet.Thumbnails),
			URL:       "https://www.youtube.com/watch?v=" + item.ID.VideoID,
		})
	}
	if len(videos) == 0 {
		return nil, fmt.Errorf("no videos found for %q", destination)
	}
	return videos, nil
}

func pickThumbnail(thumbs map[string]struct {
	URL string `json:"url"`
}) string {
	for _, size := range []string{"high", "medium", "default"} {
		if t, ok := thumbs[size]; ok && t.URL != "" {
			return t.URL
		}
	}
	return ""
}
