package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tripplanr/models"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type Client struct {
	apiKey string
	model  string
	base   string
	http   *http.Client
}

func NewClient(apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		apiKey: apiKey,
		model:  model,
		base:   DefaultBaseURL,
		http:   &http.Client{Timeout: timeout},
	}
}

// WithBaseURL points the client at another endpoint, mostly for tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.base = strings.TrimRight(base, "/")
	return c
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type GenerateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type GenerationConfig struct {
	Temperature     float32 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type GenerateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Generate sends a single-turn prompt and returns the concatenated text of
// the first candidate.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(GenerateRequest{
		Contents:         []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: &GenerationConfig{Temperature: 0.7, MaxOutputTokens: 8192},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.base, url.PathEscape(c.model))
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(r)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	var gr GenerateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		if resp.StatusCode >= 400 {
			return "", fmt.Errorf("gemini api error: status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("decode error: %w", err)
	}
	if gr.Error != nil {
		return "", fmt.Errorf("gemini api error: %s (%s)", gr.Error.Message, gr.Error.Status)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("gemini api error: status %d", resp.StatusCode)
	}
	if len(gr.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}

	var out strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		out.WriteString(p.Text)
	}
	text := stripFences(out.String())
	if text == "" {
		return "", fmt.Errorf("empty candidate")
	}
	return text, nil
}

// stripFences removes a ```markdown ... ``` wrapper the model sometimes adds.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		return ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ItineraryPrompt turns a trip request into the instruction sent to the model.
func ItineraryPrompt(req models.TripRequest, days int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed %d-day travel itinerary for %s", days, req.Destination)
	fmt.Fprintf(&b, " from %s to %s with a total budget of INR %d.\n", req.StartDate, req.EndDate, req.Budget)
	if len(req.TripStyles) > 0 {
		fmt.Fprintf(&b, "Travel style: %s.\n", strings.Join(req.TripStyles, ", "))
	}
	if len(req.Transport) > 0 {
		fmt.Fprintf(&b, "Preferred transport: %s.\n", strings.Join(req.Transport, ", "))
	}
	if req.Accommodation != "" {
		fmt.Fprintf(&b, "Accommodation: %s.\n", req.Accommodation)
	}
	b.WriteString("Format the answer as markdown: a '# <destination> Travel Itinerary' heading, an introduction, ")
	b.WriteString("one '## Day N' section per day with Morning, Afternoon and Evening subsections listing activities, locations and costs in INR, ")
	b.WriteString("and a closing list of travel tips.")
	return b.String()
}
