package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yourusername/careerradar-api/internal/model"
)

const defaultSerpAPIBaseURL = "https://serpapi.com/search.json"

// SerpAPIClient wraps SerpAPI's Google web search and Google Jobs engines.
type SerpAPIClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewSerpAPIClient(apiKey, baseURL string) *SerpAPIClient {
	if baseURL == "" {
		baseURL = defaultSerpAPIBaseURL
	}
	return &SerpAPIClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// Enabled returns true if a SerpAPI key is configured.
func (c *SerpAPIClient) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// ── SerpAPI response types ───────────────────────────

type serpSearchResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"organic_results"`
}

type serpJobsResponse struct {
	JobsResults []serpJob `json:"jobs_results"`
}

type serpJob struct {
	Title              string `json:"title"`
	CompanyName        string `json:"company_name"`
	Location           string `json:"location"`
	Description        string `json:"description"`
	Via                string `json:"via"`
	DetectedExtensions struct {
		Salary   string `json:"salary"`
		PostedAt string `json:"posted_at"`
	} `json:"detected_extensions"`
}

// ── Web search ───────────────────────────────────────

// SearchWeb runs one Google query pinned to the Indian market and returns organic results.
func (c *SerpAPIClient) SearchWeb(ctx context.Context, query string) ([]model.SearchResult, error) {
	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("num", "10")
	params.Set("gl", "in")
	params.Set("hl", "en")

	log.Info().
		Str("query", query).
		Msg("Searching SerpAPI (google)")

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var result serpSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing SerpAPI search response: %w", err)
	}

	results := make([]model.SearchResult, 0, len(result.OrganicResults))
	for _, r := range result.OrganicResults {
		results = append(results, model.SearchResult{
			Title:   r.Title,
			Snippet: r.Snippet,
			Link:    r.Link,
		})
	}

	log.Info().
		Int("results", len(results)).
		Str("query", query).
		Msg("SerpAPI search complete")

	return results, nil
}

// ── Jobs search ──────────────────────────────────────

// SearchJobs queries the google_jobs engine. Salary comes back as free text.
func (c *SerpAPIClient) SearchJobs(ctx context.Context, query, location string) ([]model.JobListing, error) {
	params := url.Values{}
	params.Set("engine", "google_jobs")
	params.Set("q", query)
	if location != "" {
		params.Set("location", location)
	}

	log.Info().
		Str("query", query).
		Str("location", location).
		Msg("Searching SerpAPI (google_jobs)")

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var result serpJobsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing SerpAPI jobs response: %w", err)
	}

	listings := make([]model.JobListing, 0, len(result.JobsResults))
	for _, j := range result.JobsResults {
		listings = append(listings, model.JobListing{
			Source:      "serpapi",
			Title:       j.Title,
			Company:     j.CompanyName,
			Location:    j.Location,
			Description: stripHTML(j.Description),
			SalaryText:  j.DetectedExtensions.Salary,
			PostedAt:    j.DetectedExtensions.PostedAt,
		})
	}

	log.Info().
		Int("results", len(listings)).
		Str("query", query).
		Msg("SerpAPI jobs search complete")

	return listings, nil
}

func (c *SerpAPIClient) get(ctx context.Context, params url.Values) ([]byte, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("SerpAPI key not configured")
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling SerpAPI: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SerpAPI returned %d: %s", resp.StatusCode, bodyExcerpt(body))
	}

	return body, nil
}
