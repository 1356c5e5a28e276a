package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yourusername/careerradar-api/internal/model"
)

const defaultAdzunaBaseURL = "https://api.adzuna.com/v1/api/jobs"

// AdzunaClient wraps the Adzuna job search API.
// Requires app_id and app_key from developer.adzuna.com (free tier available).
type AdzunaClient struct {
	appID   string
	appKey  string
	country string
	baseURL string
	client  *http.Client
}

func NewAdzunaClient(appID, appKey, country, baseURL string) *AdzunaClient {
	if country == "" {
		country = "in"
	}
	if baseURL == "" {
		baseURL = defaultAdzunaBaseURL
	}
	return &AdzunaClient{
		appID:   appID,
		appKey:  appKey,
		country: strings.ToLower(country),
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// Enabled returns true if Adzuna API keys are configured.
func (c *AdzunaClient) Enabled() bool {
	return c.appID != "" && c.appKey != ""
}

// ── Adzuna API response types ────────────────────────

type adzunaResponse struct {
	Results []AdzunaJob `json:"results"`
	Count   int         `json:"count"`
}

type AdzunaJob struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Company     adzunaCompany  `json:"company"`
	Location    adzunaLocation `json:"location"`
	SalaryMin   float64        `json:"salary_min"`
	SalaryMax   float64        `json:"salary_max"`
	Created     string         `json:"created"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

type adzunaLocation struct {
	DisplayName string   `json:"display_name"`
	Area        []string `json:"area"`
}

// ── Search method ────────────────────────────────────

// SearchJobs queries the configured country index. A location equal to the
// country name is treated as "anywhere" since Adzuna already scopes by country.
func (c *AdzunaClient) SearchJobs(ctx context.Context, query, location string) ([]model.JobListing, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("Adzuna credentials not configured")
	}

	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("results_per_page", strconv.Itoa(25))
	params.Set("max_days_old", strconv.Itoa(30))
	params.Set("what", query)
	if location != "" && !strings.EqualFold(location, "india") {
		params.Set("where", location)
	}

	reqURL := fmt.Sprintf("%s/%s/search/1?%s", c.baseURL, c.country, params.Encode())

	log.Info().
		Str("keywords", query).
		Str("location", location).
		Str("country", c.country).
		Msg("Searching Adzuna API")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating adzuna request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling Adzuna API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading adzuna response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Adzuna API returned %d: %s", resp.StatusCode, bodyExcerpt(body))
	}

	var result adzunaResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing Adzuna response: %w", err)
	}

	log.Info().
		Int("results", len(result.Results)).
		Str("keywords", query).
		Msg("Adzuna API search complete")

	listings := make([]model.JobListing, 0, len(result.Results))
	for _, aj := range result.Results {
		listings = append(listings, convertAdzunaJob(aj, c.currency()))
	}
	return listings, nil
}

func (c *AdzunaClient) currency() string {
	switch c.country {
	case "in":
		return "INR"
	case "gb":
		return "GBP"
	case "us":
		return "USD"
	default:
		return ""
	}
}

// ── Converter ────────────────────────────────────────

// convertAdzunaJob transforms an Adzuna API result into a listing.
func convertAdzunaJob(aj AdzunaJob, currency string) model.JobListing {
	location := aj.Location.DisplayName
	if location == "" && len(aj.Location.Area) > 0 {
		location = strings.Join(aj.Location.Area, ", ")
	}

	listing := model.JobListing{
		Source:      "adzuna",
		Title:       stripHTML(aj.Title),
		Company:     aj.Company.DisplayName,
		Location:    location,
		Description: truncateUTF8(stripHTML(aj.Description), 2000),
		SalaryMin:   aj.SalaryMin,
		SalaryMax:   aj.SalaryMax,
		PostedAt:    aj.Created,
	}
	if aj.SalaryMin > 0 || aj.SalaryMax > 0 {
		listing.SalaryCurrency = currency
	}
	return listing
}
