package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yourusername/careerradar-api/internal/model"
)

const defaultJSearchBaseURL = "https://jsearch.p.rapidapi.com"

// JSearchClient wraps the JSearch API on RapidAPI
type JSearchClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewJSearchClient(apiKey, baseURL string) *JSearchClient {
	if baseURL == "" {
		baseURL = defaultJSearchBaseURL
	}
	return &JSearchClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// ── JSearch API response types ────────────────────────

type jsearchResponse struct {
	Status string       `json:"status"`
	Data   []JSearchJob `json:"data"`
}

// JSearchJob is the raw job listing from the API
type JSearchJob struct {
	JobID             string   `json:"job_id"`
	JobTitle          string   `json:"job_title"`
	EmployerName      string   `json:"employer_name"`
	JobCity           string   `json:"job_city"`
	JobState          string   `json:"job_state"`
	JobCountry        string   `json:"job_country"`
	JobIsRemote       bool     `json:"job_is_remote"`
	JobDescription    string   `json:"job_description"`
	JobMinSalary      *float64 `json:"job_min_salary"`
	JobMaxSalary      *float64 `json:"job_max_salary"`
	JobSalaryCurrency string   `json:"job_salary_currency"`
	JobSalaryPeriod   string   `json:"job_salary_period"`
	JobPostedAt       string   `json:"job_posted_at_datetime_utc"`
}

// ── Search method ─────────────────────────────────────

// SearchJobs runs a single one-page query and converts results to listings.
func (c *JSearchClient) SearchJobs(ctx context.Context, query, location string) ([]model.JobListing, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("RapidAPI key not configured")
	}

	if location != "" {
		query += " in " + location
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("num_pages", "1")
	params.Set("date_posted", "month")

	reqURL := c.baseURL + "/search?" + params.Encode()

	log.Info().
		Str("query", query).
		Msg("Searching JSearch API")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("x-rapidapi-host", "jsearch.p.rapidapi.com")
	req.Header.Set("x-rapidapi-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling JSearch API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("JSearch API returned %d: %s", resp.StatusCode, bodyExcerpt(body))
	}

	var result jsearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing JSearch response: %w", err)
	}

	log.Info().
		Int("results", len(result.Data)).
		Str("query", query).
		Msg("JSearch API returned results")

	listings := make([]model.JobListing, 0, len(result.Data))
	for _, j := range result.Data {
		listings = append(listings, convertJSearchJob(j))
	}
	return listings, nil
}

// convertJSearchJob maps a JSearch result onto a listing. Only yearly
// salaries are carried over; hourly and monthly figures are dropped.
func convertJSearchJob(j JSearchJob) model.JobListing {
	var parts []string
	for _, p := range []string{j.JobCity, j.JobState, j.JobCountry} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	location := strings.Join(parts, ", ")
	if j.JobIsRemote {
		location = strings.TrimPrefix(location+", Remote", ", ")
	}

	listing := model.JobListing{
		Source:      "jsearch",
		Title:       j.JobTitle,
		Company:     j.EmployerName,
		Location:    location,
		Description: truncateUTF8(stripHTML(j.JobDescription), 2000),
		PostedAt:    j.JobPostedAt,
	}

	period := strings.ToUpper(j.JobSalaryPeriod)
	if period == "" || period == "YEAR" {
		if j.JobMinSalary != nil {
			listing.SalaryMin = *j.JobMinSalary
		}
		if j.JobMaxSalary != nil {
			listing.SalaryMax = *j.JobMaxSalary
		}
		listing.SalaryCurrency = j.JobSalaryCurrency
	}
	return listing
}
