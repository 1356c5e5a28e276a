package prediction

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/careerradar-api/internal/model"
)

var (
	// ErrInvalidProfile is returned when the profile lacks currentSkills or targetRole.
	ErrInvalidProfile = errors.New("invalid profile")
	// ErrUpstreamUnavailable marks failures that abort the whole prediction.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

func upstreamError(source string, err error) error {
	return fmt.Errorf("%s: %w: %w", source, ErrUpstreamUnavailable, err)
}

// WebSearcher returns organic web results for a free-text query.
type WebSearcher interface {
	SearchWeb(ctx context.Context, query string) ([]model.SearchResult, error)
}

// VideoSearcher finds tutorial videos and loads their statistics.
type VideoSearcher interface {
	SearchVideoIDs(ctx context.Context, query string) ([]string, error)
	VideoDetails(ctx context.Context, ids []string) ([]model.Video, error)
}

// JobSearcher returns job listings for a query scoped to a location.
type JobSearcher interface {
	SearchJobs(ctx context.Context, query, location string) ([]model.JobListing, error)
}

// TextGenerator completes a prompt with a generative model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
