package prediction

import (
	"context"
	"strings"
	"sync"

	"github.com/yourusername/careerradar-api/internal/model"
)

type fakeWeb struct {
	mu      sync.Mutex
	queries []string
	results []model.SearchResult
	// fail returns an error for queries containing any of these substrings.
	fail []string
	err  error
}

func (f *fakeWeb) SearchWeb(_ context.Context, query string) ([]model.SearchResult, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.fail {
		if strings.Contains(query, s) {
			return nil, errBoom
		}
	}
	return f.results, nil
}

type fakeVideos struct {
	ids     map[string][]string
	videos  map[string]model.Video
	err     error
	queries []string
}

func (f *fakeVideos) SearchVideoIDs(_ context.Context, query string) ([]string, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.ids[query], nil
}

func (f *fakeVideos) VideoDetails(_ context.Context, ids []string) ([]model.Video, error) {
	var out []model.Video
	for _, id := range ids {
		if v, ok := f.videos[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeJobs struct {
	listings []model.JobListing
	err      error
	query    string
	location string
}

func (f *fakeJobs) SearchJobs(_ context.Context, query, location string) ([]model.JobListing, error) {
	f.query, f.location = query, location
	return f.listings, f.err
}

type fakeLLM struct {
	text   string
	err    error
	prompt string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

type boomError struct{}

func (boomError) Error() string { return "boom" }

var errBoom error = boomError{}
