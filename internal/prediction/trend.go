package prediction

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/yourusername/careerradar-api/internal/model"
)

// technologyTerms is matched as lowercase substrings of search titles and snippets.
var technologyTerms = []string{
	"javascript", "python", "java", "typescript", "react", "angular", "vue",
	"node.js", "express", "django", "flask", "spring", "laravel", "php",
	"sql", "mongodb", "postgresql", "mysql", "redis", "elasticsearch",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
	"git", "ci/cd", "jenkins", "github", "gitlab", "api", "rest", "graphql",
	"machine learning", "ai", "data science", "blockchain", "cloud computing",
	"nextjs", "svelte", "tailwind", "prisma", "supabase", "vercel", "firebase",
}

const (
	trendMentionWeight = 3
	maxTrendingTerms   = 20
	maxRelevantResults = 20
)

// TrendData is the Trend Collector output.
type TrendData struct {
	TrendingTechs   []string
	RelevantResults []model.SearchResult
	// Frequency holds the weighted mention count of every matched term.
	Frequency map[string]int
	// SkillDemand is Frequency restricted to the user's skills, keyed lowercase.
	SkillDemand map[string]int
}

func trendQueries(skills []string, role string, year int) []string {
	return []string{
		fmt.Sprintf("%s trending technologies %d", role, year),
		fmt.Sprintf("most demanded programming languages %d", year),
		strings.TrimSpace(strings.Join(skills, " ") + " developer jobs India"),
		fmt.Sprintf("emerging technologies software development %d", year),
	}
}

// collectTrends runs every trend query, skipping individual failures.
// It is fatal only when no query succeeds.
func collectTrends(ctx context.Context, web WebSearcher, skills []string, role string, year int) (*TrendData, error) {
	if web == nil {
		return nil, upstreamError("trend search", fmt.Errorf("web search not configured"))
	}

	queries := trendQueries(skills, role, year)
	var results []model.SearchResult
	var lastErr error
	failed := 0

	for _, q := range queries {
		res, err := web.SearchWeb(ctx, q)
		if err != nil {
			failed++
			lastErr = err
			log.Warn().Err(err).Str("query", q).Msg("Trend query failed, continuing")
			continue
		}
		results = append(results, res...)
	}

	if failed == len(queries) {
		return nil, upstreamError("trend search", lastErr)
	}

	data := tallyTrends(results, skills)

	log.Info().
		Int("results", len(results)).
		Int("failed_queries", failed).
		Int("terms", len(data.Frequency)).
		Msg("Trend collection complete")

	return data, nil
}

// tallyTrends scores technology mentions across search results.
func tallyTrends(results []model.SearchResult, skills []string) *TrendData {
	freq := make(map[string]int)
	for _, r := range results {
		content := strings.ToLower(r.Title + " " + r.Snippet)
		for _, term := range technologyTerms {
			if strings.Contains(content, term) {
				freq[term] += trendMentionWeight
			}
		}
	}

	order := make(map[string]int, len(technologyTerms))
	for i, term := range technologyTerms {
		order[term] = i
	}
	trending := make([]string, 0, len(freq))
	for term := range freq {
		trending = append(trending, term)
	}
	sort.Slice(trending, func(i, j int) bool {
		a, b := trending[i], trending[j]
		if freq[a] != freq[b] {
			return freq[a] > freq[b]
		}
		return order[a] < order[b]
	})
	if len(trending) > maxTrendingTerms {
		trending = trending[:maxTrendingTerms]
	}

	demand := make(map[string]int, len(skills))
	for _, s := range skills {
		key := strings.ToLower(s)
		demand[key] = freq[key]
	}

	relevant := results
	if len(relevant) > maxRelevantResults {
		relevant = relevant[:maxRelevantResults]
	}

	return &TrendData{
		TrendingTechs:   trending,
		RelevantResults: relevant,
		Frequency:       freq,
		SkillDemand:     demand,
	}
}
