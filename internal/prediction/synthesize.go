package prediction

import (
	"math"
	"sort"
	"strings"

	"github.com/yourusername/careerradar-api/internal/model"
)

const (
	defaultMarketSalary = 800000
	minDemandScore      = 5
	maxMarketTrends     = 20
)

var trendLocations = []string{"Bangalore", "Mumbai", "Hyderabad", "Pune", "Delhi"}

// SynthesizeMarketTrends merges search-trend and job-posting counts into a
// demand ranking. It is pure: equal inputs always give an equal result.
func SynthesizeMarketTrends(trendCounts, jobCounts map[string]int, avgSalary float64) []model.MarketTrend {
	merged := make(map[string][2]int)
	for skill, n := range trendCounts {
		key := strings.ToLower(skill)
		c := merged[key]
		c[0] += n
		merged[key] = c
	}
	for skill, n := range jobCounts {
		key := strings.ToLower(skill)
		c := merged[key]
		c[1] += n
		merged[key] = c
	}

	base := avgSalary
	if base <= 0 {
		base = defaultMarketSalary
	}

	trends := make([]model.MarketTrend, 0, len(merged))
	for skill, c := range merged {
		demand := math.Min(100, float64(c[0]*10+c[1]*10))
		if demand <= minDemandScore {
			continue
		}
		trends = append(trends, model.MarketTrend{
			Skill:        skill,
			DemandScore:  demand,
			AvgSalaryINR: int64(math.Round(base * (1 + demand/100))),
			JobCount:     c[1],
			GrowthRate:   growthRate(demand),
			Locations:    append([]string(nil), trendLocations...),
		})
	}

	sort.Slice(trends, func(i, j int) bool {
		if trends[i].DemandScore != trends[j].DemandScore {
			return trends[i].DemandScore > trends[j].DemandScore
		}
		return trends[i].Skill < trends[j].Skill
	})
	if len(trends) > maxMarketTrends {
		trends = trends[:maxMarketTrends]
	}
	return trends
}

func growthRate(demand float64) int {
	switch {
	case demand > 50:
		return 15
	case demand > 25:
		return 8
	default:
		return 3
	}
}
