package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourusername/careerradar-api/internal/model"
)

func TestBuildAnalysisPrompt(t *testing.T) {
	p := model.UserProfile{
		CurrentSkills: []string{"Python", "SQL"},
		TargetRole:    "Data Scientist",
		Experience:    "Mid-level",
		Industry:      "FinTech",
	}
	trend := &TrendData{
		TrendingTechs:   []string{"python", "aws", "docker"},
		RelevantResults: make([]model.SearchResult, 7),
		Frequency:       map[string]int{"python": 9, "aws": 6, "docker": 3},
		SkillDemand:     map[string]int{"python": 9, "sql": 0},
	}
	jobs := &JobMarketData{
		Postings:    make([]model.JobPosting, 3),
		AvgSalary:   1450000,
		SkillDemand: map[string]int{"python": 3, "aws": 1},
	}
	trends := []model.MarketTrend{{Skill: "python", DemandScore: 100, AvgSalaryINR: 2900000}}

	prompt := BuildAnalysisPrompt(p, trend, jobs, trends)

	for _, want := range []string{
		"- Current Skills: Python, SQL",
		"- Target Role: Data Scientist",
		"- Industry: FinTech",
		"(7 search results analyzed)",
		"- Top Trending: python, aws, docker",
		"- User Skills Demand: Python: 9, SQL: 0",
		"(3 postings)",
		"- Average Salary: ₹15L",
		"- High Demand Skills: python(3), aws(1)",
		"python: 100% demand, ₹29L avg",
		"Data Scientist → Senior Data Scientist",
		`"skillGaps"`,
	} {
		assert.Contains(t, prompt, want)
	}
}

func TestBuildAnalysisPromptIsDeterministic(t *testing.T) {
	p := model.UserProfile{CurrentSkills: []string{"Go"}, TargetRole: "SRE"}
	trend := &TrendData{Frequency: map[string]int{}, SkillDemand: map[string]int{}}
	jobs := &JobMarketData{SkillDemand: map[string]int{"docker": 2, "aws": 2, "git": 1}}

	assert.Equal(t, BuildAnalysisPrompt(p, trend, jobs, nil), BuildAnalysisPrompt(p, trend, jobs, nil))
}
