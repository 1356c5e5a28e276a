package prediction

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/careerradar-api/internal/model"
)

func emptyTrend() *TrendData {
	return &TrendData{Frequency: map[string]int{}, SkillDemand: map[string]int{}}
}

func emptyJobs() *JobMarketData {
	return &JobMarketData{SkillDemand: map[string]int{}, LocationSalaries: map[string]float64{}}
}

func TestParseAnalysis(t *testing.T) {
	text := "```json\n" + `{
  "skillGaps": [
    {"skill": "Docker", "importance": 8, "avgSalaryIncrease": "3,00,000", "learningPath": ["basics"], "timeToLearn": "3 months"},
    {"skill": "Kubernetes"}
  ],
  "careerPath": {"nextRole": "Senior Data Scientist", "timeline": "12-18 months", "requiredSkills": ["Docker"], "expectedSalary": 2400000}
}` + "\n```"

	a, err := parseAnalysis(text)
	require.NoError(t, err)
	require.Len(t, a.SkillGaps, 2)

	g := a.SkillGaps[0]
	assert.Equal(t, "Docker", g.Skill)
	assert.Equal(t, 8.0, g.Importance)
	assert.Equal(t, 300000.0, g.AvgSalaryIncrease)
	assert.True(t, math.IsNaN(g.CurrentDemand))
	assert.Equal(t, []string{"basics"}, g.LearningPath)

	assert.True(t, math.IsNaN(a.SkillGaps[1].Importance))
	assert.Equal(t, "Senior Data Scientist", a.CareerPath.NextRole)
	assert.Equal(t, 2400000.0, a.CareerPath.ExpectedSalary)
	assert.False(t, a.Fallback)
}

func TestParseAnalysisRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"prose", "I recommend learning Docker and Kubernetes."},
		{"empty", ""},
		{"missing career path", `{"skillGaps": []}`},
		{"skill not a string", `{"skillGaps": [{"skill": 7}], "careerPath": {}}`},
		{"array root", `[1, 2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAnalysis(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestNumber(t *testing.T) {
	assert.Equal(t, 5.0, number(5.0))
	assert.Equal(t, 250000.0, number("₹2,50,000"))
	assert.Equal(t, 8.0, number("8/10"))
	assert.True(t, math.IsNaN(number(nil)))
	assert.True(t, math.IsNaN(number("high")))
	assert.True(t, math.IsNaN(number(true)))
}

func TestSalaryNumber(t *testing.T) {
	tests := []struct {
		in   any
		want float64
	}{
		{"5L", 500000},
		{"₹5 LPA", 500000},
		{"12 lakhs", 1200000},
		{"₹2,50,000", 250000},
		{350000.0, 350000},
		{"-5", -5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, salaryNumber(tt.in), "%v", tt.in)
	}
	assert.True(t, math.IsNaN(salaryNumber("a lot")))
	assert.True(t, math.IsNaN(salaryNumber(nil)))
}

func TestParseAnalysisLakhSalaries(t *testing.T) {
	a, err := parseAnalysis(`{"skillGaps": [{"skill": "Go", "importance": "8/10", "currentDemand": 5, "avgSalaryIncrease": "5L", "learningPath": [], "timeToLearn": "3 months"}], "careerPath": {"nextRole": "Staff Engineer", "timeline": "2 years", "requiredSkills": [], "expectedSalary": "₹25 LPA"}}`)
	require.NoError(t, err)
	require.Len(t, a.SkillGaps, 1)
	assert.Equal(t, 8.0, a.SkillGaps[0].Importance)
	assert.Equal(t, 500000.0, a.SkillGaps[0].AvgSalaryIncrease)
	assert.Equal(t, 2500000.0, a.CareerPath.ExpectedSalary)
}

func TestParseAnalysisHugeNumbersStayBounded(t *testing.T) {
	a, err := parseAnalysis(`{"skillGaps": [{"skill": "Go", "importance": 8, "currentDemand": 5, "avgSalaryIncrease": 1e19, "learningPath": [], "timeToLearn": "3 months"}], "careerPath": {"nextRole": "Staff Engineer", "timeline": "2 years", "requiredSkills": [], "expectedSalary": 1e19}}`)
	require.NoError(t, err)

	gaps := NormalizeSkillGaps(a.SkillGaps, nil, nil)
	require.Len(t, gaps, 1)
	assert.Equal(t, int64(defaultSalaryIncrease), gaps[0].AvgSalaryIncrease)

	path := NormalizeCareerPath(a.CareerPath, 1680000)
	assert.Greater(t, path.ExpectedSalary, int64(1680000))
	assert.LessOrEqual(t, path.ExpectedSalary, int64(maxCareerSalary))
}

func TestFallbackAnalysisWithoutData(t *testing.T) {
	p := model.UserProfile{CurrentSkills: []string{"Python"}, TargetRole: "Data Scientist"}

	a := fallbackAnalysis(p, emptyTrend(), emptyJobs())

	assert.True(t, a.Fallback)
	require.GreaterOrEqual(t, len(a.SkillGaps), 4)
	assert.Equal(t, "Machine learning", a.SkillGaps[0].Skill)
	assert.Equal(t, 10.0, a.SkillGaps[0].Importance)
	assert.Equal(t, 10.0, a.SkillGaps[0].CurrentDemand)
	assert.Equal(t, 150000.0, a.SkillGaps[0].AvgSalaryIncrease)
	assert.Equal(t, "2 months", a.SkillGaps[0].TimeToLearn)
	assert.Len(t, a.SkillGaps[0].LearningPath, 4)

	assert.Equal(t, "Senior Data Scientist", a.CareerPath.NextRole)
	assert.Equal(t, "12-18 months", a.CareerPath.Timeline)
	assert.Equal(t, 1920000.0, a.CareerPath.ExpectedSalary)
	assert.Equal(t, []string{"Machine learning", "Sql", "Statistics", "Deep learning"}, a.CareerPath.RequiredSkills)
}

func TestFallbackSkillGapsRanksMarketData(t *testing.T) {
	p := model.UserProfile{CurrentSkills: []string{"Docker"}, TargetRole: "DevOps Engineer"}
	trend := &TrendData{Frequency: map[string]int{"docker": 9, "aws": 3}, SkillDemand: map[string]int{"docker": 9}}
	jobs := &JobMarketData{SkillDemand: map[string]int{"docker": 1, "kubernetes": 2}}

	gaps := fallbackSkillGaps(p, trend, jobs)

	var skills []string
	for _, g := range gaps {
		skills = append(skills, g.Skill)
	}
	assert.Equal(t, []string{"Kubernetes", "Aws", "Terraform", "Ci/cd", "Monitoring", "System design"}, skills)

	assert.Equal(t, 200.0, gaps[0].CurrentDemand)
	assert.Equal(t, 650000.0, gaps[0].AvgSalaryIncrease)
	assert.Equal(t, 9.0, gaps[1].Importance)
	assert.Equal(t, 165000.0, gaps[1].AvgSalaryIncrease)
	assert.Equal(t, 6.0, gaps[5].Importance)
}

func TestFallbackCareerPath(t *testing.T) {
	tests := []struct {
		role     string
		avg      float64
		next     string
		timeline string
		salary   float64
	}{
		{"Data Scientist", 0, "Senior Data Scientist", "12-18 months", 1920000},
		{"Senior Backend Developer", 1000000, "Lead Backend Developer", "18-24 months", 2000000},
		{"Senior Cloud Engineer", 1000000, "Lead Cloud Engineer", "18-24 months", 2000000},
		{"Lead Data Engineer", 2000000, "Director / VP of Data Engineer", "24-36 months", 5000000},
		{"Team Lead Engineer", 2000000, "Director / VP of Team Engineer", "24-36 months", 5000000},
		{"Principal Lead Architect", 2000000, "Director / VP of Lead Architect", "24-36 months", 5000000},
		{"Cloud Engineer", 800000, "Senior Cloud Engineer", "12-18 months", 1500000},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			jobs := emptyJobs()
			jobs.AvgSalary = tt.avg
			path := fallbackCareerPath(tt.role, jobs, nil)
			assert.Equal(t, tt.next, path.NextRole)
			assert.Equal(t, tt.timeline, path.Timeline)
			assert.Equal(t, tt.salary, path.ExpectedSalary)
		})
	}
}

func TestAnalyzeGeneratorErrorIsFatal(t *testing.T) {
	p := model.UserProfile{CurrentSkills: []string{"Go"}, TargetRole: "Backend Developer"}
	_, err := analyze(context.Background(), &fakeLLM{err: errBoom}, p, emptyTrend(), emptyJobs(), nil)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestAnalyzeFallsBackOnProse(t *testing.T) {
	p := model.UserProfile{CurrentSkills: []string{"Go"}, TargetRole: "Backend Developer", Experience: "Mid-level"}
	llm := &fakeLLM{text: "Sorry, I can only answer in prose today."}

	a, err := analyze(context.Background(), llm, p, emptyTrend(), emptyJobs(), nil)
	require.NoError(t, err)
	assert.True(t, a.Fallback)
	assert.GreaterOrEqual(t, len(a.SkillGaps), 4)
	assert.Equal(t, "Senior Backend Developer", a.CareerPath.NextRole)
	assert.Contains(t, llm.prompt, "Target Role: Backend Developer")
}

func TestAnalyzeFillsEmptyLLMFields(t *testing.T) {
	p := model.UserProfile{CurrentSkills: []string{"Go"}, TargetRole: "Backend Developer"}
	llm := &fakeLLM{text: `{"skillGaps": [], "careerPath": {"expectedSalary": 100}}`}

	a, err := analyze(context.Background(), llm, p, emptyTrend(), emptyJobs(), nil)
	require.NoError(t, err)
	assert.False(t, a.Fallback)
	assert.NotEmpty(t, a.SkillGaps)
	assert.Equal(t, "Senior Backend Developer", a.CareerPath.NextRole)
	assert.Equal(t, "12-18 months", a.CareerPath.Timeline)
	assert.Equal(t, 100.0, a.CareerPath.ExpectedSalary)
}

func TestAnalyzeWithoutGenerator(t *testing.T) {
	p := model.UserProfile{CurrentSkills: []string{"Go"}, TargetRole: "Backend Developer"}
	a, err := analyze(context.Background(), nil, p, emptyTrend(), emptyJobs(), nil)
	require.NoError(t, err)
	assert.True(t, a.Fallback)
}
