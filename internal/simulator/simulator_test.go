package simulator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	text   string
	err    error
	prompt string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

var errBoom = errors.New("boom")

func validProfile() Profile {
	return Profile{
		Skills:     []string{" JavaScript ", "React", "Python"},
		Interests:  []string{"Web Development", "AI/ML", "Data Science", "Design"},
		Experience: "Fresher",
		Education:  "B.Tech Computer Science",
		Location:   "Bangalore, India",
	}
}

func TestNormalized(t *testing.T) {
	p := Profile{
		Skills:      []string{" Go ", "", "  "},
		Interests:   []string{"Cloud"},
		Experience:  " 1-2 years ",
		CareerGoals: "  ",
	}.Normalized()

	assert.Equal(t, []string{"Go"}, p.Skills)
	assert.Equal(t, "1-2 years", p.Experience)
	assert.Equal(t, "", p.CareerGoals)
	assert.Equal(t, "3-year", p.TimeHorizon)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Profile)
		wantErr bool
	}{
		{"valid", func(*Profile) {}, false},
		{"valid horizon", func(p *Profile) { p.TimeHorizon = "10-year" }, false},
		{"no skills", func(p *Profile) { p.Skills = nil }, true},
		{"blank skills only", func(p *Profile) { p.Skills = []string{"  "} }, true},
		{"no interests", func(p *Profile) { p.Interests = []string{} }, true},
		{"no education", func(p *Profile) { p.Education = " " }, true},
		{"no location", func(p *Profile) { p.Location = "" }, true},
		{"bad horizon", func(p *Profile) { p.TimeHorizon = "2-year" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := p.Normalized().Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatchScore(t *testing.T) {
	fullStack := []string{"JavaScript", "React", "Node.js"}

	tests := []struct {
		name     string
		skills   []string
		required []string
		want     float64
	}{
		{"all covered both directions", []string{"JavaScript", "React.js", "Node"}, fullStack, 100},
		{"one of three", []string{"Python"}, []string{"Python", "Statistics", "Machine Learning"}, 33},
		{"two of three rounds up", []string{"Python", "Statistics"}, []string{"Python", "Statistics", "Machine Learning"}, 67},
		{"java matches javascript", []string{"Java"}, fullStack, 33},
		{"no overlap", []string{"Excel"}, fullStack, 0},
		{"capped at 100", []string{"React", "React Native", "JavaScript", "Node.js"}, fullStack, 100},
		{"blank skill ignored", []string{""}, fullStack, 0},
		{"no requirements", []string{"Go"}, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchScore(tt.skills, tt.required))
		})
	}
}

func TestTimeToReady(t *testing.T) {
	assert.Equal(t, "3-6 months", TimeToReady(80))
	assert.Equal(t, "6-12 months", TimeToReady(67))
	assert.Equal(t, "1-2 years", TimeToReady(40))
	assert.Equal(t, "2-3 years", TimeToReady(33))
}

func TestCriticalGaps(t *testing.T) {
	assert.Equal(t,
		[]string{"Machine Learning", "Cloud Computing", "System Design", "Data Structures", "Algorithms"},
		CriticalGaps(nil))

	assert.Equal(t,
		[]string{"System Design", "Data Structures", "Algorithms", "API Development", "Database Design"},
		CriticalGaps([]string{"Python", "machine learning", "AWS Cloud Computing"}))
}

func TestFallbackIsDeterministic(t *testing.T) {
	p := validProfile().Normalized()

	a := Fallback(p)
	b := Fallback(p)
	assert.Equal(t, a, b)

	require.Len(t, a.RecommendedPaths, 3)
	fs := a.RecommendedPaths[0]
	assert.Equal(t, "fullstack-developer", fs.ID)
	assert.Equal(t, 67.0, fs.MatchScore)
	assert.Equal(t, 33.0, fs.TotalSkillGap)
	assert.Equal(t, "6-12 months", fs.EstimatedTimeToReady)
	assert.Len(t, fs.Milestones, 2)
	assert.Equal(t, "₹6-12 LPA", fs.AverageStartingSalary)

	ds := a.RecommendedPaths[1]
	assert.Equal(t, 33.0, ds.MatchScore)
	assert.Equal(t, "2-3 years", ds.EstimatedTimeToReady)
	assert.Equal(t, "Exponential", ds.GrowthPotential)

	assert.True(t, a.Fallback)
	assert.Len(t, a.SkillGapAnalysis.CriticalGaps, 5)
}

func TestSimulateDecodesModelReply(t *testing.T) {
	llm := &fakeLLM{text: "Here is your plan:\n```json\n" + `{
  "recommendedPaths": [{"id": "ml-engineer", "title": "ML Engineer", "matchScore": 72.5, "milestones": []}],
  "skillGapAnalysis": {"criticalGaps": ["MLOps"]},
  "marketInsights": {"industryGrowth": {"AI": "Booming"}}
}` + "\n```"}

	res, err := New(llm).Simulate(context.Background(), validProfile())
	require.NoError(t, err)

	assert.False(t, res.Fallback)
	require.Len(t, res.RecommendedPaths, 1)
	assert.Equal(t, "ML Engineer", res.RecommendedPaths[0].Title)
	assert.Equal(t, 72.5, res.RecommendedPaths[0].MatchScore)
	assert.Equal(t, []string{"MLOps"}, res.SkillGapAnalysis.CriticalGaps)
	assert.Equal(t, "Booming", res.MarketInsights.IndustryGrowth["AI"])

	assert.Contains(t, llm.prompt, "Current Skills: JavaScript, React, Python")
	assert.Contains(t, llm.prompt, "Time Horizon: 3-year")
	assert.Contains(t, llm.prompt, "Preferred Industries: Not specified")
}

func TestSimulateFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"prose", "Consider becoming a full stack developer."},
		{"wrong types", `{"recommendedPaths": [{"title": "X", "matchScore": "high"}]}`},
		{"no paths", `{"recommendedPaths": []}`},
		{"truncated", `{"recommendedPaths": [{"title": "X"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := New(&fakeLLM{text: tt.reply}).Simulate(context.Background(), validProfile())
			require.NoError(t, err)
			assert.True(t, res.Fallback)
			assert.Len(t, res.RecommendedPaths, 3)
		})
	}
}

func TestSimulateErrors(t *testing.T) {
	t.Run("invalid profile", func(t *testing.T) {
		p := validProfile()
		p.Interests = nil
		_, err := New(&fakeLLM{}).Simulate(context.Background(), p)
		assert.ErrorIs(t, err, ErrInvalidProfile)
	})

	t.Run("no generator", func(t *testing.T) {
		_, err := New(nil).Simulate(context.Background(), validProfile())
		assert.ErrorIs(t, err, ErrGeneratorUnavailable)
	})

	t.Run("generator failure", func(t *testing.T) {
		_, err := New(&fakeLLM{err: errBoom}).Simulate(context.Background(), validProfile())
		assert.ErrorIs(t, err, ErrGeneratorUnavailable)
		assert.ErrorIs(t, err, errBoom)
	})
}
