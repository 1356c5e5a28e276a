package prediction

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/careerradar-api/internal/model"
)

func TestCurrentSalary(t *testing.T) {
	tests := []struct {
		name       string
		experience string
		role       string
		marketAvg  float64
		want       int64
	}{
		{"mid data scientist", "Mid-level", "Data Scientist", 0, 1680000},
		{"senior frontend on market avg", "Senior", "Frontend Developer", 1000000, 1620000},
		{"student backend", "Student/New Graduate", "Backend Developer", 0, 440000},
		{"entry floor, outlier market avg ignored", "Entry-level", "Tester", 6000000, 500000},
		{"lead devops", "Lead", "DevOps Engineer", 0, 3250000},
		{"unknown experience", "Wizard", "Full Stack Developer", 0, 800000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.UserProfile{Experience: tt.experience, TargetRole: tt.role}
			assert.Equal(t, tt.want, CurrentSalary(p, tt.marketAvg, nil))
		})
	}
}

func TestSkillBonus(t *testing.T) {
	demand := map[string]int{"python": 12, "go": 6, "sql": 3}
	assert.Equal(t, int64(350000), skillBonus([]string{"Python", "Go", "SQL", "Rust"}, demand))

	hot := map[string]int{}
	var skills []string
	for i := 0; i < 6; i++ {
		s := fmt.Sprintf("s%d", i)
		hot[s] = 20
		skills = append(skills, s)
	}
	assert.Equal(t, int64(maxSkillBonus), skillBonus(skills, hot))
}

func TestNormalizeSkillGaps(t *testing.T) {
	nan := math.NaN()
	drafts := []GapDraft{
		{Skill: "Docker", Importance: nan, AvgSalaryIncrease: nan, CurrentDemand: nan},
		{Skill: "Kubernetes", Importance: 14, AvgSalaryIncrease: -5, TimeToLearn: "4 months", LearningPath: []string{"a"}},
		{Skill: "Rust", Importance: 0.4, AvgSalaryIncrease: math.Inf(1)},
		{Skill: "", Importance: 7},
		{Skill: "Terraform", Importance: 7.6, AvgSalaryIncrease: 350000.4},
		{Skill: "Go", Importance: 8, AvgSalaryIncrease: 1e19},
	}

	gaps := NormalizeSkillGaps(drafts,
		map[string]int{"docker": 9},
		map[string]int{"kubernetes": 2},
	)
	require.Len(t, gaps, 5)

	assert.Equal(t, model.SkillGap{Skill: "Docker", Importance: 5, CurrentDemand: 9, AvgSalaryIncrease: 200000, LearningPath: []string{}, TimeToLearn: "2-3 months"}, gaps[0])
	assert.Equal(t, 10, gaps[1].Importance)
	assert.Equal(t, 2, gaps[1].CurrentDemand)
	assert.Equal(t, int64(200000), gaps[1].AvgSalaryIncrease)
	assert.Equal(t, "4 months", gaps[1].TimeToLearn)
	assert.Equal(t, 1, gaps[2].Importance)
	assert.Equal(t, 10, gaps[2].CurrentDemand)
	assert.Equal(t, int64(200000), gaps[2].AvgSalaryIncrease)
	assert.Equal(t, 8, gaps[3].Importance)
	assert.Equal(t, int64(350000), gaps[3].AvgSalaryIncrease)
	assert.Equal(t, int64(200000), gaps[4].AvgSalaryIncrease)

	for _, g := range gaps {
		assert.GreaterOrEqual(t, g.Importance, 1)
		assert.LessOrEqual(t, g.Importance, 10)
		assert.GreaterOrEqual(t, g.AvgSalaryIncrease, int64(0))
	}
}

func TestNormalizeCareerPath(t *testing.T) {
	t.Run("missing salary re-derived", func(t *testing.T) {
		path := NormalizeCareerPath(PathDraft{NextRole: "Senior Data Scientist", ExpectedSalary: math.NaN()}, 1680000)
		assert.Equal(t, int64(2688000), path.ExpectedSalary)
		assert.Equal(t, "12-18 months", path.Timeline)
		assert.Equal(t, []string{}, path.RequiredSkills)
	})

	t.Run("small raise topped up", func(t *testing.T) {
		path := NormalizeCareerPath(PathDraft{ExpectedSalary: 1800000, Timeline: "6 months"}, 1680000)
		assert.Equal(t, int64(1980000), path.ExpectedSalary)
		assert.Equal(t, "6 months", path.Timeline)
	})

	t.Run("implausible salary clamped", func(t *testing.T) {
		path := NormalizeCareerPath(PathDraft{ExpectedSalary: 1e19}, 1680000)
		assert.Equal(t, int64(maxCareerSalary), path.ExpectedSalary)
	})

	t.Run("healthy salary kept", func(t *testing.T) {
		path := NormalizeCareerPath(PathDraft{ExpectedSalary: 3000000}, 1680000)
		assert.Equal(t, int64(3000000), path.ExpectedSalary)
	})
}

func TestNormalizeCareerPathAlwaysRaises(t *testing.T) {
	currents := []int64{0, 400000, 1680000, 5000000, 12000000}
	for _, cur := range currents {
		drafts := []float64{math.NaN(), math.Inf(-1), 0, -1, float64(cur - 1), float64(cur), float64(cur + 1), float64(cur + 300000), 1e9, 1e19, math.Inf(1)}
		for _, d := range drafts {
			path := NormalizeCareerPath(PathDraft{ExpectedSalary: d}, cur)
			assert.Greater(t, path.ExpectedSalary, cur, "current=%d draft=%v", cur, d)
			assert.GreaterOrEqual(t, path.ExpectedSalary-cur, int64(minCareerRaise), "current=%d draft=%v", cur, d)
		}
	}
}
