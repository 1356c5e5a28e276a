package prediction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/careerradar-api/internal/model"
)

func TestParseSalary(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"₹12 LPA", 1200000, true},
		{"12.5 lakhs a year", 1250000, true},
		{"15L", 1500000, true},
		{"₹8,00,000 a year", 800000, true},
		{"₹25,000 a month", 25000, true},
		{"12-18 LPA", 1200000, true},
		{"Competitive", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseSalary(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestExperienceLevel(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"senior python developer", model.LevelSenior},
		{"tech lead", model.LevelSenior},
		{"python developer 2-5 years", model.LevelMid},
		{"junior analyst", model.LevelEntry},
		{"fresher hiring", model.LevelEntry},
		{"data analyst", model.LevelMid},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, experienceLevel(tt.text))
		})
	}
}

func TestAnalyzeListings(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	listings := []model.JobListing{
		{Title: "Python Developer", Description: "Django and SQL", SalaryText: "₹10 LPA", Location: "Pune"},
		{Title: "Senior Data Engineer", Description: "Python, AWS", SalaryMin: 2000000, Location: "Pune", PostedAt: "2 days ago"},
		{Title: "Intern", Description: "Learn Java"},
	}

	data := analyzeListings(listings, now)

	require.Len(t, data.Postings, 3)
	first := data.Postings[0]
	assert.Equal(t, []string{"python", "sql", "django"}, first.Skills)
	require.NotNil(t, first.Salary)
	assert.Equal(t, model.SalaryRange{Min: 1000000, Max: 1300000, Currency: "INR"}, *first.Salary)
	assert.Equal(t, "2025-03-01T10:00:00Z", first.PostedDate)

	second := data.Postings[1]
	assert.Equal(t, model.LevelSenior, second.ExperienceLevel)
	assert.Equal(t, model.SalaryRange{Min: 2000000, Max: 2600000, Currency: "INR"}, *second.Salary)
	assert.Equal(t, "2 days ago", second.PostedDate)

	assert.Nil(t, data.Postings[2].Salary)
	assert.Equal(t, model.LevelMid, data.Postings[2].ExperienceLevel)

	assert.InDelta(t, 1500000, data.AvgSalary, 0.001)
	assert.Equal(t, map[string]float64{"Pune": 1500000}, data.LocationSalaries)
	assert.Equal(t, map[string]int{"python": 2, "sql": 1, "django": 1, "aws": 1, "java": 1}, data.SkillDemand)
	assert.Equal(t, []string{"python", "java", "sql", "aws", "django"}, data.RankedSkills())
}

func TestCollectJobMarket(t *testing.T) {
	jobs := &fakeJobs{listings: []model.JobListing{{Title: "React Developer"}}}

	data, err := collectJobMarket(context.Background(), jobs, "Frontend Developer", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Frontend Developer India developer", jobs.query)
	assert.Equal(t, "India", jobs.location)
	assert.Len(t, data.Postings, 1)
	assert.Zero(t, data.AvgSalary)
}

func TestCollectJobMarketFailureIsFatal(t *testing.T) {
	_, err := collectJobMarket(context.Background(), &fakeJobs{err: errBoom}, "SRE", "Pune", time.Now())
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, errBoom)

	_, err = collectJobMarket(context.Background(), nil, "SRE", "Pune", time.Now())
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}
