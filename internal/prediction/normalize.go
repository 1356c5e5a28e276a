package prediction

import (
	"math"
	"strings"

	"github.com/yourusername/careerradar-api/internal/model"
)

const (
	defaultSalaryIncrease = 200000
	defaultImportance     = 5
	defaultGapDemand      = 10
	defaultTimeToLearn    = "2-3 months"
	minCareerRaise        = 300000
	newSkillsRaise        = 500000
	maxSkillBonus         = 1000000
	marketSalaryCeiling   = 5000000
	maxPlausibleIncrease  = 5000000
	maxCareerSalary       = marketSalaryCeiling * 4
)

var experienceMultipliers = map[string]float64{
	"Entry-level":               0.6,
	"Student/New Graduate":      0.5,
	"Entry Level (0-2 years)":   0.6,
	"Mid-level":                 1.0,
	"Mid Level (2-5 years)":     1.0,
	"Senior":                    1.8,
	"Senior Level (5-8 years)":  1.8,
	"Lead":                      2.5,
	"Lead/Architect (8+ years)": 2.5,
}

var experienceFloors = map[string]float64{
	"Student/New Graduate":      400000,
	"Entry-level":               500000,
	"Entry Level (0-2 years)":   500000,
	"Mid-level":                 800000,
	"Mid Level (2-5 years)":     800000,
	"Senior":                    1500000,
	"Senior Level (5-8 years)":  1500000,
	"Lead":                      2500000,
	"Lead/Architect (8+ years)": 2500000,
}

var roleMultipliers = map[string]float64{
	"Full Stack Developer": 1.0,
	"Frontend Developer":   0.9,
	"Backend Developer":    1.1,
	"DevOps Engineer":      1.3,
	"Data Scientist":       1.4,
	"Data Engineer":        1.3,
	"Mobile Developer":     1.0,
	"Product Manager":      1.6,
	"ML Engineer":          1.5,
	"Cloud Architect":      1.8,
}

// CurrentSalary estimates the user's present yearly salary in INR.
func CurrentSalary(p model.UserProfile, marketAvg float64, skillDemand map[string]int) int64 {
	return baseSalary(p.Experience, p.TargetRole, marketAvg) + skillBonus(p.CurrentSkills, skillDemand)
}

func baseSalary(experience, role string, marketAvg float64) int64 {
	base := 800000.0
	switch {
	case strings.Contains(role, "Data Scientist"):
		base = 1200000
	case strings.Contains(role, "DevOps"):
		base = 1000000
	case strings.Contains(role, "Product Manager"):
		base = 1400000
	}
	if marketAvg > 0 && marketAvg < marketSalaryCeiling {
		base = marketAvg
	}

	expMult, ok := experienceMultipliers[experience]
	if !ok {
		expMult = 1.0
	}
	roleMult, ok := roleMultipliers[role]
	if !ok {
		roleMult = 1.0
	}
	floor, ok := experienceFloors[experience]
	if !ok {
		floor = 800000
	}

	return int64(math.Max(math.Round(base*expMult*roleMult), floor))
}

func skillBonus(skills []string, demand map[string]int) int64 {
	var bonus int64
	for _, s := range skills {
		switch d := demand[strings.ToLower(s)]; {
		case d > 10:
			bonus += 200000
		case d > 5:
			bonus += 100000
		case d > 1:
			bonus += 50000
		}
	}
	return min(bonus, maxSkillBonus)
}

// NormalizeSkillGaps substitutes defaults for missing or invalid numbers and
// clamps importance to 1-10. Demand is re-read from the collected data.
func NormalizeSkillGaps(drafts []GapDraft, trendFreq, jobDemand map[string]int) []model.SkillGap {
	gaps := make([]model.SkillGap, 0, len(drafts))
	for _, d := range drafts {
		if d.Skill == "" {
			continue
		}

		increase := d.AvgSalaryIncrease
		if !finitePositive(increase) || increase > maxPlausibleIncrease {
			increase = defaultSalaryIncrease
		}

		importance := d.Importance
		if !finitePositive(importance) {
			importance = defaultImportance
		}
		importance = math.Min(10, math.Max(1, math.Round(importance)))

		key := strings.ToLower(d.Skill)
		demand := trendFreq[key]
		if demand == 0 {
			demand = jobDemand[key]
		}
		if demand == 0 {
			demand = defaultGapDemand
		}

		timeToLearn := strings.TrimSpace(d.TimeToLearn)
		if timeToLearn == "" {
			timeToLearn = defaultTimeToLearn
		}

		path := d.LearningPath
		if path == nil {
			path = []string{}
		}

		gaps = append(gaps, model.SkillGap{
			Skill:             d.Skill,
			Importance:        int(importance),
			CurrentDemand:     demand,
			AvgSalaryIncrease: int64(math.Round(increase)),
			LearningPath:      path,
			TimeToLearn:       timeToLearn,
		})
	}
	return gaps
}

// NormalizeCareerPath guarantees expectedSalary exceeds current by at least 300,000.
func NormalizeCareerPath(d PathDraft, current int64) model.CareerPath {
	cur := float64(current)
	expected := d.ExpectedSalary
	if !finitePositive(expected) || expected <= cur {
		expected = math.Max(math.Round(cur*1.6), math.Max(cur+newSkillsRaise, minNextRoleSalary))
	}
	if expected <= cur {
		expected = math.Round(cur * 1.5)
	}
	// Clamp before the raise floor so the floor always holds.
	expected = math.Min(expected, maxCareerSalary)
	expected = math.Max(expected, cur+minCareerRaise)

	timeline := d.Timeline
	if strings.TrimSpace(timeline) == "" {
		timeline = "12-18 months"
	}
	required := d.RequiredSkills
	if required == nil {
		required = []string{}
	}

	return model.CareerPath{
		NextRole:       d.NextRole,
		Timeline:       timeline,
		RequiredSkills: required,
		ExpectedSalary: int64(math.Round(expected)),
	}
}

func finitePositive(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}
