package simulator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const defaultTimeHorizon = "3-year"

var validate = validator.New()

// Profile is the student profile a simulation is run for.
type Profile struct {
	Skills              []string `json:"skills" validate:"required,min=1,dive,required"`
	Interests           []string `json:"interests" validate:"required,min=1,dive,required"`
	Experience          string   `json:"experience" validate:"required"`
	Education           string   `json:"education" validate:"required"`
	Location            string   `json:"location" validate:"required"`
	PreferredIndustries []string `json:"preferredIndustries,omitempty"`
	CareerGoals         string   `json:"careerGoals,omitempty"`
	TimeHorizon         string   `json:"timeHorizon,omitempty" validate:"omitempty,oneof=1-year 3-year 5-year 10-year"`
}

// Normalized trims every field and applies the default time horizon.
func (p Profile) Normalized() Profile {
	out := Profile{
		Skills:              trimAll(p.Skills),
		Interests:           trimAll(p.Interests),
		Experience:          strings.TrimSpace(p.Experience),
		Education:           strings.TrimSpace(p.Education),
		Location:            strings.TrimSpace(p.Location),
		PreferredIndustries: trimAll(p.PreferredIndustries),
		CareerGoals:         strings.TrimSpace(p.CareerGoals),
		TimeHorizon:         strings.TrimSpace(p.TimeHorizon),
	}
	if out.TimeHorizon == "" {
		out.TimeHorizon = defaultTimeHorizon
	}
	return out
}

// Validate runs on the normalized profile so blank entries count as missing.
func (p Profile) Validate() error {
	return validate.Struct(p)
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

type Milestone struct {
	Timeframe           string   `json:"timeframe"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	RequiredSkills      []string `json:"requiredSkills"`
	SkillsToAcquire     []string `json:"skillsToAcquire"`
	AverageSalary       string   `json:"averageSalary"`
	JobMarketDemand     string   `json:"jobMarketDemand"`
	ProjectsSuggestions []string `json:"projectsSuggestions"`
	Certifications      []string `json:"certifications"`
	Courses             []string `json:"courses"`
}

type CareerPath struct {
	ID                     string      `json:"id"`
	Title                  string      `json:"title"`
	Description            string      `json:"description"`
	MatchScore             float64     `json:"matchScore"`
	GrowthPotential        string      `json:"growthPotential"`
	IndustryDemand         string      `json:"industryDemand"`
	AverageStartingSalary  string      `json:"averageStartingSalary"`
	AverageMidCareerSalary string      `json:"averageMidCareerSalary"`
	KeyCompanies           []string    `json:"keyCompanies"`
	Milestones             []Milestone `json:"milestones"`
	TotalSkillGap          float64     `json:"totalSkillGap"`
	EstimatedTimeToReady   string      `json:"estimatedTimeToReady"`
	AlternativePaths       []string    `json:"alternativePaths"`
	EmergingOpportunities  []string    `json:"emergingOpportunities"`
}

type SkillGapAnalysis struct {
	CriticalGaps   []string `json:"criticalGaps"`
	QuickWins      []string `json:"quickWins"`
	LongTermSkills []string `json:"longTermSkills"`
}

type MarketInsights struct {
	TrendingSkills  []string          `json:"trendingSkills"`
	DecliningSkills []string          `json:"decliningSkills"`
	EmergingRoles   []string          `json:"emergingRoles"`
	IndustryGrowth  map[string]string `json:"industryGrowth"`
}

type Recommendations struct {
	ImmediateActions []string `json:"immediateActions"`
	ShortTermGoals   []string `json:"shortTermGoals"`
	LongTermStrategy []string `json:"longTermStrategy"`
}

// Result is the simulation payload, either decoded from the model or built
// by the deterministic fallback.
type Result struct {
	RecommendedPaths            []CareerPath     `json:"recommendedPaths"`
	SkillGapAnalysis            SkillGapAnalysis `json:"skillGapAnalysis"`
	MarketInsights              MarketInsights   `json:"marketInsights"`
	PersonalizedRecommendations Recommendations  `json:"personalizedRecommendations"`
	// Fallback is true when the result did not come from the model.
	Fallback bool `json:"-"`
}
