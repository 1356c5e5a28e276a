package simulator

import (
	"math"
	"strings"
)

const maxCriticalGaps = 5

var criticalSkills = []string{
	"Machine Learning", "Cloud Computing", "System Design",
	"Data Structures", "Algorithms", "API Development",
	"Database Design", "Security Best Practices",
}

var keyCompanies = []string{"Google", "Microsoft", "Amazon", "Flipkart", "Swiggy", "Zomato"}

type samplePath struct {
	id, title, description string
	required               []string
	growth, demand         string
	starting, midCareer    string
}

var samplePaths = []samplePath{
	{
		id:          "fullstack-developer",
		title:       "Full Stack Developer",
		description: "Build end-to-end web applications using modern technologies",
		required:    []string{"JavaScript", "React", "Node.js"},
		growth:      "High",
		demand:      "Booming",
		starting:    "₹6-12 LPA",
		midCareer:   "₹15-30 LPA",
	},
	{
		id:          "data-scientist",
		title:       "Data Scientist",
		description: "Extract insights from data to drive business decisions",
		required:    []string{"Python", "Statistics", "Machine Learning"},
		growth:      "Exponential",
		demand:      "Very High",
		starting:    "₹8-15 LPA",
		midCareer:   "₹20-40 LPA",
	},
	{
		id:          "product-manager",
		title:       "Product Manager",
		description: "Drive product strategy and coordinate cross-functional teams",
		required:    []string{"Strategy", "Analytics", "Communication"},
		growth:      "High",
		demand:      "High",
		starting:    "₹10-18 LPA",
		midCareer:   "₹25-50 LPA",
	},
}

// MatchScore is the share of required skills covered by the user's skills,
// counting a user skill once when either string contains the other.
func MatchScore(userSkills, required []string) float64 {
	if len(required) == 0 {
		return 0
	}
	matches := 0
	for _, s := range userSkills {
		ls := strings.ToLower(strings.TrimSpace(s))
		if ls == "" {
			continue
		}
		for _, r := range required {
			lr := strings.ToLower(r)
			if strings.Contains(ls, lr) || strings.Contains(lr, ls) {
				matches++
				break
			}
		}
	}
	return math.Min(100, math.Round(float64(matches)/float64(len(required))*100))
}

// TimeToReady maps a match score to a rough preparation window.
func TimeToReady(score float64) string {
	switch {
	case score >= 80:
		return "3-6 months"
	case score >= 60:
		return "6-12 months"
	case score >= 40:
		return "1-2 years"
	default:
		return "2-3 years"
	}
}

// CriticalGaps returns up to five critical skills no user skill mentions.
func CriticalGaps(userSkills []string) []string {
	gaps := make([]string, 0, maxCriticalGaps)
	for _, c := range criticalSkills {
		lc := strings.ToLower(c)
		covered := false
		for _, s := range userSkills {
			if strings.Contains(strings.ToLower(s), lc) {
				covered = true
				break
			}
		}
		if !covered {
			gaps = append(gaps, c)
		}
		if len(gaps) == maxCriticalGaps {
			break
		}
	}
	return gaps
}

func milestones() []Milestone {
	return []Milestone{
		{
			Timeframe:           "6 months",
			Title:               "Junior Developer",
			Description:         "Entry-level position with mentorship",
			RequiredSkills:      []string{"Basic Programming", "Problem Solving"},
			SkillsToAcquire:     []string{"Framework Fundamentals", "Version Control"},
			AverageSalary:       "₹3-6 LPA",
			JobMarketDemand:     "High",
			ProjectsSuggestions: []string{"Personal Portfolio", "Simple CRUD App"},
			Certifications:      []string{"Google IT Support", "FreeCodeCamp"},
			Courses:             []string{"The Complete Web Developer Course", "Data Structures Algorithms"},
		},
		{
			Timeframe:           "2 years",
			Title:               "Mid-Level Developer",
			Description:         "Independent contributor with project ownership",
			RequiredSkills:      []string{"Advanced Framework Knowledge", "Database Design"},
			SkillsToAcquire:     []string{"System Design", "Performance Optimization"},
			AverageSalary:       "₹8-15 LPA",
			JobMarketDemand:     "Very High",
			ProjectsSuggestions: []string{"E-commerce Platform", "Real-time Chat App"},
			Certifications:      []string{"AWS Solutions Architect", "Google Cloud Professional"},
			Courses:             []string{"System Design Interview", "Advanced React Patterns"},
		},
	}
}

func samplePathsFor(p Profile) []CareerPath {
	out := make([]CareerPath, 0, len(samplePaths))
	for _, sp := range samplePaths {
		score := MatchScore(p.Skills, sp.required)
		out = append(out, CareerPath{
			ID:                     sp.id,
			Title:                  sp.title,
			Description:            sp.description,
			MatchScore:             score,
			GrowthPotential:        sp.growth,
			IndustryDemand:         sp.demand,
			AverageStartingSalary:  sp.starting,
			AverageMidCareerSalary: sp.midCareer,
			KeyCompanies:           append([]string{}, keyCompanies...),
			Milestones:             milestones(),
			TotalSkillGap:          math.Max(0, 100-score),
			EstimatedTimeToReady:   TimeToReady(score),
			AlternativePaths:       []string{"DevOps Engineer", "Technical Architect", "Startup Founder"},
			EmergingOpportunities:  []string{"AI Integration Specialist", "Remote Team Lead", "Tech Content Creator"},
		})
	}
	return out
}

// Fallback builds the deterministic simulation used when the model reply
// cannot be decoded.
func Fallback(p Profile) *Result {
	return &Result{
		RecommendedPaths: samplePathsFor(p),
		SkillGapAnalysis: SkillGapAnalysis{
			CriticalGaps:   CriticalGaps(p.Skills),
			QuickWins:      []string{"Communication Skills", "Basic Programming", "Project Management"},
			LongTermSkills: []string{"AI/ML Expertise", "System Design", "Leadership"},
		},
		MarketInsights: MarketInsights{
			TrendingSkills:  []string{"Generative AI", "Cloud Computing", "Data Science", "Cybersecurity"},
			DecliningSkills: []string{"Legacy Systems", "Manual Testing"},
			EmergingRoles:   []string{"AI Prompt Engineer", "Sustainability Consultant", "Remote Work Facilitator"},
			IndustryGrowth: map[string]string{
				"Technology": "Very High",
				"Healthcare": "High",
				"FinTech":    "High",
				"EdTech":     "Medium",
			},
		},
		PersonalizedRecommendations: Recommendations{
			ImmediateActions: []string{
				"Update LinkedIn profile with current skills",
				"Start a personal project portfolio",
				"Join relevant professional communities",
			},
			ShortTermGoals: []string{
				"Complete 2-3 online certifications",
				"Build 1-2 substantial projects",
				"Network with industry professionals",
			},
			LongTermStrategy: []string{
				"Specialize in emerging technologies",
				"Develop leadership and soft skills",
				"Build a strong professional brand",
			},
		},
		Fallback: true,
	}
}
