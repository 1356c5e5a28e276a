package prediction

import (
	"fmt"
	"math"
	"strings"

	"github.com/yourusername/careerradar-api/internal/model"
)

// BuildAnalysisPrompt renders the advisor prompt from the profile and collected market data.
func BuildAnalysisPrompt(p model.UserProfile, trend *TrendData, jobs *JobMarketData, trends []model.MarketTrend) string {
	var b strings.Builder

	b.WriteString("You are a career advisor analyzing REAL Indian tech market data. Return ONLY valid JSON.\n\n")

	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&b, "- Current Skills: %s\n", strings.Join(p.CurrentSkills, ", "))
	fmt.Fprintf(&b, "- Target Role: %s\n", p.TargetRole)
	fmt.Fprintf(&b, "- Experience: %s\n", p.Experience)
	fmt.Fprintf(&b, "- Industry: %s\n\n", p.Industry)

	fmt.Fprintf(&b, "GOOGLE SEARCH DATA (%d search results analyzed):\n", len(trend.RelevantResults))
	fmt.Fprintf(&b, "- Top Trending: %s\n", strings.Join(head(trend.TrendingTechs, 8), ", "))
	demands := make([]string, 0, len(p.CurrentSkills))
	for _, s := range p.CurrentSkills {
		demands = append(demands, fmt.Sprintf("%s: %d", s, trend.SkillDemand[strings.ToLower(s)]))
	}
	fmt.Fprintf(&b, "- User Skills Demand: %s\n\n", strings.Join(demands, ", "))

	fmt.Fprintf(&b, "JOB MARKET DATA (%d postings):\n", len(jobs.Postings))
	fmt.Fprintf(&b, "- Average Salary: ₹%dL\n", lakhs(jobs.AvgSalary))
	var high []string
	for _, s := range head(jobs.RankedSkills(), 8) {
		high = append(high, fmt.Sprintf("%s(%d)", s, jobs.SkillDemand[s]))
	}
	fmt.Fprintf(&b, "- High Demand Skills: %s\n\n", strings.Join(high, ", "))

	b.WriteString("MARKET TRENDS:\n")
	for i, t := range trends {
		if i == 8 {
			break
		}
		fmt.Fprintf(&b, "%s: %d%% demand, ₹%dL avg\n", t.Skill, int(math.Round(t.DemandScore)), lakhs(float64(t.AvgSalaryINR)))
	}

	role := p.TargetRole
	b.WriteString("\nCAREER PROGRESSION RULES:\n")
	fmt.Fprintf(&b, "- %s → Senior %s (if not already senior)\n", role, role)
	fmt.Fprintf(&b, "- Senior %s → Lead/Principal %s\n", role, role)
	b.WriteString("- Salary must ALWAYS be higher than current: minimum 40% increase\n")
	b.WriteString("- Indian market ranges: Entry ₹4-8L, Mid ₹8-20L, Senior ₹20-35L, Lead ₹35L+\n\n")

	b.WriteString("Generate AT LEAST 4-6 skill gaps, focusing on emerging or advanced skills within the target role.\n\n")

	b.WriteString(`Return JSON with:
{
  "skillGaps": [
    {
      "skill": "skill_name",
      "importance": 1-10,
      "currentDemand": actual_demand_number,
      "avgSalaryIncrease": realistic_inr_amount_200000_to_800000,
      "learningPath": ["step1", "step2", "step3"],
      "timeToLearn": "X months"
    }
  ],
  "careerPath": {
    "nextRole": "proper_next_role_always_higher_than_current",
    "timeline": "12-18 months",
    "requiredSkills": ["skill1", "skill2"],
    "expectedSalary": realistic_higher_inr_amount_minimum_1400000
  }
}

Base recommendations on the data above. Use Indian salary ranges. NEVER make next role lower than current.
`)

	return b.String()
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func lakhs(amount float64) int64 {
	return int64(math.Round(amount / lakh))
}
