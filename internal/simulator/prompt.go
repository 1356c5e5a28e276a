package simulator

import (
	"fmt"
	"strings"
)

func orNone(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

// BuildPrompt renders the simulation request for a normalized profile.
func BuildPrompt(p Profile) string {
	var b strings.Builder

	b.WriteString("You are a career advisor focused on the Indian job market and global remote opportunities.\n")
	b.WriteString("Simulate realistic career paths for the student profile below.\n\n")

	b.WriteString("STUDENT PROFILE:\n")
	fmt.Fprintf(&b, "- Current Skills: %s\n", strings.Join(p.Skills, ", "))
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(p.Interests, ", "))
	fmt.Fprintf(&b, "- Experience Level: %s\n", p.Experience)
	fmt.Fprintf(&b, "- Education: %s\n", p.Education)
	fmt.Fprintf(&b, "- Location: %s\n", p.Location)
	fmt.Fprintf(&b, "- Preferred Industries: %s\n", orNone(strings.Join(p.PreferredIndustries, ", ")))
	fmt.Fprintf(&b, "- Career Goals: %s\n", orNone(p.CareerGoals))
	fmt.Fprintf(&b, "- Time Horizon: %s\n\n", p.TimeHorizon)

	b.WriteString("Cover:\n")
	b.WriteString("1. Up to 5 recommended career paths with a 0-100 match score, growth potential, industry demand, ")
	b.WriteString("starting and mid-career salary in INR (LPA), companies hiring in India, and a milestone timeline ")
	b.WriteString("(timeframe, title, skills to acquire, projects, certifications, courses, salary range, demand).\n")
	b.WriteString("2. Skill gaps: critical gaps, quick wins learnable in 3-6 months, long-term skills.\n")
	b.WriteString("3. Market insights: trending skills, declining skills, emerging roles, growth per industry.\n")
	b.WriteString("4. An action plan: next 30 days, 3-6 months, 1-3 years.\n\n")

	b.WriteString("Keep timelines realistic and salaries specific to India. ")
	b.WriteString("Respond with ONLY a JSON object of this shape:\n")
	b.WriteString(`{"recommendedPaths":[{"id":"","title":"","description":"","matchScore":0,"growthPotential":"","industryDemand":"",`)
	b.WriteString(`"averageStartingSalary":"","averageMidCareerSalary":"","keyCompanies":[],"milestones":[{"timeframe":"","title":"",`)
	b.WriteString(`"description":"","requiredSkills":[],"skillsToAcquire":[],"averageSalary":"","jobMarketDemand":"",`)
	b.WriteString(`"projectsSuggestions":[],"certifications":[],"courses":[]}],"totalSkillGap":0,"estimatedTimeToReady":"",`)
	b.WriteString(`"alternativePaths":[],"emergingOpportunities":[]}],`)
	b.WriteString(`"skillGapAnalysis":{"criticalGaps":[],"quickWins":[],"longTermSkills":[]},`)
	b.WriteString(`"marketInsights":{"trendingSkills":[],"decliningSkills":[],"emergingRoles":[],"industryGrowth":{}},`)
	b.WriteString(`"personalizedRecommendations":{"immediateActions":[],"shortTermGoals":[],"longTermStrategy":[]}}`)
	b.WriteString("\n")

	return b.String()
}
