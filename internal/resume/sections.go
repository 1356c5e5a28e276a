package resume

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Section weights of the overall score.
const (
	weightATS        = 0.25
	weightContent    = 0.25
	weightKeywords   = 0.20
	weightFormatting = 0.15
	weightExperience = 0.15
)

const (
	keywordScoreBoost  = 20
	maxMissingKeywords = 10
	minWords           = 200
	maxWords           = 1000
	minBullets         = 5
	minNumbers         = 5
)

var (
	bulletRe = regexp.MustCompile(`[•\-*]`)
	numberRe = regexp.MustCompile(`\d+`)
)

// OverallScore combines the five section scores by weight.
func OverallScore(s Sections) int {
	return int(math.Round(
		float64(s.ATSCompatibility.Score)*weightATS +
			float64(s.ContentQuality.Score)*weightContent +
			float64(s.KeywordOptimization.Score)*weightKeywords +
			float64(s.Formatting.Score)*weightFormatting +
			float64(s.ExperienceRelevance.Score)*weightExperience,
	))
}

// ATSCompatibility deducts for missing contact details, missing standard
// sections and table-like layout characters.
func ATSCompatibility(text string, data ExtractedData) Section {
	score := 100
	feedback := []string{}
	improvements := []string{}

	deduct := func(points int, fb, imp string) {
		score -= points
		feedback = append(feedback, fb)
		improvements = append(improvements, imp)
	}

	if data.PersonalInfo.Email == "" {
		deduct(15, "❌ Missing email address", "Add a professional email address")
	}
	if data.PersonalInfo.Phone == "" {
		deduct(10, "⚠️ Missing phone number", "Include your phone number for contact")
	}
	if len(data.Experience) == 0 {
		deduct(20, "❌ No work experience section found", "Add a detailed work experience section")
	}
	if len(data.Education) == 0 {
		deduct(15, "⚠️ No education section found", "Include your educational background")
	}
	if len(data.Skills) == 0 {
		deduct(15, "❌ No skills section found", "Add a comprehensive skills section")
	}
	if strings.ContainsAny(text, "|│") {
		deduct(10, "⚠️ Complex formatting detected (tables/columns)", "Use simple formatting without tables or columns")
	}

	switch {
	case score >= 80:
		feedback = append(feedback, "✅ Good ATS compatibility")
	case score >= 60:
		feedback = append(feedback, "⚠️ Moderate ATS compatibility")
	default:
		feedback = append(feedback, "❌ Poor ATS compatibility - needs significant improvement")
	}

	return Section{Score: max(0, score), Feedback: feedback, Improvements: improvements}
}

// KeywordOptimization scores the share of industry keywords present in
// the text, boosted by 20 and capped at 100.
func KeywordOptimization(text string, keywords []string) KeywordSection {
	lower := strings.ToLower(text)
	matched := []string{}
	missing := []string{}

	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	var pct float64
	if len(keywords) > 0 {
		pct = float64(len(matched)) / float64(len(keywords)) * 100
	}
	score := int(math.Round(math.Min(100, pct+keywordScoreBoost)))

	var feedback []string
	switch {
	case score >= 80:
		feedback = append(feedback, "✅ Excellent keyword optimization")
	case score >= 60:
		feedback = append(feedback, "⚠️ Good keyword coverage, room for improvement")
	default:
		feedback = append(feedback, "❌ Low keyword optimization")
	}
	feedback = append(feedback, fmt.Sprintf("📊 Matched %d/%d industry keywords", len(matched), len(keywords)))

	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}

	return KeywordSection{
		Score:           score,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		Feedback:        feedback,
	}
}

// Formatting checks length, bullet usage and quantified content.
func Formatting(text string) Section {
	score := 100
	feedback := []string{}
	improvements := []string{}

	switch words := len(strings.Fields(text)); {
	case words < minWords:
		score -= 20
		feedback = append(feedback, "❌ Resume too short")
		improvements = append(improvements, "Expand content to 300-800 words")
	case words > maxWords:
		score -= 15
		feedback = append(feedback, "⚠️ Resume might be too long")
		improvements = append(improvements, "Consider condensing to 1-2 pages")
	default:
		feedback = append(feedback, "✅ Good length")
	}

	if len(bulletRe.FindAllStringIndex(text, -1)) < minBullets {
		score -= 10
		feedback = append(feedback, "⚠️ Few bullet points detected")
		improvements = append(improvements, "Use bullet points to highlight achievements")
	} else {
		feedback = append(feedback, "✅ Good use of bullet points")
	}

	if len(numberRe.FindAllStringIndex(text, -1)) < minNumbers {
		score -= 15
		feedback = append(feedback, "❌ Few quantifiable metrics")
		improvements = append(improvements, "Add numbers, percentages, and measurable achievements")
	} else {
		feedback = append(feedback, "✅ Good use of quantifiable metrics")
	}

	return Section{Score: max(0, score), Feedback: feedback, Improvements: improvements}
}

// ExperienceRelevance scores the share of experience entries whose title
// or description mentions a word of the target role.
func ExperienceRelevance(data ExtractedData, targetRole string) Section {
	if len(data.Experience) == 0 {
		return Section{
			Score:        0,
			Feedback:     []string{"❌ No work experience found"},
			Improvements: []string{"Add relevant work experience"},
		}
	}

	roleWords := strings.Fields(strings.ToLower(targetRole))
	relevant := 0
	for _, exp := range data.Experience {
		text := strings.ToLower(string(exp.Title) + " " + string(exp.Description))
		for _, w := range roleWords {
			if strings.Contains(text, w) {
				relevant++
				break
			}
		}
	}

	score := 100
	feedback := []string{}
	improvements := []string{}

	switch ratio := float64(relevant) / float64(len(data.Experience)); {
	case ratio >= 0.7:
		feedback = append(feedback, "✅ High experience relevance")
	case ratio >= 0.4:
		score -= 20
		feedback = append(feedback, "⚠️ Moderate experience relevance")
		improvements = append(improvements, "Highlight more relevant experience for the target role")
	default:
		score -= 40
		feedback = append(feedback, "❌ Low experience relevance")
		improvements = append(improvements, "Focus on experience that aligns with the target role")
	}

	return Section{Score: score, Feedback: feedback, Improvements: improvements}
}
