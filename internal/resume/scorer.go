package resume

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultRole = "Software Engineer"

	// MinTextLength is the shortest extracted text worth scoring.
	MinTextLength = 100

	maxPromptChars      = 30000
	defaultContentScore = 70
)

// ErrTooLittleText is returned when the resume text is shorter than MinTextLength.
var ErrTooLittleText = errors.New("too little resume text")

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// TextGenerator completes a prompt with a generative model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Scorer produces ATS reports. Model-backed sections fall back to fixed
// values when no generator is set or its reply is unusable.
type Scorer struct {
	llm TextGenerator
}

func NewScorer(llm TextGenerator) *Scorer {
	return &Scorer{llm: llm}
}

func (s *Scorer) Analyze(ctx context.Context, text, targetRole, targetIndustry string) (*Analysis, error) {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < MinTextLength {
		return nil, ErrTooLittleText
	}
	if strings.TrimSpace(targetRole) == "" {
		targetRole = DefaultRole
	}

	start := time.Now()
	log.Info().
		Str("target_role", targetRole).
		Str("target_industry", targetIndustry).
		Int("text_len", len(text)).
		Msg("Starting resume analysis")

	data := s.extractData(ctx, text)

	sections := Sections{
		ATSCompatibility:    ATSCompatibility(text, data),
		ContentQuality:      s.contentQuality(ctx, text),
		KeywordOptimization: KeywordOptimization(text, KeywordsFor(targetIndustry)),
		Formatting:          Formatting(text),
		ExperienceRelevance: ExperienceRelevance(data, targetRole),
	}
	overall := OverallScore(sections)

	result := &Analysis{
		OverallScore:     overall,
		Sections:         sections,
		DetailedAnalysis: s.detailedAnalysis(ctx, text, targetRole, overall),
		ExtractedData:    data,
	}

	log.Info().
		Int("overall_score", overall).
		Dur("elapsed", time.Since(start)).
		Msg("Resume analysis complete")

	return result, nil
}

// ── Model-backed sections ───────────────────────────

func (s *Scorer) ask(ctx context.Context, section, prompt string, out any) bool {
	if s.llm == nil {
		return false
	}
	text, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("section", section).Msg("Resume model call failed, using fallback")
		return false
	}
	if err := decodeObject(text, out); err != nil {
		log.Warn().Err(err).Str("section", section).Msg("Resume model reply unusable, using fallback")
		return false
	}
	return true
}

func decodeObject(text string, out any) error {
	raw := jsonObjectRe.FindString(text)
	if raw == "" {
		return errors.New("no JSON object in reply")
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	return nil
}

func (s *Scorer) extractData(ctx context.Context, text string) ExtractedData {
	data := emptyExtraction()
	if !s.ask(ctx, "extraction", extractionPrompt(text), &data) {
		return emptyExtraction()
	}
	if data.Skills == nil {
		data.Skills = []string{}
	}
	if data.Experience == nil {
		data.Experience = []Experience{}
	}
	if data.Education == nil {
		data.Education = []Education{}
	}
	if data.Certifications == nil {
		data.Certifications = []string{}
	}
	return data
}

func (s *Scorer) contentQuality(ctx context.Context, text string) Section {
	var reply struct {
		Score        *float64 `json:"score"`
		Feedback     []string `json:"feedback"`
		Improvements []string `json:"improvements"`
	}
	if !s.ask(ctx, "content_quality", contentPrompt(text), &reply) || reply.Score == nil {
		return Section{
			Score:        defaultContentScore,
			Feedback:     []string{"Content analysis completed"},
			Improvements: []string{"Consider adding more quantified achievements"},
		}
	}
	score := int(math.Round(math.Max(0, math.Min(100, *reply.Score))))
	return Section{Score: score, Feedback: orEmpty(reply.Feedback), Improvements: orEmpty(reply.Improvements)}
}

func (s *Scorer) detailedAnalysis(ctx context.Context, text, role string, overall int) DetailedAnalysis {
	var d DetailedAnalysis
	if !s.ask(ctx, "detailed_analysis", detailPrompt(text, role, overall), &d) {
		return DetailedAnalysis{
			Strengths:          []string{"Resume analysis completed successfully"},
			Weaknesses:         []string{"Some areas may need improvement"},
			Recommendations:    []string{"Consider customizing for specific job applications"},
			IndustryComparison: "This resume shows potential for the target role with some improvements.",
		}
	}
	d.Strengths = orEmpty(d.Strengths)
	d.Weaknesses = orEmpty(d.Weaknesses)
	d.Recommendations = orEmpty(d.Recommendations)
	return d
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ── Prompts ─────────────────────────────────────────

func capText(s string) string {
	r := []rune(s)
	if len(r) <= maxPromptChars {
		return s
	}
	return string(r[:maxPromptChars])
}

func extractionPrompt(text string) string {
	return `Extract structured data from this resume. Return ONLY a JSON object with no other text:
{
  "personalInfo": {"name": "", "email": "", "phone": "", "location": "", "linkedin": "", "github": ""},
  "skills": ["..."],
  "experience": [{"title": "", "company": "", "duration": "", "description": ""}],
  "education": [{"degree": "", "school": "", "year": "", "gpa": ""}],
  "certifications": ["..."]
}
Leave a field empty when the resume does not contain it.

Resume text:
` + capText(text)
}

func contentPrompt(text string) string {
	return `Rate the content quality of this resume from 0 to 100. Consider specific, impactful descriptions,
quantified achievements, professional tone, strong action verbs and results-oriented statements.

Return ONLY a JSON object:
{"score": 75, "feedback": ["..."], "improvements": ["..."]}

Resume text:
` + capText(text)
}

func detailPrompt(text, role string, overall int) string {
	return fmt.Sprintf(`Review this resume for a %q position. Its overall ATS score is %d/100.
Be specific and actionable: cite achievements, missing certifications for the role and concrete rewrites.

Return ONLY a JSON object:
{"strengths": ["..."], "weaknesses": ["..."], "recommendations": ["..."], "industryComparison": "..."}

Resume text:
%s`, role, overall, capText(text))
}
