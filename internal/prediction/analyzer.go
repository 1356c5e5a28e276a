package prediction

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
	"github.com/yourusername/careerradar-api/internal/model"
	"github.com/yourusername/careerradar-api/internal/service"
)

// GapDraft is a skill gap before normalization. Missing numbers are NaN.
type GapDraft struct {
	Skill             string
	Importance        float64
	CurrentDemand     float64
	AvgSalaryIncrease float64
	LearningPath      []string
	TimeToLearn       string
}

// PathDraft is a career path before normalization. A missing salary is NaN.
type PathDraft struct {
	NextRole       string
	Timeline       string
	RequiredSkills []string
	ExpectedSalary float64
}

// Analysis is the LLM Analyzer output.
type Analysis struct {
	SkillGaps  []GapDraft
	CareerPath PathDraft
	// Fallback is true when the heuristic extractor produced the result.
	Fallback bool
}

const analysisSchema = `{
  "type": "object",
  "required": ["skillGaps", "careerPath"],
  "properties": {
    "skillGaps": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["skill"],
        "properties": {
          "skill": {"type": "string", "minLength": 1},
          "learningPath": {"type": "array", "items": {"type": "string"}},
          "timeToLearn": {"type": "string"}
        }
      }
    },
    "careerPath": {
      "type": "object",
      "properties": {
        "nextRole": {"type": "string"},
        "timeline": {"type": "string"},
        "requiredSkills": {"type": "array", "items": {"type": "string"}}
      }
    }
  }
}`

var analysisSchemaLoader = gojsonschema.NewStringLoader(analysisSchema)

type llmAnalysis struct {
	SkillGaps []struct {
		Skill             string   `json:"skill"`
		Importance        any      `json:"importance"`
		CurrentDemand     any      `json:"currentDemand"`
		AvgSalaryIncrease any      `json:"avgSalaryIncrease"`
		LearningPath      []string `json:"learningPath"`
		TimeToLearn       string   `json:"timeToLearn"`
	} `json:"skillGaps"`
	CareerPath struct {
		NextRole       string   `json:"nextRole"`
		Timeline       string   `json:"timeline"`
		RequiredSkills []string `json:"requiredSkills"`
		ExpectedSalary any      `json:"expectedSalary"`
	} `json:"careerPath"`
}

// analyze asks the generator for a structured analysis. A generator error is
// fatal; unusable output falls back to the heuristic extractor.
func analyze(ctx context.Context, gen TextGenerator, p model.UserProfile, trend *TrendData, jobs *JobMarketData, trends []model.MarketTrend) (*Analysis, error) {
	if gen == nil {
		log.Warn().Msg("No text generator configured, using market-data analysis")
		return fallbackAnalysis(p, trend, jobs), nil
	}

	prompt := BuildAnalysisPrompt(p, trend, jobs, trends)
	text, err := gen.Generate(ctx, prompt)
	if err != nil {
		return nil, upstreamError("llm analysis", err)
	}

	analysis, err := parseAnalysis(text)
	if err != nil {
		log.Warn().Err(err).Msg("LLM response unusable, using market-data analysis")
		return fallbackAnalysis(p, trend, jobs), nil
	}

	fb := fallbackAnalysis(p, trend, jobs)
	if len(analysis.SkillGaps) == 0 {
		analysis.SkillGaps = fb.SkillGaps
	}
	if strings.TrimSpace(analysis.CareerPath.NextRole) == "" {
		analysis.CareerPath.NextRole = fb.CareerPath.NextRole
		if analysis.CareerPath.Timeline == "" {
			analysis.CareerPath.Timeline = fb.CareerPath.Timeline
		}
	}
	return analysis, nil
}

// parseAnalysis strips code fences, decodes the JSON and checks its shape.
func parseAnalysis(text string) (*Analysis, error) {
	raw := service.StripCodeFences(text)
	if raw == "" {
		return nil, fmt.Errorf("empty response")
	}

	result, err := gojsonschema.Validate(analysisSchemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding analysis json: %w", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return nil, fmt.Errorf("analysis shape: %s", strings.Join(msgs, "; "))
	}

	var parsed llmAnalysis
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("decoding analysis: %w", err)
	}

	out := &Analysis{
		SkillGaps: make([]GapDraft, 0, len(parsed.SkillGaps)),
		CareerPath: PathDraft{
			NextRole:       strings.TrimSpace(parsed.CareerPath.NextRole),
			Timeline:       parsed.CareerPath.Timeline,
			RequiredSkills: parsed.CareerPath.RequiredSkills,
			ExpectedSalary: salaryNumber(parsed.CareerPath.ExpectedSalary),
		},
	}
	for _, g := range parsed.SkillGaps {
		out.SkillGaps = append(out.SkillGaps, GapDraft{
			Skill:             strings.TrimSpace(g.Skill),
			Importance:        number(g.Importance),
			CurrentDemand:     number(g.CurrentDemand),
			AvgSalaryIncrease: salaryNumber(g.AvgSalaryIncrease),
			LearningPath:      g.LearningPath,
			TimeToLearn:       g.TimeToLearn,
		})
	}
	return out, nil
}

var numberPrefixRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// number reads a JSON number or a numeric string, NaN otherwise.
func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		s := strings.ReplaceAll(n, ",", "")
		if m := numberPrefixRe.FindString(s); m != "" {
			if f, err := strconv.ParseFloat(m, 64); err == nil {
				return f
			}
		}
	}
	return math.NaN()
}

// salaryNumber is number with lakh suffixes ("5L", "₹5 LPA") honoured for strings.
func salaryNumber(v any) float64 {
	if s, ok := v.(string); ok && !strings.HasPrefix(strings.TrimSpace(s), "-") {
		if f, ok := parseSalary(s); ok {
			return f
		}
	}
	return number(v)
}

// ── Heuristic extraction ───────────────────────────────

const (
	maxFallbackGaps    = 8
	minFallbackGaps    = 4
	defaultCareerBase  = 1200000
	minNextRoleSalary  = 1500000
	minNextRoleRaise   = 400000
	baseSalaryIncrease = 150000
	maxDemandBonus     = 500000
)

// fallbackAnalysis derives skill gaps and a next role from collected market data alone.
func fallbackAnalysis(p model.UserProfile, trend *TrendData, jobs *JobMarketData) *Analysis {
	gaps := fallbackSkillGaps(p, trend, jobs)
	return &Analysis{
		SkillGaps:  gaps,
		CareerPath: fallbackCareerPath(p.TargetRole, jobs, gaps),
		Fallback:   true,
	}
}

func fallbackSkillGaps(p model.UserProfile, trend *TrendData, jobs *JobMarketData) []GapDraft {
	owned := make(map[string]bool, len(p.CurrentSkills))
	for _, s := range p.CurrentSkills {
		owned[strings.ToLower(s)] = true
	}

	score := func(s string) int { return trend.Frequency[s] + jobs.SkillDemand[s]*100 }

	var candidates []string
	seen := make(map[string]bool)
	add := func(s string) {
		s = strings.ToLower(s)
		if s == "" || owned[s] || seen[s] {
			return
		}
		seen[s] = true
		candidates = append(candidates, s)
	}
	for s := range trend.Frequency {
		add(s)
	}
	for s := range jobs.SkillDemand {
		add(s)
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if score(a) != score(b) {
			return score(a) > score(b)
		}
		return a < b
	})
	if len(candidates) > maxFallbackGaps {
		candidates = candidates[:maxFallbackGaps]
	}
	if len(candidates) < minFallbackGaps {
		for _, s := range coreSkills(p.TargetRole) {
			add(s)
			if len(candidates) >= minFallbackGaps+2 {
				break
			}
		}
	}

	gaps := make([]GapDraft, 0, len(candidates))
	for i, s := range candidates {
		total := score(s)
		gaps = append(gaps, GapDraft{
			Skill:             capitalize(s),
			Importance:        float64(max(6, 10-i)),
			CurrentDemand:     float64(max(10, total)),
			AvgSalaryIncrease: float64(baseSalaryIncrease + min(total*5000, maxDemandBonus)),
			LearningPath: []string{
				s + " fundamentals and syntax",
				s + " intermediate concepts and patterns",
				s + " advanced projects and applications",
				s + " industry best practices and optimization",
			},
			TimeToLearn: fmt.Sprintf("%d months", 2+i),
		})
	}
	return gaps
}

var roleCoreSkills = []struct {
	match  string
	skills []string
}{
	{"data scientist", []string{"machine learning", "sql", "statistics", "deep learning", "pandas", "data visualization"}},
	{"machine learning", []string{"deep learning", "pytorch", "mlops", "python", "docker", "kubernetes"}},
	{"data engineer", []string{"sql", "apache spark", "airflow", "kafka", "aws", "data modeling"}},
	{"devops", []string{"kubernetes", "terraform", "docker", "aws", "ci/cd", "monitoring"}},
	{"frontend", []string{"typescript", "react", "css", "testing", "web performance", "accessibility"}},
	{"backend", []string{"sql", "docker", "system design", "api design", "redis", "kubernetes"}},
	{"full stack", []string{"typescript", "react", "node.js", "sql", "docker", "system design"}},
	{"mobile", []string{"kotlin", "swift", "react native", "flutter", "mobile ci/cd", "app performance"}},
	{"product manager", []string{"product analytics", "sql", "user research", "roadmapping", "a/b testing", "stakeholder management"}},
}

var genericCoreSkills = []string{"system design", "cloud computing", "docker", "typescript", "sql", "git"}

func coreSkills(role string) []string {
	r := strings.ToLower(role)
	for _, rc := range roleCoreSkills {
		if strings.Contains(r, rc.match) {
			return append(append([]string{}, rc.skills...), genericCoreSkills...)
		}
	}
	return genericCoreSkills
}

var roleProgression = map[string]struct{ senior, lead string }{
	"data scientist":            {"Senior Data Scientist", "Principal Data Scientist / ML Architect"},
	"full stack developer":      {"Senior Full Stack Developer", "Lead Full Stack Developer"},
	"frontend developer":        {"Senior Frontend Developer", "Lead Frontend Developer"},
	"backend developer":         {"Senior Backend Developer", "Lead Backend Developer"},
	"software developer":        {"Senior Software Developer", "Lead Software Developer"},
	"devops engineer":           {"Senior DevOps Engineer", "Lead DevOps Engineer"},
	"data engineer":             {"Senior Data Engineer", "Principal Data Engineer / Data Architect"},
	"mobile developer":          {"Senior Mobile Developer", "Lead Mobile Developer"},
	"product manager":           {"Senior Product Manager", "Director of Product"},
	"machine learning engineer": {"Senior ML Engineer", "Principal ML Engineer / AI Architect"},
}

var (
	seniorPrefixRe = regexp.MustCompile(`(?i)^senior\s+`)
	leadPrefixRe   = regexp.MustCompile(`(?i)(lead|principal)\s+`)
)

// fallbackCareerPath promotes the target role one step and prices the move.
func fallbackCareerPath(targetRole string, jobs *JobMarketData, gaps []GapDraft) PathDraft {
	role := strings.TrimSpace(targetRole)
	lower := strings.ToLower(role)

	var nextRole, timeline string
	var multiplier float64

	switch {
	case strings.Contains(lower, "senior"):
		base := strings.TrimSpace(seniorPrefixRe.ReplaceAllString(role, ""))
		nextRole = "Lead " + base
		if prog, ok := roleProgression[strings.ToLower(base)]; ok {
			nextRole = prog.lead
		}
		multiplier, timeline = 2.0, "18-24 months"
	case strings.Contains(lower, "lead") || strings.Contains(lower, "principal"):
		nextRole = "Director / VP of " + strings.TrimSpace(stripFirst(leadPrefixRe, role))
		multiplier, timeline = 2.5, "24-36 months"
	default:
		nextRole = "Senior " + role
		if prog, ok := roleProgression[lower]; ok {
			nextRole = prog.senior
		}
		multiplier, timeline = 1.6, "12-18 months"
	}

	base := jobs.AvgSalary
	if base <= 0 {
		base = defaultCareerBase
	}
	expected := math.Max(math.Round(base*multiplier), math.Max(base+minNextRoleRaise, minNextRoleSalary))

	required := head(jobs.RankedSkills(), 4)
	if len(required) == 0 {
		for _, g := range gaps {
			required = append(required, g.Skill)
			if len(required) == 4 {
				break
			}
		}
	}

	return PathDraft{
		NextRole:       nextRole,
		Timeline:       timeline,
		RequiredSkills: append([]string{}, required...),
		ExpectedSalary: expected,
	}
}

func stripFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
