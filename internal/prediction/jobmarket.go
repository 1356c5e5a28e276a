package prediction

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yourusername/careerradar-api/internal/model"
)

// jobSkillTerms is matched as lowercase substrings of posting title and description.
var jobSkillTerms = []string{
	"javascript", "python", "java", "react", "node.js", "angular", "vue",
	"typescript", "sql", "mongodb", "postgresql", "aws", "azure", "docker",
	"kubernetes", "git", "api", "rest", "graphql", "html", "css", "bootstrap",
	"material-ui", "redux", "express", "spring", "django", "flask", "laravel",
}

const (
	lakh              = 100000
	salaryMaxFactor   = 1.3
	defaultCurrency   = "INR"
	defaultJobsRegion = "India"
)

var salaryRe = regexp.MustCompile(`(?i)₹?\s?(\d+(?:,\d+)*(?:\.\d+)?)\s?(lpa|lakhs?|l\b)?`)

// JobMarketData is the Job-Market Collector output.
type JobMarketData struct {
	Postings []model.JobPosting
	// AvgSalary is the mean minimum salary over postings with a salary, 0 if none.
	AvgSalary float64
	// SkillDemand counts postings mentioning each vocabulary term.
	SkillDemand      map[string]int
	LocationSalaries map[string]float64
}

// RankedSkills lists job skills by posting count, vocabulary order breaking ties.
func (d *JobMarketData) RankedSkills() []string {
	order := make(map[string]int, len(jobSkillTerms))
	for i, term := range jobSkillTerms {
		order[term] = i
	}
	skills := make([]string, 0, len(d.SkillDemand))
	for s := range d.SkillDemand {
		skills = append(skills, s)
	}
	sort.Slice(skills, func(i, j int) bool {
		a, b := skills[i], skills[j]
		if d.SkillDemand[a] != d.SkillDemand[b] {
			return d.SkillDemand[a] > d.SkillDemand[b]
		}
		return order[a] < order[b]
	})
	return skills
}

// collectJobMarket issues a single jobs search. Any failure is fatal.
func collectJobMarket(ctx context.Context, js JobSearcher, role, location string, now time.Time) (*JobMarketData, error) {
	if js == nil {
		return nil, upstreamError("job search", fmt.Errorf("job search not configured"))
	}
	if strings.TrimSpace(location) == "" {
		location = defaultJobsRegion
	}

	query := fmt.Sprintf("%s %s developer", role, location)
	listings, err := js.SearchJobs(ctx, query, location)
	if err != nil {
		return nil, upstreamError("job search", err)
	}

	data := analyzeListings(listings, now)

	log.Info().
		Int("postings", len(data.Postings)).
		Float64("avg_salary", data.AvgSalary).
		Int("skills", len(data.SkillDemand)).
		Msg("Job market collection complete")

	return data, nil
}

func analyzeListings(listings []model.JobListing, now time.Time) *JobMarketData {
	data := &JobMarketData{
		Postings:         make([]model.JobPosting, 0, len(listings)),
		SkillDemand:      make(map[string]int),
		LocationSalaries: make(map[string]float64),
	}

	var total float64
	var count int
	byLocation := make(map[string][]float64)

	for _, l := range listings {
		text := strings.ToLower(l.Title + " " + l.Description)

		skills := []string{}
		for _, term := range jobSkillTerms {
			if strings.Contains(text, term) {
				skills = append(skills, term)
				data.SkillDemand[term]++
			}
		}

		salary := listingSalary(l)
		if salary != nil {
			total += float64(salary.Min)
			count++
			loc := l.Location
			if loc == "" {
				loc = defaultJobsRegion
			}
			byLocation[loc] = append(byLocation[loc], float64(salary.Min))
		}

		posted := l.PostedAt
		if posted == "" {
			posted = now.UTC().Format(time.RFC3339)
		}

		data.Postings = append(data.Postings, model.JobPosting{
			Title:           l.Title,
			Company:         l.Company,
			Location:        l.Location,
			Salary:          salary,
			Skills:          skills,
			ExperienceLevel: experienceLevel(text),
			PostedDate:      posted,
		})
	}

	if count > 0 {
		data.AvgSalary = total / float64(count)
	}
	for loc, salaries := range byLocation {
		var sum float64
		for _, s := range salaries {
			sum += s
		}
		data.LocationSalaries[loc] = sum / float64(len(salaries))
	}
	return data
}

// listingSalary prefers structured provider figures and falls back to the free-text salary.
func listingSalary(l model.JobListing) *model.SalaryRange {
	if l.SalaryMin > 0 {
		currency := l.SalaryCurrency
		if currency == "" {
			currency = defaultCurrency
		}
		upper := l.SalaryMax
		if upper < l.SalaryMin {
			upper = l.SalaryMin * salaryMaxFactor
		}
		return &model.SalaryRange{
			Min:      int64(math.Round(l.SalaryMin)),
			Max:      int64(math.Round(upper)),
			Currency: currency,
		}
	}

	amount, ok := parseSalary(l.SalaryText)
	if !ok {
		return nil
	}
	return &model.SalaryRange{
		Min:      int64(math.Round(amount)),
		Max:      int64(math.Round(amount * salaryMaxFactor)),
		Currency: defaultCurrency,
	}
}

// parseSalary reads the first figure in a salary string as absolute INR.
// Figures marked LPA/lakh/L, or too small to be a yearly amount, are in lakhs.
func parseSalary(text string) (float64, bool) {
	m := salaryRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil || amount <= 0 {
		return 0, false
	}
	if m[2] != "" || amount < 1000 {
		amount *= lakh
	}
	return amount, true
}

func experienceLevel(text string) string {
	switch {
	case containsAny(text, "senior", "lead", "principal"):
		return model.LevelSenior
	case containsAny(text, "mid", "2-5", "3-6"):
		return model.LevelMid
	case containsAny(text, "junior", "entry", "fresher"):
		return model.LevelEntry
	default:
		return model.LevelMid
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
