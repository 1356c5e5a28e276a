package model

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ── Input profile ──────────────────────────────────────

// Experience levels recognised by the salary calculator and posting classifier.
const (
	LevelEntry  = "Entry-level"
	LevelMid    = "Mid-level"
	LevelSenior = "Senior"
)

// UserProfile is the skills-radar request body. It is read once per request.
type UserProfile struct {
	CurrentSkills []string `json:"currentSkills" validate:"required"`
	TargetRole    string   `json:"targetRole" validate:"required"`
	Experience    string   `json:"experience"`
	Industry      string   `json:"industry"`
	Location      string   `json:"location"`
}

var validate = validator.New()

// Validate rejects profiles missing currentSkills or targetRole.
// An empty (non-null) skill list is accepted.
func (p UserProfile) Validate() error {
	return validate.Struct(p)
}

// WithDefaults fills the optional fields the way the web layer always has.
func (p UserProfile) WithDefaults() UserProfile {
	p.TargetRole = strings.TrimSpace(p.TargetRole)
	if strings.TrimSpace(p.Experience) == "" {
		p.Experience = LevelMid
	}
	if strings.TrimSpace(p.Industry) == "" {
		p.Industry = "Technology"
	}
	if strings.TrimSpace(p.Location) == "" {
		p.Location = "India"
	}
	skills := make([]string, 0, len(p.CurrentSkills))
	for _, s := range p.CurrentSkills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	p.CurrentSkills = skills
	return p
}

// ── Upstream records ───────────────────────────────────

// SearchResult is one organic web-search hit.
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// JobListing is a raw posting as returned by any jobs provider, before extraction.
// SalaryMin/SalaryMax are set only when the provider returns structured figures.
type JobListing struct {
	Source         string
	Title          string
	Company        string
	Location       string
	Description    string
	SalaryText     string
	SalaryMin      float64
	SalaryMax      float64
	SalaryCurrency string
	PostedAt       string
}

// Video is a learning video with the statistics used for ranking.
type Video struct {
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
	VideoID      string `json:"videoId"`
	Thumbnail    string `json:"thumbnail"`
	Duration     string `json:"duration"`
	ViewCount    int64  `json:"viewCount"`
	Description  string `json:"description"`
	PublishedAt  string `json:"publishedAt"`
}

// ── Derived data ───────────────────────────────────────

type SalaryRange struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

// JobPosting is a listing after keyword, salary and level extraction.
type JobPosting struct {
	Title           string       `json:"title"`
	Company         string       `json:"company"`
	Location        string       `json:"location"`
	Salary          *SalaryRange `json:"salary,omitempty"`
	Skills          []string     `json:"skills"`
	ExperienceLevel string       `json:"experience_level"`
	PostedDate      string       `json:"posted_date"`
}

// LearningResource summarises the videos found for one skill.
type LearningResource struct {
	Skill           string   `json:"skill"`
	VideoCount      int      `json:"videoCount"`
	TotalViews      int64    `json:"totalViews"`
	DifficultyScore int      `json:"difficultyScore"`
	PopularChannels []string `json:"popularChannels"`
}

// MarketTrend is one row of the synthesized demand ranking.
type MarketTrend struct {
	Skill        string   `json:"skill"`
	DemandScore  float64  `json:"demand_score"`
	AvgSalaryINR int64    `json:"avg_salary_inr"`
	JobCount     int      `json:"job_count"`
	GrowthRate   int      `json:"growth_rate"`
	Locations    []string `json:"locations"`
}

// ── Report ─────────────────────────────────────────────

type SkillGap struct {
	Skill             string   `json:"skill"`
	Importance        int      `json:"importance"`
	CurrentDemand     int      `json:"currentDemand"`
	AvgSalaryIncrease int64    `json:"avgSalaryIncrease"`
	LearningPath      []string `json:"learningPath"`
	TimeToLearn       string   `json:"timeToLearn"`
}

type CareerPath struct {
	NextRole       string   `json:"nextRole"`
	Timeline       string   `json:"timeline"`
	RequiredSkills []string `json:"requiredSkills"`
	ExpectedSalary int64    `json:"expectedSalary"`
}

type SalaryPrediction struct {
	Current       int64  `json:"current"`
	WithNewSkills int64  `json:"withNewSkills"`
	Currency      string `json:"currency"`
	Location      string `json:"location"`
}

type MarketInsights struct {
	TrendingTechnologies []string `json:"trendingTechnologies"`
	HighDemandSkills     []string `json:"highDemandSkills"`
	EmergingFields       []string `json:"emergingFields"`
}

type Course struct {
	Title    string `json:"title"`
	Provider string `json:"provider"`
	URL      string `json:"url"`
	Duration string `json:"duration"`
	Level    string `json:"level"`
	Price    string `json:"price"`
}

type SkillCourses struct {
	Skill   string   `json:"skill"`
	Courses []Course `json:"courses"`
}

type SkillVideos struct {
	Skill  string  `json:"skill"`
	Videos []Video `json:"videos"`
}

type LearningPlatform struct {
	Name           string   `json:"name"`
	URL            string   `json:"url"`
	Description    string   `json:"description"`
	Specialization []string `json:"specialization"`
}

type LearningRoadmap struct {
	RecommendedCourses []SkillCourses     `json:"recommendedCourses"`
	YoutubeVideos      []SkillVideos      `json:"youtubeVideos"`
	LearningPlatforms  []LearningPlatform `json:"learningPlatforms"`
}

// DataSources is display-only provenance: how much each upstream contributed.
type DataSources struct {
	GoogleSearchResults int    `json:"googleSearchResults"`
	JobPostings         int    `json:"jobPostings"`
	YoutubeResources    int    `json:"youtubeResources"`
	MarketDataPoints    int    `json:"marketDataPoints"`
	LastUpdated         string `json:"lastUpdated"`
}

// Report is the skills-radar output. Nothing in it is persisted.
type Report struct {
	SkillGaps        []SkillGap       `json:"skillGaps"`
	SalaryPrediction SalaryPrediction `json:"salaryPrediction"`
	MarketInsights   MarketInsights   `json:"marketInsights"`
	CareerPath       CareerPath       `json:"careerPath"`
	LearningRoadmap  LearningRoadmap  `json:"learningRoadmap"`
	RealDataSources  DataSources      `json:"realDataSources"`
}
