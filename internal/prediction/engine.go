package prediction

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yourusername/careerradar-api/internal/model"
)

// Engine runs the skills-prediction pipeline. Collectors are called in
// sequence; a nil collector is treated as unavailable.
type Engine struct {
	web    WebSearcher
	videos VideoSearcher
	jobs   JobSearcher
	llm    TextGenerator
	now    func() time.Time
}

func NewEngine(web WebSearcher, videos VideoSearcher, jobs JobSearcher, llm TextGenerator) *Engine {
	return &Engine{
		web:    web,
		videos: videos,
		jobs:   jobs,
		llm:    llm,
		now:    time.Now,
	}
}

// Predict builds a full report for one profile. Errors wrap ErrInvalidProfile
// or ErrUpstreamUnavailable; no partial report is ever returned.
func (e *Engine) Predict(ctx context.Context, profile model.UserProfile) (*model.Report, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	p := profile.WithDefaults()
	if p.TargetRole == "" {
		return nil, fmt.Errorf("%w: targetRole is blank", ErrInvalidProfile)
	}

	now := e.now()
	start := time.Now()

	log.Info().
		Str("target_role", p.TargetRole).
		Int("skills", len(p.CurrentSkills)).
		Str("location", p.Location).
		Msg("Starting skills prediction")

	trend, err := collectTrends(ctx, e.web, p.CurrentSkills, p.TargetRole, now.Year())
	if err != nil {
		return nil, err
	}

	learning := collectLearningResources(ctx, e.videos, learningSkills(p.CurrentSkills, trend.TrendingTechs), now.Year())

	jobs, err := collectJobMarket(ctx, e.jobs, p.TargetRole, p.Location, now)
	if err != nil {
		return nil, err
	}

	trends := SynthesizeMarketTrends(trend.Frequency, jobs.SkillDemand, jobs.AvgSalary)

	analysis, err := analyze(ctx, e.llm, p, trend, jobs, trends)
	if err != nil {
		return nil, err
	}

	current := CurrentSalary(p, jobs.AvgSalary, trend.SkillDemand)
	gaps := NormalizeSkillGaps(analysis.SkillGaps, trend.Frequency, jobs.SkillDemand)

	emerging := make([]string, 0, 5)
	for _, t := range head(trends, 5) {
		emerging = append(emerging, t.Skill)
	}

	report := &model.Report{
		SkillGaps: gaps,
		SalaryPrediction: model.SalaryPrediction{
			Current:       current,
			WithNewSkills: current + newSkillsRaise,
			Currency:      defaultCurrency,
			Location:      p.Location,
		},
		MarketInsights: model.MarketInsights{
			TrendingTechnologies: append([]string{}, head(trend.TrendingTechs, 10)...),
			HighDemandSkills:     append([]string{}, head(jobs.RankedSkills(), 10)...),
			EmergingFields:       emerging,
		},
		CareerPath:      NormalizeCareerPath(analysis.CareerPath, current),
		LearningRoadmap: BuildRoadmap(gaps, learning.Videos),
		RealDataSources: model.DataSources{
			GoogleSearchResults: len(trend.RelevantResults),
			JobPostings:         len(jobs.Postings),
			YoutubeResources:    len(learning.Resources),
			MarketDataPoints:    len(trends),
			LastUpdated:         now.UTC().Format(time.RFC3339),
		},
	}

	log.Info().
		Int("skill_gaps", len(report.SkillGaps)).
		Bool("fallback_analysis", analysis.Fallback).
		Str("next_role", report.CareerPath.NextRole).
		Dur("elapsed", time.Since(start)).
		Msg("Skills prediction complete")

	return report, nil
}
