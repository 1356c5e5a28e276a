package simulator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	// ErrInvalidProfile is returned for missing or malformed profile fields.
	ErrInvalidProfile = errors.New("invalid simulation profile")
	// ErrGeneratorUnavailable is returned when the model call fails or no model is configured.
	ErrGeneratorUnavailable = errors.New("career simulation unavailable")
)

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// TextGenerator completes a prompt with a generative model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Simulator struct {
	llm TextGenerator
}

func New(llm TextGenerator) *Simulator {
	return &Simulator{llm: llm}
}

// Simulate asks the model for career paths. A reply without a decodable
// JSON object yields the deterministic fallback; a failed call is an error.
func (s *Simulator) Simulate(ctx context.Context, profile Profile) (*Result, error) {
	p := profile.Normalized()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if s.llm == nil {
		return nil, fmt.Errorf("%w: no text generator configured", ErrGeneratorUnavailable)
	}

	start := time.Now()
	log.Info().
		Int("skills", len(p.Skills)).
		Int("interests", len(p.Interests)).
		Str("time_horizon", p.TimeHorizon).
		Msg("Starting career simulation")

	text, err := s.llm.Generate(ctx, BuildPrompt(p))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneratorUnavailable, err)
	}

	result, err := ParseResult(text)
	if err != nil {
		log.Warn().Err(err).Msg("Simulation reply unusable, using fallback paths")
		result = Fallback(p)
	}

	log.Info().
		Int("paths", len(result.RecommendedPaths)).
		Bool("fallback", result.Fallback).
		Dur("elapsed", time.Since(start)).
		Msg("Career simulation complete")

	return result, nil
}

// ParseResult decodes the first JSON object in a model reply. A reply with
// no recommended paths is rejected.
func ParseResult(text string) (*Result, error) {
	raw := jsonObjectRe.FindString(text)
	if raw == "" {
		return nil, errors.New("no JSON object in reply")
	}
	var r Result
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return nil, fmt.Errorf("decode simulation: %w", err)
	}
	if len(r.RecommendedPaths) == 0 {
		return nil, errors.New("reply has no recommended paths")
	}
	return &r, nil
}
