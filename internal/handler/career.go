package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yourusername/careerradar-api/internal/middleware"
	"github.com/yourusername/careerradar-api/internal/simulator"
)

// CareerSimulator is satisfied by *simulator.Simulator.
type CareerSimulator interface {
	Simulate(ctx context.Context, profile simulator.Profile) (*simulator.Result, error)
}

type CareerHandler struct {
	sim CareerSimulator
	now func() time.Time
}

func NewCareerHandler(sim CareerSimulator) *CareerHandler {
	return &CareerHandler{sim: sim, now: time.Now}
}

type profileSummary struct {
	TotalSkills      int      `json:"totalSkills"`
	ExperienceLevel  string   `json:"experienceLevel"`
	PrimaryInterests []string `json:"primaryInterests"`
	TargetTimeframe  string   `json:"targetTimeframe"`
}

type simulationMetadata struct {
	UserID         string         `json:"userId"`
	Timestamp      string         `json:"timestamp"`
	ProfileSummary profileSummary `json:"profileSummary"`
}

type simulationResponse struct {
	*simulator.Result
	Metadata simulationMetadata `json:"metadata"`
}

// Simulate handles POST /career-simulator
func (h *CareerHandler) Simulate(c *gin.Context) {
	var req struct {
		simulator.Profile
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.sim.Simulate(c.Request.Context(), req.Profile)
	if err != nil {
		if errors.Is(err, simulator.ErrInvalidProfile) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "skills and interests must be non-empty; experience, education and location are required; timeHorizon must be 1-year, 3-year, 5-year or 10-year",
			})
			return
		}
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("Career simulation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate career simulation"})
		return
	}

	p := req.Profile.Normalized()
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = "anonymous"
	}
	interests := p.Interests
	if len(interests) > 3 {
		interests = interests[:3]
	}

	c.JSON(http.StatusOK, simulationResponse{
		Result: result,
		Metadata: simulationMetadata{
			UserID:    userID,
			Timestamp: h.now().UTC().Format(time.RFC3339),
			ProfileSummary: profileSummary{
				TotalSkills:      len(p.Skills),
				ExperienceLevel:  p.Experience,
				PrimaryInterests: interests,
				TargetTimeframe:  p.TimeHorizon,
			},
		},
	})
}

// Describe handles GET /career-simulator
func (h *CareerHandler) Describe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Career Path Simulator API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"POST": "/career-simulator - Generate career path simulation",
		},
		"requiredFields": gin.H{
			"skills":              "Array of current skills",
			"interests":           "Array of interests",
			"experience":          `Experience level (e.g. "Fresher", "1-2 years")`,
			"education":           "Educational background",
			"location":            "Current location",
			"preferredIndustries": "Array of preferred industries (optional)",
			"careerGoals":         "Career aspirations (optional)",
			"timeHorizon":         "1-year, 3-year, 5-year or 10-year (optional, defaults to 3-year)",
		},
		"sampleRequest": simulator.Profile{
			Skills:              []string{"JavaScript", "React", "Node.js", "Python"},
			Interests:           []string{"Web Development", "Data Science", "AI/ML"},
			Experience:          "Fresher",
			Education:           "B.Tech Computer Science",
			Location:            "Bangalore, India",
			PreferredIndustries: []string{"Technology", "FinTech", "Startups"},
			CareerGoals:         "Become a senior software engineer with expertise in AI",
			TimeHorizon:         "5-year",
		},
	})
}
