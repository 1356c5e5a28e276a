package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yourusername/careerradar-api/internal/middleware"
	"github.com/yourusername/careerradar-api/internal/model"
	"github.com/yourusername/careerradar-api/internal/prediction"
)

// Predictor is satisfied by *prediction.Engine.
type Predictor interface {
	Predict(ctx context.Context, profile model.UserProfile) (*model.Report, error)
}

type SkillsRadarHandler struct {
	engine Predictor
}

func NewSkillsRadarHandler(engine Predictor) *SkillsRadarHandler {
	return &SkillsRadarHandler{engine: engine}
}

// Predict handles POST /skills-radar
func (h *SkillsRadarHandler) Predict(c *gin.Context) {
	var profile model.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	report, err := h.engine.Predict(c.Request.Context(), profile)
	if err != nil {
		if errors.Is(err, prediction.ErrInvalidProfile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: currentSkills and targetRole"})
			return
		}
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("Skills prediction failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate skills predictions",
			"message": "Market data is temporarily unavailable. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    report,
		"message": "Skills predictions generated from live market data",
	})
}

// Describe handles GET /skills-radar
func (h *SkillsRadarHandler) Describe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Skills Radar API",
		"endpoints": gin.H{
			"POST": "/skills-radar - Predict skill gaps, salary and career path for a profile",
		},
		"requiredFields": gin.H{
			"currentSkills": "Array of current skills",
			"targetRole":    "Role you are aiming for",
		},
		"optionalFields": gin.H{
			"experience": "Entry-level, Mid-level or Senior (defaults to Mid-level)",
			"industry":   "Industry (defaults to Technology)",
			"location":   "Job market location (defaults to India)",
		},
		"sampleRequest": model.UserProfile{
			CurrentSkills: []string{"Python", "SQL", "Pandas"},
			TargetRole:    "Data Scientist",
			Experience:    model.LevelMid,
			Industry:      "Technology",
			Location:      "Bangalore",
		},
	})
}
