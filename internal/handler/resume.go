package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yourusername/careerradar-api/internal/middleware"
	"github.com/yourusername/careerradar-api/internal/resume"
)

const maxResumeBytes = 10 * 1024 * 1024

// ResumeAnalyzer is satisfied by *resume.Scorer.
type ResumeAnalyzer interface {
	Analyze(ctx context.Context, text, targetRole, targetIndustry string) (*resume.Analysis, error)
}

type ResumeHandler struct {
	scorer  ResumeAnalyzer
	extract func([]byte) (string, error)
	now     func() time.Time
}

func NewResumeHandler(scorer ResumeAnalyzer) *ResumeHandler {
	return &ResumeHandler{scorer: scorer, extract: resume.ExtractPDFText, now: time.Now}
}

type resumeMetadata struct {
	FileName       string `json:"fileName"`
	FileSize       int64  `json:"fileSize"`
	TargetRole     string `json:"targetRole"`
	TargetIndustry string `json:"targetIndustry"`
	ProcessedAt    string `json:"processedAt"`
	TextLength     int    `json:"textLength"`
}

type resumeScoreData struct {
	*resume.Analysis
	Metadata resumeMetadata `json:"metadata"`
}

// Score handles POST /resume-score
// Accepts a PDF via multipart form, extracts text, returns an ATS report
func (h *ResumeHandler) Score(c *gin.Context) {
	// Room for the multipart envelope on top of the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxResumeBytes+1<<20)

	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File size must be less than 10MB"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No resume file provided"})
		return
	}
	defer file.Close()

	if header.Size > maxResumeBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size must be less than 10MB"})
		return
	}

	targetRole := strings.TrimSpace(c.PostForm("targetRole"))
	if targetRole == "" {
		targetRole = resume.DefaultRole
	}
	targetIndustry := strings.TrimSpace(c.PostForm("targetIndustry"))
	if targetIndustry == "" {
		targetIndustry = resume.DefaultIndustry
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	// Validate PDF magic bytes (header must start with %PDF)
	if !resume.IsPDF(fileBytes) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are supported"})
		return
	}

	text, err := h.extract(fileBytes)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to extract text from PDF")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Could not extract text from this PDF. It may be image-based or corrupted.",
		})
		return
	}

	log.Info().
		Str("filename", header.Filename).
		Int("bytes", len(fileBytes)).
		Int("textLen", len(text)).
		Msg("Resume PDF text extracted")

	analysis, err := h.scorer.Analyze(c.Request.Context(), text, targetRole, targetIndustry)
	if err != nil {
		if errors.Is(err, resume.ErrTooLittleText) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unable to extract sufficient text from the resume. Please ensure the PDF contains readable text.",
			})
			return
		}
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("Resume analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "An unexpected error occurred while analyzing the resume. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": resumeScoreData{
			Analysis: analysis,
			Metadata: resumeMetadata{
				FileName:       header.Filename,
				FileSize:       header.Size,
				TargetRole:     targetRole,
				TargetIndustry: targetIndustry,
				ProcessedAt:    h.now().UTC().Format(time.RFC3339),
				TextLength:     len(text),
			},
		},
		"message": "Resume analyzed successfully",
	})
}

// MethodNotAllowed answers GET, PUT and DELETE on /resume-score
func (h *ResumeHandler) MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{
		"error": c.Request.Method + " method not supported. Use POST to upload a resume.",
	})
}
