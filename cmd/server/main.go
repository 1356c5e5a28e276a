package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/careerradar-api/internal/config"
	"github.com/yourusername/careerradar-api/internal/handler"
	"github.com/yourusername/careerradar-api/internal/middleware"
	"github.com/yourusername/careerradar-api/internal/prediction"
	"github.com/yourusername/careerradar-api/internal/resume"
	"github.com/yourusername/careerradar-api/internal/service"
	"github.com/yourusername/careerradar-api/internal/simulator"
)

func main() {
	// ── Logging ──────────────────────────────────────────
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// ── Config ───────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("Starting CareerRadar API")

	ctx := context.Background()

	// ── Upstream clients ─────────────────────────────────
	// Interfaces stay nil unless a client is configured; the pipeline
	// treats a nil collector as unavailable.
	serp := service.NewSerpAPIClient(cfg.SerpAPIKey, cfg.SerpAPIBaseURL)

	var web prediction.WebSearcher
	if serp.Enabled() {
		web = serp
	} else {
		log.Warn().Msg("SERPAPI_KEY not set, trend collection will fail")
	}

	var videos prediction.VideoSearcher
	if cfg.YouTubeAPIKey != "" {
		yt, err := service.NewYouTubeClient(ctx, cfg.YouTubeAPIKey, cfg.YouTubeBaseURL)
		if err != nil {
			log.Error().Err(err).Msg("Failed to create YouTube client, using canned videos")
		} else {
			videos = yt
		}
	} else {
		log.Warn().Msg("YOUTUBE_API_KEY not set, using canned videos")
	}

	jobs := jobSearcher(cfg, serp)

	var llm prediction.TextGenerator
	switch cfg.LLMProvider {
	case config.LLMProviderClaude:
		if cfg.ClaudeAPIKey != "" {
			llm = service.NewClaudeClient(cfg.ClaudeAPIKey, cfg.ClaudeBaseURL, cfg.ClaudeModel)
		}
	default:
		if cfg.GeminiAPIKey != "" {
			gemini, err := service.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				log.Error().Err(err).Msg("Failed to create Gemini client")
			} else {
				defer gemini.Close()
				llm = gemini
			}
		}
	}
	if llm == nil {
		log.Warn().Str("provider", cfg.LLMProvider).Msg("No LLM configured, analysis uses heuristics and simulation is disabled")
	}

	// ── Handlers ─────────────────────────────────────────
	engine := prediction.NewEngine(web, videos, jobs, llm)
	radarHandler := handler.NewSkillsRadarHandler(engine)
	careerHandler := handler.NewCareerHandler(simulator.New(llm))
	resumeHandler := handler.NewResumeHandler(resume.NewScorer(llm))

	// ── Router ───────────────────────────────────────────
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "careerradar-api",
			"time":    time.Now().UTC(),
		})
	})

	api := r.Group("/", middleware.Timeout(cfg.RequestTimeout))
	{
		// Skills radar
		api.GET("/skills-radar", radarHandler.Describe)
		api.POST("/skills-radar", radarHandler.Predict)

		// Career simulator
		api.GET("/career-simulator", careerHandler.Describe)
		api.POST("/career-simulator", careerHandler.Simulate)

		// Resume scoring
		api.POST("/resume-score", resumeHandler.Score)
		api.GET("/resume-score", resumeHandler.MethodNotAllowed)
		api.PUT("/resume-score", resumeHandler.MethodNotAllowed)
		api.DELETE("/resume-score", resumeHandler.MethodNotAllowed)
	}

	// ── Server ───────────────────────────────────────────
	// WriteTimeout leaves headroom over the per-request pipeline deadline.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("CareerRadar API server running")

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// jobSearcher picks the configured job feed. SerpAPI Google Jobs is the
// default; JSearch and Adzuna are alternates with structured salaries.
func jobSearcher(cfg *config.Config, serp *service.SerpAPIClient) prediction.JobSearcher {
	switch cfg.JobsProvider {
	case config.JobsProviderJSearch:
		if cfg.RapidAPIKey != "" {
			return service.NewJSearchClient(cfg.RapidAPIKey, "")
		}
	case config.JobsProviderAdzuna:
		adzuna := service.NewAdzunaClient(cfg.AdzunaAppID, cfg.AdzunaAppKey, cfg.AdzunaCountry, "")
		if adzuna.Enabled() {
			return adzuna
		}
	default:
		if serp.Enabled() {
			return serp
		}
	}
	log.Warn().Str("provider", cfg.JobsProvider).Msg("Job feed not configured, job-market collection will fail")
	return nil
}
