// internal/api/substitution_handlers.go
// Substitution plan HTTP handlers

package api

import (
	"errors"
	"net/http"

	"tournament-planner/internal/config"
	"tournament-planner/internal/models"
	"tournament-planner/internal/services"

	"github.com/gin-gonic/gin"
)

// MatchBroadcaster pushes substitution plan updates to live match subscribers.
// Satisfied by *websocket.Hub; declared here so this package never imports
// the websocket package directly.
type MatchBroadcaster interface {
	BroadcastMatchUpdate(matchID string, updateType string, data interface{})
}

// substitutionPlanRequest is the shared request body for plan generation and recommendation
type substitutionPlanRequest struct {
	Players []models.PlayerInput `json:"players" binding:"required,min=1"`
	Config  models.PlanConfig    `json:"config" binding:"required"`
}

// HandleGeneratePlan computes and stores a new substitution plan for a match
func HandleGeneratePlan(substitutionService *services.SubstitutionService, broadcaster MatchBroadcaster, schedulerCfg config.SchedulerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		matchID := c.Param("id")
		userID := c.GetString("user_id")

		var req substitutionPlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		snapshot := models.LineupSnapshot{Players: req.Players, Config: applySchedulerDefaults(req.Config, schedulerCfg)}

		record, err := substitutionService.GeneratePlan(c.Request.Context(), matchID, snapshot, userID)
		if err != nil {
			respondSubstitutionError(c, err)
			return
		}

		if broadcaster != nil {
			broadcaster.BroadcastMatchUpdate(matchID, "substitution_plan_generated", record)
		}

		c.JSON(http.StatusOK, gin.H{"plan": record})
	}
}

// HandleRecommendSubstitutionConfig runs the multi-combination analyzer across window sizes
func HandleRecommendSubstitutionConfig(substitutionService *services.SubstitutionService, schedulerCfg config.SchedulerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		matchID := c.Param("id")

		var req substitutionPlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		snapshot := models.LineupSnapshot{Players: req.Players, Config: applySchedulerDefaults(req.Config, schedulerCfg)}

		result, err := substitutionService.RecommendForMatch(c.Request.Context(), matchID, snapshot)
		if err != nil {
			respondSubstitutionError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"recommendation": result})
	}
}

// HandleGetLatestPlan retrieves the most recently generated plan for a match
func HandleGetLatestPlan(substitutionService *services.SubstitutionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		matchID := c.Param("id")

		record, err := substitutionService.GetLatestPlan(c.Request.Context(), matchID)
		if err != nil {
			respondSubstitutionError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"plan": record})
	}
}

// applySchedulerDefaults fills in zero-valued config fields a caller omitted
// with the deployment's configured defaults.
func applySchedulerDefaults(cfg models.PlanConfig, defaults config.SchedulerConfig) models.PlanConfig {
	if cfg.WindowLengthMin == 0 {
		cfg.WindowLengthMin = defaults.DefaultWindowLengthMin
	}
	if cfg.MinOnMinutes == 0 {
		cfg.MinOnMinutes = defaults.DefaultMinOnMinutes
	}
	if cfg.MinRestMinutes == 0 {
		cfg.MinRestMinutes = defaults.DefaultMinRestMinutes
	}
	if cfg.MaxSubsPerWindow == 0 {
		cfg.MaxSubsPerWindow = defaults.DefaultMaxSubsPerWindow
	}
	return cfg
}

func respondSubstitutionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No substitution plan found for this match"})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process substitution request", "details": err.Error()})
	}
}
