// internal/services/substitution_service.go
// Bridges the persistence layer and the pure scheduler package: converts
// stored snapshots into scheduler inputs, runs the scheduler, and persists
// the result.

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"tournament-planner/internal/models"
	"tournament-planner/internal/repositories"
	"tournament-planner/internal/scheduler"
	"tournament-planner/internal/utils"
)

// SubstitutionService handles substitution plan generation and retrieval
type SubstitutionService struct {
	repos     *repositories.Container
	cache     *CacheService
	analytics *AnalyticsService
	logger    *log.Logger
}

// NewSubstitutionService creates a new substitution service
func NewSubstitutionService(repos *repositories.Container, cache *CacheService, analytics *AnalyticsService, logger *log.Logger) *SubstitutionService {
	return &SubstitutionService{
		repos:     repos,
		cache:     cache,
		analytics: analytics,
		logger:    logger,
	}
}

// GeneratePlan runs the scheduler over the given snapshot and stores the result
func (s *SubstitutionService) GeneratePlan(ctx context.Context, matchID string, snapshot models.LineupSnapshot, generatedBy string) (*models.LineupRecord, error) {
	match, err := s.repos.Match.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("match not found: %w", err)
	}
	if match.Status == models.MatchCompleted || match.Status == models.MatchCancelled {
		return nil, fmt.Errorf("%w: match is no longer active", ErrInvalidInput)
	}

	players := toSchedulerPlayers(snapshot.Players)
	cfg := toSchedulerConfig(snapshot.Config)

	plan, err := scheduler.PlanOne(players, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.warnIfDivergesFromStored(ctx, matchID, plan)

	record := &models.LineupRecord{
		ID:          utils.GenerateUUID(),
		MatchID:     matchID,
		Snapshot:    snapshot,
		Result:      toModelResult(plan),
		Strategy:    dominantStrategy(plan.StrategyPerRound),
		GeneratedBy: generatedBy,
		CreatedAt:   time.Now(),
	}

	if err := s.repos.Lineup.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store substitution plan: %w", err)
	}

	s.cache.Delete(fmt.Sprintf("latest_plan_%s", matchID))

	if s.analytics != nil {
		go s.analytics.LogEvent(context.Background(), "substitution_plan_generated", map[string]interface{}{
			"match_id":       matchID,
			"is_feasible":    plan.IsFeasible,
			"event_count":    len(plan.Events),
			"target_minutes": plan.TargetMinutesPerPlayer,
		})
	}

	return record, nil
}

// RecommendForMatch runs the multi-combination analyzer for every feasible substitution window size
func (s *SubstitutionService) RecommendForMatch(ctx context.Context, matchID string, snapshot models.LineupSnapshot) (*scheduler.MultiCombinationResult, error) {
	if _, err := s.repos.Match.GetByID(ctx, matchID); err != nil {
		return nil, fmt.Errorf("match not found: %w", err)
	}

	players := toSchedulerPlayers(snapshot.Players)

	result, err := scheduler.RecommendConfig(players, snapshot.Config.TotalMatchMinutes, snapshot.Config.WindowLengthMin)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if s.analytics != nil {
		go s.analytics.LogEvent(context.Background(), "substitution_recommendation_run", map[string]interface{}{
			"match_id":      matchID,
			"recommended_k": result.RecommendedK,
			"combinations":  len(result.Combinations),
		})
	}

	return result, nil
}

// GetLatestPlan retrieves the most recently generated plan for a match
func (s *SubstitutionService) GetLatestPlan(ctx context.Context, matchID string) (*models.LineupRecord, error) {
	cacheKey := fmt.Sprintf("latest_plan_%s", matchID)
	var record models.LineupRecord
	if err := s.cache.Get(cacheKey, &record); err == nil {
		return &record, nil
	}

	stored, err := s.repos.Lineup.GetLatestByMatchID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	s.cache.Set(cacheKey, stored, 1*time.Minute)

	return stored, nil
}

// warnIfDivergesFromStored compares a freshly computed plan against whatever
// was last persisted for this match and logs loudly on mismatch, rather than
// silently overwriting a coach-reviewed plan with a differently-derived one.
func (s *SubstitutionService) warnIfDivergesFromStored(ctx context.Context, matchID string, fresh *scheduler.SubstitutionPlan) {
	stored, err := s.repos.Lineup.GetLatestByMatchID(ctx, matchID)
	if err != nil {
		return // nothing stored yet, nothing to compare against
	}

	reference := fromModelResult(stored.Result)
	if !scheduler.Verify(reference, fresh) {
		s.logger.Printf("substitution plan for match %s diverges from the previously stored plan (generated_by=%s, previous_id=%s)", matchID, stored.GeneratedBy, stored.ID)
	}
}

func toSchedulerPlayers(inputs []models.PlayerInput) []scheduler.Player {
	players := make([]scheduler.Player, 0, len(inputs))
	for _, in := range inputs {
		allowed := make(map[scheduler.Role]bool, len(in.AllowedPositions))
		for role, ok := range in.AllowedPositions {
			allowed[scheduler.Role(role)] = ok
		}
		players = append(players, scheduler.Player{
			ID:               in.ID,
			Name:             in.Name,
			Role:             scheduler.Role(in.Role),
			IsOnField:        in.IsOnField,
			IsLocked:         in.IsLocked,
			AllowedPositions: allowed,
		})
	}
	return players
}

func toSchedulerConfig(cfg models.PlanConfig) scheduler.PlanConfig {
	return scheduler.PlanConfig{
		TotalMatchMinutes: cfg.TotalMatchMinutes,
		MaxSubsPerWindow:  cfg.MaxSubsPerWindow,
		WindowLengthMin:   cfg.WindowLengthMin,
		MinOnMinutes:      cfg.MinOnMinutes,
		MinRestMinutes:    cfg.MinRestMinutes,
	}
}

func toModelResult(plan *scheduler.SubstitutionPlan) models.PlanResult {
	events := make([]models.PlanEvent, 0, len(plan.Events))
	for _, e := range plan.Events {
		events = append(events, models.PlanEvent{
			TimeMinutes:   e.TimeMinutes,
			FieldPlayerID: e.FieldPlayerID,
			BenchPlayerID: e.BenchPlayerID,
		})
	}

	projections := make(map[string]models.PlanProject, len(plan.Projections))
	for id, p := range plan.Projections {
		projections[id] = models.PlanProject{
			PlayerID:         p.PlayerID,
			ProjectedMinutes: p.ProjectedMinutes,
			TargetMinutes:    p.TargetMinutes,
			Deviation:        p.Deviation,
			TargetBenchCount: p.TargetBenchCount,
			ActualBenchCount: p.ActualBenchCount,
		}
	}

	return models.PlanResult{
		Events:                 events,
		Projections:            projections,
		TargetMinutesPerPlayer: plan.TargetMinutesPerPlayer,
		IsFeasible:             plan.IsFeasible,
		Warnings:               plan.Warnings,
	}
}

func fromModelResult(result models.PlanResult) *scheduler.SubstitutionPlan {
	events := make([]scheduler.SubstitutionEvent, 0, len(result.Events))
	for _, e := range result.Events {
		events = append(events, scheduler.SubstitutionEvent{
			TimeMinutes:   e.TimeMinutes,
			FieldPlayerID: e.FieldPlayerID,
			BenchPlayerID: e.BenchPlayerID,
		})
	}

	projections := make(map[string]scheduler.PlayerProjection, len(result.Projections))
	for id, p := range result.Projections {
		projections[id] = scheduler.PlayerProjection{
			PlayerID:         p.PlayerID,
			ProjectedMinutes: p.ProjectedMinutes,
			TargetMinutes:    p.TargetMinutes,
			Deviation:        p.Deviation,
			TargetBenchCount: p.TargetBenchCount,
			ActualBenchCount: p.ActualBenchCount,
		}
	}

	return &scheduler.SubstitutionPlan{
		Events:                 events,
		Projections:            projections,
		TargetMinutesPerPlayer: result.TargetMinutesPerPlayer,
		IsFeasible:             result.IsFeasible,
		Warnings:               result.Warnings,
	}
}

// dominantStrategy summarizes a plan's per-round strategy choices into a single label
func dominantStrategy(perRound []scheduler.Strategy) string {
	if len(perRound) == 0 {
		return string(scheduler.StrategyOptimal)
	}
	for _, s := range perRound {
		if s == scheduler.StrategyGreedy {
			return string(scheduler.StrategyGreedy)
		}
	}
	return string(scheduler.StrategyOptimal)
}
