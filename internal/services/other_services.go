// internal/services/other_services.go
// Additional services for notifications, payments, analytics, etc.

package services

import (
	"context"
	"log"
	"time"

	"tournament-planner/internal/config"
	"tournament-planner/internal/database"
	"tournament-planner/internal/models"
	"tournament-planner/internal/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationService handles all notification operations
type NotificationService struct {
	db     *database.Connections
	config *config.Config
	logger *log.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(db *database.Connections, config *config.Config, logger *log.Logger) *NotificationService {
	return &NotificationService{
		db:     db,
		config: config,
		logger: logger,
	}
}

// NotifyTournamentPublished sends notifications when a tournament is published
func (s *NotificationService) NotifyTournamentPublished(tournament *models.Tournament) {
	// TODO: Implement actual notification sending
	s.logger.Printf("Would notify about tournament published: %s", tournament.Name)
}

// NotifyFixturesGenerated sends notifications when fixtures are generated
func (s *NotificationService) NotifyFixturesGenerated(tournamentID string, participants []*models.Participant) {
	// TODO: Implement actual notification sending
	s.logger.Printf("Would notify %d participants about fixtures generated for tournament %s", len(participants), tournamentID)
}

// NotifyMatchScheduled sends notification about a scheduled match
func (s *NotificationService) NotifyMatchScheduled(match *models.Match, participants []string) {
	// TODO: Implement actual notification sending
	s.logger.Printf("Would notify participants about match %s scheduled", match.ID)
}

// NotifyMatchResult sends notification about match results
func (s *NotificationService) NotifyMatchResult(match *models.Match, participants []string) {
	// TODO: Implement actual notification sending
	s.logger.Printf("Would notify participants about match %s result", match.ID)
}

// ========================================

// PaymentService handles payment operations
type PaymentService struct {
	repos  *repositories.Container
	config config.ExternalConfig
	logger *log.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(repos *repositories.Container, config config.ExternalConfig, logger *log.Logger) *PaymentService {
	return &PaymentService{
		repos:  repos,
		config: config,
		logger: logger,
	}
}

// ProcessPayment processes a tournament registration payment
func (s *PaymentService) ProcessPayment(ctx context.Context, tournamentID, participantID string, amount float64) error {
	// TODO: Implement Stripe payment processing
	s.logger.Printf("Would process payment of %.2f for participant %s in tournament %s", amount, participantID, tournamentID)

	// For now, just mark as paid
	return s.repos.TournamentParticipant.UpdatePaymentStatus(ctx, tournamentID, participantID, models.PaymentPaid)
}

// RefundPayment processes a refund
func (s *PaymentService) RefundPayment(ctx context.Context, tournamentID, participantID string) error {
	// TODO: Implement Stripe refund
	s.logger.Printf("Would process refund for participant %s in tournament %s", participantID, tournamentID)

	return s.repos.TournamentParticipant.UpdatePaymentStatus(ctx, tournamentID, participantID, models.PaymentRefunded)
}

// ========================================

// AnalyticsService handles analytics and event tracking
type AnalyticsService struct {
	db     *mongo.Database
	cache  *CacheService
	logger *log.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(db *mongo.Database, cache *CacheService, logger *log.Logger) *AnalyticsService {
	return &AnalyticsService{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// LogEvent logs an analytics event
func (s *AnalyticsService) LogEvent(ctx context.Context, eventType string, data map[string]interface{}) error {
	event := bson.M{
		"type":       eventType,
		"data":       data,
		"timestamp":  time.Now(),
		"created_at": time.Now(),
	}

	_, err := s.db.Collection("analytics_events").InsertOne(ctx, event)
	if err != nil {
		s.logger.Printf("Failed to log analytics event: %v", err)
		// Don't return error - analytics shouldn't break the app
	}

	return nil
}

// GetTournamentStats retrieves tournament statistics
func (s *AnalyticsService) GetTournamentStats(ctx context.Context, tournamentID string) (map[string]interface{}, error) {
	// TODO: Implement aggregation queries
	return map[string]interface{}{
		"total_views":         0,
		"total_registrations": 0,
		"conversion_rate":     0.0,
	}, nil
}

// GetPlatformStats retrieves platform-wide statistics
func (s *AnalyticsService) GetPlatformStats(ctx context.Context) (map[string]interface{}, error) {
	// Try cache first
	var stats map[string]interface{}
	if err := s.cache.Get("platform_stats", &stats); err == nil {
		return stats, nil
	}

	// TODO: Implement aggregation queries
	stats = map[string]interface{}{
		"total_users":        0,
		"total_tournaments":  0,
		"total_matches":      0,
		"active_tournaments": 0,
	}

	// Cache for 5 minutes
	s.cache.Set("platform_stats", stats, 5*time.Minute)

	return stats, nil
}
