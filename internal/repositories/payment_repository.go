// internal/repositories/payment_repository.go
// Payment data access layer

package repositories

import (
	"context"
	"database/sql"
)

// PaymentRepository handles payment data access
type PaymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreatePaymentRecord creates a payment record
func (r *PaymentRepository) CreatePaymentRecord(ctx context.Context, record map[string]interface{}) error {
	// TODO: Implement payment record creation
	// This would store Stripe payment intents, charges, etc.
	return nil
}

// GetByParticipant retrieves payment records for a participant
func (r *PaymentRepository) GetByParticipant(ctx context.Context, tournamentID, participantID string) ([]map[string]interface{}, error) {
	// TODO: Implement payment retrieval
	return []map[string]interface{}{}, nil
}
