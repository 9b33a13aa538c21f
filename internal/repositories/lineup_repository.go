// internal/repositories/lineup_repository.go
// Substitution plan data access layer

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"tournament-planner/internal/models"
)

// LineupRepository handles substitution plan data access
type LineupRepository struct {
	db *sql.DB
}

// NewLineupRepository creates a new lineup repository
func NewLineupRepository(db *sql.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

// Create inserts a newly generated substitution plan
func (r *LineupRepository) Create(ctx context.Context, record *models.LineupRecord) error {
	query := `
		INSERT INTO substitution_plans (
			id, match_id, snapshot, result, strategy, generated_by, created_at
		) VALUES (
			?, ?, ?, ?, ?, ?, ?
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.MatchID,
		record.Snapshot,
		record.Result,
		record.Strategy,
		record.GeneratedBy,
		record.CreatedAt,
	)

	return err
}

// GetLatestByMatchID retrieves the most recently generated plan for a match
func (r *LineupRepository) GetLatestByMatchID(ctx context.Context, matchID string) (*models.LineupRecord, error) {
	query := `
		SELECT id, match_id, snapshot, result, strategy, generated_by, created_at
		FROM substitution_plans
		WHERE match_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`

	var record models.LineupRecord
	err := r.db.QueryRowContext(ctx, query, matchID).Scan(
		&record.ID,
		&record.MatchID,
		&record.Snapshot,
		&record.Result,
		&record.Strategy,
		&record.GeneratedBy,
		&record.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no substitution plan found for match")
	}

	return &record, err
}

// DeleteByMatchID removes every stored plan for a match, used when a match is cancelled
func (r *LineupRepository) DeleteByMatchID(ctx context.Context, matchID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM substitution_plans WHERE match_id = ?`, matchID)
	return err
}
