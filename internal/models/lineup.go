// internal/models/lineup.go
// Substitution plan persistence model

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// LineupSnapshot is the JSON-serializable roster input a plan was computed
// from, stored alongside the plan so a later Verify call can be given the
// exact same snapshot.
type LineupSnapshot struct {
	Players []PlayerInput `json:"players"`
	Config  PlanConfig    `json:"config"`
}

// PlayerInput mirrors scheduler.Player in a JSON-friendly shape.
type PlayerInput struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Role             string          `json:"role"`
	IsOnField        bool            `json:"is_on_field"`
	IsLocked         bool            `json:"is_locked"`
	AllowedPositions map[string]bool `json:"allowed_positions"`
}

// PlanConfig mirrors scheduler.PlanConfig in a JSON-friendly shape.
type PlanConfig struct {
	TotalMatchMinutes float64 `json:"total_match_minutes"`
	MaxSubsPerWindow  int     `json:"max_subs_per_window"`
	WindowLengthMin   float64 `json:"window_length_min"`
	MinOnMinutes      float64 `json:"min_on_minutes"`
	MinRestMinutes    float64 `json:"min_rest_minutes"`
}

// Scan implements sql.Scanner for LineupSnapshot.
func (s *LineupSnapshot) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into LineupSnapshot", value)
	}
	return json.Unmarshal(bytes, s)
}

// Value implements driver.Valuer for LineupSnapshot.
func (s LineupSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// PlanResult is the JSON-serializable computed plan stored for retrieval.
// It mirrors the fields of scheduler.SubstitutionPlan that matter to a
// caller fetching a previously generated plan.
type PlanResult struct {
	Events                 []PlanEvent            `json:"events"`
	Projections            map[string]PlanProject `json:"projections"`
	TargetMinutesPerPlayer float64                `json:"target_minutes_per_player"`
	IsFeasible             bool                    `json:"is_feasible"`
	Warnings               []string                `json:"warnings,omitempty"`
}

// PlanEvent mirrors scheduler.SubstitutionEvent.
type PlanEvent struct {
	TimeMinutes   float64 `json:"time_minutes"`
	FieldPlayerID string  `json:"field_player_id"`
	BenchPlayerID string  `json:"bench_player_id"`
}

// PlanProject mirrors scheduler.PlayerProjection.
type PlanProject struct {
	PlayerID         string  `json:"player_id"`
	ProjectedMinutes float64 `json:"projected_minutes"`
	TargetMinutes    float64 `json:"target_minutes"`
	Deviation        float64 `json:"deviation"`
	TargetBenchCount int     `json:"target_bench_count"`
	ActualBenchCount int     `json:"actual_bench_count"`
}

// Scan implements sql.Scanner for PlanResult.
func (p *PlanResult) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into PlanResult", value)
	}
	return json.Unmarshal(bytes, p)
}

// Value implements driver.Valuer for PlanResult.
func (p PlanResult) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// LineupRecord is one stored substitution plan run for a match.
type LineupRecord struct {
	ID          string         `json:"id" db:"id"`
	MatchID     string         `json:"match_id" db:"match_id"`
	Snapshot    LineupSnapshot `json:"snapshot" db:"snapshot"`
	Result      PlanResult     `json:"result" db:"result"`
	Strategy    string         `json:"strategy" db:"strategy"`
	GeneratedBy string         `json:"generated_by" db:"generated_by"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
}
