package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Plan90DInput carries the fields of a plan save. Nil fields are left
// unchanged on an existing row.
type Plan90DInput struct {
	CycleObjective  *string
	Checkpoint1Date *string
	Checkpoint2Date *string
	Checkpoint3Date *string
	Selected70      []string
	Selected20      []string
	Selected10      []string
}

// UpsertChoice records the chosen zone and focus. Nil fields leave any
// previously stored values in place, so partial saves never lose data.
func (db *DB) UpsertChoice(ctx context.Context, userID uuid.UUID, chosenZone, chosenFocus *string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO user_choices (user_id, chosen_zone, chosen_focus)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET
		     chosen_zone = COALESCE($2, user_choices.chosen_zone),
		     chosen_focus = COALESCE($3, user_choices.chosen_focus),
		     updated_at = NOW()`,
		userID, chosenZone, chosenFocus,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert choice: %w", err)
	}
	return nil
}

// GetChoice retrieves the user's choice row
func (db *DB) GetChoice(ctx context.Context, userID uuid.UUID) (*UserChoice, error) {
	var c UserChoice
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, chosen_zone, chosen_focus, assessment_status, completed_at, updated_at
		 FROM user_choices WHERE user_id = $1`,
		userID,
	).Scan(&c.UserID, &c.ChosenZone, &c.ChosenFocus, &c.AssessmentStatus, &c.CompletedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get choice: %w", err)
	}
	return &c, nil
}

// CompleteAssessment marks the assessment as completed. The transition is
// forward-only: an already-set completed_at is kept on repeat submits.
func (db *DB) CompleteAssessment(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO user_choices (user_id, assessment_status, completed_at)
		 VALUES ($1, 'completed', NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
		     assessment_status = 'completed',
		     completed_at = COALESCE(user_choices.completed_at, NOW()),
		     updated_at = NOW()`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete assessment: %w", err)
	}
	return nil
}

// UpsertPlan90D merges the provided plan fields into the user's plan row.
// Nil fields leave existing values untouched.
func (db *DB) UpsertPlan90D(ctx context.Context, userID uuid.UUID, input Plan90DInput) error {
	s70, err := jsonOrNil(input.Selected70)
	if err != nil {
		return err
	}
	s20, err := jsonOrNil(input.Selected20)
	if err != nil {
		return err
	}
	s10, err := jsonOrNil(input.Selected10)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO user_plan90d
		     (user_id, cycle_objective, checkpoint1_date, checkpoint2_date, checkpoint3_date,
		      selected_70, selected_20, selected_10)
		 VALUES ($1, $2, $3, $4, $5, COALESCE($6, '[]'::jsonb), COALESCE($7, '[]'::jsonb), COALESCE($8, '[]'::jsonb))
		 ON CONFLICT (user_id) DO UPDATE SET
		     cycle_objective = COALESCE($2, user_plan90d.cycle_objective),
		     checkpoint1_date = COALESCE($3, user_plan90d.checkpoint1_date),
		     checkpoint2_date = COALESCE($4, user_plan90d.checkpoint2_date),
		     checkpoint3_date = COALESCE($5, user_plan90d.checkpoint3_date),
		     selected_70 = COALESCE($6, user_plan90d.selected_70),
		     selected_20 = COALESCE($7, user_plan90d.selected_20),
		     selected_10 = COALESCE($8, user_plan90d.selected_10),
		     updated_at = NOW()`,
		userID, input.CycleObjective, input.Checkpoint1Date, input.Checkpoint2Date, input.Checkpoint3Date,
		s70, s20, s10,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert plan: %w", err)
	}
	return nil
}

// GetPlan90D retrieves the user's plan row
func (db *DB) GetPlan90D(ctx context.Context, userID uuid.UUID) (*Plan90D, error) {
	var p Plan90D
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, cycle_objective, checkpoint1_date, checkpoint2_date, checkpoint3_date,
		        selected_70, selected_20, selected_10, updated_at
		 FROM user_plan90d WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.CycleObjective, &p.Checkpoint1Date, &p.Checkpoint2Date, &p.Checkpoint3Date,
		&p.Selected70, &p.Selected20, &p.Selected10, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return &p, nil
}

// jsonOrNil marshals a string slice for a JSONB parameter, keeping nil as SQL
// NULL so COALESCE can skip the field.
func jsonOrNil(values []string) (any, error) {
	if values == nil {
		return nil, nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan selections: %w", err)
	}
	return data, nil
}
