package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// EraseUserData deletes every row belonging to the user in a single
// transaction, the account row included. One anonymized audit row (no user_id)
// is written in the same transaction so the erasure itself stays traceable
// without retaining personal data.
func (db *DB) EraseUserData(ctx context.Context, userID uuid.UUID) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Children before the parent; the FK cascades would cover most of these
	// but the explicit order keeps the erasure auditable statement by
	// statement.
	deletes := []string{
		`DELETE FROM responses_likert WHERE user_id = $1`,
		`DELETE FROM responses_evidence WHERE user_id = $1`,
		`DELETE FROM ikigai_items WHERE user_id = $1`,
		`DELETE FROM user_choices WHERE user_id = $1`,
		`DELETE FROM user_plan90d WHERE user_id = $1`,
		`DELETE FROM audit_logs WHERE user_id = $1`,
	}
	for _, stmt := range deletes {
		if _, err := tx.Exec(ctx, stmt, userID); err != nil {
			return fmt.Errorf("failed to erase user data: %w", err)
		}
	}

	result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to erase user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO audit_logs (user_id, action) VALUES (NULL, $1)`,
		AuditErasure,
	)
	if err != nil {
		return fmt.Errorf("failed to record erasure: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit erasure: %w", err)
	}
	return nil
}
