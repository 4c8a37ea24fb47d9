package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// LikertAnswer is one incoming answer to persist.
type LikertAnswer struct {
	ItemID string
	Value  int
}

// EvidenceAnswer is one incoming free-text answer to persist.
type EvidenceAnswer struct {
	PromptID string
	Answer   string
}

// IkigaiEntry is one incoming worksheet entry to persist.
type IkigaiEntry struct {
	Circle string
	Text   string
	Rank   int
}

// SaveLikertSection replaces the user's answers for one section without
// touching the other section's rows: only rows whose item_id is in
// sectionItemIDs are deleted before the batch is inserted, all inside one
// transaction.
func (db *DB) SaveLikertSection(ctx context.Context, userID uuid.UUID, sectionItemIDs []string, answers []LikertAnswer) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM responses_likert WHERE user_id = $1 AND item_id = ANY($2)`,
		userID, sectionItemIDs,
	)
	if err != nil {
		return fmt.Errorf("failed to clear section answers: %w", err)
	}

	for _, a := range answers {
		_, err = tx.Exec(ctx,
			`INSERT INTO responses_likert (user_id, item_id, value)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (user_id, item_id) DO UPDATE SET value = $3, updated_at = NOW()`,
			userID, a.ItemID, a.Value,
		)
		if err != nil {
			return fmt.Errorf("failed to save answer %s: %w", a.ItemID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit section answers: %w", err)
	}
	return nil
}

// ListLikertResponses retrieves all stored Likert answers for a user
func (db *DB) ListLikertResponses(ctx context.Context, userID uuid.UUID) ([]LikertResponse, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT user_id, item_id, value, updated_at
		 FROM responses_likert WHERE user_id = $1 ORDER BY item_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list likert responses: %w", err)
	}
	defer rows.Close()

	var responses []LikertResponse
	for rows.Next() {
		var r LikertResponse
		if err := rows.Scan(&r.UserID, &r.ItemID, &r.Value, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan likert response: %w", err)
		}
		responses = append(responses, r)
	}
	return responses, nil
}

// SaveEvidenceResponses replaces the user's whole evidence collection in one
// transaction.
func (db *DB) SaveEvidenceResponses(ctx context.Context, userID uuid.UUID, answers []EvidenceAnswer) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM responses_evidence WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear evidence answers: %w", err)
	}

	for _, a := range answers {
		_, err = tx.Exec(ctx,
			`INSERT INTO responses_evidence (user_id, prompt_id, answer)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (user_id, prompt_id) DO UPDATE SET answer = $3, updated_at = NOW()`,
			userID, a.PromptID, a.Answer,
		)
		if err != nil {
			return fmt.Errorf("failed to save evidence answer %s: %w", a.PromptID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit evidence answers: %w", err)
	}
	return nil
}

// ListEvidenceResponses retrieves all stored evidence answers for a user
func (db *DB) ListEvidenceResponses(ctx context.Context, userID uuid.UUID) ([]EvidenceResponse, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT user_id, prompt_id, answer, updated_at
		 FROM responses_evidence WHERE user_id = $1 ORDER BY prompt_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list evidence responses: %w", err)
	}
	defer rows.Close()

	var responses []EvidenceResponse
	for rows.Next() {
		var r EvidenceResponse
		if err := rows.Scan(&r.UserID, &r.PromptID, &r.Answer, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evidence response: %w", err)
		}
		responses = append(responses, r)
	}
	return responses, nil
}

// SaveIkigaiItems replaces the user's whole worksheet in one transaction.
func (db *DB) SaveIkigaiItems(ctx context.Context, userID uuid.UUID, items []IkigaiEntry) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM ikigai_items WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear ikigai items: %w", err)
	}

	for _, item := range items {
		_, err = tx.Exec(ctx,
			`INSERT INTO ikigai_items (user_id, circle, text, rank)
			 VALUES ($1, $2, $3, $4)`,
			userID, item.Circle, item.Text, item.Rank,
		)
		if err != nil {
			return fmt.Errorf("failed to save ikigai item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit ikigai items: %w", err)
	}
	return nil
}

// ListIkigaiItems retrieves all worksheet entries for a user
func (db *DB) ListIkigaiItems(ctx context.Context, userID uuid.UUID) ([]IkigaiItem, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, circle, text, rank, created_at
		 FROM ikigai_items WHERE user_id = $1 ORDER BY circle, rank`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list ikigai items: %w", err)
	}
	defer rows.Close()

	var items []IkigaiItem
	for rows.Next() {
		var item IkigaiItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.Circle, &item.Text, &item.Rank, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ikigai item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}
