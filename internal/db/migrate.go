package db

import (
	"context"
	"fmt"
)

// migrations are applied in order; every statement is idempotent so the
// migrate command can be re-run safely.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		password_set BOOLEAN NOT NULL DEFAULT FALSE,
		consent_version TEXT,
		consent_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS responses_likert (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		item_id TEXT NOT NULL,
		value SMALLINT NOT NULL CHECK (value BETWEEN 1 AND 5),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, item_id)
	)`,

	`CREATE TABLE IF NOT EXISTS responses_evidence (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		prompt_id TEXT NOT NULL,
		answer TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, prompt_id)
	)`,

	`CREATE TABLE IF NOT EXISTS ikigai_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		circle TEXT NOT NULL,
		text TEXT NOT NULL,
		rank SMALLINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_ikigai_items_user ON ikigai_items(user_id)`,

	`CREATE TABLE IF NOT EXISTS user_choices (
		user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		chosen_zone TEXT,
		chosen_focus TEXT,
		assessment_status TEXT NOT NULL DEFAULT 'in_progress',
		completed_at TIMESTAMPTZ,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS user_plan90d (
		user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		cycle_objective TEXT,
		checkpoint1_date TEXT,
		checkpoint2_date TEXT,
		checkpoint3_date TEXT,
		selected_70 JSONB NOT NULL DEFAULT '[]',
		selected_20 JSONB NOT NULL DEFAULT '[]',
		selected_10 JSONB NOT NULL DEFAULT '[]',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS audit_logs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID,
		action TEXT NOT NULL,
		detail JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_audit_logs_user ON audit_logs(user_id)`,
}

// Migrate creates the schema. Safe to run on every startup.
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", i+1, err)
		}
	}
	return nil
}
