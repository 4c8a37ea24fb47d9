package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Audit action names, one per state-changing operation.
const (
	AuditConsent     = "consent_recorded"
	AuditLikertSave  = "likert_saved"
	AuditEvidence    = "evidence_saved"
	AuditIkigaiSave  = "ikigai_saved"
	AuditChoiceSave  = "choice_saved"
	AuditPlanSave    = "plan_saved"
	AuditSubmit      = "assessment_submitted"
	AuditPDFRendered = "pdf_rendered"
	AuditErasure     = "data_erased"
)

// RecordAudit appends one audit row. Detail is optional structured context.
func (db *DB) RecordAudit(ctx context.Context, userID uuid.UUID, action string, detail map[string]any) error {
	var detailJSON []byte
	if detail != nil {
		var err error
		detailJSON, err = json.Marshal(detail)
		if err != nil {
			return fmt.Errorf("failed to marshal audit detail: %w", err)
		}
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO audit_logs (user_id, action, detail) VALUES ($1, $2, $3)`,
		userID, action, detailJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to record audit log: %w", err)
	}
	return nil
}
