package server

import (
	"context"
	"time"

	"github.com/abarros/arc-assessment/internal/db"
	"github.com/google/uuid"
)

// Store is the persistence surface the wizard handlers use. *db.DB satisfies
// it; handler tests substitute a fake.
type Store interface {
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	RecordConsent(ctx context.Context, userID uuid.UUID, version string, at time.Time) error

	SaveLikertSection(ctx context.Context, userID uuid.UUID, sectionItemIDs []string, answers []db.LikertAnswer) error
	ListLikertResponses(ctx context.Context, userID uuid.UUID) ([]db.LikertResponse, error)
	SaveEvidenceResponses(ctx context.Context, userID uuid.UUID, answers []db.EvidenceAnswer) error
	ListEvidenceResponses(ctx context.Context, userID uuid.UUID) ([]db.EvidenceResponse, error)
	SaveIkigaiItems(ctx context.Context, userID uuid.UUID, items []db.IkigaiEntry) error
	ListIkigaiItems(ctx context.Context, userID uuid.UUID) ([]db.IkigaiItem, error)

	UpsertChoice(ctx context.Context, userID uuid.UUID, chosenZone, chosenFocus *string) error
	GetChoice(ctx context.Context, userID uuid.UUID) (*db.UserChoice, error)
	CompleteAssessment(ctx context.Context, userID uuid.UUID) error
	UpsertPlan90D(ctx context.Context, userID uuid.UUID, input db.Plan90DInput) error
	GetPlan90D(ctx context.Context, userID uuid.UUID) (*db.Plan90D, error)

	RecordAudit(ctx context.Context, userID uuid.UUID, action string, detail map[string]any) error
	EraseUserData(ctx context.Context, userID uuid.UUID) error

	Ping(ctx context.Context) error
}
