package server

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/abarros/arc-assessment/internal/db"
	"github.com/google/uuid"
)

// fakeStore is an in-memory Store (and DBClient) with the same merge and
// replace semantics as the real queries. Setting failErr makes every method
// fail, for degradation paths.
type fakeStore struct {
	users    map[uuid.UUID]*db.User
	likert   map[uuid.UUID][]db.LikertResponse
	evidence map[uuid.UUID][]db.EvidenceResponse
	ikigai   map[uuid.UUID][]db.IkigaiItem
	choices  map[uuid.UUID]*db.UserChoice
	plans    map[uuid.UUID]*db.Plan90D
	audits   []string
	erased   []uuid.UUID
	failErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[uuid.UUID]*db.User),
		likert:   make(map[uuid.UUID][]db.LikertResponse),
		evidence: make(map[uuid.UUID][]db.EvidenceResponse),
		ikigai:   make(map[uuid.UUID][]db.IkigaiItem),
		choices:  make(map[uuid.UUID]*db.UserChoice),
		plans:    make(map[uuid.UUID]*db.Plan90D),
	}
}

func (f *fakeStore) addUser(name, email string) uuid.UUID {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{ID: id, Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
	return id
}

func (f *fakeStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	return f.users[id], nil
}

func (f *fakeStore) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	if f.failErr != nil {
		return uuid.Nil, f.failErr
	}
	return f.addUser(name, email), nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	if f.failErr != nil {
		return false, f.failErr
	}
	u, _ := f.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func (f *fakeStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	if f.failErr != nil {
		return f.failErr
	}
	u := f.users[userID]
	if u == nil {
		return fmt.Errorf("user not found: %s", userID)
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

func (f *fakeStore) RecordConsent(_ context.Context, userID uuid.UUID, version string, at time.Time) error {
	if f.failErr != nil {
		return f.failErr
	}
	u := f.users[userID]
	if u == nil {
		return fmt.Errorf("user not found: %s", userID)
	}
	u.ConsentVersion = &version
	u.ConsentAt = &at
	return nil
}

func (f *fakeStore) SaveLikertSection(_ context.Context, userID uuid.UUID, sectionItemIDs []string, answers []db.LikertAnswer) error {
	if f.failErr != nil {
		return f.failErr
	}
	kept := f.likert[userID][:0:0]
	for _, row := range f.likert[userID] {
		if !slices.Contains(sectionItemIDs, row.ItemID) {
			kept = append(kept, row)
		}
	}
	for _, a := range answers {
		kept = append(kept, db.LikertResponse{UserID: userID, ItemID: a.ItemID, Value: a.Value})
	}
	f.likert[userID] = kept
	return nil
}

func (f *fakeStore) ListLikertResponses(_ context.Context, userID uuid.UUID) ([]db.LikertResponse, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	return f.likert[userID], nil
}

func (f *fakeStore) SaveEvidenceResponses(_ context.Context, userID uuid.UUID, answers []db.EvidenceAnswer) error {
	if f.failErr != nil {
		return f.failErr
	}
	rows := make([]db.EvidenceResponse, 0, len(answers))
	for _, a := range answers {
		rows = append(rows, db.EvidenceResponse{UserID: userID, PromptID: a.PromptID, Answer: a.Answer})
	}
	f.evidence[userID] = rows
	return nil
}

func (f *fakeStore) ListEvidenceResponses(_ context.Context, userID uuid.UUID) ([]db.EvidenceResponse, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	return f.evidence[userID], nil
}

func (f *fakeStore) SaveIkigaiItems(_ context.Context, userID uuid.UUID, items []db.IkigaiEntry) error {
	if f.failErr != nil {
		return f.failErr
	}
	rows := make([]db.IkigaiItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, db.IkigaiItem{
			ID:     uuid.New(),
			UserID: userID,
			Circle: item.Circle,
			Text:   item.Text,
			Rank:   item.Rank,
		})
	}
	f.ikigai[userID] = rows
	return nil
}

func (f *fakeStore) ListIkigaiItems(_ context.Context, userID uuid.UUID) ([]db.IkigaiItem, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	return f.ikigai[userID], nil
}

func (f *fakeStore) UpsertChoice(_ context.Context, userID uuid.UUID, chosenZone, chosenFocus *string) error {
	if f.failErr != nil {
		return f.failErr
	}
	c := f.choices[userID]
	if c == nil {
		c = &db.UserChoice{UserID: userID, AssessmentStatus: "in_progress"}
		f.choices[userID] = c
	}
	if chosenZone != nil {
		c.ChosenZone = chosenZone
	}
	if chosenFocus != nil {
		c.ChosenFocus = chosenFocus
	}
	return nil
}

func (f *fakeStore) GetChoice(_ context.Context, userID uuid.UUID) (*db.UserChoice, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	return f.choices[userID], nil
}

func (f *fakeStore) CompleteAssessment(_ context.Context, userID uuid.UUID) error {
	if f.failErr != nil {
		return f.failErr
	}
	c := f.choices[userID]
	if c == nil {
		c = &db.UserChoice{UserID: userID}
		f.choices[userID] = c
	}
	c.AssessmentStatus = "completed"
	if c.CompletedAt == nil {
		now := time.Now()
		c.CompletedAt = &now
	}
	return nil
}

func (f *fakeStore) UpsertPlan90D(_ context.Context, userID uuid.UUID, input db.Plan90DInput) error {
	if f.failErr != nil {
		return f.failErr
	}
	p := f.plans[userID]
	if p == nil {
		p = &db.Plan90D{UserID: userID, Selected70: db.StringArray{}, Selected20: db.StringArray{}, Selected10: db.StringArray{}}
		f.plans[userID] = p
	}
	if input.CycleObjective != nil {
		p.CycleObjective = input.CycleObjective
	}
	if input.Checkpoint1Date != nil {
		p.Checkpoint1Date = input.Checkpoint1Date
	}
	if input.Checkpoint2Date != nil {
		p.Checkpoint2Date = input.Checkpoint2Date
	}
	if input.Checkpoint3Date != nil {
		p.Checkpoint3Date = input.Checkpoint3Date
	}
	if input.Selected70 != nil {
		p.Selected70 = input.Selected70
	}
	if input.Selected20 != nil {
		p.Selected20 = input.Selected20
	}
	if input.Selected10 != nil {
		p.Selected10 = input.Selected10
	}
	return nil
}

func (f *fakeStore) GetPlan90D(_ context.Context, userID uuid.UUID) (*db.Plan90D, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	return f.plans[userID], nil
}

func (f *fakeStore) RecordAudit(_ context.Context, _ uuid.UUID, action string, _ map[string]any) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.audits = append(f.audits, action)
	return nil
}

func (f *fakeStore) EraseUserData(_ context.Context, userID uuid.UUID) error {
	if f.failErr != nil {
		return f.failErr
	}
	if f.users[userID] == nil {
		return fmt.Errorf("user not found: %s", userID)
	}
	delete(f.users, userID)
	delete(f.likert, userID)
	delete(f.evidence, userID)
	delete(f.ikigai, userID)
	delete(f.choices, userID)
	delete(f.plans, userID)
	f.erased = append(f.erased, userID)
	return nil
}

func (f *fakeStore) Ping(_ context.Context) error {
	return f.failErr
}

// newTestServer wires a Server around the fake store, without a database or
// HTTP listener.
func newTestServer(store *fakeStore) *Server {
	return &Server{store: store}
}
