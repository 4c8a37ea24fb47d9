package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abarros/arc-assessment/internal/catalog"
	"github.com/abarros/arc-assessment/internal/db"
	"github.com/abarros/arc-assessment/internal/server/middleware"
	"github.com/abarros/arc-assessment/internal/status"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authedRequest builds a request carrying the user ID the way the auth
// middleware would.
func authedRequest(method, path, body string, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	return middleware.WithUserID(req, userID)
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) status.Status {
	t.Helper()
	var st status.Status
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&st))
	return st
}

// fillCompleteAssessment stores a finished wizard directly on the fake.
func fillCompleteAssessment(t *testing.T, store *fakeStore, userID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.RecordConsent(ctx, userID, "v1.0", store.users[userID].CreatedAt))

	var core []db.LikertAnswer
	for _, id := range catalog.CoreItemIDs() {
		core = append(core, db.LikertAnswer{ItemID: id, Value: 4})
	}
	require.NoError(t, store.SaveLikertSection(ctx, userID, catalog.CoreItemIDs(), core))

	var bigfive []db.LikertAnswer
	for _, id := range catalog.BigFiveItemIDs() {
		bigfive = append(bigfive, db.LikertAnswer{ItemID: id, Value: 3})
	}
	require.NoError(t, store.SaveLikertSection(ctx, userID, catalog.BigFiveItemIDs(), bigfive))

	var evidence []db.EvidenceAnswer
	for _, prompt := range catalog.CoreEvidencePrompts {
		evidence = append(evidence, db.EvidenceAnswer{PromptID: prompt.ID, Answer: "Um exemplo concreto."})
	}
	require.NoError(t, store.SaveEvidenceResponses(ctx, userID, evidence))

	var items []db.IkigaiEntry
	for _, circle := range catalog.IkigaiCircles {
		for rank := 1; rank <= catalog.MinIkigaiItemsPerCircle; rank++ {
			items = append(items, db.IkigaiEntry{
				Circle: circle.Key,
				Text:   fmt.Sprintf("%s item %d", circle.Key, rank),
				Rank:   rank,
			})
		}
	}
	require.NoError(t, store.SaveIkigaiItems(ctx, userID, items))

	zone := "passion"
	require.NoError(t, store.UpsertChoice(ctx, userID, &zone, nil))
}

func TestHandleConsent(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store)
	userID := store.addUser("Ana", "ana@example.com")

	t.Run("records version and timestamp", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleConsent(rec, authedRequest(http.MethodPost, "/consent", `{"version":"v1.0"}`, userID))

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, store.users[userID].ConsentAt)
		assert.Equal(t, "v1.0", *store.users[userID].ConsentVersion)
		assert.Contains(t, store.audits, db.AuditConsent)
	})

	t.Run("missing version is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleConsent(rec, authedRequest(http.MethodPost, "/consent", `{}`, userID))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated request is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleConsent(rec, httptest.NewRequest(http.MethodPost, "/consent", strings.NewReader(`{"version":"v1.0"}`)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandleSaveLikert(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store)
	userID := store.addUser("Ana", "ana@example.com")

	coreID := catalog.CoreItemIDs()[0]
	bigFiveID := catalog.BigFiveItemIDs()[0]

	t.Run("partial core save reports progress", func(t *testing.T) {
		body := fmt.Sprintf(`{"section":"core","items":[{"item_id":%q,"value":4}]}`, coreID)
		rec := httptest.NewRecorder()
		s.handleSaveLikert(rec, authedRequest(http.MethodPost, "/assessment/likert", body, userID))

		require.Equal(t, http.StatusOK, rec.Code)
		st := decodeStatus(t, rec)
		assert.Equal(t, 1, st.Sections.CoreLikert.Answered)
		assert.False(t, st.Sections.CoreLikert.Complete)
		assert.Contains(t, store.audits, db.AuditLikertSave)
	})

	t.Run("saving bigfive does not clear core answers", func(t *testing.T) {
		body := fmt.Sprintf(`{"section":"bigfive","items":[{"item_id":%q,"value":2}]}`, bigFiveID)
		rec := httptest.NewRecorder()
		s.handleSaveLikert(rec, authedRequest(http.MethodPost, "/assessment/likert", body, userID))

		require.Equal(t, http.StatusOK, rec.Code)
		st := decodeStatus(t, rec)
		assert.Equal(t, 1, st.Sections.CoreLikert.Answered)
		assert.Equal(t, 1, st.Sections.BigFive.Answered)
	})

	t.Run("item from the wrong section is rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"section":"core","items":[{"item_id":%q,"value":3}]}`, bigFiveID)
		rec := httptest.NewRecorder()
		s.handleSaveLikert(rec, authedRequest(http.MethodPost, "/assessment/likert", body, userID))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate item is rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"section":"core","items":[{"item_id":%q,"value":3},{"item_id":%q,"value":4}]}`, coreID, coreID)
		rec := httptest.NewRecorder()
		s.handleSaveLikert(rec, authedRequest(http.MethodPost, "/assessment/likert", body, userID))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("value outside 1-5 is rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"section":"core","items":[{"item_id":%q,"value":6}]}`, coreID)
		rec := httptest.NewRecorder()
		s.handleSaveLikert(rec, authedRequest(http.MethodPost, "/assessment/likert", body, userID))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown section is rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"section":"extra","items":[{"item_id":%q,"value":3}]}`, coreID)
		rec := httptest.NewRecorder()
		s.handleSaveLikert(rec, authedRequest(http.MethodPost, "/assessment/likert", body, userID))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list returns stored answers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleListLikert(rec, authedRequest(http.MethodGet, "/assessment/likert", "", userID))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Items []struct {
				ItemID string `json:"item_id"`
				Value  int    `json:"value"`
			} `json:"items"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp.Items, 2)
	})
}

func TestHandleSaveEvidence(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store)
	userID := store.addUser("Ana", "ana@example.com")

	promptID := catalog.CoreEvidencePrompts[0].ID

	t.Run("valid save", func(t *testing.T) {
		body := fmt.Sprintf(`{"items":[{"prompt_id":%q,"answer":"Mudei de ideia sobre o roadmap."}]}`, promptID)
		rec := httptest.NewRecorder()
		s.handleSaveEvidence(rec, authedRequest(http.MethodPost, "/assessment/evidence", body, userID))

		require.Equal(t, http.StatusOK, rec.Code)
		st := decodeStatus(t, rec)
		assert.Equal(t, 1, st.Sections.CoreEvidence.Answered)
	})

	t.Run("unknown prompt is rejected", func(t *testing.T) {
		body := `{"items":[{"prompt_id":"zz_ev9","answer":"..."}]}`
		rec := httptest.NewRecorder()
		s.handleSaveEvidence(rec, authedRequest(http.MethodPost, "/assessment/evidence", body, userID))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty answer is rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"items":[{"prompt_id":%q,"answer":""}]}`, promptID)
		rec := httptest.NewRecorder()
		s.handleSaveEvidence(rec, authedRequest(http.MethodPost, "/assessment/evidence", body, userID))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleSaveIkigai(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store)
	userID := store.addUser("Ana", "ana@example.com")

	t.Run("valid save", func(t *testing.T) {
		body := `{"items":[
			{"circle":"love","text":"Ensinar","rank":1},
			{"circle":"love","text":"Escrever","rank":2},
			{"circle":"good_at","text":"Facilitar","rank":1}
		]}`
		rec := httptest.NewRecorder()
		s.handleSaveIkigai(rec, authedRequest(http.MethodPost, "/assessment/ikigai", body, userID))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, store.ikigai[userID], 3)
	})

	t.Run("unknown circle is rejected", func(t *testing.T) {
		body := `{"items":[{"circle":"money","text":"x","rank":1}]}`
		rec := httptest.NewRecorder()
		s.handleSaveIkigai(rec, authedRequest(http.MethodPost, "/assessment/ikigai", body, userID))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate rank in one circle is rejected", func(t *testing.T) {
		body := `{"items":[
			{"circle":"love","text":"a","rank":1},
			{"circle":"love","text":"b","rank":1}
		]}`
		rec := httptest.NewRecorder()
		s.handleSaveIkigai(rec, authedRequest(http.MethodPost, "/assessment/ikigai", body, userID))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("same rank in different circles is fine", func(t *testing.T) {
		body := `{"items":[
			{"circle":"love","text":"a","rank":1},
			{"circle":"paid_for","text":"b","rank":1}
		]}`
		rec := httptest.NewRecorder()
		s.handleSaveIkigai(rec, authedRequest(http.MethodPost, "/assessment/ikigai", body, userID))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandleSaveChoices(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store)
	userID := store.addUser("Ana", "ana@example.com")

	t.Run("valid zone", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleSaveChoices(rec, authedRequest(http.MethodPost, "/assessment/choices", `{"chosen_zone":"mission"}`, userID))

		require.Equal(t, http.StatusOK, rec.Code)
		st := decodeStatus(t, rec)
		assert.Equal(t, "mission", st.Sections.Zone.Chosen)
	})

	t.Run("null zone keeps the stored one", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleSaveChoices(rec, authedRequest(http.MethodPost, "/assessment/choices", `{"chosen_zone":null}`, userID))

		require.Equal(t, http.StatusOK, rec.Code)
		st := decodeStatus(t, rec)
		assert.Equal(t, "mission", st.Sections.Zone.Chosen)
	})

	t.Run("unknown zone is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleSaveChoices(rec, authedRequest(http.MethodPost, "/assessment/choices", `{"chosen_zone":"hobby"}`, userID))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get echoes the stored choice", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleGetChoices(rec, authedRequest(http.MethodGet, "/assessment/choices", "", userID))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "mission", resp["chosen_zone"])
		assert.Equal(t, "in_progress", resp["assessment_status"])
	})

	t.Run("get with nothing stored reports in_progress", func(t *testing.T) {
		other := store.addUser("Beto", "beto@example.com")
		rec := httptest.NewRecorder()
		s.handleGetChoices(rec, authedRequest(http.MethodGet, "/assessment/choices", "", other))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "in_progress", resp["assessment_status"])
		assert.NotContains(t, resp, "chosen_zone")
	})
}

func TestHandleSavePlan(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store)
	userID := store.addUser("Ana", "ana@example.com")

	t.Run("partial saves merge", func(t *testing.T) {
		first := `{"cycle_objective":"Liderar um projeto novo","selected_70":["Conduzir o planejamento Q4"]}`
		rec := httptest.NewRecorder()
		s.handleSavePlan(rec, authedRequest(http.MethodPost, "/assessment/plan90d", first, userID))
		require.Equal(t, http.StatusOK, rec.Code)

		second := `{"checkpoint1_date":"2026-09-24","selected_20":["Curso de facilitação"]}`
		rec = httptest.NewRecorder()
		s.handleSavePlan(rec, authedRequest(http.MethodPost, "/assessment/plan90d", second, userID))
		require.Equal(t, http.StatusOK, rec.Code)

		plan := store.plans[userID]
		require.NotNil(t, plan)
		assert.Equal(t, "Liderar um projeto novo", *plan.CycleObjective)
		assert.Equal(t, "2026-09-24", *plan.Checkpoint1Date)
		assert.Equal(t, db.StringArray{"Conduzir o planejamento Q4"}, plan.Selected70)
		assert.Equal(t, db.StringArray{"Curso de facilitação"}, plan.Selected20)
	})

	t.Run("too many selections are rejected", func(t *testing.T) {
		body := `{"selected_10":["a","b"]}`
		rec := httptest.NewRecorder()
		s.handleSavePlan(rec, authedRequest(http.MethodPost, "/assessment/plan90d", body, userID))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed checkpoint date is rejected", func(t *testing.T) {
		body := `{"checkpoint2_date":"24/09/2026"}`
		rec := httptest.NewRecorder()
		s.handleSavePlan(rec, authedRequest(http.MethodPost, "/assessment/plan90d", body, userID))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get returns the merged plan", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleGetPlan(rec, authedRequest(http.MethodGet, "/assessment/plan90d", "", userID))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Liderar um projeto novo", resp["cycle_objective"])
	})

	t.Run("get with nothing stored returns empty object", func(t *testing.T) {
		other := store.addUser("Beto", "beto@example.com")
		rec := httptest.NewRecorder()
		s.handleGetPlan(rec, authedRequest(http.MethodGet, "/assessment/plan90d", "", other))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "{}\n", rec.Body.String())
	})
}

func TestHandleStatus_ResumeChain(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store)
	userID := store.addUser("Ana", "ana@example.com")
	ctx := context.Background()

	getStatus := func() status.Status {
		rec := httptest.NewRecorder()
		s.handleStatus(rec, authedRequest(http.MethodGet, "/assessment/status", "", userID))
		require.Equal(t, http.StatusOK, rec.Code)
		return decodeStatus(t, rec)
	}

	assert.Equal(t, status.StepLGPD, getStatus().ResumeStep)

	require.NoError(t, store.RecordConsent(ctx, userID, "v1.0", store.users[userID].CreatedAt))
	assert.Equal(t, status.StepCoreLikert, getStatus().ResumeStep)

	fillCompleteAssessment(t, store, userID)
	st := getStatus()
	assert.Equal(t, status.StepReview, st.ResumeStep)
	assert.True(t, st.AllComplete)
}

func TestHandleStatus_DegradesWhenStoreFails(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store)
	userID := store.addUser("Ana", "ana@example.com")
	fillCompleteAssessment(t, store, userID)

	store.failErr = fmt.Errorf("connection refused")

	rec := httptest.NewRecorder()
	s.handleStatus(rec, authedRequest(http.MethodGet, "/assessment/status", "", userID))

	require.Equal(t, http.StatusOK, rec.Code)
	st := decodeStatus(t, rec)
	assert.False(t, st.AllComplete)
	assert.Equal(t, status.StepLGPD, st.ResumeStep)
}

func TestHandleSubmit(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store)
	userID := store.addUser("Ana", "ana@example.com")
	fillCompleteAssessment(t, store, userID)

	rec := httptest.NewRecorder()
	s.handleSubmit(rec, authedRequest(http.MethodPost, "/assessment/submit", "", userID))

	require.Equal(t, http.StatusOK, rec.Code)
	st := decodeStatus(t, rec)
	assert.Equal(t, status.AssessmentCompleted, st.AssessmentStatus)
	assert.Equal(t, status.StepSubmitted, st.ResumeStep)
	assert.Contains(t, store.audits, db.AuditSubmit)

	firstCompletedAt := store.choices[userID].CompletedAt
	require.NotNil(t, firstCompletedAt)

	rec = httptest.NewRecorder()
	s.handleSubmit(rec, authedRequest(http.MethodPost, "/assessment/submit", "", userID))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, firstCompletedAt, store.choices[userID].CompletedAt, "repeat submit keeps the first timestamp")
}

func TestHandleFull(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store)
	userID := store.addUser("Ana", "ana@example.com")
	fillCompleteAssessment(t, store, userID)

	rec := httptest.NewRecorder()
	s.handleFull(rec, authedRequest(http.MethodGet, "/assessment/full", "", userID))

	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&doc))

	assert.Len(t, doc["likert"], 60)
	assert.Len(t, doc["evidence"], 10)
	assert.Len(t, doc["ikigai"], 4*catalog.MinIkigaiItemsPerCircle)
	assert.Equal(t, "passion", doc["chosen_zone"])
	require.Contains(t, doc, "status")
}
