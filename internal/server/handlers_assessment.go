package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/abarros/arc-assessment/internal/catalog"
	"github.com/abarros/arc-assessment/internal/db"
	"github.com/abarros/arc-assessment/internal/server/middleware"
	"github.com/abarros/arc-assessment/internal/status"
	"github.com/abarros/arc-assessment/internal/types"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// requireUserID extracts the authenticated user ID set by the auth middleware.
func (s *Server) requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// handleConsent records LGPD consent for the authenticated user.
func (s *Server) handleConsent(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var req types.ConsentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	consentAt := time.Now().UTC()
	if err := s.store.RecordConsent(r.Context(), userID, req.Version, consentAt); err != nil {
		log.Printf("[consent] failed to record consent for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to record consent")
		return
	}
	s.audit(r.Context(), userID, db.AuditConsent, map[string]any{"version": req.Version})

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":    true,
		"version":    req.Version,
		"consent_at": consentAt.Format(time.RFC3339),
	})
}

// handleSaveLikert saves one questionnaire section. Saving a section replaces
// only that section's stored rows; the other section is untouched.
func (s *Server) handleSaveLikert(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var req types.SaveLikertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	inSection := catalog.IsCoreItemID
	sectionIDs := catalog.CoreItemIDs()
	if req.Section == "bigfive" {
		inSection = catalog.IsBigFiveItemID
		sectionIDs = catalog.BigFiveItemIDs()
	}

	seen := make(map[string]bool, len(req.Items))
	answers := make([]db.LikertAnswer, 0, len(req.Items))
	for _, item := range req.Items {
		if !inSection(item.ItemID) {
			s.errorResponse(w, http.StatusBadRequest,
				fmt.Sprintf("item %s does not belong to section %s", item.ItemID, req.Section))
			return
		}
		if seen[item.ItemID] {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("duplicate item: %s", item.ItemID))
			return
		}
		seen[item.ItemID] = true
		answers = append(answers, db.LikertAnswer{ItemID: item.ItemID, Value: item.Value})
	}

	if err := s.store.SaveLikertSection(r.Context(), userID, sectionIDs, answers); err != nil {
		log.Printf("[likert] failed to save section %s for %s: %v", req.Section, userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save responses")
		return
	}
	s.audit(r.Context(), userID, db.AuditLikertSave, map[string]any{
		"section": req.Section,
		"items":   len(answers),
	})

	s.jsonResponse(w, http.StatusOK, s.computeStatus(r.Context(), userID))
}

// handleListLikert returns every stored Likert answer for the user.
func (s *Server) handleListLikert(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	rows, err := s.store.ListLikertResponses(r.Context(), userID)
	if err != nil {
		log.Printf("[likert] failed to list responses for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list responses")
		return
	}

	items := make([]types.LikertItemInput, 0, len(rows))
	for _, row := range rows {
		items = append(items, types.LikertItemInput{ItemID: row.ItemID, Value: row.Value})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"items": items})
}

// handleSaveEvidence replaces the user's evidence answers.
func (s *Server) handleSaveEvidence(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var req types.SaveEvidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	seen := make(map[string]bool, len(req.Items))
	answers := make([]db.EvidenceAnswer, 0, len(req.Items))
	for _, item := range req.Items {
		if !catalog.IsEvidencePromptID(item.PromptID) {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown prompt: %s", item.PromptID))
			return
		}
		if seen[item.PromptID] {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("duplicate prompt: %s", item.PromptID))
			return
		}
		seen[item.PromptID] = true
		answers = append(answers, db.EvidenceAnswer{PromptID: item.PromptID, Answer: item.Answer})
	}

	if err := s.store.SaveEvidenceResponses(r.Context(), userID, answers); err != nil {
		log.Printf("[evidence] failed to save answers for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save answers")
		return
	}
	s.audit(r.Context(), userID, db.AuditEvidence, map[string]any{"items": len(answers)})

	s.jsonResponse(w, http.StatusOK, s.computeStatus(r.Context(), userID))
}

// handleListEvidence returns the stored evidence answers.
func (s *Server) handleListEvidence(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	rows, err := s.store.ListEvidenceResponses(r.Context(), userID)
	if err != nil {
		log.Printf("[evidence] failed to list answers for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list answers")
		return
	}

	items := make([]types.EvidenceItemInput, 0, len(rows))
	for _, row := range rows {
		items = append(items, types.EvidenceItemInput{PromptID: row.PromptID, Answer: row.Answer})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"items": items})
}

// handleSaveIkigai replaces the user's worksheet.
func (s *Server) handleSaveIkigai(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var req types.SaveIkigaiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	// Ranks must be unique within a circle so the ordering is deterministic.
	rankSeen := make(map[string]bool, len(req.Items))
	items := make([]db.IkigaiEntry, 0, len(req.Items))
	for _, item := range req.Items {
		key := fmt.Sprintf("%s/%d", item.Circle, item.Rank)
		if rankSeen[key] {
			s.errorResponse(w, http.StatusBadRequest,
				fmt.Sprintf("duplicate rank %d in circle %s", item.Rank, item.Circle))
			return
		}
		rankSeen[key] = true
		items = append(items, db.IkigaiEntry{Circle: item.Circle, Text: item.Text, Rank: item.Rank})
	}

	if err := s.store.SaveIkigaiItems(r.Context(), userID, items); err != nil {
		log.Printf("[ikigai] failed to save items for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save items")
		return
	}
	s.audit(r.Context(), userID, db.AuditIkigaiSave, map[string]any{"items": len(items)})

	s.jsonResponse(w, http.StatusOK, s.computeStatus(r.Context(), userID))
}

// handleListIkigai returns the stored worksheet items.
func (s *Server) handleListIkigai(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	rows, err := s.store.ListIkigaiItems(r.Context(), userID)
	if err != nil {
		log.Printf("[ikigai] failed to list items for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list items")
		return
	}

	items := make([]types.IkigaiItemInput, 0, len(rows))
	for _, row := range rows {
		items = append(items, types.IkigaiItemInput{Circle: row.Circle, Text: row.Text, Rank: row.Rank})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"items": items})
}

// handleSaveChoices records the chosen IKIGAI zone.
func (s *Server) handleSaveChoices(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var req types.SaveChoicesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if err := s.store.UpsertChoice(r.Context(), userID, req.ChosenZone, req.ChosenFocus); err != nil {
		log.Printf("[choices] failed to save choice for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save choice")
		return
	}
	detail := map[string]any{}
	if req.ChosenZone != nil {
		detail["chosen_zone"] = *req.ChosenZone
	}
	s.audit(r.Context(), userID, db.AuditChoiceSave, detail)

	s.jsonResponse(w, http.StatusOK, s.computeStatus(r.Context(), userID))
}

// handleGetChoices returns the stored zone choice and lifecycle fields.
func (s *Server) handleGetChoices(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	choice, err := s.store.GetChoice(r.Context(), userID)
	if err != nil {
		log.Printf("[choices] failed to load choice for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load choice")
		return
	}
	if choice == nil {
		s.jsonResponse(w, http.StatusOK, map[string]any{"assessment_status": status.AssessmentInProgress})
		return
	}

	resp := map[string]any{"assessment_status": choice.AssessmentStatus}
	if choice.ChosenZone != nil {
		resp["chosen_zone"] = *choice.ChosenZone
	}
	if choice.ChosenFocus != nil {
		resp["chosen_focus"] = *choice.ChosenFocus
	}
	if choice.CompletedAt != nil {
		resp["completed_at"] = choice.CompletedAt.Format(time.RFC3339)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleSavePlan merges 90-day plan fields. Absent fields keep their stored
// values.
func (s *Server) handleSavePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var req types.SavePlan90DRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	input := db.Plan90DInput{
		CycleObjective:  req.CycleObjective,
		Checkpoint1Date: req.Checkpoint1Date,
		Checkpoint2Date: req.Checkpoint2Date,
		Checkpoint3Date: req.Checkpoint3Date,
		Selected70:      req.Selected70,
		Selected20:      req.Selected20,
		Selected10:      req.Selected10,
	}
	if err := s.store.UpsertPlan90D(r.Context(), userID, input); err != nil {
		log.Printf("[plan90d] failed to save plan for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save plan")
		return
	}
	s.audit(r.Context(), userID, db.AuditPlanSave, nil)

	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true})
}

// handleGetPlan returns the stored 90-day plan, or an empty object when
// nothing has been saved.
func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	plan, err := s.store.GetPlan90D(r.Context(), userID)
	if err != nil {
		log.Printf("[plan90d] failed to load plan for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load plan")
		return
	}
	if plan == nil {
		s.jsonResponse(w, http.StatusOK, map[string]any{})
		return
	}
	s.jsonResponse(w, http.StatusOK, planResponse(plan))
}

// handleStatus reports per-section completion and the resume step.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, s.computeStatus(r.Context(), userID))
}

// handleSubmit marks the assessment as completed. Submission is allowed at
// any point; completed_at keeps its first value on repeat submits.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	if err := s.store.CompleteAssessment(r.Context(), userID); err != nil {
		log.Printf("[submit] failed to complete assessment for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to submit assessment")
		return
	}
	s.audit(r.Context(), userID, db.AuditSubmit, nil)

	s.jsonResponse(w, http.StatusOK, s.computeStatus(r.Context(), userID))
}

// handleFull returns every stored piece of the assessment in one document.
// Sections are fetched in parallel; a failed section degrades to empty rather
// than failing the whole response.
func (s *Server) handleFull(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var (
		likert   []db.LikertResponse
		evidence []db.EvidenceResponse
		ikigai   []db.IkigaiItem
		choice   *db.UserChoice
		plan     *db.Plan90D
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		if likert, err = s.store.ListLikertResponses(ctx, userID); err != nil {
			log.Printf("[full] likert fetch degraded for %s: %v", userID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if evidence, err = s.store.ListEvidenceResponses(ctx, userID); err != nil {
			log.Printf("[full] evidence fetch degraded for %s: %v", userID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if ikigai, err = s.store.ListIkigaiItems(ctx, userID); err != nil {
			log.Printf("[full] ikigai fetch degraded for %s: %v", userID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if choice, err = s.store.GetChoice(ctx, userID); err != nil {
			log.Printf("[full] choice fetch degraded for %s: %v", userID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if plan, err = s.store.GetPlan90D(ctx, userID); err != nil {
			log.Printf("[full] plan fetch degraded for %s: %v", userID, err)
		}
		return nil
	})
	_ = g.Wait()

	likertItems := make([]types.LikertItemInput, 0, len(likert))
	for _, row := range likert {
		likertItems = append(likertItems, types.LikertItemInput{ItemID: row.ItemID, Value: row.Value})
	}
	evidenceItems := make([]types.EvidenceItemInput, 0, len(evidence))
	for _, row := range evidence {
		evidenceItems = append(evidenceItems, types.EvidenceItemInput{PromptID: row.PromptID, Answer: row.Answer})
	}
	ikigaiItems := make([]types.IkigaiItemInput, 0, len(ikigai))
	for _, row := range ikigai {
		ikigaiItems = append(ikigaiItems, types.IkigaiItemInput{Circle: row.Circle, Text: row.Text, Rank: row.Rank})
	}

	doc := map[string]any{
		"likert":   likertItems,
		"evidence": evidenceItems,
		"ikigai":   ikigaiItems,
		"status":   s.computeStatus(r.Context(), userID),
	}
	if choice != nil && choice.ChosenZone != nil {
		doc["chosen_zone"] = *choice.ChosenZone
	}
	if plan != nil {
		doc["plan90d"] = planResponse(plan)
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// computeStatus fetches the stored rows and runs the status engine. Each
// fetch degrades to empty on error so a partial store outage still yields a
// usable (conservative) status.
func (s *Server) computeStatus(ctx context.Context, userID uuid.UUID) status.Status {
	var in status.Input

	if user, err := s.store.GetUser(ctx, userID); err != nil {
		log.Printf("[status] user fetch degraded for %s: %v", userID, err)
	} else if user != nil {
		in.ConsentAt = user.ConsentAt
	}

	if likert, err := s.store.ListLikertResponses(ctx, userID); err != nil {
		log.Printf("[status] likert fetch degraded for %s: %v", userID, err)
	} else {
		for _, row := range likert {
			in.Likert = append(in.Likert, status.LikertAnswer{ItemID: row.ItemID})
		}
	}

	if evidence, err := s.store.ListEvidenceResponses(ctx, userID); err != nil {
		log.Printf("[status] evidence fetch degraded for %s: %v", userID, err)
	} else {
		for _, row := range evidence {
			in.PromptIDs = append(in.PromptIDs, row.PromptID)
		}
	}

	if ikigai, err := s.store.ListIkigaiItems(ctx, userID); err != nil {
		log.Printf("[status] ikigai fetch degraded for %s: %v", userID, err)
	} else {
		for _, row := range ikigai {
			in.Ikigai = append(in.Ikigai, status.IkigaiEntry{Circle: row.Circle})
		}
	}

	if choice, err := s.store.GetChoice(ctx, userID); err != nil {
		log.Printf("[status] choice fetch degraded for %s: %v", userID, err)
	} else if choice != nil {
		c := status.Choice{AssessmentStatus: choice.AssessmentStatus}
		if choice.ChosenZone != nil {
			c.ChosenZone = *choice.ChosenZone
		}
		in.Choice = &c
	}

	return status.Compute(in)
}

// planResponse shapes a stored plan row for JSON, echoing the request field
// names.
func planResponse(plan *db.Plan90D) map[string]any {
	resp := map[string]any{
		"selected_70": []string(plan.Selected70),
		"selected_20": []string(plan.Selected20),
		"selected_10": []string(plan.Selected10),
	}
	if plan.CycleObjective != nil {
		resp["cycle_objective"] = *plan.CycleObjective
	}
	if plan.Checkpoint1Date != nil {
		resp["checkpoint1_date"] = *plan.Checkpoint1Date
	}
	if plan.Checkpoint2Date != nil {
		resp["checkpoint2_date"] = *plan.Checkpoint2Date
	}
	if plan.Checkpoint3Date != nil {
		resp["checkpoint3_date"] = *plan.Checkpoint3Date
	}
	return resp
}

// audit records an audit row, logging instead of failing the request when the
// insert does not land.
func (s *Server) audit(ctx context.Context, userID uuid.UUID, action string, detail map[string]any) {
	if err := s.store.RecordAudit(ctx, userID, action, detail); err != nil {
		log.Printf("[audit] failed to record %s for %s: %v", action, userID, err)
	}
}
