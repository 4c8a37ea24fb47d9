package server

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"

	"github.com/abarros/arc-assessment/internal/catalog"
	"github.com/abarros/arc-assessment/internal/db"
	"github.com/abarros/arc-assessment/internal/report"
	"github.com/abarros/arc-assessment/internal/types"
	"github.com/google/uuid"
)

// reportFilename is the download name for every generated report.
const reportFilename = "relatorio-arc.pdf"

// handleGenerateReport renders the PDF and returns it inline as base64.
// Generation requires a complete assessment.
func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	pdfBytes, err := s.generateReport(r.Context(), userID)
	if err != nil {
		log.Printf("[report] generation failed for %s: %v", userID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.audit(r.Context(), userID, db.AuditPDFRendered, map[string]any{"bytes": len(pdfBytes)})

	w.Header().Set("Cache-Control", "no-store")
	s.jsonResponse(w, http.StatusOK, types.GenerateReportResponse{
		Success:   true,
		PDFBase64: base64.StdEncoding.EncodeToString(pdfBytes),
		Filename:  reportFilename,
	})
}

// handleDownloadReport streams the rendered PDF as an attachment. The path ID
// must be the authenticated user's own: an invalid ID, someone else's ID, and
// a nonexistent ID all produce the same 404 so the route cannot be used to
// probe for accounts.
func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	pathID, err := uuid.Parse(r.PathValue("id"))
	if err != nil || pathID != userID {
		s.errorResponse(w, http.StatusNotFound, "Not found")
		return
	}

	pdfBytes, err := s.generateReport(r.Context(), userID)
	if err != nil {
		log.Printf("[report] download failed for %s: %v", userID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.audit(r.Context(), userID, db.AuditPDFRendered, map[string]any{"bytes": len(pdfBytes)})

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reportFilename))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		log.Printf("[report] failed to stream PDF for %s: %v", userID, err)
	}
}

// generateReport checks completeness, makes sure the renderer is up, builds
// the payload from stored data, and renders it.
func (s *Server) generateReport(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	st := s.computeStatus(ctx, userID)
	if !st.AllComplete {
		return nil, &ErrAssessmentIncomplete{ResumeStep: st.ResumeStep}
	}

	if s.supervisor != nil {
		if err := s.supervisor.Ensure(ctx); err != nil {
			return nil, err
		}
	}

	userName, assessment, err := s.loadReportAssessment(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload := report.Build(userName, assessment)
	return s.pdfClient.Render(ctx, payload)
}

// loadReportAssessment fetches everything the payload builder needs. Unlike
// status computation, a failed fetch here is a hard error: a report built
// from silently missing data would be wrong, not conservative.
func (s *Server) loadReportAssessment(ctx context.Context, userID uuid.UUID) (string, report.Assessment, error) {
	var a report.Assessment

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return "", a, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return "", a, &ErrUserNotFound{UserID: userID}
	}

	likert, err := s.store.ListLikertResponses(ctx, userID)
	if err != nil {
		return "", a, fmt.Errorf("failed to load responses: %w", err)
	}
	for _, row := range likert {
		a.Likert = append(a.Likert, report.LikertRow{
			ItemID:  row.ItemID,
			Value:   row.Value,
			Reverse: catalog.IsReverseItemID(row.ItemID),
		})
	}

	ikigai, err := s.store.ListIkigaiItems(ctx, userID)
	if err != nil {
		return "", a, fmt.Errorf("failed to load worksheet: %w", err)
	}
	for _, row := range ikigai {
		a.Ikigai = append(a.Ikigai, report.IkigaiRow{Circle: row.Circle, Text: row.Text, Rank: row.Rank})
	}

	choice, err := s.store.GetChoice(ctx, userID)
	if err != nil {
		return "", a, fmt.Errorf("failed to load choice: %w", err)
	}
	if choice != nil && choice.ChosenZone != nil {
		a.ChosenZone = *choice.ChosenZone
	}

	plan, err := s.store.GetPlan90D(ctx, userID)
	if err != nil {
		return "", a, fmt.Errorf("failed to load plan: %w", err)
	}
	if plan != nil {
		sel := report.PlanSelections{
			Selected70: plan.Selected70,
			Selected20: plan.Selected20,
			Selected10: plan.Selected10,
		}
		if plan.CycleObjective != nil {
			sel.CycleObjective = *plan.CycleObjective
		}
		if plan.Checkpoint1Date != nil {
			sel.Checkpoint1Date = *plan.Checkpoint1Date
		}
		if plan.Checkpoint2Date != nil {
			sel.Checkpoint2Date = *plan.Checkpoint2Date
		}
		if plan.Checkpoint3Date != nil {
			sel.Checkpoint3Date = *plan.Checkpoint3Date
		}
		a.Plan = &sel
	}

	return user.Name, a, nil
}
