package server

import (
	"log"
	"net/http"

	"github.com/abarros/arc-assessment/internal/types"
)

// handleErasure deletes every stored row for the authenticated user in one
// transaction. The issued token keeps working until it expires but no longer
// resolves to any data.
func (s *Server) handleErasure(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	if err := s.store.EraseUserData(r.Context(), userID); err != nil {
		log.Printf("[erasure] failed for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to erase data")
		return
	}
	log.Printf("[erasure] completed for %s", userID)

	s.jsonResponse(w, http.StatusOK, types.ErasureResponse{
		Success: true,
		Message: "All personal data has been erased",
	})
}
