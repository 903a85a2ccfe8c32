package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/alpha-site/internal/usecase"
	"github.com/xavierca1/alpha-site/pkg/logging"
)

const maxContactBody = 64 << 10

type LeadSubmitter interface {
	Execute(ctx context.Context, input usecase.SubmitLeadInput) (*usecase.SubmitLeadOutput, error)
}

type ContactHandler struct {
	submitter LeadSubmitter
	logger    *logging.Logger
}

func NewContactHandler(submitter LeadSubmitter, logger *logging.Logger) *ContactHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &ContactHandler{submitter: submitter, logger: logger}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	var input usecase.SubmitLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErrorResponse(w, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "Request body too large")
			return
		}
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	output, err := h.submitter.Execute(r.Context(), input)
	if err != nil {
		if de, ok := usecase.AsDomainError(err); ok {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Success: false,
				Error:   de.Code,
				Message: "Missing or invalid fields",
				Fields:  de.Fields,
			})
			return
		}
		h.logger.Error("contact submission failed", "error", err, "request_id", requestID(r))
		if te, ok := usecase.AsTechnicalError(err); ok && te.Code == usecase.CodeEmailFailed {
			writeErrorResponse(w, http.StatusInternalServerError, te.Code, "Failed to send email")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, output)
}
