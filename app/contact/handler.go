package contact

import (
	"context"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/storefront/catalog-service/app/api"
	"go.uber.org/zap"
)

type FormSubmitter interface {
	Submit(ctx context.Context, form Form) (Receipt, error)
}

type ContactHandler struct {
	submitter FormSubmitter
	log       *zap.Logger
}

func NewContactHandler(s FormSubmitter, log *zap.Logger) *ContactHandler {
	return &ContactHandler{submitter: s, log: log}
}

func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var form Form
	if err := api.DecodeJSON(r, &form); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	receipt, err := h.submitter.Submit(r.Context(), form)
	var fields validation.Errors
	switch {
	case err == nil:
		api.JSONResponse(w, http.StatusAccepted, receipt)
	case errors.As(err, &fields):
		api.ValidationErrorResponse(w, fields)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.log.Warn("contact submission abandoned", zap.Error(err))
		api.ErrorResponse(w, http.StatusServiceUnavailable, "submission cancelled")
	default:
		h.log.Error("failed to submit contact form", zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to submit contact form")
	}
}
