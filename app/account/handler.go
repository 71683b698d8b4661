package account

import (
	"context"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/storefront/catalog-service/app/api"
	"go.uber.org/zap"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type LogInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountService is the part of Service the HTTP layer needs.
type AccountService interface {
	SignUp(ctx context.Context, form SignUpForm) error
	LogIn(ctx context.Context, email, password string) error
}

type AccountHandler struct {
	svc AccountService
	log *zap.Logger
}

func NewAccountHandler(svc AccountService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: log}
}

func (h *AccountHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var form SignUpForm
	if err := api.DecodeJSON(r, &form); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.SignUp(r.Context(), form)
	var fields validation.Errors
	switch {
	case err == nil:
		api.JSONResponse(w, http.StatusCreated, MessageResponse{Message: "Account created successfully"})
	case errors.As(err, &fields):
		api.ValidationErrorResponse(w, fields)
	default:
		h.log.Error("failed to create account", zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to create account")
	}
}

func (h *AccountHandler) HandleLogIn(w http.ResponseWriter, r *http.Request) {
	var req LogInRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.LogIn(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		api.OKResponse(w, MessageResponse{Message: "Login successful"})
	case errors.Is(err, ErrInvalidCredentials):
		api.ErrorResponse(w, http.StatusUnauthorized, ErrInvalidCredentials.Error())
	default:
		h.log.Error("failed to log in", zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to log in")
	}
}
