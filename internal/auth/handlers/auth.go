package handlers

import (
	"log/slog"
	"net/http"

	"starwars-server/internal/auth"
	"starwars-server/internal/shared/request"
	"starwars-server/internal/shared/response"
)

type AuthHandler struct {
	service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "register")

	var req auth.RegisterRequest
	if err := request.DecodeJSON(w, r, &req); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	token, err := h.service.Register(r.Context(), req)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, auth.TokenResponse{AccessToken: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "login")

	var req auth.LoginRequest
	if err := request.DecodeJSON(w, r, &req); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, auth.TokenResponse{AccessToken: token})
}
