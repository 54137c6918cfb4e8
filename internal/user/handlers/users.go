package handlers

import (
	"log/slog"
	"net/http"

	"starwars-server/internal/shared/response"
	"starwars-server/internal/user"
)

type UsersHandler struct {
	service *user.Service
}

func NewUsersHandler(service *user.Service) *UsersHandler {
	return &UsersHandler{service: service}
}

func (h *UsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "users", "remote_addr", r.RemoteAddr)
	logger.Debug("Users list requested")

	users, err := h.service.GetAll(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, users)
	logger.Debug("Users list completed", "user_count", len(users))
}
