package handlers

import (
	"log/slog"
	"net/http"

	"starwars-server/internal/favorite"
	"starwars-server/internal/middleware"
	"starwars-server/internal/shared/errors"
	"starwars-server/internal/shared/request"
	"starwars-server/internal/shared/response"
)

type FavoriteHandler struct {
	service *favorite.Service
}

func NewFavoriteHandler(service *favorite.Service) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "list_favorites")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	favorites, err := h.service.List(r.Context(), claims.UserID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, favorites)
}

func (h *FavoriteHandler) AddPlanet(w http.ResponseWriter, r *http.Request) {
	h.add(w, r, favorite.KindPlanet, "Planet added to favorites")
}

func (h *FavoriteHandler) AddPeople(w http.ResponseWriter, r *http.Request) {
	h.add(w, r, favorite.KindPeople, "People added to favorites")
}

func (h *FavoriteHandler) RemovePlanet(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, favorite.KindPlanet, "Planet removed from favorites")
}

func (h *FavoriteHandler) RemovePeople(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, favorite.KindPeople, "People removed from favorites")
}

func (h *FavoriteHandler) add(w http.ResponseWriter, r *http.Request, kind favorite.Kind, message string) {
	logger := slog.With("handler", "add_favorite", "kind", kind)

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	targetID, err := request.PathID(r, "id")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.service.Add(r.Context(), claims.UserID, kind, targetID); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Message(w, http.StatusCreated, message)
}

func (h *FavoriteHandler) remove(w http.ResponseWriter, r *http.Request, kind favorite.Kind, message string) {
	logger := slog.With("handler", "remove_favorite", "kind", kind)

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	targetID, err := request.PathID(r, "id")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.service.Remove(r.Context(), claims.UserID, kind, targetID); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Message(w, http.StatusOK, message)
}
