package handlers

import (
	"log/slog"
	"net/http"

	"starwars-server/internal/planet"
	"starwars-server/internal/shared/request"
	"starwars-server/internal/shared/response"
)

type PlanetHandler struct {
	service *planet.Service
}

func NewPlanetHandler(service *planet.Service) *PlanetHandler {
	return &PlanetHandler{service: service}
}

func (h *PlanetHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "list_planets")

	planets, err := h.service.GetAll(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, planets)
}

func (h *PlanetHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_planet")

	id, err := request.PathID(r, "id")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, p)
}

func (h *PlanetHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "create_planet")

	var req planet.CreateRequest
	if err := request.DecodeJSON(w, r, &req); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if _, err := h.service.Create(r.Context(), req); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Message(w, http.StatusCreated, "Planet created")
}

func (h *PlanetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "delete_planet")

	id, err := request.PathID(r, "id")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Message(w, http.StatusOK, "Planet deleted")
}
