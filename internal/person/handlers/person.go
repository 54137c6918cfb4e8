package handlers

import (
	"log/slog"
	"net/http"

	"starwars-server/internal/person"
	"starwars-server/internal/shared/request"
	"starwars-server/internal/shared/response"
)

type PersonHandler struct {
	service *person.Service
}

func NewPersonHandler(service *person.Service) *PersonHandler {
	return &PersonHandler{service: service}
}

func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "list_people")

	people, err := h.service.GetAll(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, people)
}

func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_person")

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

	response.Success(w, http.StatusOK, p.ToResponse())
}

func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "create_person")

	var req person.CreateRequest
	if err := request.DecodeJSON(w, r, &req); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if _, err := h.service.Create(r.Context(), req); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Message(w, http.StatusCreated, "Person created")
}

func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "delete_person")

	id, err := request.PathID(r, "id")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Message(w, http.StatusOK, "Person deleted")
}
