package handlers

import (
	"net/http"

	"starwars-server/internal/shared/response"
)

type Endpoint struct {
	Method    string `json:"method"`
	Path      string `json:"path"`
	Protected bool   `json:"protected"`
}

type SitemapResponse struct {
	Endpoints []Endpoint `json:"endpoints"`
}

// SitemapHandler lists the API's endpoints at the root path.
type SitemapHandler struct {
	endpoints []Endpoint
}

func NewSitemapHandler(endpoints []Endpoint) *SitemapHandler {
	return &SitemapHandler{endpoints: endpoints}
}

func (h *SitemapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, SitemapResponse{Endpoints: h.endpoints})
}
