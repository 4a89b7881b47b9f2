package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/evcraddock/stayfinder/internal/property"
	"github.com/evcraddock/stayfinder/internal/storage"
)

type categoryResponse struct {
	ID    property.Category `json:"id"`
	Label string            `json:"label"`
}

// handleListProperties serves the catalog. A search query takes priority
// over a category filter when both are given.
func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	var (
		props []property.Property
		err   error
	)
	switch {
	case search != "":
		props, err = s.store.SearchProperties(r.Context(), search)
	case category != "":
		c, ok := property.ParseCategory(category)
		if !ok {
			apiError(w, "Unknown category", http.StatusBadRequest)
			return
		}
		props, err = s.store.PropertiesByCategory(r.Context(), c)
	default:
		props, err = s.store.ListProperties(r.Context())
	}
	if err != nil {
		slog.Error("failed to fetch properties", "error", err)
		apiError(w, "Failed to fetch properties", http.StatusInternalServerError)
		return
	}

	if props == nil {
		props = []property.Property{}
	}
	apiJSON(w, props, http.StatusOK)
}

func (s *Server) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apiError(w, "Invalid property ID", http.StatusBadRequest)
		return
	}

	p, err := s.store.GetProperty(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		apiError(w, "Property not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to fetch property", "id", id, "error", err)
		apiError(w, "Failed to fetch property", http.StatusInternalServerError)
		return
	}

	apiJSON(w, p, http.StatusOK)
}

func (s *Server) handleCreateProperty(w http.ResponseWriter, r *http.Request) {
	var req property.NewProperty
	if details := decode(w, r, &req); details != nil {
		apiInvalid(w, details)
		return
	}
	if err := req.Validate(); err != nil {
		apiInvalid(w, []fieldError{{Field: "body", Message: err.Error()}})
		return
	}

	p, err := s.store.CreateProperty(r.Context(), req)
	if err != nil {
		slog.Error("failed to create property", "error", err)
		apiError(w, "Failed to create property", http.StatusInternalServerError)
		return
	}

	apiJSON(w, p, http.StatusCreated)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats := property.Categories()
	resp := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		resp = append(resp, categoryResponse{ID: c, Label: c.Label()})
	}
	apiJSON(w, resp, http.StatusOK)
}

// pathID parses an integer path parameter. Zero and negative IDs are
// well formed; the store reports them as missing.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
