package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/evcraddock/stayfinder/internal/storage"
	"github.com/evcraddock/stayfinder/internal/wishlist"
)

type addToWishlistRequest struct {
	PropertyID *int64 `json:"propertyId" validate:"required,gt=0"`
	UserID     *int64 `json:"userId" validate:"omitempty,gt=0"`
}

// Wishlist routes act on the configured placeholder user unless a request
// names one explicitly.

func (s *Server) handleListWishlist(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.WishlistByUser(r.Context(), s.placeholderUserID)
	if err != nil {
		slog.Error("failed to fetch wishlist", "error", err)
		apiError(w, "Failed to fetch wishlist", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []wishlist.Item{}
	}
	apiJSON(w, items, http.StatusOK)
}

func (s *Server) handleAddToWishlist(w http.ResponseWriter, r *http.Request) {
	var req addToWishlistRequest
	if details := decode(w, r, &req); details != nil {
		apiInvalid(w, details)
		return
	}

	userID := s.placeholderUserID
	if req.UserID != nil {
		userID = *req.UserID
	}

	item, err := s.store.AddToWishlist(r.Context(), userID, *req.PropertyID)
	if errors.Is(err, storage.ErrNotImplemented) {
		apiError(w, "Wishlist is not supported by the remote backend", http.StatusInternalServerError)
		return
	}
	if err != nil {
		slog.Error("failed to add to wishlist", "property_id", *req.PropertyID, "error", err)
		apiError(w, "Failed to add to wishlist", http.StatusInternalServerError)
		return
	}

	apiJSON(w, item, http.StatusOK)
}

func (s *Server) handleWishlistStatus(w http.ResponseWriter, r *http.Request) {
	propertyID, err := pathID(r, "propertyId")
	if err != nil {
		apiError(w, "Invalid property ID", http.StatusBadRequest)
		return
	}

	ok, err := s.store.IsInWishlist(r.Context(), s.placeholderUserID, propertyID)
	if err != nil {
		slog.Error("failed to check wishlist", "property_id", propertyID, "error", err)
		apiError(w, "Failed to fetch wishlist", http.StatusInternalServerError)
		return
	}

	apiJSON(w, map[string]bool{"inWishlist": ok}, http.StatusOK)
}

func (s *Server) handleRemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	propertyID, err := pathID(r, "propertyId")
	if err != nil {
		apiError(w, "Invalid property ID", http.StatusBadRequest)
		return
	}

	removed, err := s.store.RemoveFromWishlist(r.Context(), s.placeholderUserID, propertyID)
	if err != nil {
		slog.Error("failed to remove from wishlist", "property_id", propertyID, "error", err)
		apiError(w, "Failed to remove from wishlist", http.StatusInternalServerError)
		return
	}
	if !removed {
		apiError(w, "Wishlist item not found", http.StatusNotFound)
		return
	}

	apiJSON(w, map[string]bool{"success": true}, http.StatusOK)
}
