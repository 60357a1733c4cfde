package favorites

import (
	"encoding/json"
	"errors"
	"net/http"

	"lar-amigo/internal/domain/pets"
	"lar-amigo/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/me/favorites", func(fr chi.Router) {
		fr.Get("/", listFavoritesHandler(svc))
		fr.Delete("/", clearFavoritesHandler(svc))

		fr.Get("/{petID}", isFavoriteHandler(svc))
		fr.Post("/{petID}/toggle", toggleFavoriteHandler(svc))
		fr.Delete("/{petID}", removeFavoriteHandler(svc))
	})

	// Fin de sesión: descarta los favoritos
	r.Delete("/me/session", endSessionHandler(svc))
}

type favoriteStatusResponse struct {
	PetID    string `json:"pet_id"`
	Favorite bool   `json:"favorite"`
}

func listFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "session required", http.StatusBadRequest)
			return
		}

		items, err := svc.List(r.Context(), sid)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pets.ToResponses(items))
	}
}

// toggleFavoriteHandler godoc
// @Summary Marcar/desmarcar favorito
// @Description Si la mascota ya es favorita la quita; si no, la agrega al final. Sesión por header `X-Session-ID`.
// @Tags favorites
// @Produce json
// @Param X-Session-ID header string false "Sesión de la app (se genera si falta)"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} favoriteStatusResponse
// @Failure 404 {string} string "pet not found"
// @Router /me/favorites/{petID}/toggle [post]
func toggleFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "session required", http.StatusBadRequest)
			return
		}

		petID := chi.URLParam(r, "petID")
		fav, err := svc.Toggle(r.Context(), sid, petID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, favoriteStatusResponse{PetID: petID, Favorite: fav})
	}
}

func isFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "session required", http.StatusBadRequest)
			return
		}

		petID := chi.URLParam(r, "petID")
		fav, err := svc.IsFavorite(r.Context(), sid, petID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, favoriteStatusResponse{PetID: petID, Favorite: fav})
	}
}

func removeFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "session required", http.StatusBadRequest)
			return
		}

		if err := svc.Remove(r.Context(), sid, chi.URLParam(r, "petID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func clearFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "session required", http.StatusBadRequest)
			return
		}

		if err := svc.Clear(r.Context(), sid); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func endSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "session required", http.StatusBadRequest)
			return
		}

		if err := svc.EndSession(r.Context(), sid); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownPet):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
