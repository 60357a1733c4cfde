package news

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, feed *Feed) {
	r.Route("/news", func(nr chi.Router) {
		nr.Get("/", listNewsHandler(feed))
		nr.Get("/categories", listCategoriesHandler(feed))
	})
}

// listNewsHandler godoc
// @Summary Noticias del abrigo
// @Tags news
// @Produce json
// @Param category query string false "Categoría exacta; vacío o Todos = todas"
// @Success 200 {array} Item
// @Router /news [get]
func listNewsHandler(feed *Feed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, feed.ByCategory(r.URL.Query().Get("category")))
	}
}

func listCategoriesHandler(feed *Feed) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, feed.Categories())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
