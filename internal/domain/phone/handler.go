package phone

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Post("/phone/normalize", normalizeHandler())
}

type normalizeRequest struct {
	Raw string `json:"raw"`
}

// normalizeHandler godoc
// @Summary Normalizar teléfono
// @Description Aplica la máscara (DD) DDDDD-DDDD y reporta cuántos dígitos faltan.
// @Tags phone
// @Accept json
// @Produce json
// @Param payload body normalizeRequest true "Texto crudo del campo"
// @Success 200 {object} Result
// @Failure 400 {string} string "invalid json"
// @Router /phone/normalize [post]
func normalizeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req normalizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(Normalize(req.Raw))
	}
}
