package forms

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta los formularios; limit se aplica solo a los envíos.
func RegisterRoutes(r chi.Router, svc *Service, limit func(http.Handler) http.Handler) {
	r.Route("/forms", func(fr chi.Router) {
		fr.Get("/volunteer/interests", listInterestsHandler())
		fr.Get("/donation/amounts", listDonationAmountsHandler())
		fr.Get("/{kind}", emptyFormHandler())

		fr.With(limit).Post("/{kind}", submitFormHandler(svc))
	})
}

type submitRequest struct {
	Fields    map[string]string `json:"fields"`
	Interests []string          `json:"interests"`
}

type emptyFormResponse struct {
	Kind   Kind     `json:"kind"`
	Fields FormData `json:"fields"`
	// Order es el orden en que la pantalla muestra los campos.
	Order []string `json:"order"`
}

// submitFormHandler godoc
// @Summary Enviar formulario
// @Description Valida campos obligatorios, teléfono (11 dígitos) y reglas propias de cada formulario. Nada se guarda ni se transmite.
// @Tags forms
// @Accept json
// @Produce json
// @Param kind path string true "register | login | volunteer | temporary_home | donation | adoption | contact"
// @Param payload body submitRequest true "Campos del formulario"
// @Success 200 {object} Confirmation
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "unknown form"
// @Failure 422 {object} ValidationError
// @Router /forms/{kind} [post]
func submitFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := ParseKind(chi.URLParam(r, "kind"))
		if !ok {
			http.Error(w, ErrUnknownKind.Error(), http.StatusNotFound)
			return
		}

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		conf, err := svc.Submit(r.Context(), Submission{
			Kind:      kind,
			Data:      formData(kind, req.Fields),
			Interests: selectedInterests(req.Interests),
		})
		if err != nil {
			var ve *ValidationError
			switch {
			case errors.As(err, &ve):
				writeJSON(w, http.StatusUnprocessableEntity, ve)
			case errors.Is(err, ErrUnknownKind):
				http.Error(w, err.Error(), http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, conf)
	}
}

func emptyFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := ParseKind(chi.URLParam(r, "kind"))
		if !ok {
			http.Error(w, ErrUnknownKind.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, emptyFormResponse{Kind: kind, Fields: Reset(kind), Order: Fields(kind)})
	}
}

// formData parte del formulario vacío y aplica cada campo recibido.
func formData(kind Kind, in map[string]string) FormData {
	d := Reset(kind)
	for field, value := range in {
		d = Set(d, field, value)
	}
	return d
}

// selectedInterests marca cada casilla una sola vez, en el orden recibido.
func selectedInterests(ids []string) []string {
	out := []string{}
	for _, id := range ids {
		if slices.Contains(out, id) {
			continue
		}
		out = ToggleInterest(out, id)
	}
	return out
}

func listInterestsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Interests)
	}
}

func listDonationAmountsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, DonationAmounts)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
