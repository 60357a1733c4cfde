package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", searchPetsHandler(svc))
		pr.Get("/filters", filterOptionsHandler())
		pr.Get("/{petID}", getPetHandler(svc))
	})
}

// PetResponse es la representación pública de un registro del catálogo.
type PetResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Species     Species `json:"species"`
	Breed       string  `json:"breed"`
	Age         Age     `json:"age"`
	Size        Size    `json:"size"`
	Gender      Gender  `json:"gender"`
	Description string  `json:"description"`
	ImageRef    string  `json:"image_ref"`
}

// searchResponse es el resultado de una búsqueda.
type searchResponse struct {
	Items         []PetResponse `json:"items"`
	Total         int           `json:"total"`
	ActiveFilters bool          `json:"active_filters"`
}

// searchPetsHandler godoc
// @Summary Buscar mascotas del catálogo
// @Description Filtra por texto (nombre o raza, sin distinguir mayúsculas) y por especie, porte, edad y sexo. Cada dimensión acepta varios valores (repetidos o separados por coma); vacía = sin restricción.
// @Tags pets
// @Produce json
// @Param q query string false "Texto libre"
// @Param species query []string false "cachorro, gato"
// @Param size query []string false "pequeno, médio, grande"
// @Param age query []string false "filhote, adulto, idoso"
// @Param gender query []string false "macho, fêmea"
// @Success 200 {object} searchResponse
// @Failure 400 {string} string "invalid filter"
// @Router /pets [get]
func searchPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := ParseFilterQuery(r.URL.Query())
		if err != nil {
			http.Error(w, "invalid filter", http.StatusBadRequest)
			return
		}

		items, err := svc.Search(r.Context(), f)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, searchResponse{
			Items:         ToResponses(items),
			Total:         len(items),
			ActiveFilters: f.HasActiveFilters(),
		})
	}
}

func filterOptionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Options())
	}
}

// getPetHandler godoc
// @Summary Perfil de una mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} PetResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(p))
	}
}

// ParseFilterQuery arma un FilterState desde query params.
// Repetir un valor no lo des-selecciona: en la URL cada valor es "presente".
func ParseFilterQuery(v url.Values) (FilterState, error) {
	f := NewFilterState()
	f.SetQuery(v.Get("q"))

	for _, dim := range Dimensions {
		for _, raw := range v[string(dim)] {
			for _, part := range strings.Split(raw, ",") {
				if strings.TrimSpace(part) == "" {
					continue
				}
				if selected(f, dim, part) {
					continue
				}
				if err := f.Toggle(dim, part); err != nil {
					return FilterState{}, err
				}
			}
		}
	}
	return f, nil
}

func selected(f FilterState, dim Dimension, raw string) bool {
	switch dim {
	case DimensionSpecies:
		v, err := ParseSpecies(raw)
		return err == nil && f.Species.Has(v)
	case DimensionSize:
		v, err := ParseSize(raw)
		return err == nil && f.Size.Has(v)
	case DimensionAge:
		v, err := ParseAge(raw)
		return err == nil && f.Age.Has(v)
	case DimensionGender:
		v, err := ParseGender(raw)
		return err == nil && f.Gender.Has(v)
	}
	return false
}

func ToResponse(p Pet) PetResponse {
	return PetResponse{
		ID:          p.ID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		Age:         p.Age,
		Size:        p.Size,
		Gender:      p.Gender,
		Description: p.Description,
		ImageRef:    p.ImageRef,
	}
}

func ToResponses(items []Pet) []PetResponse {
	out := make([]PetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToResponse(p))
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
