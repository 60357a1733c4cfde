package pets

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Dimension es una de las cuatro dimensiones filtrables del catálogo.
type Dimension string

const (
	DimensionSpecies Dimension = "species"
	DimensionSize    Dimension = "size"
	DimensionAge     Dimension = "age"
	DimensionGender  Dimension = "gender"
)

// Dimensions en el orden en que la app las muestra.
var Dimensions = []Dimension{DimensionSpecies, DimensionSize, DimensionAge, DimensionGender}

func ParseDimension(s string) (Dimension, error) {
	switch Dimension(normalizeID(s)) {
	case DimensionSpecies:
		return DimensionSpecies, nil
	case DimensionSize:
		return DimensionSize, nil
	case DimensionAge:
		return DimensionAge, nil
	case DimensionGender:
		return DimensionGender, nil
	}
	return "", ErrInvalidInput
}

// Set es un conjunto de valores de una dimensión.
// Vacío (o nil) significa "sin restricción". Solo importa la pertenencia.
type Set[T ~string] map[T]struct{}

func NewSet[T ~string](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int { return len(s) }

// Toggle agrega v si no está y lo quita si está. Devuelve la pertenencia final.
func (s *Set[T]) Toggle(v T) bool {
	if *s == nil {
		*s = Set[T]{}
	}
	if _, ok := (*s)[v]; ok {
		delete(*s, v)
		return false
	}
	(*s)[v] = struct{}{}
	return true
}

// Values devuelve los valores ordenados (salida estable para JSON/tests).
func (s Set[T]) Values() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// allows: set vacío = sin restricción.
func (s Set[T]) allows(v T) bool {
	return len(s) == 0 || s.Has(v)
}

// FilterState es el estado de búsqueda de una pantalla.
// Se crea vacío, se muta con Toggle/SetQuery y se descarta con la pantalla.
type FilterState struct {
	Query   string
	Species Set[Species]
	Size    Set[Size]
	Age     Set[Age]
	Gender  Set[Gender]
}

func NewFilterState() FilterState {
	return FilterState{
		Species: Set[Species]{},
		Size:    Set[Size]{},
		Age:     Set[Age]{},
		Gender:  Set[Gender]{},
	}
}

func (f *FilterState) SetQuery(q string) { f.Query = q }

// Toggle invierte la pertenencia de value en la dimensión dim.
func (f *FilterState) Toggle(dim Dimension, value string) error {
	switch dim {
	case DimensionSpecies:
		v, err := ParseSpecies(value)
		if err != nil {
			return err
		}
		f.Species.Toggle(v)
	case DimensionSize:
		v, err := ParseSize(value)
		if err != nil {
			return err
		}
		f.Size.Toggle(v)
	case DimensionAge:
		v, err := ParseAge(value)
		if err != nil {
			return err
		}
		f.Age.Toggle(v)
	case DimensionGender:
		v, err := ParseGender(value)
		if err != nil {
			return err
		}
		f.Gender.Toggle(v)
	default:
		return ErrInvalidInput
	}
	return nil
}

// Clear vuelve al estado vacío: el resultado pasa a ser el catálogo completo.
func (f *FilterState) Clear() {
	*f = NewFilterState()
}

func (f FilterState) HasActiveFilters() bool {
	return f.Query != "" ||
		f.Species.Len() > 0 || f.Size.Len() > 0 || f.Age.Len() > 0 || f.Gender.Len() > 0
}

// Filter devuelve los registros que cumplen todos los criterios,
// en el orden original del catálogo. Función pura; recorrido lineal.
func Filter(catalog []Pet, f FilterState) []Pet {
	// cases.Caser no se comparte entre goroutines: uno por llamada.
	fold := cases.Fold()
	// la consulta se usa tal cual: solo "" deja pasar todo
	query := fold.String(f.Query)

	out := make([]Pet, 0, len(catalog))
	for _, p := range catalog {
		if !f.Species.allows(p.Species) ||
			!f.Size.allows(p.Size) ||
			!f.Age.allows(p.Age) ||
			!f.Gender.allows(p.Gender) {
			continue
		}
		if query != "" &&
			!strings.Contains(fold.String(p.Name), query) &&
			!strings.Contains(fold.String(p.Breed), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Option es un valor seleccionable de una dimensión.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DimensionOptions agrupa las opciones de una dimensión.
type DimensionOptions struct {
	Dimension Dimension `json:"dimension"`
	Title     string    `json:"title"`
	Options   []Option  `json:"options"`
}

// Options devuelve las opciones de filtro tal como las muestra la app.
func Options() []DimensionOptions {
	return []DimensionOptions{
		{
			Dimension: DimensionSpecies,
			Title:     "Espécie",
			Options: []Option{
				{ID: string(SpeciesDog), Label: "Cachorro"},
				{ID: string(SpeciesCat), Label: "Gato"},
			},
		},
		{
			Dimension: DimensionSize,
			Title:     "Porte",
			Options: []Option{
				{ID: string(SizeSmall), Label: "Pequeno"},
				{ID: string(SizeMedium), Label: "Médio"},
				{ID: string(SizeLarge), Label: "Grande"},
			},
		},
		{
			Dimension: DimensionAge,
			Title:     "Idade",
			Options: []Option{
				{ID: string(AgeYoung), Label: "Filhote"},
				{ID: string(AgeAdult), Label: "Adulto"},
				{ID: string(AgeSenior), Label: "Idoso"},
			},
		},
		{
			Dimension: DimensionGender,
			Title:     "Sexo",
			Options: []Option{
				{ID: string(GenderMale), Label: "Macho"},
				{ID: string(GenderFemale), Label: "Fêmea"},
			},
		},
	}
}
