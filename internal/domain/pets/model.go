package pets

import (
	"strings"
)

// Species define las especies del catálogo.
// @Enum cachorro, gato
type Species string

const (
	SpeciesDog Species = "cachorro"
	SpeciesCat Species = "gato"
)

// Size define el porte del animal.
// @Enum pequeno, médio, grande
type Size string

const (
	SizeSmall  Size = "pequeno"
	SizeMedium Size = "médio"
	SizeLarge  Size = "grande"
)

// Age define la franja de edad.
// @Enum filhote, adulto, idoso
type Age string

const (
	AgeYoung  Age = "filhote"
	AgeAdult  Age = "adulto"
	AgeSenior Age = "idoso"
)

// Gender define el sexo del animal.
// @Enum macho, fêmea
type Gender string

const (
	GenderMale   Gender = "macho"
	GenderFemale Gender = "fêmea"
)

// Pet es una entrada fija del catálogo de adopción.
// El catálogo se arma en build (seed embebido); no hay alta/baja/edición.
type Pet struct {
	ID   string
	Name string

	Species Species
	Breed   string
	Age     Age
	Size    Size
	Gender  Gender

	Description string
	ImageRef    string // handle opaco del asset empaquetado
}

func (s Species) Valid() bool { return s == SpeciesDog || s == SpeciesCat }
func (s Size) Valid() bool    { return s == SizeSmall || s == SizeMedium || s == SizeLarge }
func (a Age) Valid() bool     { return a == AgeYoung || a == AgeAdult || a == AgeSenior }
func (g Gender) Valid() bool  { return g == GenderMale || g == GenderFemale }

// Alias en inglés aceptados en la frontera HTTP/CLI.
var (
	speciesAliases = map[string]Species{
		"cachorro": SpeciesDog, "dog": SpeciesDog,
		"gato": SpeciesCat, "cat": SpeciesCat,
	}
	sizeAliases = map[string]Size{
		"pequeno": SizeSmall, "small": SizeSmall,
		"médio": SizeMedium, "medio": SizeMedium, "medium": SizeMedium,
		"grande": SizeLarge, "large": SizeLarge,
	}
	ageAliases = map[string]Age{
		"filhote": AgeYoung, "young": AgeYoung,
		"adulto": AgeAdult, "adult": AgeAdult,
		"idoso": AgeSenior, "senior": AgeSenior,
	}
	genderAliases = map[string]Gender{
		"macho": GenderMale, "male": GenderMale,
		"fêmea": GenderFemale, "femea": GenderFemale, "female": GenderFemale,
	}
)

func ParseSpecies(s string) (Species, error) {
	if v, ok := speciesAliases[normalizeID(s)]; ok {
		return v, nil
	}
	return "", ErrInvalidInput
}

func ParseSize(s string) (Size, error) {
	if v, ok := sizeAliases[normalizeID(s)]; ok {
		return v, nil
	}
	return "", ErrInvalidInput
}

func ParseAge(s string) (Age, error) {
	if v, ok := ageAliases[normalizeID(s)]; ok {
		return v, nil
	}
	return "", ErrInvalidInput
}

func ParseGender(s string) (Gender, error) {
	if v, ok := genderAliases[normalizeID(s)]; ok {
		return v, nil
	}
	return "", ErrInvalidInput
}

func normalizeID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
