package forms

import "strings"

// Kind identifica cada formulario de la app.
type Kind string

const (
	KindRegister      Kind = "register"
	KindLogin         Kind = "login"
	KindVolunteer     Kind = "volunteer"
	KindTemporaryHome Kind = "temporary_home"
	KindDonation      Kind = "donation"
	KindAdoption      Kind = "adoption"
	KindContact       Kind = "contact"
)

// Next es a dónde navega la app después de confirmar.
type Next string

const (
	NextBack  Next = "back"
	NextLogin Next = "login"
	NextHome  Next = "home"
)

// FormData es el estado de un formulario: campo -> valor actual.
type FormData map[string]string

// Set devuelve un estado nuevo con field = value. No muta state.
func Set(state FormData, field, value string) FormData {
	out := make(FormData, len(state)+1)
	for k, v := range state {
		out[k] = v
	}
	out[field] = value
	return out
}

// Get devuelve el valor recortado (un campo solo con espacios cuenta como vacío).
func (d FormData) Get(field string) string {
	return strings.TrimSpace(d[field])
}

// Submission es lo que la pantalla manda al tocar "enviar".
type Submission struct {
	Kind      Kind
	Data      FormData
	Interests []string // solo voluntariado
}

// Confirmation es el diálogo de éxito; la pantalla resetea el form al aceptarlo.
type Confirmation struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Next    Next   `json:"next"`
}

// fields por formulario, en el orden de la pantalla.
var fields = map[Kind][]string{
	KindRegister:      {"name", "email", "phone", "password", "confirmPassword"},
	KindLogin:         {"email", "password"},
	KindVolunteer:     {"name", "email", "phone", "age", "occupation", "availability", "experience", "skills", "whyVolunteer"},
	KindTemporaryHome: {"name", "email", "phone", "address", "experience", "homeType", "hasOtherPets", "otherPetsInfo", "timeAvailable", "petPreferences", "whyTemporaryHome"},
	KindDonation:      {"amount", "customAmount", "name", "email", "paymentMethod"},
	KindAdoption:      {"petId", "name", "email", "phone", "address", "message"},
	KindContact:       {"name", "email", "message"},
}

func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	_, ok := fields[k]
	return k, ok
}

// Fields devuelve los campos conocidos del formulario.
func Fields(k Kind) []string {
	out := make([]string, len(fields[k]))
	copy(out, fields[k])
	return out
}

// Reset devuelve el formulario vacío de un tipo.
func Reset(k Kind) FormData {
	out := make(FormData, len(fields[k]))
	for _, f := range fields[k] {
		out[f] = ""
	}
	return out
}

// Interest es un área de voluntariado.
type Interest struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var Interests = []Interest{
	{ID: "cleaning", Label: "Limpeza do abrigo"},
	{ID: "feeding", Label: "Alimentação dos animais"},
	{ID: "walking", Label: "Passeio com os cães"},
	{ID: "socialization", Label: "Socialização dos pets"},
	{ID: "events", Label: "Eventos de adoção"},
	{ID: "admin", Label: "Tarefas administrativas"},
	{ID: "transport", Label: "Transporte de animais"},
	{ID: "medical", Label: "Auxílio veterinário"},
}

// DonationAmounts son los valores predefinidos (R$) del selector.
var DonationAmounts = []string{"10", "25", "50", "100"}

// ToggleInterest agrega o quita id. Devuelve un slice nuevo.
func ToggleInterest(interests []string, id string) []string {
	out := make([]string, 0, len(interests)+1)
	found := false
	for _, v := range interests {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

func knownInterest(id string) bool {
	for _, it := range Interests {
		if it.ID == id {
			return true
		}
	}
	return false
}
