package forms

import (
	"context"
	"fmt"

	"lar-amigo/internal/domain/phone"
)

const minPasswordLen = 6

const (
	msgPhone           = "O telefone deve conter 11 dígitos (DDD + número). Ex: 41999999999"
	msgFillAll         = "Por favor, preencha todos os campos."
	msgFillContact     = "Por favor, preencha pelo menos nome, e-mail e telefone."
	msgPasswordMatch   = "As senhas não coincidem."
	msgPasswordShort   = "A senha deve ter pelo menos 6 caracteres."
	msgNoInterest      = "Por favor, selecione pelo menos uma área de interesse."
	msgUnknownInterest = "Área de interesse inválida."
	msgNoAmount        = "Por favor, selecione ou informe um valor para doação."
	msgDonor           = "Por favor, preencha seu nome e e-mail."
	msgUnknownPet      = "Pet não encontrado."
)

// PetCatalog responde si un id existe en el catálogo (formulario de adopción).
type PetCatalog interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Service valida envíos. No guarda ni transmite nada.
type Service struct {
	catalog PetCatalog
}

func NewService(catalog PetCatalog) *Service {
	return &Service{catalog: catalog}
}

// Submit valida en el mismo orden que la pantalla y devuelve la confirmación.
// Los rechazos son *ValidationError; cualquier otro error es interno.
func (s *Service) Submit(ctx context.Context, sub Submission) (Confirmation, error) {
	d := sub.Data
	if d == nil {
		d = FormData{}
	}

	switch sub.Kind {
	case KindRegister:
		if err := firstError(
			checkPhone(d),
			required(d, msgFillAll, "name", "email", "phone", "password"),
		); err != nil {
			return Confirmation{}, err
		}
		if d["password"] != d["confirmPassword"] {
			return Confirmation{}, newValidationError(PasswordMismatch, msgPasswordMatch, "password", "confirmPassword")
		}
		if len([]rune(d["password"])) < minPasswordLen {
			return Confirmation{}, newValidationError(PasswordTooShort, msgPasswordShort, "password")
		}
		return Confirmation{
			Title:   "Cadastro realizado!",
			Message: fmt.Sprintf("Bem-vindo(a) %s! Sua conta foi criada com sucesso.", d.Get("name")),
			Next:    NextLogin,
		}, nil

	case KindLogin:
		if err := required(d, msgFillAll, "email", "password"); err != nil {
			return Confirmation{}, err
		}
		return Confirmation{Title: "Login realizado!", Message: "Bem-vindo de volta!", Next: NextBack}, nil

	case KindVolunteer:
		if err := firstError(
			checkPhone(d),
			required(d, msgFillContact, "name", "email", "phone"),
		); err != nil {
			return Confirmation{}, err
		}
		if len(sub.Interests) == 0 {
			return Confirmation{}, newValidationError(NoInterestSelected, msgNoInterest, "interests")
		}
		for _, id := range sub.Interests {
			if !knownInterest(id) {
				return Confirmation{}, newValidationError(UnknownInterest, msgUnknownInterest, "interests")
			}
		}
		return Confirmation{
			Title:   "Inscrição Enviada!",
			Message: fmt.Sprintf("Obrigado %s! Sua inscrição para voluntariado foi recebida. Entraremos em contato em breve para conversarmos mais.", d.Get("name")),
			Next:    NextBack,
		}, nil

	case KindTemporaryHome:
		if err := firstError(
			checkPhone(d),
			required(d, msgFillContact, "name", "email", "phone"),
		); err != nil {
			return Confirmation{}, err
		}
		return Confirmation{
			Title:   "Inscrição Enviada!",
			Message: fmt.Sprintf("Obrigado %s! Sua inscrição para lar temporário foi recebida. Entraremos em contato em até 48 horas para conversarmos mais.", d.Get("name")),
			Next:    NextBack,
		}, nil

	case KindDonation:
		amount := DonationAmount(d)
		if amount == "" {
			return Confirmation{}, newValidationError(MissingDonationAmount, msgNoAmount, "amount", "customAmount")
		}
		if err := required(d, msgDonor, "name", "email"); err != nil {
			return Confirmation{}, err
		}
		return Confirmation{
			Title:   "Doação Realizada!",
			Message: fmt.Sprintf("Obrigado, %s! Sua doação de R$ %s foi processada com sucesso.", d.Get("name"), amount),
			Next:    NextBack,
		}, nil

	case KindAdoption:
		if err := firstError(
			checkPhone(d),
			required(d, msgFillAll, "petId", "name", "email", "phone"),
		); err != nil {
			return Confirmation{}, err
		}
		ok, err := s.catalog.Exists(ctx, d.Get("petId"))
		if err != nil {
			return Confirmation{}, err
		}
		if !ok {
			return Confirmation{}, newValidationError(UnknownPet, msgUnknownPet, "petId")
		}
		return Confirmation{
			Title:   "Solicitação Enviada!",
			Message: fmt.Sprintf("Obrigado %s! Recebemos seu pedido de adoção. Entraremos em contato em breve.", d.Get("name")),
			Next:    NextHome,
		}, nil

	case KindContact:
		if err := required(d, msgFillAll, "name", "email", "message"); err != nil {
			return Confirmation{}, err
		}
		return Confirmation{
			Title:   "Mensagem Enviada!",
			Message: fmt.Sprintf("Obrigado %s! Responderemos em breve.", d.Get("name")),
			Next:    NextBack,
		}, nil
	}

	return Confirmation{}, ErrUnknownKind
}

// DonationAmount: el valor libre pisa al predefinido.
func DonationAmount(d FormData) string {
	if v := d.Get("customAmount"); v != "" {
		return v
	}
	return d.Get("amount")
}

func checkPhone(d FormData) error {
	if !phone.IsValid(d["phone"]) {
		return newValidationError(InvalidPhoneDigitCount, msgPhone, "phone")
	}
	return nil
}

func required(d FormData, msg string, names ...string) error {
	var missing []string
	for _, n := range names {
		if d.Get(n) == "" {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return newValidationError(MissingRequiredField, msg, missing...)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
