package forms

import (
	"errors"
	"strings"
)

var ErrUnknownKind = errors.New("unknown form")

// ErrorKind es la causa de un rechazo de validación.
type ErrorKind string

const (
	MissingRequiredField   ErrorKind = "missing_required_field"
	InvalidPhoneDigitCount ErrorKind = "invalid_phone_digit_count"
	PasswordMismatch       ErrorKind = "password_mismatch"
	PasswordTooShort       ErrorKind = "password_too_short"
	NoInterestSelected     ErrorKind = "no_interest_selected"
	MissingDonationAmount  ErrorKind = "missing_donation_amount"
	UnknownInterest        ErrorKind = "unknown_interest"
	UnknownPet             ErrorKind = "unknown_pet"
)

// AlertTitle es el título del diálogo de validación.
const AlertTitle = "Atenção"

// ValidationError bloquea el envío; el formulario queda intacto.
type ValidationError struct {
	Kind    ErrorKind `json:"kind"`
	Fields  []string  `json:"fields,omitempty"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + strings.Join(e.Fields, ", ")
}

func newValidationError(kind ErrorKind, msg string, fields ...string) *ValidationError {
	return &ValidationError{Kind: kind, Fields: fields, Title: AlertTitle, Message: msg}
}

// IsKind reporta si err es un ValidationError de ese tipo.
func IsKind(err error, kind ErrorKind) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == kind
}
