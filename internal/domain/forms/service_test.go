package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCatalog map[string]bool

func (c testCatalog) Exists(ctx context.Context, id string) (bool, error) {
	return c[id], nil
}

var errCatalogDown = errors.New("catalog down")

type failingCatalog struct{}

func (failingCatalog) Exists(ctx context.Context, id string) (bool, error) {
	return false, errCatalogDown
}

const validPhone = "(41) 99999-8888"

func submit(t *testing.T, kind Kind, data FormData, interests ...string) (Confirmation, error) {
	t.Helper()
	svc := NewService(testCatalog{"1": true, "2": true})
	return svc.Submit(context.Background(), Submission{Kind: kind, Data: data, Interests: interests})
}

func requireKind(t *testing.T, err error, kind ErrorKind, fields ...string) {
	t.Helper()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, kind, ve.Kind)
	assert.Equal(t, AlertTitle, ve.Title)
	assert.NotEmpty(t, ve.Message)
	if len(fields) > 0 {
		assert.Equal(t, fields, ve.Fields)
	}
}

func TestSubmit_Register(t *testing.T) {
	base := FormData{
		"name":            "Ana",
		"email":           "ana@example.com",
		"phone":           validPhone,
		"password":        "segredo",
		"confirmPassword": "segredo",
	}

	conf, err := submit(t, KindRegister, base)
	require.NoError(t, err)
	assert.Equal(t, "Cadastro realizado!", conf.Title)
	assert.Contains(t, conf.Message, "Ana")
	assert.Equal(t, NextLogin, conf.Next)

	_, err = submit(t, KindRegister, Set(base, "phone", "4199"))
	requireKind(t, err, InvalidPhoneDigitCount, "phone")

	_, err = submit(t, KindRegister, Set(base, "name", "   "))
	requireKind(t, err, MissingRequiredField, "name")

	_, err = submit(t, KindRegister, Set(base, "confirmPassword", "outra"))
	requireKind(t, err, PasswordMismatch)

	short := Set(Set(base, "password", "12345"), "confirmPassword", "12345")
	_, err = submit(t, KindRegister, short)
	requireKind(t, err, PasswordTooShort, "password")
}

func TestSubmit_Register_PhoneCheckedFirst(t *testing.T) {
	// formulario vacío: la pantalla reporta primero el teléfono
	_, err := submit(t, KindRegister, FormData{})
	requireKind(t, err, InvalidPhoneDigitCount)
}

func TestSubmit_Login(t *testing.T) {
	_, err := submit(t, KindLogin, FormData{"email": "ana@example.com"})
	requireKind(t, err, MissingRequiredField, "password")

	conf, err := submit(t, KindLogin, FormData{"email": "ana@example.com", "password": "x"})
	require.NoError(t, err)
	assert.Equal(t, NextBack, conf.Next)
}

func TestSubmit_Volunteer(t *testing.T) {
	d := FormData{"name": "Bia", "email": "bia@example.com", "phone": "41999998888"}

	_, err := submit(t, KindVolunteer, d)
	requireKind(t, err, NoInterestSelected)

	_, err = submit(t, KindVolunteer, d, "walking", "juggling")
	requireKind(t, err, UnknownInterest)

	conf, err := submit(t, KindVolunteer, d, "walking", "feeding")
	require.NoError(t, err)
	assert.Equal(t, "Inscrição Enviada!", conf.Title)
	assert.Contains(t, conf.Message, "voluntariado")
}

func TestSubmit_TemporaryHome(t *testing.T) {
	_, err := submit(t, KindTemporaryHome, FormData{"phone": validPhone, "name": "Caio"})
	requireKind(t, err, MissingRequiredField, "email")

	conf, err := submit(t, KindTemporaryHome, FormData{"phone": validPhone, "name": "Caio", "email": "c@x.com"})
	require.NoError(t, err)
	assert.Contains(t, conf.Message, "48 horas")
}

func TestSubmit_TemporaryHome_LongPhoneIsTruncated(t *testing.T) {
	// 12 dígitos crudos: el campo enmascarado guarda solo los 11 primeros
	d := FormData{"phone": "419999988881", "name": "Caio", "email": "c@x.com"}

	_, err := submit(t, KindTemporaryHome, d)
	require.NoError(t, err)

	_, err = submit(t, KindTemporaryHome, Set(d, "phone", "4199999888"))
	requireKind(t, err, InvalidPhoneDigitCount, "phone")
}

func TestSubmit_Donation(t *testing.T) {
	_, err := submit(t, KindDonation, FormData{"name": "Duda", "email": "d@x.com"})
	requireKind(t, err, MissingDonationAmount)

	_, err = submit(t, KindDonation, FormData{"amount": "25"})
	requireKind(t, err, MissingRequiredField, "name", "email")

	conf, err := submit(t, KindDonation, FormData{"amount": "25", "customAmount": "70", "name": "Duda", "email": "d@x.com"})
	require.NoError(t, err)
	assert.Contains(t, conf.Message, "R$ 70")
}

func TestSubmit_Adoption(t *testing.T) {
	d := FormData{"petId": "2", "name": "Eva", "email": "e@x.com", "phone": validPhone}

	conf, err := submit(t, KindAdoption, d)
	require.NoError(t, err)
	assert.Equal(t, NextHome, conf.Next)

	_, err = submit(t, KindAdoption, Set(d, "petId", "99"))
	requireKind(t, err, UnknownPet, "petId")

	_, err = submit(t, KindAdoption, Set(d, "petId", ""))
	requireKind(t, err, MissingRequiredField, "petId")

	svc := NewService(failingCatalog{})
	_, err = svc.Submit(context.Background(), Submission{Kind: KindAdoption, Data: d})
	assert.ErrorIs(t, err, errCatalogDown)
	assert.False(t, IsKind(err, UnknownPet))
}

func TestSubmit_Contact(t *testing.T) {
	_, err := submit(t, KindContact, FormData{"name": "Gil", "email": "g@x.com"})
	requireKind(t, err, MissingRequiredField, "message")

	_, err = submit(t, KindContact, FormData{"name": "Gil", "email": "g@x.com", "message": "Oi"})
	require.NoError(t, err)
}

func TestSubmit_UnknownKind(t *testing.T) {
	_, err := submit(t, Kind("newsletter"), FormData{})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSet_DoesNotMutateInput(t *testing.T) {
	orig := FormData{"name": "Ana"}

	next := Set(orig, "name", "Bia")
	next = Set(next, "email", "b@x.com")

	assert.Equal(t, FormData{"name": "Ana"}, orig)
	assert.Equal(t, FormData{"name": "Bia", "email": "b@x.com"}, next)
}

func TestReset(t *testing.T) {
	d := Reset(KindLogin)
	assert.Equal(t, FormData{"email": "", "password": ""}, d)

	_, ok := ParseKind(" Temporary_Home ")
	assert.True(t, ok)
	_, ok = ParseKind("newsletter")
	assert.False(t, ok)
}

func TestToggleInterest(t *testing.T) {
	in := []string{"walking"}

	out := ToggleInterest(in, "feeding")
	assert.Equal(t, []string{"walking", "feeding"}, out)
	assert.Equal(t, []string{"walking"}, in)

	assert.Equal(t, []string{"feeding"}, ToggleInterest(out, "walking"))
}
