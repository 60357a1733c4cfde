package phone

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw     string
		masked  string
		valid   bool
		missing int
		message string
	}{
		{raw: "", masked: ""},
		{raw: "abc", masked: ""},
		{raw: "4", masked: "(4", missing: 10, message: "Digite 11 dígitos (1/11)"},
		{raw: "41", masked: "(41", missing: 9, message: "Digite 11 dígitos (2/11)"},
		{raw: "419", masked: "(41) 9", missing: 8, message: "Digite 11 dígitos (3/11)"},
		{raw: "4199999", masked: "(41) 99999", missing: 4, message: "Digite 11 dígitos (7/11)"},
		{raw: "41999998", masked: "(41) 99999-8", missing: 3, message: "Digite 11 dígitos (8/11)"},
		{raw: "41999998888", masked: "(41) 99999-8888", valid: true},
		{raw: "(41) 99999-8888", masked: "(41) 99999-8888", valid: true},
		{raw: "4199999888877", masked: "(41) 99999-8888", valid: true},
		{raw: "+55 ٤١ 9", masked: "(55) 9", missing: 8, message: "Digite 11 dígitos (3/11)"},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got := Normalize(tc.raw)
			assert.Equal(t, tc.masked, got.Masked)
			assert.Equal(t, tc.valid, got.Valid)
			assert.Equal(t, tc.missing, got.Missing)
			assert.Equal(t, tc.message, got.Message)
			assert.LessOrEqual(t, len(got.Digits), Digits)
		})
	}
}

func TestNormalize_IsIdempotentOnMaskedOutput(t *testing.T) {
	for _, raw := range []string{"4", "41999", "41999998888", "(41) 99999-88"} {
		first := Normalize(raw)
		again := Normalize(first.Masked)
		assert.Equal(t, first, again, raw)
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("(41) 99999-8888"))
	assert.False(t, IsValid("4199999888"))
	// mais de 11 dígitos: trunca antes de validar, como Normalize
	assert.True(t, IsValid("419999988889"))
	assert.Equal(t, Normalize("419999988889").Valid, IsValid("419999988889"))
}

func TestNormalizeHandler(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/phone/normalize", strings.NewReader(`{"raw":"41 9"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"digits":"419","masked":"(41) 9","valid":false,"missing":8,"message":"Digite 11 dígitos (3/11)"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/phone/normalize", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
