package forms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	r := chi.NewRouter()
	noLimit := func(next http.Handler) http.Handler { return next }
	RegisterRoutes(r, NewService(testCatalog{"1": true}), noLimit)
	return r
}

func TestEmptyFormHandler_ReturnsFieldOrder(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/forms/login", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp emptyFormResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, KindLogin, resp.Kind)
	assert.Equal(t, []string{"email", "password"}, resp.Order)
	assert.Equal(t, FormData{"email": "", "password": ""}, resp.Fields)
}

func TestSubmitFormHandler_LongPhoneAndRepeatedInterests(t *testing.T) {
	body := `{"fields":{"name":"Ana","email":"ana@x.com","phone":"419999988881"},"interests":["walking","walking","feeding"]}`

	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/forms/volunteer", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var conf Confirmation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conf))
	assert.Equal(t, "Inscrição Enviada!", conf.Title)
}

func TestFormData_StartsFromEmptyForm(t *testing.T) {
	d := formData(KindLogin, map[string]string{"email": "a@x.com", "extra": "x"})
	assert.Equal(t, FormData{"email": "a@x.com", "password": "", "extra": "x"}, d)
}

func TestSelectedInterests_KeepsFirstOccurrence(t *testing.T) {
	assert.Equal(t, []string{"walking", "feeding"}, selectedInterests([]string{"walking", "feeding", "walking"}))
	assert.Empty(t, selectedInterests(nil))
}
