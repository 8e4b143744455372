package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bwmarrin/snowflake"
	clientdomain "github.com/kossaiRedou/EasInvoice/internal/client/domain"
	"github.com/stretchr/testify/assert"
)

func TestClientRoutes_RequireAuth(t *testing.T) {
	f := newTestServer()

	for _, target := range []string{"/clients", "/profile"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		f.server.Engine().ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, target)
	}
}

func TestCreateClient(t *testing.T) {
	f := newTestServer()

	body := url.Values{}
	body.Set("name", "Client SA")
	body.Set("address", "2 avenue des Champs")
	body.Set("city", "69001 Lyon")

	w := httptest.NewRecorder()
	f.server.Engine().ServeHTTP(w, authedRequest(http.MethodPost, "/clients", body.Encode()))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Client SA"`)

	w = httptest.NewRecorder()
	f.server.Engine().ServeHTTP(w, authedRequest(http.MethodGet, "/clients", ""))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Client SA"`)
}

func TestCreateClient_MissingNameIsRejected(t *testing.T) {
	f := newTestServer()

	body := url.Values{}
	body.Set("address", "2 avenue des Champs")

	w := httptest.NewRecorder()
	f.server.Engine().ServeHTTP(w, authedRequest(http.MethodPost, "/clients", body.Encode()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, f.client.stored)
}

func TestNewInvoiceForm_FromClientPrefillsRecipient(t *testing.T) {
	f := newTestServer()
	f.client.stored = &clientdomain.Client{
		ID:      snowflake.ID(3003),
		UserID:  testUserID,
		Name:    "Client SA",
		Address: "2 avenue des Champs",
		City:    "69001 Lyon",
	}

	w := httptest.NewRecorder()
	f.server.Engine().ServeHTTP(w, authedRequest(http.MethodGet, "/invoices/new?from_client=3003", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `value="Client SA"`)
	assert.Contains(t, body, `value="2 avenue des Champs"`)
}

func TestNewInvoiceForm_FromUnknownClientIsNotFound(t *testing.T) {
	f := newTestServer()

	w := httptest.NewRecorder()
	f.server.Engine().ServeHTTP(w, authedRequest(http.MethodGet, "/invoices/new?from_client=9999", ""))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfile_PrefillsIssuerBlock(t *testing.T) {
	f := newTestServer()

	body := url.Values{}
	body.Set("company_name", "ACME SARL")
	body.Set("address", "1 rue de la Paix")
	body.Set("siret", "123 456 789 00010")
	body.Set("is_ei", "true")

	w := httptest.NewRecorder()
	f.server.Engine().ServeHTTP(w, authedRequest(http.MethodPut, "/profile", body.Encode()))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"company_name":"ACME SARL"`)

	w = httptest.NewRecorder()
	f.server.Engine().ServeHTTP(w, authedRequest(http.MethodGet, "/invoices/new", ""))
	assert.Equal(t, http.StatusOK, w.Code)
	body2 := w.Body.String()
	assert.Contains(t, body2, `value="ACME SARL"`)
	assert.Contains(t, body2, `value="123 456 789 00010"`)
	assert.Contains(t, body2, `name="is_ei" checked`)
}

func TestGetProfile_EmptyBeforeFirstSave(t *testing.T) {
	f := newTestServer()

	w := httptest.NewRecorder()
	f.server.Engine().ServeHTTP(w, authedRequest(http.MethodGet, "/profile", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "{}", w.Body.String())
}

func TestDeleteClient_UnknownIsNotFound(t *testing.T) {
	f := newTestServer()

	w := httptest.NewRecorder()
	f.server.Engine().ServeHTTP(w, authedRequest(http.MethodDelete, "/clients/9999", ""))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
