//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ritsch1/devops-capstone-project/internal/domain/accounts"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) (*gin.Engine, *MockAccountService) {
	t.Helper()
	mockService := new(MockAccountService)
	return NewRouter(mockService, testutil.SetupTestLogger(t), RouterOptions{}), mockService
}

func serve(r http.Handler, method, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestRouter_Index(t *testing.T) {
	r, _ := setupRouter(t)

	w := serve(r, http.MethodGet, "/", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var index IndexResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &index))
	assert.Equal(t, "Account REST API Service", index.Name)
	assert.Equal(t, "1.0", index.Version)
	assert.Equal(t, "http://example.com/accounts", index.Paths)
}

func TestRouter_Health(t *testing.T) {
	r, _ := setupRouter(t)

	w := serve(r, http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())
}

func TestRouter_CreateAccount(t *testing.T) {
	r, mockService := setupRouter(t)
	mockService.On("Create", mock.Anything, mock.Anything).Return(newStoredAccount(7), nil)

	body := []byte(`{"name": "Jane Doe", "email": "jane.doe@example.com", "address": "1 Main Street", "phone_number": "555-0100", "date_joined": "2024-03-14"}`)
	w := serve(r, http.MethodPost, "/accounts", body, jsonHeaders)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "http://example.com/accounts/7", w.Header().Get("Location"))

	var created AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Jane Doe", created.Name)
	assert.Equal(t, "jane.doe@example.com", created.Email)
	assert.Equal(t, "1 Main Street", created.Address)
	assert.Equal(t, "555-0100", created.PhoneNumber)
	assert.Equal(t, "2024-03-14", created.DateJoined)
}

func TestRouter_ReadAccount(t *testing.T) {
	r, mockService := setupRouter(t)
	mockService.On("GetByID", mock.Anything, uint(7)).Return(newStoredAccount(7), nil)

	w := serve(r, http.MethodGet, "/accounts/7", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var account AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &account))
	assert.Equal(t, uint(7), account.ID)
}

func TestRouter_AccountNotFound(t *testing.T) {
	r, mockService := setupRouter(t)
	mockService.On("GetByID", mock.Anything, uint(0)).Return(nil, accounts.ErrAccountNotFound)

	w := serve(r, http.MethodGet, "/accounts/0", nil, nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, http.StatusNotFound, errResp.Status)
	assert.Equal(t, "Not Found", errResp.Error)
}

func TestRouter_ListAccounts(t *testing.T) {
	r, mockService := setupRouter(t)
	list := []*accounts.Account{newStoredAccount(1), newStoredAccount(2), newStoredAccount(3)}
	mockService.On("List", mock.Anything, mock.Anything).Return(list, nil)

	w := serve(r, http.MethodGet, "/accounts", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var listed []AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 3)
}

func TestRouter_ListAccountsEmpty(t *testing.T) {
	r, mockService := setupRouter(t)
	mockService.On("List", mock.Anything, mock.Anything).Return([]*accounts.Account{}, nil)

	w := serve(r, http.MethodGet, "/accounts", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRouter_UpdateAccount(t *testing.T) {
	r, mockService := setupRouter(t)

	updated := newStoredAccount(7)
	updated.PhoneNumber = "42"
	mockService.On("GetByID", mock.Anything, uint(7)).Return(newStoredAccount(7), nil)
	mockService.On("Update", mock.Anything, uint(7), mock.Anything).Return(updated, nil)

	body := []byte(`{"name": "Jane Doe", "email": "jane.doe@example.com", "address": "1 Main Street", "phone_number": 42}`)
	w := serve(r, http.MethodPut, "/accounts/7", body, jsonHeaders)

	require.Equal(t, http.StatusOK, w.Code)
	var account AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &account))
	assert.Equal(t, "42", account.PhoneNumber)
}

func TestRouter_UpdateNotExistingAccount(t *testing.T) {
	r, mockService := setupRouter(t)
	mockService.On("GetByID", mock.Anything, uint(0)).Return(nil, accounts.ErrAccountNotFound)

	w := serve(r, http.MethodPut, "/accounts/0", []byte(`{}`), jsonHeaders)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_DeleteAccount(t *testing.T) {
	r, mockService := setupRouter(t)
	mockService.On("DeleteByID", mock.Anything, uint(7)).Return(nil)

	w := serve(r, http.MethodDelete, "/accounts/7", nil, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())
	mockService.AssertExpectations(t)
}

func TestRouter_BadRequest(t *testing.T) {
	r, _ := setupRouter(t)

	w := serve(r, http.MethodPost, "/accounts", []byte(`{"name": "not enough data"}`), jsonHeaders)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_UnsupportedMediaType(t *testing.T) {
	r, _ := setupRouter(t)

	w := serve(r, http.MethodPost, "/accounts", []byte(`{}`), map[string]string{"Content-Type": "test/html"})

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r, _ := setupRouter(t)

	tests := []struct {
		method string
		url    string
	}{
		{http.MethodPost, "/accounts/7"},
		{http.MethodDelete, "/accounts"},
		{http.MethodPut, "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			w := serve(r, tt.method, tt.url, nil, nil)

			require.Equal(t, http.StatusMethodNotAllowed, w.Code)
			var errResp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.Equal(t, http.StatusMethodNotAllowed, errResp.Status)
		})
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	r, _ := setupRouter(t)

	w := serve(r, http.MethodGet, "/does/not/exist", nil, nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"status":404`)
}

func TestRouter_SecurityHeaders(t *testing.T) {
	r, _ := setupRouter(t)

	w := serve(r, http.MethodGet, "/", nil, map[string]string{"X-Forwarded-Proto": "https"})

	require.Equal(t, http.StatusOK, w.Code)
	expected := map[string]string{
		"X-Frame-Options":         "SAMEORIGIN",
		"X-XSS-Protection":        "1; mode=block",
		"X-Content-Type-Options":  "nosniff",
		"Content-Security-Policy": "default-src 'self'; object-src 'none'",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
	}
	for key, value := range expected {
		assert.Equal(t, value, w.Header().Get(key), key)
	}
}

func TestRouter_CORSPolicies(t *testing.T) {
	r, _ := setupRouter(t)

	w := serve(r, http.MethodGet, "/", nil, map[string]string{"X-Forwarded-Proto": "https"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CORSCrossOriginRequest(t *testing.T) {
	r, _ := setupRouter(t)

	w := serve(r, http.MethodGet, "/health", nil, map[string]string{"Origin": "https://client.example.org"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_ForceHTTPSRedirects(t *testing.T) {
	r := NewRouter(new(MockAccountService), testutil.SetupTestLogger(t), RouterOptions{ForceHTTPS: true})

	w := serve(r, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "https://example.com/health", w.Header().Get("Location"))

	w = serve(r, http.MethodGet, "/health", nil, map[string]string{"X-Forwarded-Proto": "https"})
	assert.Equal(t, http.StatusOK, w.Code)
}
