package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gtnotes/notes-api/internal/service"
	"gtnotes/notes-api/model"
	"gtnotes/notes-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestAPI(t *testing.T) (*API, *memUserStore, *memNoteStore) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("jwt.secret", testSecret)
	viper.Set("upload.max_size", int64(25<<20))
	viper.Set("host.frontend_url", "http://localhost:8080/sign-in")

	users := &memUserStore{}
	notes := &memNoteStore{}

	a := &API{
		Users:   users,
		Notes:   notes,
		Auth:    service.NewAuthenticator(users, []byte(testSecret), time.Hour),
		Mod:     service.NewModeration(notes),
		Storage: &fakeStorage{},
	}
	a.setupRoutes()

	return a, users, notes
}

func doJSON(a *API, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAuthSignup(t *testing.T) {
	a, _, _ := newTestAPI(t)

	w := doJSON(a, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":     "jane@example.com",
		"password":  "hunter22hunter22",
		"firstName": "Jane",
		"lastName":  "Smith",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	user := body["user"].(map[string]any)
	assert.Equal(t, "jane@example.com", user["email"])
	assert.Equal(t, model.RoleUser, user["role"])

	// The hash must never leak through the JSON shape
	assert.NotContains(t, w.Body.String(), "PasswordHash")
	assert.NotContains(t, w.Body.String(), "password_hash")

	id, err := security.VerifyToken(body["token"].(string), []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, user["id"], id.UserID)
}

func TestAuthSignupDuplicate(t *testing.T) {
	a, _, _ := newTestAPI(t)

	payload := gin.H{
		"email":     "jane@example.com",
		"password":  "hunter22hunter22",
		"firstName": "Jane",
		"lastName":  "Smith",
	}

	w := doJSON(a, http.MethodPost, "/api/auth/signup", "", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(a, http.MethodPost, "/api/auth/signup", "", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthSignupValidation(t *testing.T) {
	a, _, _ := newTestAPI(t)

	tests := []struct {
		name    string
		payload gin.H
	}{
		{"bad email", gin.H{"email": "not-an-email", "password": "hunter22hunter22", "firstName": "Jane", "lastName": "Smith"}},
		{"short password", gin.H{"email": "jane@example.com", "password": "short", "firstName": "Jane", "lastName": "Smith"}},
		{"missing name", gin.H{"email": "jane@example.com", "password": "hunter22hunter22"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(a, http.MethodPost, "/api/auth/signup", "", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthLogin(t *testing.T) {
	a, _, _ := newTestAPI(t)

	w := doJSON(a, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":     "jane@example.com",
		"password":  "hunter22hunter22",
		"firstName": "Jane",
		"lastName":  "Smith",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(a, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "jane@example.com",
		"password": "hunter22hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	id, err := security.VerifyToken(body["token"].(string), []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, id.Role)
}

func TestAuthLoginBadCredentials(t *testing.T) {
	a, _, _ := newTestAPI(t)

	w := doJSON(a, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":     "jane@example.com",
		"password":  "hunter22hunter22",
		"firstName": "Jane",
		"lastName":  "Smith",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(a, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "jane@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown address answers identically to a wrong password
	w2 := doJSON(a, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, w.Code, w2.Code)
	assert.JSONEq(t, stripRequestID(t, w), stripRequestID(t, w2))
}

func TestValidateEndpoint(t *testing.T) {
	a, _, _ := newTestAPI(t)

	w := doJSON(a, http.MethodHead, "/api/validate", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := security.MakeToken("user-1", model.RoleUser, []byte(testSecret), time.Hour)
	require.NoError(t, err)

	w = doJSON(a, http.MethodHead, "/api/validate", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	expired, err := security.MakeToken("user-1", model.RoleUser, []byte(testSecret), -time.Minute)
	require.NoError(t, err)

	w = doJSON(a, http.MethodHead, "/api/validate", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func stripRequestID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody(t, w)
	delete(body, "requestID")
	b, err := json.Marshal(body)
	require.NoError(t, err)
	return string(b)
}
