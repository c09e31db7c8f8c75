package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"studybuddy-backend/internal/bootstrap"
	"studybuddy-backend/internal/shared/config"
)

func buildApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		UploadDir:       t.TempDir(),
		AuthEmail:       "test@test.com",
		AuthPassword:    "123456",
		AuthName:        "Test User",
		TokenTTL:        time.Hour,
		MaxContextChars: 3000,
	}

	app, err := bootstrap.BuildWith(cfg, bootstrap.Options{Generator: staticGenerator{}})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

type staticGenerator struct{}

func (staticGenerator) Generate(_ context.Context, _ string) (string, error) {
	return "static answer", nil
}

func login(t *testing.T, router *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestLoginThenListFilesEmpty(t *testing.T) {
	app := buildApp(t)

	resp := login(t, app.Router, "test@test.com", "123456")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var loginBody struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginBody); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if loginBody.Token == "" {
		t.Fatal("expected token in login response")
	}
	if loginBody.User.Email != "test@test.com" {
		t.Fatalf("unexpected user: %q", loginBody.User.Email)
	}

	req := httptest.NewRequest(http.MethodGet, "/files", nil)
	req.Header.Set("Authorization", "Bearer "+loginBody.Token)
	listResp := httptest.NewRecorder()
	app.Router.ServeHTTP(listResp, req)

	if listResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", listResp.Code)
	}
	var files []json.RawMessage
	if err := json.NewDecoder(listResp.Body).Decode(&files); err != nil {
		t.Fatalf("decode files: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(files))
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := buildApp(t)

	resp := login(t, app.Router, "test@test.com", "wrong")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error == "" {
		t.Fatal("expected error message in body")
	}
}

func TestLoginRejectsMissingField(t *testing.T) {
	app := buildApp(t)

	resp := login(t, app.Router, "", "123456")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestMeReturnsIdentity(t *testing.T) {
	app := buildApp(t)

	resp := login(t, app.Router, "test@test.com", "123456")
	var loginBody struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginBody); err != nil {
		t.Fatalf("decode login: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+loginBody.Token)
	meResp := httptest.NewRecorder()
	app.Router.ServeHTTP(meResp, req)

	if meResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", meResp.Code)
	}
	var meBody struct {
		User struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	if err := json.NewDecoder(meResp.Body).Decode(&meBody); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if meBody.User.Email != "test@test.com" || meBody.User.Name != "Test User" {
		t.Fatalf("unexpected identity: %+v", meBody.User)
	}
}

func TestMeRejectsMissingToken(t *testing.T) {
	app := buildApp(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
