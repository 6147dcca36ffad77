package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/neuroscale/neuroscale-site/internal/services"
	"github.com/neuroscale/neuroscale-site/internal/types"
)

func newLoginRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := testLogger(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &stubUserRepo{user: types.User{
		ID:       uuid.New(),
		Email:    "admin@example.com",
		Password: string(hashed),
	}}
	auth := services.NewAuthService(log, repo, "test-secret", time.Hour)

	router := gin.New()
	router.POST("/api/auth/login", NewAuthHandler(auth).Login)
	return router
}

func postLogin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin_ReturnsTokenAndUser(t *testing.T) {
	router := newLoginRouter(t)

	resp := postLogin(router, `{"email":"admin@example.com","password":"pass"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := resp.Body.String()
	if !strings.Contains(body, `"token"`) || !strings.Contains(body, "admin@example.com") {
		t.Fatalf("unexpected body: %s", body)
	}
	if strings.Contains(body, "pass") && strings.Contains(body, `"password"`) {
		t.Fatalf("password leaked: %s", body)
	}
}

func TestLogin_BadCredentialsIs401(t *testing.T) {
	router := newLoginRouter(t)
	resp := postLogin(router, `{"email":"admin@example.com","password":"wrong"}`)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestLogin_MissingFieldsIs400(t *testing.T) {
	router := newLoginRouter(t)
	for _, body := range []string{`{}`, `{"email":"a@b.c"}`, `not json`} {
		resp := postLogin(router, body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d", body, resp.Code)
		}
	}
}
