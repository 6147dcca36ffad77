package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/neuroscale/neuroscale-site/internal/logger"
	"github.com/neuroscale/neuroscale-site/internal/middleware"
	"github.com/neuroscale/neuroscale-site/internal/services"
	"github.com/neuroscale/neuroscale-site/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init: %v", err)
	}
	return log
}

// stubContent implements only the operations a test exercises; calling
// anything else panics through the embedded nil interface.
type stubContent struct {
	services.ContentService
	titles     []types.Title
	titlesErr  error
	faqsErr    error
	created    []*types.Client
	faqCreated []*types.Faq
}

func (s *stubContent) ListTitles(_ context.Context) ([]types.Title, error) {
	return s.titles, s.titlesErr
}

func (s *stubContent) ListFaqs(_ context.Context) ([]types.Faq, error) {
	if s.faqsErr != nil {
		return nil, s.faqsErr
	}
	return []types.Faq{}, nil
}

func (s *stubContent) CreateClient(_ context.Context, data *types.Client) (*types.Client, error) {
	s.created = append(s.created, data)
	data.ID = uuid.New()
	return data, nil
}

func (s *stubContent) CreateFaq(_ context.Context, data *types.Faq) (*types.Faq, error) {
	s.faqCreated = append(s.faqCreated, data)
	data.ID = uuid.New()
	return data, nil
}

type stubUserRepo struct {
	user types.User
}

func (s *stubUserRepo) List(_ context.Context, _ *gorm.DB) ([]types.User, error) {
	return []types.User{s.user}, nil
}
func (s *stubUserRepo) Count(_ context.Context, _ *gorm.DB) (int64, error) { return 1, nil }
func (s *stubUserRepo) GetByEmail(_ context.Context, _ *gorm.DB, email string) (*types.User, error) {
	if email == s.user.Email {
		return &s.user, nil
	}
	return nil, nil
}
func (s *stubUserRepo) Create(_ context.Context, _ *gorm.DB, u *types.User) (*types.User, error) {
	return u, nil
}
func (s *stubUserRepo) Update(_ context.Context, _ *gorm.DB, _ uuid.UUID, u *types.User) (*types.User, error) {
	return u, nil
}
func (s *stubUserRepo) Delete(_ context.Context, _ *gorm.DB, _ uuid.UUID) error { return nil }

type gqlFixture struct {
	router  *gin.Engine
	content *stubContent
	token   string
}

func newGQLFixture(t *testing.T) *gqlFixture {
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
	token, _, err := auth.Login(context.Background(), "admin@example.com", "pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	content := &stubContent{}
	h := NewGraphQLHandler(log, content)
	am := middleware.NewAuthMiddleware(log, auth)

	router := gin.New()
	router.POST("/api/graphql", am.AttachSession(), h.Execute)

	return &gqlFixture{router: router, content: content, token: token}
}

func (f *gqlFixture) post(t *testing.T, token, query string, variables map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/graphql", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestExecute_PublicQueryWithoutSession(t *testing.T) {
	f := newGQLFixture(t)
	f.content.titles = []types.Title{{Name: "hero", Title: "Заголовок"}}

	resp := f.post(t, "", `{ titles { id name title } }`, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "Заголовок") {
		t.Fatalf("expected titles in data: %s", resp.Body.String())
	}
}

func TestExecute_AnonymousMutationIs401WithoutSideEffects(t *testing.T) {
	f := newGQLFixture(t)

	resp := f.post(t, "", `mutation { createFaq(data: $data) { id } }`,
		map[string]any{"data": map[string]any{"question": "q", "answer": "a"}})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if len(f.content.faqCreated) != 0 {
		t.Fatalf("expected no side effects on denied mutation")
	}
}

func TestExecute_MixedDocumentDeniedAtomically(t *testing.T) {
	f := newGQLFixture(t)

	// createClient alone is public, but the document also carries a gated
	// mutation, so nothing may run.
	resp := f.post(t, "", `mutation { createClient { id } createFaq { id } }`,
		map[string]any{
			"name":  "a",
			"phone": "b",
			"data":  map[string]any{"question": "q", "answer": "a"},
		})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if len(f.content.created) != 0 || len(f.content.faqCreated) != 0 {
		t.Fatalf("expected no partial application")
	}
}

func TestExecute_SessionMutationSucceeds(t *testing.T) {
	f := newGQLFixture(t)

	resp := f.post(t, f.token, `mutation CreateFaq($data: FaqCreateInput!) { createFaq(data: $data) { id } }`,
		map[string]any{"data": map[string]any{"question": "q", "answer": "a"}})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if len(f.content.faqCreated) != 1 || f.content.faqCreated[0].Question != "q" {
		t.Fatalf("expected faq created, got %+v", f.content.faqCreated)
	}
}

func TestExecute_CreateClientAcceptsLegacyFlatVariables(t *testing.T) {
	f := newGQLFixture(t)

	resp := f.post(t, "", `mutation { createClient { id name phone } }`,
		map[string]any{"name": "Анна", "phone": "+7", "question": "Сколько?"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if len(f.content.created) != 1 {
		t.Fatalf("expected one lead, got %d", len(f.content.created))
	}
	lead := f.content.created[0]
	if lead.Name != "Анна" || lead.Phone != "+7" || lead.Question != "Сколько?" {
		t.Fatalf("unexpected lead: %+v", lead)
	}
}

func TestExecute_CreateClientAcceptsDataVariable(t *testing.T) {
	f := newGQLFixture(t)

	resp := f.post(t, "", `mutation CreateClient($data: ClientCreateInput!) { createClient(data: $data) { id } }`,
		map[string]any{"data": map[string]any{"name": "a", "phone": "b", "contactMethod": "telegram"}})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if len(f.content.created) != 1 || f.content.created[0].ContactMethod != "telegram" {
		t.Fatalf("unexpected lead: %+v", f.content.created)
	}
}

func TestExecute_UnknownFieldIs400(t *testing.T) {
	f := newGQLFixture(t)

	resp := f.post(t, "", `{ banners { id } }`, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "unknown field") {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestExecute_OperationKindMismatchIs400(t *testing.T) {
	f := newGQLFixture(t)

	resp := f.post(t, f.token, `query { createFaq { id } }`, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestExecute_PerFieldErrorsAreIndependent(t *testing.T) {
	f := newGQLFixture(t)
	f.content.titles = []types.Title{{Name: "hero", Title: "ok"}}
	f.content.faqsErr = context.DeadlineExceeded

	resp := f.post(t, "", `{ titles { id } faqs { id } }`, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with partial errors, got %d", resp.Code)
	}

	var parsed struct {
		Data struct {
			Titles []types.Title `json:"titles"`
			Faqs   any           `json:"faqs"`
		} `json:"data"`
		Errors []struct {
			Message string   `json:"message"`
			Path    []string `json:"path"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(parsed.Data.Titles) != 1 {
		t.Fatalf("expected titles to resolve: %+v", parsed.Data)
	}
	if parsed.Data.Faqs != nil {
		t.Fatalf("expected null faqs")
	}
	if len(parsed.Errors) != 1 || parsed.Errors[0].Path[0] != "faqs" {
		t.Fatalf("unexpected errors: %+v", parsed.Errors)
	}
}

func TestExecute_InvalidBodyAndQuery(t *testing.T) {
	f := newGQLFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/graphql", strings.NewReader("not json"))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid body, got %d", w.Code)
	}

	resp := f.post(t, "", `subscription { titles }`, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for subscription, got %d", resp.Code)
	}
}
