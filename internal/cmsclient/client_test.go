package cmsclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neuroscale/neuroscale-site/internal/logger"
	"github.com/neuroscale/neuroscale-site/internal/types"
)

func typesClient(name, phone string) types.Client {
	return types.Client{Name: name, Phone: phone}
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init: %v", err)
	}
	return log
}

func TestFetchHome_ParsesAggregate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Query == "" {
			t.Errorf("expected query in request body")
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{
			"titles":[{"name":"hero","title":"Заголовок"}],
			"faqs":[{"question":"q","answer":"a"}]
		}}`))
	}))
	defer srv.Close()

	c := New(testLogger(t), srv.URL, "tok")
	data := c.FetchHome(context.Background())

	if len(data.Titles) != 1 || data.Titles[0].Title != "Заголовок" {
		t.Fatalf("unexpected titles: %+v", data.Titles)
	}
	if len(data.Faqs) != 1 {
		t.Fatalf("unexpected faqs: %+v", data.Faqs)
	}
	// Lists absent from the response come back empty, not nil.
	if data.Abouts == nil || data.Stages == nil {
		t.Fatalf("expected absent lists to be normalized to empty")
	}
}

func TestFetchHome_FailsOpen(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"garbage body": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		},
		"graphql errors": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"errors":[{"message":"boom"}]}`))
		},
	}
	for name, handler := range cases {
		srv := httptest.NewServer(handler)
		c := New(testLogger(t), srv.URL, "")
		data := c.FetchHome(context.Background())
		srv.Close()

		if data.Titles == nil || len(data.Titles) != 0 {
			t.Fatalf("%s: expected empty aggregate, got %+v", name, data.Titles)
		}
	}
}

func TestFetchHome_UnreachableFailsOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(testLogger(t), srv.URL, "")
	data := c.FetchHome(context.Background())
	if len(data.Titles) != 0 || data.Titles == nil {
		t.Fatalf("expected empty aggregate when unreachable")
	}
}

func TestFetchDocument_MissingIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]string `json:"variables"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Variables["slug"] != "privacy" {
			t.Errorf("unexpected slug %q", req.Variables["slug"])
		}
		w.Write([]byte(`{"data":{"document":null}}`))
	}))
	defer srv.Close()

	c := New(testLogger(t), srv.URL, "")
	if doc := c.FetchDocument(context.Background(), "privacy"); doc != nil {
		t.Fatalf("expected nil for missing document, got %+v", doc)
	}
}

func TestCreateClient_SurfacesErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors":[{"message":"Access denied"}]}`))
	}))
	defer srv.Close()

	c := New(testLogger(t), srv.URL, "")
	if _, err := c.CreateClient(context.Background(), typesClient("n", "p")); err == nil {
		t.Fatalf("expected error to surface on write path")
	}
}

func TestCreateClient_ReturnsPersistedLead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables struct {
				Data map[string]interface{} `json:"data"`
			} `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Variables.Data["name"] != "Анна" || req.Variables.Data["phone"] != "+79990000000" {
			t.Errorf("unexpected input: %+v", req.Variables.Data)
		}
		if _, ok := req.Variables.Data["question"]; ok {
			t.Errorf("empty question should be omitted")
		}
		w.Write([]byte(`{"data":{"createClient":{"name":"Анна","phone":"+79990000000"}}}`))
	}))
	defer srv.Close()

	c := New(testLogger(t), srv.URL, "")
	client, err := c.CreateClient(context.Background(), typesClient("Анна", "+79990000000"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if client.Name != "Анна" {
		t.Fatalf("unexpected client: %+v", client)
	}
}
