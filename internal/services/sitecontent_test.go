package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/neuroscale/neuroscale-site/internal/cache"
	"github.com/neuroscale/neuroscale-site/internal/cmsclient"
)

func TestGetHome_CachesAggregate(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"data":{"titles":[{"name":"hero","title":"Заголовок"}]}}`))
	}))
	defer srv.Close()

	store := cache.NewMemoryStore()
	svc := NewSiteContentService(testLogger(t), cmsclient.New(testLogger(t), srv.URL, ""), store)

	ctx := context.Background()
	first := svc.GetHome(ctx)
	second := svc.GetHome(ctx)

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected one upstream fetch, got %d", got)
	}
	if len(first.Titles) != 1 || len(second.Titles) != 1 {
		t.Fatalf("unexpected aggregates: %+v / %+v", first.Titles, second.Titles)
	}
}

func TestGetHome_TagInvalidationForcesRefetch(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"data":{"faqs":[{"question":"q","answer":"a"}]}}`))
	}))
	defer srv.Close()

	store := cache.NewMemoryStore()
	svc := NewSiteContentService(testLogger(t), cmsclient.New(testLogger(t), srv.URL, ""), store)

	ctx := context.Background()
	svc.GetHome(ctx)
	store.InvalidateTag(ctx, "cms:faq")
	svc.GetHome(ctx)

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected refetch after invalidation, got %d calls", got)
	}
}

func TestGetHome_FailureServesEmptyAggregate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	store := cache.NewMemoryStore()
	svc := NewSiteContentService(testLogger(t), cmsclient.New(testLogger(t), srv.URL, ""), store)

	data := svc.GetHome(context.Background())
	if data.Titles == nil || len(data.Titles) != 0 {
		t.Fatalf("expected empty aggregate on failure, got %+v", data.Titles)
	}
}

func TestGetDocument_CachesHitsButNotMisses(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			w.Write([]byte(`{"data":{"document":null}}`))
			return
		}
		w.Write([]byte(`{"data":{"document":{"slug":"privacy","title":"Политика"}}}`))
	}))
	defer srv.Close()

	store := cache.NewMemoryStore()
	svc := NewSiteContentService(testLogger(t), cmsclient.New(testLogger(t), srv.URL, ""), store)
	ctx := context.Background()

	if doc := svc.GetDocument(ctx, "privacy"); doc != nil {
		t.Fatalf("expected miss on first call")
	}
	if doc := svc.GetDocument(ctx, "privacy"); doc == nil || doc.Title != "Политика" {
		t.Fatalf("expected published document on second call")
	}
	// Third call is a cache hit.
	if doc := svc.GetDocument(ctx, "privacy"); doc == nil {
		t.Fatalf("expected cached document")
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected misses to skip the cache, got %d calls", got)
	}
}
