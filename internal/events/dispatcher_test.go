package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/neuroscale/neuroscale-site/internal/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init: %v", err)
	}
	return log
}

func TestDispatcher_DeliversTagsAndPaths(t *testing.T) {
	type payload struct {
		Tags  []string `json:"tags"`
		Paths []string `json:"paths"`
	}
	received := make(chan payload, 1)
	secrets := make(chan string, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/revalidate" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		secrets <- r.URL.Query().Get("secret")
		var p payload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("decode body: %v", err)
		}
		received <- p
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewRevalidateDispatcher(testLogger(t), srv.URL, "s3cret&chars")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	d.Publish(ContentEvent{Entity: "faq", Op: OpUpdate})

	select {
	case p := <-received:
		if !reflect.DeepEqual(p.Tags, []string{"cms:faq"}) {
			t.Fatalf("unexpected tags: %v", p.Tags)
		}
		if !reflect.DeepEqual(p.Paths, []string{"/"}) {
			t.Fatalf("unexpected paths: %v", p.Paths)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no delivery within deadline")
	}
	if got := <-secrets; got != "s3cret&chars" {
		t.Fatalf("secret not preserved, got %q", got)
	}
}

func TestDispatcher_SkipsEntitiesWithoutTarget(t *testing.T) {
	calls := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls <- struct{}{}
	}))
	defer srv.Close()

	d := NewRevalidateDispatcher(testLogger(t), srv.URL, "s")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	d.Publish(ContentEvent{Entity: "client", Op: OpCreate})

	select {
	case <-calls:
		t.Fatalf("expected no delivery for client events")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestDispatcher_PublishNeverBlocks(t *testing.T) {
	// No Run loop consuming: the queue fills and further events drop.
	d := NewRevalidateDispatcher(testLogger(t), "", "")
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			d.Publish(ContentEvent{Entity: "faq", Op: OpCreate})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("publish blocked on a full queue")
	}
}
