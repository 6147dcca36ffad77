package events

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/neuroscale/neuroscale-site/internal/logger"
)

// RevalidateDispatcher delivers content events to the site's revalidation
// endpoint. Delivery is best-effort: the mutation has already committed, so
// a failed or dropped notification is logged and forgotten; the cache
// self-heals on its time-based expiry.
type RevalidateDispatcher struct {
	log     *logger.Logger
	siteURL string
	secret  string
	client  *http.Client
	events  chan ContentEvent
}

func NewRevalidateDispatcher(log *logger.Logger, siteURL, secret string) *RevalidateDispatcher {
	return &RevalidateDispatcher{
		log:     log.With("service", "RevalidateDispatcher"),
		siteURL: siteURL,
		secret:  secret,
		client:  &http.Client{Timeout: 10 * time.Second},
		events:  make(chan ContentEvent, 64),
	}
}

// Publish enqueues without blocking the write path. A full queue drops the
// event rather than stalling a mutation.
func (d *RevalidateDispatcher) Publish(ev ContentEvent) {
	select {
	case d.events <- ev:
	default:
		d.log.Warn("Revalidation queue full, dropping event", "entity", ev.Entity, "op", ev.Op)
	}
}

// Run consumes events until the context is cancelled.
func (d *RevalidateDispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-d.events:
			d.deliver(ctx, ev)
		}
	}
}

func (d *RevalidateDispatcher) deliver(ctx context.Context, ev ContentEvent) {
	target, ok := TargetFor(ev.Entity)
	if !ok {
		return
	}
	if d.siteURL == "" {
		d.log.Debug("SITE_URL not configured, skipping revalidation", "entity", ev.Entity)
		return
	}
	if err := d.post(ctx, target); err != nil {
		d.log.Warn("Revalidation notification failed", "entity", ev.Entity, "op", ev.Op, "error", err)
		return
	}
	d.log.Debug("Revalidation notified", "entity", ev.Entity, "op", ev.Op, "tags", target.Tags, "paths", target.Paths)
}

func (d *RevalidateDispatcher) post(ctx context.Context, target Target) error {
	endpoint := fmt.Sprintf("%s/api/revalidate?secret=%s", d.siteURL, url.QueryEscape(d.secret))
	body, err := json.Marshal(map[string][]string{
		"tags":  target.Tags,
		"paths": target.Paths,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("revalidate endpoint returned %d", resp.StatusCode)
	}
	return nil
}
