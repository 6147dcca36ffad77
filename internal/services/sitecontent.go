package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/neuroscale/neuroscale-site/internal/cache"
	"github.com/neuroscale/neuroscale-site/internal/cmsclient"
	"github.com/neuroscale/neuroscale-site/internal/events"
	"github.com/neuroscale/neuroscale-site/internal/logger"
	"github.com/neuroscale/neuroscale-site/internal/types"
)

// ContentTTL bounds how stale a cached aggregate or rendered page can get
// when no invalidation webhook arrives.
const ContentTTL = 600 * time.Second

// SiteContentService serves the renderer's reads through the cache. Fetches
// never fail: worst case is the empty aggregate, which the fallback layer
// turns into static copy.
type SiteContentService interface {
	GetHome(ctx context.Context) types.HomeData
	GetDocument(ctx context.Context, slug string) *types.Document
}

type siteContentService struct {
	log   *logger.Logger
	cms   *cmsclient.Client
	store cache.Store
}

func NewSiteContentService(log *logger.Logger, cms *cmsclient.Client, store cache.Store) SiteContentService {
	return &siteContentService{
		log:   log.With("service", "SiteContentService"),
		cms:   cms,
		store: store,
	}
}

func (s *siteContentService) GetHome(ctx context.Context) types.HomeData {
	if raw, ok := s.store.Get(ctx, cache.HomeKey); ok {
		var data types.HomeData
		if err := json.Unmarshal(raw, &data); err == nil {
			return data
		}
		s.log.Warn("Dropping corrupt cached home aggregate")
		s.store.Invalidate(ctx, cache.HomeKey)
	}

	data := s.cms.FetchHome(ctx)
	if raw, err := json.Marshal(data); err == nil {
		s.store.Set(ctx, cache.HomeKey, raw, ContentTTL, events.ContentTags())
	}
	return data
}

func (s *siteContentService) GetDocument(ctx context.Context, slug string) *types.Document {
	key := cache.DocumentKey(slug)
	if raw, ok := s.store.Get(ctx, key); ok {
		var doc types.Document
		if err := json.Unmarshal(raw, &doc); err == nil {
			return &doc
		}
		s.log.Warn("Dropping corrupt cached document", "slug", slug)
		s.store.Invalidate(ctx, key)
	}

	doc := s.cms.FetchDocument(ctx, slug)
	if doc == nil {
		// Misses are not cached: the admin may publish the document any
		// moment and the fallback render is cheap.
		return nil
	}
	if raw, err := json.Marshal(doc); err == nil {
		s.store.Set(ctx, key, raw, ContentTTL, []string{"cms:document"})
	}
	return doc
}
