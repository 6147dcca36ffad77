package site

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neuroscale/neuroscale-site/internal/cache"
	"github.com/neuroscale/neuroscale-site/internal/fallback"
	"github.com/neuroscale/neuroscale-site/internal/logger"
	"github.com/neuroscale/neuroscale-site/internal/render"
	"github.com/neuroscale/neuroscale-site/internal/services"
)

// Handlers serves the public pages and the two JSON endpoints the pages
// call: lead submission and cache revalidation.
type Handlers struct {
	log              *logger.Logger
	content          services.SiteContentService
	leads            services.LeadService
	renderer         *render.Renderer
	store            cache.Store
	revalidateSecret string
}

func NewHandlers(
	log *logger.Logger,
	content services.SiteContentService,
	leads services.LeadService,
	renderer *render.Renderer,
	store cache.Store,
	revalidateSecret string,
) *Handlers {
	return &Handlers{
		log:              log.With("service", "SiteHandlers"),
		content:          content,
		leads:            leads,
		renderer:         renderer,
		store:            store,
		revalidateSecret: revalidateSecret,
	}
}

func (h *Handlers) servePage(c *gin.Context, path string, tags []string, build func() ([]byte, error)) {
	ctx := c.Request.Context()
	key := cache.PageKey(path)

	if page, ok := h.store.Get(ctx, key); ok {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
		return
	}

	page, err := build()
	if err != nil {
		h.log.Error("Page render failed", "path", path, "error", err)
		c.String(http.StatusInternalServerError, "Internal error")
		return
	}

	h.store.Set(ctx, key, page, services.ContentTTL, tags)
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// Home renders the landing page from the cached aggregate.
func (h *Handlers) Home(c *gin.Context) {
	h.servePage(c, "/", homePageTags(), func() ([]byte, error) {
		data := h.content.GetHome(c.Request.Context())
		return h.renderer.Home(data)
	})
}

func homePageTags() []string {
	return []string{
		"cms:title",
		"cms:contact",
		"cms:about",
		"cms:statistic",
		"cms:possibilitie",
		"cms:stage",
		"cms:case",
		"cms:faq",
	}
}

// Document renders a legal page; the built-in copy serves when the admin has
// not published one.
func (h *Handlers) Document(slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.servePage(c, "/"+slug, []string{"cms:document"}, func() ([]byte, error) {
			doc := h.content.GetDocument(c.Request.Context(), slug)
			if doc == nil {
				doc = fallback.Document(slug)
			}
			if doc == nil {
				return nil, errNotFound
			}
			return h.renderer.Document(doc)
		})
	}
}

// CreateClient relays a form submission: persist the lead, then notify the
// operator chat. Persistence failure is a 500, notification failure a 207.
func (h *Handlers) CreateClient(c *gin.Context) {
	var req services.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.leads.Submit(c.Request.Context(), req)
	if err != nil {
		if verr, ok := err.(*services.ValidationError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !result.TelegramOK {
		c.JSON(http.StatusMultiStatus, gin.H{
			"client":   result.Client,
			"telegram": gin.H{"ok": false, "error": result.TelegramError},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client":   result.Client,
		"telegram": gin.H{"ok": true, "messageId": result.TelegramMessage},
	})
}

type revalidateRequest struct {
	Tags  []string `json:"tags"`
	Paths []string `json:"paths"`
}

// Revalidate drops cache entries on demand. The secret check runs before any
// invalidation; a malformed body counts as an empty one.
func (h *Handlers) Revalidate(c *gin.Context) {
	if c.Query("secret") != h.revalidateSecret {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req revalidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = revalidateRequest{}
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}
	if req.Paths == nil {
		req.Paths = []string{}
	}

	ctx := c.Request.Context()
	for _, tag := range req.Tags {
		h.store.InvalidateTag(ctx, tag)
	}
	for _, path := range req.Paths {
		h.store.Invalidate(ctx, cache.PageKey(path))
	}

	h.log.Info("Cache revalidated", "tags", req.Tags, "paths", req.Paths)
	c.JSON(http.StatusOK, gin.H{"ok": true, "tags": req.Tags, "paths": req.Paths})
}
