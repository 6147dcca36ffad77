package events

// Op is the mutation kind that produced a content event.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// ContentEvent is emitted after a content mutation commits. The write path
// only publishes; delivery is the dispatcher's problem.
type ContentEvent struct {
	Entity string
	Op     Op
}

// Publisher decouples the mutation handlers from notification delivery.
type Publisher interface {
	Publish(ev ContentEvent)
}

// Target is the set of site cache entries a content type renders into.
type Target struct {
	Tags  []string
	Paths []string
}

// targets mirrors the per-list afterOperation hooks: every list maps to one
// cache tag and the pages that embed it. Points invalidate their parent's tag.
var targets = map[string]Target{
	"title":             {Tags: []string{"cms:title"}, Paths: []string{"/"}},
	"contact":           {Tags: []string{"cms:contact"}, Paths: []string{"/"}},
	"about":             {Tags: []string{"cms:about"}, Paths: []string{"/"}},
	"statistic":         {Tags: []string{"cms:statistic"}, Paths: []string{"/"}},
	"possibilitie":      {Tags: []string{"cms:possibilitie"}, Paths: []string{"/"}},
	"possibilitiePoint": {Tags: []string{"cms:possibilitie"}, Paths: []string{"/"}},
	"stage":             {Tags: []string{"cms:stage"}, Paths: []string{"/"}},
	"stagePoint":        {Tags: []string{"cms:stage"}, Paths: []string{"/"}},
	"case":              {Tags: []string{"cms:case"}, Paths: []string{"/"}},
	"faq":               {Tags: []string{"cms:faq"}, Paths: []string{"/"}},
	"document":          {Tags: []string{"cms:document"}, Paths: []string{"/privacy", "/consent"}},
}

// TargetFor returns the invalidation target for an entity. Entities without
// a cached view (clients, users) have none.
func TargetFor(entity string) (Target, bool) {
	t, ok := targets[entity]
	return t, ok
}

// ContentTags lists every cache tag the landing aggregate is built from, so
// the cached aggregate drops whenever any of its source lists changes.
func ContentTags() []string {
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
