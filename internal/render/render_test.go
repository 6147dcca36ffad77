package render

import (
	"strings"
	"testing"

	"github.com/neuroscale/neuroscale-site/internal/fallback"
	"github.com/neuroscale/neuroscale-site/internal/types"
)

func TestHome_EmptyAggregateRendersFallbacks(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("renderer init: %v", err)
	}

	page, err := r.Home(types.EmptyHomeData())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(page)

	// Every section renders with its fallback headline in place.
	for _, want := range []string{
		"Получите консультацию",
		"25+ лет опыта в маркетинге и продажах",
		"Часто задаваемые вопросы",
		"/privacy",
		"/consent",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in rendered page", want)
		}
	}
}

func TestHome_AdminContentWinsOverFallback(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("renderer init: %v", err)
	}

	data := types.EmptyHomeData()
	data.Titles = []types.Title{{Name: "hero", Title: "Свой заголовок", Details: "Кнопка"}}

	page, err := r.Home(data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(page)
	if !strings.Contains(html, "Свой заголовок") {
		t.Fatalf("expected admin hero title in page")
	}
	if !strings.Contains(html, "Кнопка") {
		t.Fatalf("expected admin cta label in page")
	}
}

func TestHome_EscapesContent(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("renderer init: %v", err)
	}

	data := types.EmptyHomeData()
	data.Titles = []types.Title{{Name: "hero", Title: "<script>alert(1)</script>"}}

	page, err := r.Home(data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(page), "<script>alert(1)</script>") {
		t.Fatalf("content not escaped")
	}
}

func TestDocument_RendersFallbackLegalPage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("renderer init: %v", err)
	}

	doc := fallback.Document("privacy")
	page, err := r.Document(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(page)
	for _, want := range []string{
		"Политика конфиденциальности",
		"<h2>1. Общие положения</h2>",
		"Дата последнего обновления: 15.01.2025",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in rendered document", want)
		}
	}
}

func TestBuildHomeView_ResolvesEverySlot(t *testing.T) {
	view := BuildHomeView(types.EmptyHomeData())
	for name, title := range map[string]types.Title{
		"hero":         view.Hero,
		"about":        view.AboutTitle,
		"possibilitie": view.PossibilitieTitle,
		"stage":        view.StageTitle,
		"case":         view.CaseTitle,
		"faq":          view.FaqTitle,
		"form":         view.Form,
	} {
		if title.Title == "" {
			t.Fatalf("slot %q resolved to an empty headline", name)
		}
	}
}
