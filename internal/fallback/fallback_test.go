package fallback

import (
	"testing"

	"github.com/neuroscale/neuroscale-site/internal/types"
)

func TestCollections_EmptyListsGetStaticContent(t *testing.T) {
	data := Collections(types.EmptyHomeData())

	if len(data.Titles) == 0 {
		t.Fatalf("expected fallback titles")
	}
	if len(data.Contacts) == 0 {
		t.Fatalf("expected fallback contacts")
	}
	if len(data.Abouts) == 0 {
		t.Fatalf("expected fallback abouts")
	}
	if len(data.Statistics) == 0 {
		t.Fatalf("expected fallback statistics")
	}
	if len(data.Possibilities) == 0 {
		t.Fatalf("expected fallback possibilities")
	}
	if len(data.Stages) == 0 {
		t.Fatalf("expected fallback stages")
	}
	if len(data.Cases) == 0 {
		t.Fatalf("expected fallback cases")
	}
	if len(data.Faqs) == 0 {
		t.Fatalf("expected fallback faqs")
	}
}

func TestCollections_RealContentWins(t *testing.T) {
	in := types.EmptyHomeData()
	in.Faqs = []types.Faq{{Question: "q", Answer: "a"}}

	out := Collections(in)
	if len(out.Faqs) != 1 || out.Faqs[0].Question != "q" {
		t.Fatalf("expected admin content to survive, got %v", out.Faqs)
	}
	if len(out.Abouts) == 0 {
		t.Fatalf("expected other empty lists to still fall back")
	}
}

func TestTitleFor_MatchesSlotAndDefaults(t *testing.T) {
	titles := []types.Title{
		{Name: "hero", Title: "Custom hero"},
		{Name: "faq", Title: "Custom faq"},
	}

	if got := TitleFor(titles, SlotHero); got.Title != "Custom hero" {
		t.Fatalf("expected custom hero, got %q", got.Title)
	}
	if got := TitleFor(titles, SlotForm); got.Title == "" {
		t.Fatalf("expected built-in default for unmatched slot")
	}
}

func TestTitleFor_EverySlotHasDefault(t *testing.T) {
	for _, slot := range Slots {
		if got := TitleFor(nil, slot); got.Title == "" {
			t.Fatalf("slot %q has no default title", slot)
		}
	}
}

func TestParseSlot(t *testing.T) {
	if slot, ok := ParseSlot("possibilitie"); !ok || slot != SlotPossibilitie {
		t.Fatalf("expected possibilitie slot, got %q ok=%v", slot, ok)
	}
	if _, ok := ParseSlot("banner"); ok {
		t.Fatalf("expected unknown slot to be rejected")
	}
}

func TestDocument_KnownSlugsHaveContent(t *testing.T) {
	for _, slug := range []string{"privacy", "consent"} {
		doc := Document(slug)
		if doc == nil {
			t.Fatalf("expected fallback document for %q", slug)
		}
		if doc.Title == "" || len(doc.Content) == 0 {
			t.Fatalf("fallback document %q incomplete", slug)
		}
	}
	if Document("terms") != nil {
		t.Fatalf("expected nil for unknown slug")
	}
}
