package fallback

import (
	"github.com/neuroscale/neuroscale-site/internal/types"
)

// SlotKey names a landing section whose headline copy comes from a Title
// record. The renderer only ever looks titles up through these keys, so a
// typo in content can't silently drop a section.
type SlotKey string

const (
	SlotHero         SlotKey = "hero"
	SlotAbout        SlotKey = "about"
	SlotPossibilitie SlotKey = "possibilitie"
	SlotStage        SlotKey = "stage"
	SlotCase         SlotKey = "case"
	SlotFaq          SlotKey = "faq"
	SlotForm         SlotKey = "form"
)

// Slots lists every known slot in page order.
var Slots = []SlotKey{
	SlotHero,
	SlotAbout,
	SlotPossibilitie,
	SlotStage,
	SlotCase,
	SlotFaq,
	SlotForm,
}

// ParseSlot maps a raw title name to its slot key.
func ParseSlot(name string) (SlotKey, bool) {
	for _, slot := range Slots {
		if string(slot) == name {
			return slot, true
		}
	}
	return "", false
}

// Collections substitutes the static fallback for every collection the
// content service returned empty. A section never renders empty.
func Collections(data types.HomeData) types.HomeData {
	if len(data.Titles) == 0 {
		data.Titles = titlesFallback
	}
	if len(data.Contacts) == 0 {
		data.Contacts = contactsFallback
	}
	if len(data.Abouts) == 0 {
		data.Abouts = aboutsFallback
	}
	if len(data.Statistics) == 0 {
		data.Statistics = statisticsFallback
	}
	if len(data.Possibilities) == 0 {
		data.Possibilities = possibilitiesFallback
	}
	if len(data.Stages) == 0 {
		data.Stages = stagesFallback
	}
	if len(data.Cases) == 0 {
		data.Cases = casesFallback
	}
	if len(data.Faqs) == 0 {
		data.Faqs = faqsFallback
	}
	return data
}

// TitleFor resolves the headline for a slot: first matching record wins,
// otherwise the slot's built-in default.
func TitleFor(titles []types.Title, slot SlotKey) types.Title {
	for _, t := range titles {
		if t.Name == string(slot) {
			return t
		}
	}
	return slotDefaults[slot]
}
