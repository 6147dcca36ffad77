package types

// HomeData is the aggregate the landing page renders from. One query on the
// content service fills it; the site caches it as a unit.
type HomeData struct {
	Titles        []Title        `json:"titles"`
	Contacts      []Contact      `json:"contacts"`
	Abouts        []About        `json:"abouts"`
	Statistics    []Statistic    `json:"statistics"`
	Possibilities []Possibilitie `json:"possibilities"`
	Stages        []Stage        `json:"stages"`
	Cases         []Case         `json:"cases"`
	Faqs          []Faq          `json:"faqs"`
}

// EmptyHomeData is the explicit fail-open aggregate: every list present and
// empty, so callers can substitute static fallbacks instead of failing.
func EmptyHomeData() HomeData {
	return HomeData{
		Titles:        []Title{},
		Contacts:      []Contact{},
		Abouts:        []About{},
		Statistics:    []Statistic{},
		Possibilities: []Possibilitie{},
		Stages:        []Stage{},
		Cases:         []Case{},
		Faqs:          []Faq{},
	}
}
