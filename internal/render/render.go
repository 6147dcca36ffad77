package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/neuroscale/neuroscale-site/internal/fallback"
	"github.com/neuroscale/neuroscale-site/internal/types"
)

// Renderer turns content aggregates into finished HTML pages. Fallback
// substitution happens here so every caller gets the same never-empty view.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("site").Parse(layoutTemplate + homeTemplate + documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// HomeView is the resolved landing page: collections backed by fallbacks and
// one headline per slot.
type HomeView struct {
	Hero              types.Title
	AboutTitle        types.Title
	PossibilitieTitle types.Title
	StageTitle        types.Title
	CaseTitle         types.Title
	FaqTitle          types.Title
	Form              types.Title
	Contacts          []types.Contact
	Abouts            []types.About
	Statistics        []types.Statistic
	Possibilities     []types.Possibilitie
	Stages            []types.Stage
	Cases             []types.Case
	Faqs              []types.Faq
}

// BuildHomeView applies collection fallbacks and resolves each slot title.
func BuildHomeView(data types.HomeData) HomeView {
	data = fallback.Collections(data)
	return HomeView{
		Hero:              fallback.TitleFor(data.Titles, fallback.SlotHero),
		AboutTitle:        fallback.TitleFor(data.Titles, fallback.SlotAbout),
		PossibilitieTitle: fallback.TitleFor(data.Titles, fallback.SlotPossibilitie),
		StageTitle:        fallback.TitleFor(data.Titles, fallback.SlotStage),
		CaseTitle:         fallback.TitleFor(data.Titles, fallback.SlotCase),
		FaqTitle:          fallback.TitleFor(data.Titles, fallback.SlotFaq),
		Form:              fallback.TitleFor(data.Titles, fallback.SlotForm),
		Contacts:          data.Contacts,
		Abouts:            data.Abouts,
		Statistics:        data.Statistics,
		Possibilities:     data.Possibilities,
		Stages:            data.Stages,
		Cases:             data.Cases,
		Faqs:              data.Faqs,
	}
}

func (r *Renderer) Home(data types.HomeData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "home", BuildHomeView(data)); err != nil {
		return nil, fmt.Errorf("Failed to render home: %w", err)
	}
	return buf.Bytes(), nil
}

// DocumentView is a legal page ready for the template: content already
// converted from the editor's node tree to HTML.
type DocumentView struct {
	Title       string
	Description string
	Content     template.HTML
	UpdatedAt   string
}

func buildDocumentView(doc *types.Document) DocumentView {
	view := DocumentView{
		Title:       doc.Title,
		Description: doc.Description,
		Content:     template.HTML(RichTextHTML([]byte(doc.Content))),
	}
	if !doc.UpdatedAt.IsZero() {
		view.UpdatedAt = doc.UpdatedAt.Format("02.01.2006")
	}
	return view
}

func (r *Renderer) Document(doc *types.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "document", buildDocumentView(doc)); err != nil {
		return nil, fmt.Errorf("Failed to render document: %w", err)
	}
	return buf.Bytes(), nil
}
