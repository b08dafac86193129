// Package views binds page view models to the embedded HTML templates.
package views

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/Dosada05/worldcup-hub/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const baseTemplate = "templates/base.html"

var ErrUnknownPage = errors.New("unknown page")

// Page identifies which template a view model is bound to.
type Page int

const (
	PageHome Page = iota + 1
	PageTournament
	PageWorldCupInfo
)

var pageFiles = map[Page]string{
	PageHome:         "templates/home.html",
	PageTournament:   "templates/tournament.html",
	PageWorldCupInfo: "templates/worldcup-2026-info.html",
}

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageTournament:
		return "tournament"
	case PageWorldCupInfo:
		return "worldcup-2026-info"
	default:
		return fmt.Sprintf("page(%d)", int(p))
	}
}

var funcs = template.FuncMap{
	"longDate": models.FormatLongDate,
	"join":     strings.Join,
}

// Renderer holds one parsed template set per page. It is read-only after New
// and safe for concurrent use.
type Renderer struct {
	pages map[Page]*template.Template
}

// New parses the templates embedded in the binary.
func New() (*Renderer, error) {
	return NewFromFS(templateFS)
}

// NewFromFS parses templates from fsys. Every page is parsed together with
// the base layout; a malformed or missing file fails construction.
func NewFromFS(fsys fs.FS) (*Renderer, error) {
	r := &Renderer{pages: make(map[Page]*template.Template, len(pageFiles))}
	for page, file := range pageFiles {
		tmpl, err := template.New("base.html").
			Funcs(funcs).
			Option("missingkey=error").
			ParseFS(fsys, baseTemplate, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render executes the page's layout with data into w.
func (r *Renderer) Render(w io.Writer, page Page, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("render %s: %w", page, ErrUnknownPage)
	}
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	return nil
}
