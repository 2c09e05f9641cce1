// Package web renders a feed page as a static HTML document.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/Masterminds/sprig"
	humanize "github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"github.com/CrestNiraj12/netfeed/presenter"
)

//go:embed templates/*.html
var templateFS embed.FS

const feedTemplate = "feed"

// Page is the data handed to the feed template.
type Page struct {
	Feed    presenter.FeedPage
	Profile *presenter.ProfileCard
}

// Renderer writes feed pages as HTML.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{}

	// Post text is plain text; html/template escapes it.
	funcMap := sprig.FuncMap()
	funcMap["ago"] = ago

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		log.WithError(err).Error("error parsing templates")
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Render writes page to w.
func (r *Renderer) Render(w io.Writer, page Page) error {
	if err := r.tmpl.ExecuteTemplate(w, feedTemplate, page); err != nil {
		return fmt.Errorf("error rendering %s: %w", page.Feed.Heading, err)
	}
	return nil
}

// ago formats t relative to now, falling back to the raw server timestamp
// when it could not be parsed.
func ago(t time.Time, raw string) string {
	if t.IsZero() {
		return raw
	}
	return humanize.Time(t)
}
