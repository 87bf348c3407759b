// Package views renders the HTML pages of the listing. Each page is parsed
// together with layout.html and executed through it.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"

	"github.com/EO-DataHub/eodhp-user-listing/models"
)

const (
	PageIndex = "index"
	PageError = "error"

	layout = "layout.html"
)

//go:embed templates/*.html
var embedded embed.FS

// IndexData is passed to the index page.
type IndexData struct {
	Title string
	Users []models.User
}

// ErrorData is passed to the error page.
type ErrorData struct {
	Title string
	Error error
}

// Renderer holds the parsed page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the pages from dir, or from the embedded templates when dir is
// empty.
func New(dir string) (*Renderer, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, err
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageIndex, PageError} {
		tmpl, err := template.ParseFS(fsys, layout, page+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing page %q: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// HTML renders page into a buffer and only writes the response once the
// template has executed successfully. On error nothing has been written.
func (r *Renderer) HTML(w http.ResponseWriter, status int, page string, data interface{}) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("rendering page %q: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
