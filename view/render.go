// Package view renders the portfolio page: header, about, skills and footer.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"join": strings.Join,
}).ParseFS(templatesFS, "templates/*.html"))

// Render writes the full HTML document for p to w. Nothing is written when
// the template fails.
func Render(w io.Writer, p Page) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "layout.html", p); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static returns the embedded stylesheet tree, rooted so that "site.css" is
// at the top level.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
