package handler

import (
	"embed"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// StaticFS holds the stylesheet served under /static.
//
//go:embed static
var StaticFS embed.FS

// Renderer implements echo.Renderer over the embedded screen templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"longDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("January 2, 2006")
		},
		"upper": strings.ToUpper,
	}
	return &Renderer{
		templates: template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")),
	}
}

// Render executes the named template.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// page is the data shared by every screen: nav state and popped flashes.
type page struct {
	LoggedIn bool
	Admin    bool
	Flashes  []string
}
