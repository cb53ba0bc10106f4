package httpapi

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// loadTemplates parses the embedded page templates once at router setup.
func loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"formatDateTime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Jan 02, 2006 at 15:04")
		},
	}).ParseFS(templateFS, "templates/*.html"))
}
