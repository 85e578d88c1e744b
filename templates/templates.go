// Package templates embeds the HTML templates of the site.
package templates

import (
	"embed"
	"html/template"
	"time"
)

//go:embed *.tmpl
var files embed.FS

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format("2 Jan 2006")
	},
	"eqstr": func(a, b string) bool {
		return a == b
	},
}

// Load parses all templates, each one is addressed by its file name
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "*.tmpl")
}
