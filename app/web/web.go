// Package web holds the embedded HTML templates of the dashboard.
package web

import (
	"embed"
	"html/template"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	// pct renders a [0,1] fraction as a CSS percentage value
	"pct": func(f float64) string {
		return strconv.FormatFloat(f*100, 'f', 1, 64)
	},
}

// Templates parses the embedded templates; names are the file names
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
