// Package web provides the dashboard's embedded templates and static assets.
package web

import (
	"embed"
	"io/fs"
)

// TemplatesFS contains the embedded HTML templates.
//
//go:embed all:templates
var TemplatesFS embed.FS

// StaticFS contains the embedded static assets (CSS, JS).
//
//go:embed all:static
var StaticFS embed.FS

// Templates returns the template tree rooted at templates/.
func Templates() (fs.FS, error) {
	return fs.Sub(TemplatesFS, "templates")
}

// Static returns the asset tree rooted at static/.
func Static() (fs.FS, error) {
	return fs.Sub(StaticFS, "static")
}
