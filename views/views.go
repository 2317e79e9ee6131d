// Package views holds the HTML pages rendered by the handlers.
package views

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

// Page template names.
const (
	Index       = "index.html"
	Profile     = "profile.html"
	Destination = "destination.html"
	Tickets     = "tickets.html"
	AddTicket   = "add-ticket.html"
	EditTicket  = "edit-ticket.html"
	Detail      = "detail.html"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// Parse loads every embedded page together with the shared layout blocks.
func Parse() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}

// Install sets the parsed pages as the engine's HTML renderer.
func Install(r *gin.Engine) error {
	tmpl, err := Parse()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)
	return nil
}
