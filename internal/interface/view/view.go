// Package view renders the small HTML pages of the portal from embedded
// templates.
package view

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded template set for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))
}

// Page renders a named template with the given data.
func Page(c *gin.Context, status int, name string, data gin.H) {
	c.HTML(status, name, data)
}

// ErrorPage renders the generic message page with a back link.
func ErrorPage(c *gin.Context, status int, message, backHref, backLabel string) {
	c.HTML(status, "message.tmpl", gin.H{
		"Message":   message,
		"BackHref":  backHref,
		"BackLabel": backLabel,
	})
}

// LoginRequired renders the "please log in" view used whenever a guarded
// route is hit without a usable session. Absent and unauthenticated
// sessions get the identical response.
func LoginRequired(c *gin.Context) {
	c.HTML(http.StatusUnauthorized, "login_required.tmpl", gin.H{})
}
