package ui

import (
	"bytes"
	"log"
	"net/http"

	"showcase/domain/page"

	"github.com/gin-gonic/gin"
)

type navItem struct {
	Label  string
	Path   string
	Active bool
}

// pageData builds the data every page template receives: the sidebar, the
// active page and its title
func (s *Server) pageData(current page.Page, extra gin.H) gin.H {
	nav := make([]navItem, 0, len(page.All()))
	for _, p := range page.All() {
		nav = append(nav, navItem{Label: p.Label(), Path: p.Path(), Active: p == current})
	}

	data := gin.H{
		"Nav":     nav,
		"Current": current.Label(),
		"Title":   current.Title(),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// renderTemplate executes a template with the given data
func (s *Server) renderTemplate(c *gin.Context, status int, templateName string, data gin.H) {
	// First render to a buffer to catch any errors before writing to response
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		log.Printf("[Server] Template error for %s: %v", templateName, err)
		log.Printf("[Server] Template data keys: %v", getMapKeys(data))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Template rendering failed"})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(status)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		log.Printf("[Server] Error writing template response: %v", err)
	}
}

// Helper function to get map keys for logging
func getMapKeys(m gin.H) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
