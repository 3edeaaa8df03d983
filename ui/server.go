package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"showcase/app"
	"showcase/domain/page"
	"showcase/internal/api"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html static/*
var embeddedFiles embed.FS

// Server is the page server: one handler per menu page plus the JSON API
// and the progress stream
type Server struct {
	router    *gin.Engine
	service   *app.ShowcaseService
	templates *template.Template
	progress  *ProgressStream
	intro     template.HTML
}

// pageHandler serves one menu page; post is nil for pages without a form
type pageHandler struct {
	get  gin.HandlerFunc
	post gin.HandlerFunc
}

// NewServer creates a new web server instance
func NewServer(service *app.ShowcaseService) (*Server, error) {
	cfg := service.Config()

	templates, err := template.New("").Funcs(templateFuncs()).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:    gin.Default(),
		service:   service,
		templates: templates,
		progress:  NewProgressStream(service, cfg.Progress.MaxStreams),
		intro:     renderMarkdown(homeIntro),
	}

	if err := s.setupRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

// pageHandlers maps every menu page to its handler
func (s *Server) pageHandlers() map[page.Page]pageHandler {
	return map[page.Page]pageHandler{
		page.Home:              {get: s.handleHome},
		page.DataVisualization: {get: s.handleVisualization},
		page.TextAnalysis:      {get: s.handleTextForm, post: s.handleTextAnalysis},
		page.FileUpload:        {get: s.handleFileForm, post: s.handleFileUpload},
		page.Calculator:        {get: s.handleCalculatorForm, post: s.handleCalculate},
	}
}

func (s *Server) setupRoutes() error {
	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		return fmt.Errorf("failed to create static filesystem: %w", err)
	}
	s.router.StaticFS("/static", http.FS(staticFS))

	handlers := s.pageHandlers()
	for _, p := range page.All() {
		h, ok := handlers[p]
		if !ok || h.get == nil {
			return fmt.Errorf("no handler registered for page %q", p.Label())
		}
		s.router.GET(p.Path(), h.get)
		if h.post != nil {
			s.router.POST(p.Path(), h.post)
		}
	}

	s.router.GET("/navigate", s.handleNavigate)
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/events/progress", s.progress.HandleSSE)

	apiHandler := gin.WrapH(http.StripPrefix("/api", api.NewRouter(s.service)))
	s.router.Any("/api/*path", apiHandler)

	log.Printf("[Server] Registered %d pages", len(handlers))
	return nil
}

// Handler exposes the router, for tests and custom listeners
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"add":    func(a, b int) int { return a + b },
		"fixed2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}
}
