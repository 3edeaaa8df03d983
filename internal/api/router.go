// Package api serves the page operations as JSON.
package api

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"showcase/app"
	"showcase/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler holds the JSON endpoints
type Handler struct {
	service *app.ShowcaseService
}

// NewHandler creates the API handler set
func NewHandler(service *app.ShowcaseService) *Handler {
	return &Handler{service: service}
}

// NewRouter builds the chi router serving the JSON API at its root
func NewRouter(service *app.ShowcaseService) chi.Router {
	h := NewHandler(service)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/healthz", h.handleHealth)
	r.Get("/pages", h.handlePages)
	r.Get("/chart", h.handleChart)
	r.Get("/chart.svg", h.handleChartImage)
	r.Get("/chart.png", h.handleChartImage)
	r.Post("/text", h.handleText)
	r.Post("/files", h.handleFile)
	r.Post("/calculate", h.handleCalculate)
	r.Get("/activity", h.handleActivity)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errors.NotFound("endpoint "+r.URL.Path))
	})
	return r
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeJSON encodes before writing the header, so a value that cannot be
// encoded becomes a 500 instead of an empty response
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("[API] ERROR: failed to encode response: %v", err)
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(errorResponse{Error: "internal error", Code: errors.CodeInternalError})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[API] failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("[API] ERROR: %v", err)
		code = errors.CodeInternalError
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: code})
}
