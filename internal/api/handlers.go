package api

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"math"
	"net/http"
	"path"
	"strconv"
	"strings"

	"showcase/adapters/chart"
	"showcase/domain/calculator"
	"showcase/domain/page"
	"showcase/domain/series"
	"showcase/internal/errors"

	"github.com/shopspring/decimal"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 500
	multipartOverhead    = 1 << 20
)

type pageInfo struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Title string `json:"title"`
}

type textRequest struct {
	Text string `json:"text"`
}

type calculateRequest struct {
	A         decimal.Decimal `json:"a"`
	B         decimal.Decimal `json:"b"`
	Operation string          `json:"operation"`
}

// calculateResponse carries the exact value plus a float64 rendition,
// which is null when the value is beyond the float64 range
type calculateResponse struct {
	calculator.Result
	Float   *float64 `json:"float"`
	Display string   `json:"display"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handlePages(w http.ResponseWriter, r *http.Request) {
	pages := page.All()
	infos := make([]pageInfo, 0, len(pages))
	for _, p := range pages {
		infos = append(infos, pageInfo{Label: p.Label(), Path: p.Path(), Title: p.Title()})
	}
	writeJSON(w, http.StatusOK, infos)
}

func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	style, err := series.ParseStyle(r.URL.Query().Get("style"))
	if err != nil {
		writeError(w, err)
		return
	}

	figure, err := h.service.Chart(r.Context(), style)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, figure)
}

// handleChartImage serves /chart.svg and /chart.png
func (h *Handler) handleChartImage(w http.ResponseWriter, r *http.Request) {
	format, err := chart.ParseFormat(strings.TrimPrefix(path.Ext(r.URL.Path), "."))
	if err != nil {
		writeError(w, err)
		return
	}
	style, err := series.ParseStyle(r.URL.Query().Get("style"))
	if err != nil {
		writeError(w, err)
		return
	}

	figure, err := h.service.Chart(r.Context(), style)
	if err != nil {
		writeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := figure.Render(&buf, format); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) handleText(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidInput("request body must be JSON with a text field"))
		return
	}

	report, ok := h.service.AnalyzeText(r.Context(), req.Text)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleFile(w http.ResponseWriter, r *http.Request) {
	limit := h.service.Config().Upload.MaxBytes
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)

	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			writeError(w, errors.PayloadTooLarge(limit))
			return
		}
		writeError(w, errors.InvalidInput("expected a multipart form upload"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, errors.InvalidInput(`missing form field "file"`))
		return
	}
	defer file.Close()

	summary, err := h.service.AnalyzeFile(r.Context(), header.Filename, file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidInput("request body must be JSON with a, b and operation"))
		return
	}

	op, err := calculator.ParseOperation(req.Operation)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.service.Calculate(r.Context(), req.A, req.B, op)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := calculateResponse{Result: result, Display: result.Display()}
	if f := result.Float(); !math.IsInf(f, 0) && !math.IsNaN(f) {
		resp.Float = &f
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	limit := defaultActivityLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, errors.InvalidInput("limit must be a positive integer"))
			return
		}
		limit = parsed
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	entries, err := h.service.RecentActivity(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
