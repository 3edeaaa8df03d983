package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"

	"showcase/adapters/chart"
	"showcase/adapters/tabular"
	"showcase/domain/activity"
	"showcase/domain/calculator"
	"showcase/domain/page"
	"showcase/domain/progress"
	"showcase/domain/series"
	"showcase/domain/textstats"
	"showcase/internal"
	"showcase/internal/config"
	"showcase/internal/errors"
	"showcase/ports"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
)

// ShowcaseService runs the work behind every page and records it in the
// activity log
type ShowcaseService struct {
	config   *config.Config
	analyzer textstats.SentimentAnalyzer
	activity ports.ActivityRepository
	source   rand.Source
}

// NewShowcaseService creates the page service
func NewShowcaseService(cfg *config.Config, analyzer textstats.SentimentAnalyzer, activityRepo ports.ActivityRepository) *ShowcaseService {
	return &ShowcaseService{
		config:   cfg,
		analyzer: analyzer,
		activity: activityRepo,
		source:   &lockedSource{src: series.NewSource(cfg.Chart.Seed)},
	}
}

// Config exposes the settings the service was built with
func (s *ShowcaseService) Config() *config.Config {
	return s.config
}

// Chart draws a fresh random walk in the requested style
func (s *ShowcaseService) Chart(ctx context.Context, style series.Style) (chart.Figure, error) {
	walk, err := series.Generate(s.source, s.config.Chart.Points, s.config.Chart.Start)
	if err != nil {
		return chart.Figure{}, errors.Wrap(err, "failed to generate series")
	}

	figure := chart.NewFigure(style, walk)
	values := walk.Values()
	s.record(ctx, page.DataVisualization, fmt.Sprintf("%s chart of %d points from %.2f to %.2f",
		style, walk.Len(), floats.Min(values), floats.Max(values)))
	return figure, nil
}

// AnalyzeText scores text. ok is false when the text is blank.
func (s *ShowcaseService) AnalyzeText(ctx context.Context, text string) (textstats.Report, bool) {
	report, ok := textstats.Analyze(s.analyzer, text, s.config.Text.TopWords)
	if !ok {
		return report, false
	}

	s.record(ctx, page.TextAnalysis, fmt.Sprintf("%d words, polarity %.2f, subjectivity %.2f",
		report.WordCount, report.Polarity, report.Subjectivity))
	return report, true
}

// AnalyzeFile parses an upload and summarizes it. Uploads over the
// configured size are rejected before parsing.
func (s *ShowcaseService) AnalyzeFile(ctx context.Context, fileName string, r io.Reader) (*tabular.Summary, error) {
	limit := s.config.Upload.MaxBytes
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	if n > limit {
		return nil, errors.PayloadTooLarge(limit)
	}

	table, err := tabular.Read(fileName, buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", fileName)
	}

	summary := tabular.Summarize(table, s.config.Upload.PreviewRows)
	s.record(ctx, page.FileUpload, fmt.Sprintf("%s: %d rows x %d columns", fileName, summary.Rows, summary.Columns))
	return summary, nil
}

// Calculate applies op to a and b
func (s *ShowcaseService) Calculate(ctx context.Context, a, b decimal.Decimal, op calculator.Operation) (calculator.Result, error) {
	result, err := calculator.Calculate(a, b, op)
	if err != nil {
		s.record(ctx, page.Calculator, fmt.Sprintf("%s failed: %s", op, errors.UserMessage(err)))
		return calculator.Result{}, err
	}

	s.record(ctx, page.Calculator, fmt.Sprintf("%s %s %s = %s", a, op, b, result.Value))
	return result, nil
}

// ProgressDemo returns the configured home page demo
func (s *ShowcaseService) ProgressDemo() progress.Demo {
	return progress.Demo{
		Steps:    s.config.Progress.Steps,
		Interval: s.config.Progress.Interval,
	}
}

// RunProgress runs the demo, emitting every tick, and records completed runs
func (s *ShowcaseService) RunProgress(ctx context.Context, emit func(progress.Tick) error) error {
	demo := s.ProgressDemo()
	if err := demo.Run(ctx, emit); err != nil {
		return err
	}
	s.record(ctx, page.Home, fmt.Sprintf("progress demo: %d steps", demo.Steps))
	return nil
}

// RecentActivity returns the newest activity entries
func (s *ShowcaseService) RecentActivity(ctx context.Context, limit int) ([]activity.Entry, error) {
	if s.activity == nil {
		return []activity.Entry{}, nil
	}
	entries, err := s.activity.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activity")
	}
	return entries, nil
}

// record never fails the caller; activity is best effort
func (s *ShowcaseService) record(ctx context.Context, p page.Page, summary string) {
	if s.activity == nil {
		return
	}
	if err := s.activity.Record(ctx, activity.NewEntry(p, summary)); err != nil {
		internal.DefaultLogger.Warn("[ShowcaseService] failed to record %s activity: %v", p, err)
	}
}

// lockedSource serializes access to a source shared by concurrent requests
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (l *lockedSource) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Uint64()
}
