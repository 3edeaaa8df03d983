package ui

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"showcase/app"
	"showcase/domain/progress"
	"showcase/internal"
	"showcase/internal/errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"
)

// ProgressStream serves the home page progress demo as Server-Sent Events.
// At most maxStreams demos run at once.
type ProgressStream struct {
	service *app.ShowcaseService
	slots   *semaphore.Weighted
	active  atomic.Int64
}

// NewProgressStream creates a stream handler allowing maxStreams concurrent demos
func NewProgressStream(service *app.ShowcaseService, maxStreams int64) *ProgressStream {
	return &ProgressStream{
		service: service,
		slots:   semaphore.NewWeighted(maxStreams),
	}
}

// ActiveStreams returns the number of demos currently running
func (s *ProgressStream) ActiveStreams() int64 {
	return s.active.Load()
}

// HandleSSE streams one "progress" event per step, then a "complete" event
func (s *ProgressStream) HandleSSE(c *gin.Context) {
	if !s.slots.TryAcquire(1) {
		err := errors.Unavailable("too many progress demos running, try again shortly")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errors.UserMessage(err), "code": errors.GetCode(err)})
		return
	}
	defer s.slots.Release(1)

	s.active.Add(1)
	defer s.active.Add(-1)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	ctx := c.Request.Context()
	var last progress.Tick
	err := s.service.RunProgress(ctx, func(tick progress.Tick) error {
		last = tick
		eventJSON, err := json.Marshal(tick)
		if err != nil {
			return err
		}
		internal.DefaultLogger.Debug("[Progress] step %d/%d", tick.Step, tick.Steps)
		c.SSEvent("progress", string(eventJSON))
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		internal.DefaultLogger.Info("[Progress] stream stopped at step %d/%d: %v", last.Step, last.Steps, err)
		return
	}

	c.SSEvent("complete", gin.H{"message": progress.CompletedMessage})
	c.Writer.Flush()
}
