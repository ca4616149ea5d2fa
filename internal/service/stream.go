package service

import (
	"context"
	"time"

	"github.com/Lalithkumar18-lk/Ai/internal/catalog"
	"github.com/Lalithkumar18-lk/Ai/internal/models"
)

type StreamSummary struct {
	Events    []map[string]any `json:"events"`
	Requested int              `json:"requested"`
	Created   []models.Case    `json:"created"`
	Cancelled bool             `json:"cancelled"`
	ElapsedMs int64            `json:"elapsed_ms"`
}

// SimulateStream creates n live cases, pausing StreamPause before each one.
// A cancelled context stops the stream and keeps what was already created.
func (d *Desk) SimulateStream(ctx context.Context, n int) (StreamSummary, error) {
	summary := StreamSummary{Requested: n, Created: []models.Case{}}
	start := time.Now()
	summary.Events = append(summary.Events, map[string]any{
		"type":    "stream_start",
		"message": "Streaming live case data",
		"count":   n,
		"time":    time.Now().UTC(),
	})

	for i := 0; i < n; i++ {
		if err := pause(ctx, d.StreamPause); err != nil {
			summary.Cancelled = true
			break
		}
		c, err := d.Create(ctx, d.Generator.Next(catalog.SourceLiveStream))
		if err != nil {
			return summary, err
		}
		summary.Created = append(summary.Created, c)
		summary.Events = append(summary.Events, map[string]any{
			"type":    "live_case",
			"message": "Live case added: " + c.Title,
			"case_id": c.ID,
			"time":    time.Now().UTC(),
		})
	}

	summary.ElapsedMs = time.Since(start).Milliseconds()
	summary.Events = append(summary.Events, map[string]any{
		"type":       "stream_end",
		"created":    len(summary.Created),
		"cancelled":  summary.Cancelled,
		"elapsed_ms": summary.ElapsedMs,
		"time":       time.Now().UTC(),
	})
	d.Logger.Info().Int("requested", n).Int("created", len(summary.Created)).Bool("cancelled", summary.Cancelled).Msg("live stream finished")
	return summary, nil
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
