package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Lalithkumar18-lk/Ai/internal/ai"
	"github.com/Lalithkumar18-lk/Ai/internal/catalog"
	"github.com/Lalithkumar18-lk/Ai/internal/events"
	"github.com/Lalithkumar18-lk/Ai/internal/models"
	"github.com/Lalithkumar18-lk/Ai/internal/registry"
)

// Archive persists a copy of every mutated case. *db.Store implements it.
type Archive interface {
	SaveCase(ctx context.Context, c models.Case) error
}

// Desk is the case desk the HTTP layer talks to. Every mutation goes to the
// registry first; archive and events mirror the result and never undo it.
type Desk struct {
	Registry    *registry.Registry
	Archive     Archive
	Events      events.Publisher
	Responder   ai.Responder
	Generator   *catalog.Generator
	Catalog     catalog.Catalog
	StreamPause time.Duration
	Logger      zerolog.Logger
}

func (d *Desk) Schema() registry.Schema {
	return d.Registry.Schema()
}

func (d *Desk) Get(id string) (models.Case, error) {
	return d.Registry.Get(id)
}

func (d *Desk) Filter(f registry.Filter) []models.Case {
	return d.Registry.Filter(f)
}

func (d *Desk) Aggregate(metric registry.Metric) (registry.Aggregate, error) {
	return d.Registry.Aggregate(metric)
}

func (d *Desk) Create(ctx context.Context, in registry.NewCase) (models.Case, error) {
	c, err := d.Registry.Create(in)
	if err != nil {
		return models.Case{}, err
	}
	d.Logger.Info().Str("case_id", c.ID).Str("priority", c.Priority).Str("reported_by", c.ReportedBy).Msg("case created")
	d.mirror(ctx, events.TypeCreated, c)
	return c, nil
}

func (d *Desk) UpdateStatus(ctx context.Context, id, status string) (models.Case, error) {
	c, err := d.Registry.UpdateStatus(id, status)
	if err != nil {
		return models.Case{}, err
	}
	d.Logger.Info().Str("case_id", id).Str("status", status).Msg("case status updated")
	d.mirror(ctx, events.TypeStatusChanged, c)
	return c, nil
}

func (d *Desk) Assign(ctx context.Context, id, assignee string) (models.Case, error) {
	c, err := d.Registry.Assign(id, assignee)
	if err != nil {
		return models.Case{}, err
	}
	d.mirror(ctx, events.TypeAssigned, c)
	return c, nil
}

func (d *Desk) RecordResolution(ctx context.Context, id, text string) (models.Case, error) {
	c, err := d.Registry.RecordResolution(id, text)
	if err != nil {
		return models.Case{}, err
	}
	eventType := events.TypeStatusChanged
	if c.Status == d.Schema().ResolvedStatus {
		eventType = events.TypeResolved
	}
	d.mirror(ctx, eventType, c)
	return c, nil
}

func (d *Desk) AppendAction(ctx context.Context, id string, entry registry.ActionEntry) (models.Case, error) {
	c, err := d.Registry.AppendAction(id, entry)
	if err != nil {
		return models.Case{}, err
	}
	d.mirror(ctx, events.TypeActionAdded, c)
	return c, nil
}

// ChatExchange is one user message and the reply it produced.
type ChatExchange struct {
	Case  models.Case     `json:"case"`
	User  models.ChatTurn `json:"user"`
	Reply models.ChatTurn `json:"reply"`
}

// Chat asks the responder first and appends both turns only when it
// answers, so a failed reply leaves the history untouched.
func (d *Desk) Chat(ctx context.Context, id, message string) (ChatExchange, error) {
	c, err := d.Registry.Get(id)
	if err != nil {
		return ChatExchange{}, err
	}
	if strings.TrimSpace(message) == "" {
		return ChatExchange{}, &registry.InvalidFieldError{Field: "message", Value: message}
	}
	reply, err := d.Responder.Reply(ctx, c, message)
	if err != nil {
		d.Logger.Error().Err(err).Str("case_id", id).Msg("responder failed")
		return ChatExchange{}, fmt.Errorf("reply to case %s: %w", id, err)
	}
	c, err = d.Registry.AppendChatTurns(id,
		models.ChatTurn{Sender: models.SenderUser, Message: message},
		models.ChatTurn{Sender: models.SenderAI, Message: reply},
	)
	if err != nil {
		return ChatExchange{}, err
	}
	n := len(c.ChatHistory)
	d.mirror(ctx, events.TypeChatAdded, c)
	return ChatExchange{Case: c, User: c.ChatHistory[n-2], Reply: c.ChatHistory[n-1]}, nil
}

func (d *Desk) GenerateTestCase(ctx context.Context) (models.Case, error) {
	return d.Create(ctx, d.Generator.Next(catalog.SourceGenerated))
}

// Seed fills an empty registry with n generated cases.
func (d *Desk) Seed(ctx context.Context, n int) error {
	if d.Registry.Len() > 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		if _, err := d.GenerateTestCase(ctx); err != nil {
			return err
		}
	}
	return nil
}

// mirror pushes a mutated case to the archive and the event stream. Both are
// best effort: failures are logged and the in-memory change stands.
func (d *Desk) mirror(ctx context.Context, eventType string, c models.Case) {
	if d.Archive != nil {
		if err := d.Archive.SaveCase(ctx, c); err != nil {
			d.Logger.Error().Err(err).Str("case_id", c.ID).Msg("archive case failed")
		}
	}
	if d.Events != nil {
		if err := d.Events.Publish(ctx, events.New(eventType, c)); err != nil {
			d.Logger.Error().Err(err).Str("case_id", c.ID).Str("event", eventType).Msg("publish event failed")
		}
	}
}
