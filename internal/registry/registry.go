// Package registry holds the in-memory collection of advocacy cases and the
// operations that query and mutate it.
//
// A Registry is built explicitly with New and handed to whoever needs it.
// It keeps cases in creation order, assigns sequential ids that are never
// reused, and enforces that a case with a non-empty resolution is in the
// schema's resolved status. Every operation either applies fully or returns
// a typed error before touching state.
package registry

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Lalithkumar18-lk/Ai/internal/models"
)

// NewCase carries the caller-supplied fields of a case. Everything else is
// set by the registry.
type NewCase struct {
	Title         string
	Description   string
	Category      string
	Platform      string
	Priority      string
	ReportedBy    string
	AffectedGroup string
}

// ActionEntry is an advocacy action to append to a case.
type ActionEntry struct {
	Type   string
	Action string
	Status string
}

type Option func(*Registry)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithRandom replaces the source used for severity and affected counts.
func WithRandom(rnd Randomizer) Option {
	return func(r *Registry) {
		r.rnd = rnd
	}
}

type Registry struct {
	mu     sync.RWMutex
	schema Schema
	cases  []*models.Case
	byID   map[string]*models.Case
	next   int
	now    func() time.Time
	rnd    Randomizer
}

func New(schema Schema, opts ...Option) (*Registry, error) {
	if err := schema.validate(); err != nil {
		return nil, err
	}
	r := &Registry{
		schema: schema,
		byID:   map[string]*models.Case{},
		next:   schema.FirstSeq,
		now:    func() time.Time { return time.Now().UTC() },
		rnd:    DefaultRandom(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Registry) Schema() Schema {
	return r.schema
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cases)
}

func (r *Registry) Create(in NewCase) (models.Case, error) {
	if strings.TrimSpace(in.Title) == "" {
		return models.Case{}, &InvalidFieldError{Field: "title", Value: in.Title}
	}
	if !r.schema.HasPriority(in.Priority) {
		return models.Case{}, &InvalidFieldError{Field: r.schema.Labels.Priority, Value: in.Priority, Allowed: r.schema.Priorities}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	seq := r.next
	c := &models.Case{
		ID:              r.formatID(seq),
		Seq:             seq,
		Schema:          r.schema.Name,
		Title:           in.Title,
		Description:     in.Description,
		Category:        in.Category,
		Platform:        in.Platform,
		Priority:        in.Priority,
		Status:          r.schema.InitialStatus(),
		ReportedBy:      in.ReportedBy,
		AffectedGroup:   in.AffectedGroup,
		AssignedTo:      models.Unassigned,
		SeverityScore:   Between(r.rnd, r.schema.SeverityRange),
		AffectedCount:   Between(r.rnd, r.schema.AffectedRange),
		CreatedAt:       now,
		UpdatedAt:       now,
		AdvocacyActions: []models.AdvocacyAction{},
		ChatHistory:     []models.ChatTurn{},
	}
	if c.Platform == "" {
		c.Platform = "Unknown"
	}
	r.next++
	r.cases = append(r.cases, c)
	r.byID[c.ID] = c
	return c.Clone(), nil
}

func (r *Registry) Get(id string) (models.Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return models.Case{}, &NotFoundError{ID: id}
	}
	return c.Clone(), nil
}

// List returns every case in creation order.
func (r *Registry) List() []models.Case {
	return r.Filter(Filter{})
}

func (r *Registry) UpdateStatus(id, status string) (models.Case, error) {
	return r.mutate(id, func(c *models.Case, now time.Time) error {
		if !r.schema.HasStatus(status) {
			return &InvalidTransitionError{ID: id, From: c.Status, To: status, Allowed: r.schema.Statuses}
		}
		r.setStatus(c, status, now)
		return nil
	})
}

// Assign sets the assignee; a blank assignee resets it to unassigned.
func (r *Registry) Assign(id, assignee string) (models.Case, error) {
	return r.mutate(id, func(c *models.Case, _ time.Time) error {
		assignee = strings.TrimSpace(assignee)
		if assignee == "" {
			assignee = models.Unassigned
		}
		c.AssignedTo = assignee
		return nil
	})
}

// RecordResolution stores the trimmed resolution text. Non-empty text
// forces the resolved status; empty text leaves the status alone.
func (r *Registry) RecordResolution(id, text string) (models.Case, error) {
	text = strings.TrimSpace(text)
	return r.mutate(id, func(c *models.Case, now time.Time) error {
		c.Resolution = text
		if text != "" && c.Status != r.schema.ResolvedStatus {
			r.setStatus(c, r.schema.ResolvedStatus, now)
		}
		return nil
	})
}

func (r *Registry) AppendAction(id string, entry ActionEntry) (models.Case, error) {
	if strings.TrimSpace(entry.Type) == "" {
		return models.Case{}, &InvalidFieldError{Field: "type", Value: entry.Type}
	}
	if strings.TrimSpace(entry.Action) == "" {
		return models.Case{}, &InvalidFieldError{Field: "action", Value: entry.Action}
	}
	return r.mutate(id, func(c *models.Case, now time.Time) error {
		status := entry.Status
		if status == "" {
			status = models.ActionPending
		}
		c.AdvocacyActions = append(c.AdvocacyActions, models.AdvocacyAction{
			ID:        uuid.NewString(),
			Type:      entry.Type,
			Action:    entry.Action,
			Status:    status,
			Timestamp: now,
		})
		return nil
	})
}

func (r *Registry) AppendChat(id, sender, message string) (models.Case, error) {
	return r.AppendChatTurns(id, models.ChatTurn{Sender: sender, Message: message})
}

// AppendChatTurns validates every turn and appends them together, so turns
// of concurrent exchanges never interleave. Timestamps are set here; the
// appended turns are the last len(turns) entries of the returned history.
func (r *Registry) AppendChatTurns(id string, turns ...models.ChatTurn) (models.Case, error) {
	for _, t := range turns {
		if t.Sender != models.SenderUser && t.Sender != models.SenderAI {
			return models.Case{}, &InvalidFieldError{Field: "sender", Value: t.Sender, Allowed: []string{models.SenderUser, models.SenderAI}}
		}
		if strings.TrimSpace(t.Message) == "" {
			return models.Case{}, &InvalidFieldError{Field: "message", Value: t.Message}
		}
	}
	return r.mutate(id, func(c *models.Case, now time.Time) error {
		for _, t := range turns {
			t.Timestamp = now
			c.ChatHistory = append(c.ChatHistory, t)
		}
		return nil
	})
}

// Restore loads previously archived cases into an empty registry. Cases
// keep their ids; the counter resumes after the highest sequence seen.
func (r *Registry) Restore(cases []models.Case) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.cases) > 0 {
		return fmt.Errorf("restore: registry already holds %d cases", len(r.cases))
	}
	byID := make(map[string]*models.Case, len(cases))
	list := make([]*models.Case, 0, len(cases))
	next := r.schema.FirstSeq
	for i := range cases {
		c := cases[i].Clone()
		if _, dup := byID[c.ID]; dup || c.ID == "" {
			return fmt.Errorf("restore: duplicate or empty id %q", c.ID)
		}
		if !r.schema.HasStatus(c.Status) {
			return &InvalidFieldError{Field: "status", Value: c.Status, Allowed: r.schema.Statuses}
		}
		if !r.schema.HasPriority(c.Priority) {
			return &InvalidFieldError{Field: r.schema.Labels.Priority, Value: c.Priority, Allowed: r.schema.Priorities}
		}
		if strings.TrimSpace(c.Resolution) != "" && c.Status != r.schema.ResolvedStatus {
			return &InvalidFieldError{Field: "resolution", Value: c.Resolution}
		}
		if c.Seq >= next {
			next = c.Seq + 1
		}
		byID[c.ID] = &c
		list = append(list, &c)
	}
	r.cases = list
	r.byID = byID
	r.next = next
	return nil
}

// mutate runs fn on the stored case under the write lock. fn must validate
// before it changes anything; UpdatedAt is refreshed only when fn succeeds.
func (r *Registry) mutate(id string, fn func(c *models.Case, now time.Time) error) (models.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return models.Case{}, &NotFoundError{ID: id}
	}
	now := r.now()
	if err := fn(c, now); err != nil {
		return models.Case{}, err
	}
	c.UpdatedAt = now
	return c.Clone(), nil
}

func (r *Registry) setStatus(c *models.Case, status string, now time.Time) {
	if status == r.schema.ResolvedStatus {
		if c.Status != status {
			t := now
			c.ResolvedAt = &t
		}
	} else {
		// Reopening drops the resolution so that a non-empty resolution
		// always implies the resolved status.
		c.ResolvedAt = nil
		c.Resolution = ""
	}
	c.Status = status
}

func (r *Registry) formatID(seq int) string {
	return fmt.Sprintf("%s-%d", r.schema.IDPrefix, seq)
}
