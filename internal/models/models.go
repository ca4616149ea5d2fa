package models

import "time"

const (
	Unassigned = "unassigned"

	SenderUser = "user"
	SenderAI   = "ai"

	ActionPending = "pending"
)

type Case struct {
	ID            string    `json:"id"`
	Seq           int       `json:"seq"`
	Schema        string    `json:"schema"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Platform      string    `json:"platform"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	ReportedBy    string    `json:"reported_by"`
	AffectedGroup string    `json:"affected_group,omitempty"`
	AssignedTo    string    `json:"assigned_to"`
	Resolution    string    `json:"resolution"`
	SeverityScore int       `json:"severity_score"`
	AffectedCount int       `json:"affected_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	// ResolvedAt is set while the case sits in the resolved status.
	ResolvedAt      *time.Time       `json:"resolved_at,omitempty"`
	AdvocacyActions []AdvocacyAction `json:"advocacy_actions"`
	ChatHistory     []ChatTurn       `json:"chat_history"`
}

type AdvocacyAction struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Action    string    `json:"action"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatTurn struct {
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Clone returns a copy that shares no slices or pointers with c.
func (c Case) Clone() Case {
	out := c
	if c.ResolvedAt != nil {
		t := *c.ResolvedAt
		out.ResolvedAt = &t
	}
	out.AdvocacyActions = append([]AdvocacyAction{}, c.AdvocacyActions...)
	out.ChatHistory = append([]ChatTurn{}, c.ChatHistory...)
	return out
}
