package registry

import (
	"fmt"
	"strings"
)

// Schema parameterizes the registry: which status lifecycle and priority
// scale a deployment tracks, and how the shared fields are labelled.
type Schema struct {
	Name     string `json:"name"`
	IDPrefix string `json:"id_prefix"`
	FirstSeq int    `json:"first_seq"`
	// Statuses lists the lifecycle; the first entry is the initial status.
	Statuses       []string `json:"statuses"`
	ResolvedStatus string   `json:"resolved_status"`
	// Priorities runs from most to least severe.
	Priorities    []string `json:"priorities"`
	Labels        Labels   `json:"labels"`
	SeverityRange Range    `json:"severity_range"`
	AffectedRange Range    `json:"affected_range"`
}

type Labels struct {
	Category   string `json:"category"`
	Platform   string `json:"platform"`
	Priority   string `json:"priority"`
	AssignedTo string `json:"assigned_to"`
	Affected   string `json:"affected"`
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var AIEthics = Schema{
	Name:           "ai-ethics",
	IDPrefix:       "CASE",
	FirstSeq:       1000,
	Statuses:       []string{"open", "investigating", "escalated", "resolved"},
	ResolvedStatus: "resolved",
	Priorities:     []string{"urgent", "high", "medium", "low"},
	Labels: Labels{
		Category:   "category",
		Platform:   "platform",
		Priority:   "priority",
		AssignedTo: "assigned_to",
		Affected:   "affected_users",
	},
	SeverityRange: Range{Min: 1, Max: 100},
	AffectedRange: Range{Min: 100, Max: 10000},
}

var HumanRights = Schema{
	Name:           "human-rights",
	IDPrefix:       "CASE",
	FirstSeq:       1000,
	Statuses:       []string{"reported", "investigating", "advocating", "resolved"},
	ResolvedStatus: "resolved",
	Priorities:     []string{"critical", "high", "medium", "low"},
	Labels: Labels{
		Category:   "human_right_affected",
		Platform:   "ai_system",
		Priority:   "severity",
		AssignedTo: "assigned_advocate",
		Affected:   "people_affected",
	},
	SeverityRange: Range{Min: 1, Max: 100},
	AffectedRange: Range{Min: 50, Max: 50000},
}

// SchemaByName resolves a configured schema name.
func SchemaByName(name string) (Schema, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", AIEthics.Name, "a":
		return AIEthics, nil
	case HumanRights.Name, "b":
		return HumanRights, nil
	default:
		return Schema{}, fmt.Errorf("unknown case schema %q", name)
	}
}

func (s Schema) InitialStatus() string {
	return s.Statuses[0]
}

// TopPriority is the most severe priority, the one counted as urgent.
func (s Schema) TopPriority() string {
	return s.Priorities[0]
}

func (s Schema) HasStatus(v string) bool {
	return contains(s.Statuses, v)
}

func (s Schema) HasPriority(v string) bool {
	return contains(s.Priorities, v)
}

func (s Schema) validate() error {
	if len(s.Statuses) == 0 || len(s.Priorities) == 0 {
		return fmt.Errorf("schema %q: statuses and priorities are required", s.Name)
	}
	if !s.HasStatus(s.ResolvedStatus) {
		return fmt.Errorf("schema %q: resolved status %q not in lifecycle", s.Name, s.ResolvedStatus)
	}
	if s.SeverityRange.Min > s.SeverityRange.Max || s.AffectedRange.Min > s.AffectedRange.Max {
		return fmt.Errorf("schema %q: invalid ranges", s.Name)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
