package registry

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/Lalithkumar18-lk/Ai/internal/models"
)

// Filter selects cases. Empty fields match everything. Priority and Status
// match exactly; the remaining fields match as case-insensitive substrings.
type Filter struct {
	Priority   string
	Status     string
	Category   string
	Platform   string
	Title      string
	AssignedTo string
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Filter returns the matching cases in creation order.
func (r *Registry) Filter(f Filter) []models.Case {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m := newMatcher(f)
	out := make([]models.Case, 0, len(r.cases))
	for _, c := range r.cases {
		if m.match(c) {
			out = append(out, c.Clone())
		}
	}
	return out
}

type matcher struct {
	f    Filter
	fold cases.Caser
	// folded needles
	category   string
	platform   string
	title      string
	assignedTo string
}

// newMatcher builds a per-call matcher; a cases.Caser is stateful and must
// not be shared between goroutines.
func newMatcher(f Filter) *matcher {
	m := &matcher{f: f, fold: cases.Fold()}
	m.category = m.folded(f.Category)
	m.platform = m.folded(f.Platform)
	m.title = m.folded(f.Title)
	m.assignedTo = m.folded(f.AssignedTo)
	return m
}

func (m *matcher) match(c *models.Case) bool {
	if m.f.Priority != "" && c.Priority != m.f.Priority {
		return false
	}
	if m.f.Status != "" && c.Status != m.f.Status {
		return false
	}
	return m.contains(c.Category, m.category) &&
		m.contains(c.Platform, m.platform) &&
		m.contains(c.Title, m.title) &&
		m.contains(c.AssignedTo, m.assignedTo)
}

func (m *matcher) contains(value, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(m.folded(value), needle)
}

func (m *matcher) folded(s string) string {
	return m.fold.String(strings.TrimSpace(s))
}
