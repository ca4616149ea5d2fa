package registry

import (
	"github.com/Lalithkumar18-lk/Ai/internal/models"
)

type Metric string

const (
	MetricCountByStatus   Metric = "count_by_status"
	MetricCountByPriority Metric = "count_by_priority"
	MetricCountByCategory Metric = "count_by_category"
	MetricCountByPlatform Metric = "count_by_platform"
	MetricMeanSeverity    Metric = "mean_severity"
	MetricResolutionRate  Metric = "resolution_rate"
	MetricActiveCases     Metric = "active_cases"
	MetricUrgentActive    Metric = "urgent_active"
	MetricAffectedTotal   Metric = "affected_total"
)

var Metrics = []Metric{
	MetricCountByStatus,
	MetricCountByPriority,
	MetricCountByCategory,
	MetricCountByPlatform,
	MetricMeanSeverity,
	MetricResolutionRate,
	MetricActiveCases,
	MetricUrgentActive,
	MetricAffectedTotal,
}

// Aggregate is the result of one metric. Counting metrics fill Counts,
// scalar metrics fill Value.
type Aggregate struct {
	Metric Metric         `json:"metric"`
	Total  int            `json:"total"`
	Value  float64        `json:"value"`
	Counts map[string]int `json:"counts,omitempty"`
}

// Aggregate reduces the full case set to one metric. Rates and means over an
// empty registry are 0.
func (r *Registry) Aggregate(metric Metric) (Aggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := Aggregate{Metric: metric, Total: len(r.cases)}
	switch metric {
	case MetricCountByStatus:
		out.Counts = r.countBy(r.schema.Statuses, func(c *models.Case) string { return c.Status })
	case MetricCountByPriority:
		out.Counts = r.countBy(r.schema.Priorities, func(c *models.Case) string { return c.Priority })
	case MetricCountByCategory:
		out.Counts = r.countBy(nil, func(c *models.Case) string { return c.Category })
	case MetricCountByPlatform:
		out.Counts = r.countBy(nil, func(c *models.Case) string { return c.Platform })
	case MetricMeanSeverity:
		if len(r.cases) > 0 {
			sum := 0
			for _, c := range r.cases {
				sum += c.SeverityScore
			}
			out.Value = float64(sum) / float64(len(r.cases))
		}
	case MetricResolutionRate:
		if len(r.cases) > 0 {
			resolved := r.count(func(c *models.Case) bool { return c.Status == r.schema.ResolvedStatus })
			out.Value = float64(resolved) / float64(len(r.cases))
		}
	case MetricActiveCases:
		out.Value = float64(r.count(func(c *models.Case) bool { return c.Status != r.schema.ResolvedStatus }))
	case MetricUrgentActive:
		top := r.schema.TopPriority()
		out.Value = float64(r.count(func(c *models.Case) bool {
			return c.Priority == top && c.Status != r.schema.ResolvedStatus
		}))
	case MetricAffectedTotal:
		sum := 0
		for _, c := range r.cases {
			sum += c.AffectedCount
		}
		out.Value = float64(sum)
	default:
		allowed := make([]string, 0, len(Metrics))
		for _, m := range Metrics {
			allowed = append(allowed, string(m))
		}
		return Aggregate{}, &InvalidFieldError{Field: "metric", Value: string(metric), Allowed: allowed}
	}
	return out, nil
}

// countBy seeds keys with zero so fixed enums always report every value.
func (r *Registry) countBy(keys []string, key func(*models.Case) string) map[string]int {
	counts := make(map[string]int, len(keys))
	for _, k := range keys {
		counts[k] = 0
	}
	for _, c := range r.cases {
		counts[key(c)]++
	}
	return counts
}

func (r *Registry) count(keep func(*models.Case) bool) int {
	n := 0
	for _, c := range r.cases {
		if keep(c) {
			n++
		}
	}
	return n
}
