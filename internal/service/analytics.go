package service

import (
	"sort"

	"github.com/Lalithkumar18-lk/Ai/internal/registry"
)

const topPlatforms = 10

type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

type Analytics struct {
	Schema          string          `json:"schema"`
	TotalCases      int             `json:"total_cases"`
	ActiveCases     int             `json:"active_cases"`
	UrgentActive    int             `json:"urgent_active"`
	AffectedTotal   int             `json:"affected_total"`
	MeanSeverity    float64         `json:"mean_severity"`
	ResolutionRate  float64         `json:"resolution_rate"`
	ByStatus        map[string]int  `json:"by_status"`
	ByPriority      map[string]int  `json:"by_priority"`
	ByCategory      map[string]int  `json:"by_category"`
	TopPlatforms    []PlatformCount `json:"top_platforms"`
	ResolutionHours []float64       `json:"resolution_hours"`
}

// Analytics builds the dashboard summary out of registry aggregates.
func (d *Desk) Analytics() (Analytics, error) {
	out := Analytics{Schema: d.Schema().Name}
	for _, m := range registry.Metrics {
		agg, err := d.Registry.Aggregate(m)
		if err != nil {
			return Analytics{}, err
		}
		out.TotalCases = agg.Total
		switch m {
		case registry.MetricCountByStatus:
			out.ByStatus = agg.Counts
		case registry.MetricCountByPriority:
			out.ByPriority = agg.Counts
		case registry.MetricCountByCategory:
			out.ByCategory = agg.Counts
		case registry.MetricCountByPlatform:
			out.TopPlatforms = rankPlatforms(agg.Counts, topPlatforms)
		case registry.MetricMeanSeverity:
			out.MeanSeverity = agg.Value
		case registry.MetricResolutionRate:
			out.ResolutionRate = agg.Value
		case registry.MetricActiveCases:
			out.ActiveCases = int(agg.Value)
		case registry.MetricUrgentActive:
			out.UrgentActive = int(agg.Value)
		case registry.MetricAffectedTotal:
			out.AffectedTotal = int(agg.Value)
		}
	}

	out.ResolutionHours = []float64{}
	for _, c := range d.Registry.Filter(registry.Filter{Status: d.Schema().ResolvedStatus}) {
		if c.ResolvedAt == nil {
			continue
		}
		out.ResolutionHours = append(out.ResolutionHours, c.ResolvedAt.Sub(c.CreatedAt).Hours())
	}
	return out, nil
}

// rankPlatforms sorts by count descending then name and keeps the first n.
func rankPlatforms(counts map[string]int, n int) []PlatformCount {
	out := make([]PlatformCount, 0, len(counts))
	for p, c := range counts {
		out = append(out, PlatformCount{Platform: p, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Platform < out[j].Platform
		}
		return out[i].Count > out[j].Count
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
