package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lalithkumar18-lk/Ai/internal/registry"
)

func TestAnalyticsEmpty(t *testing.T) {
	d, _, _ := newTestDesk(t)

	a, err := d.Analytics()
	require.NoError(t, err)
	assert.Equal(t, registry.AIEthics.Name, a.Schema)
	assert.Zero(t, a.TotalCases)
	assert.Zero(t, a.MeanSeverity)
	assert.Zero(t, a.ResolutionRate)
	assert.Equal(t, 0, a.ByStatus["open"])
	assert.Len(t, a.ByStatus, len(registry.AIEthics.Statuses))
	assert.Empty(t, a.TopPlatforms)
	assert.Empty(t, a.ResolutionHours)
}

func TestAnalyticsSummary(t *testing.T) {
	d, _, _ := newTestDesk(t)
	ctx := context.Background()

	in := []registry.NewCase{
		{Title: "a", Priority: "urgent", Category: "Bias & Discrimination", Platform: "TechHire AI"},
		{Title: "b", Priority: "urgent", Category: "Bias & Discrimination", Platform: "TechHire AI"},
		{Title: "c", Priority: "high", Category: "Healthcare Safety", Platform: "MedScan AI"},
		{Title: "d", Priority: "low", Category: "Healthcare Safety", Platform: "SafeCity AI"},
	}
	var ids []string
	for _, nc := range in {
		c, err := d.Create(ctx, nc)
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}
	_, err := d.RecordResolution(ctx, ids[0], "Audit published")
	require.NoError(t, err)

	a, err := d.Analytics()
	require.NoError(t, err)
	assert.Equal(t, 4, a.TotalCases)
	assert.Equal(t, 3, a.ActiveCases)
	assert.Equal(t, 1, a.UrgentActive)
	assert.InDelta(t, 0.25, a.ResolutionRate, 1e-9)
	assert.InDelta(t, 5.0, a.MeanSeverity, 1e-9)
	assert.Equal(t, 4*104, a.AffectedTotal)
	assert.Equal(t, 1, a.ByStatus["resolved"])
	assert.Equal(t, 2, a.ByPriority["urgent"])
	assert.Equal(t, 0, a.ByPriority["medium"])
	assert.Equal(t, 2, a.ByCategory["Healthcare Safety"])
	assert.Equal(t, []PlatformCount{
		{Platform: "TechHire AI", Count: 2},
		{Platform: "MedScan AI", Count: 1},
		{Platform: "SafeCity AI", Count: 1},
	}, a.TopPlatforms)
	require.Len(t, a.ResolutionHours, 1)
	assert.Positive(t, a.ResolutionHours[0])
}

func TestRankPlatformsKeepsTopN(t *testing.T) {
	counts := map[string]int{}
	for i := 0; i < 15; i++ {
		counts[fmt.Sprintf("p%02d", i)] = i
	}
	top := rankPlatforms(counts, 10)
	require.Len(t, top, 10)
	assert.Equal(t, "p14", top[0].Platform)
	assert.Equal(t, "p05", top[9].Platform)
}
