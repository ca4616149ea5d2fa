package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmptyRegistry(t *testing.T) {
	r, _ := newTestRegistry(t, AIEthics)

	for _, m := range Metrics {
		agg, err := r.Aggregate(m)
		require.NoError(t, err, m)
		assert.Zero(t, agg.Value, m)
		assert.Zero(t, agg.Total, m)
	}

	agg, err := r.Aggregate(MetricCountByStatus)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"open": 0, "investigating": 0, "escalated": 0, "resolved": 0}, agg.Counts)
}

func TestAggregateResolutionRate(t *testing.T) {
	r, _ := newTestRegistry(t, AIEthics)
	seedCases(t, r)
	_, err := r.RecordResolution("CASE-1000", "done")
	require.NoError(t, err)

	agg, err := r.Aggregate(MetricResolutionRate)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, agg.Value, 1e-9)
	assert.Equal(t, 4, agg.Total)

	active, err := r.Aggregate(MetricActiveCases)
	require.NoError(t, err)
	assert.Equal(t, 3.0, active.Value)

	urgent, err := r.Aggregate(MetricUrgentActive)
	require.NoError(t, err)
	assert.Equal(t, 1.0, urgent.Value)
}

func TestAggregateCountsAndMeans(t *testing.T) {
	r, _ := newTestRegistry(t, AIEthics)
	seedCases(t, r)
	_, err := r.UpdateStatus("CASE-1002", "escalated")
	require.NoError(t, err)

	byStatus, err := r.Aggregate(MetricCountByStatus)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"open": 3, "investigating": 0, "escalated": 1, "resolved": 0}, byStatus.Counts)

	byPriority, err := r.Aggregate(MetricCountByPriority)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"urgent": 2, "high": 1, "medium": 1, "low": 0}, byPriority.Counts)

	byCategory, err := r.Aggregate(MetricCountByCategory)
	require.NoError(t, err)
	assert.Len(t, byCategory.Counts, 4)
	assert.Equal(t, 1, byCategory.Counts["Healthcare Safety"])

	byPlatform, err := r.Aggregate(MetricCountByPlatform)
	require.NoError(t, err)
	assert.Equal(t, 1, byPlatform.Counts["AutoDrive Inc"])

	mean, err := r.Aggregate(MetricMeanSeverity)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, mean.Value, 1e-9)

	affected, err := r.Aggregate(MetricAffectedTotal)
	require.NoError(t, err)
	assert.Equal(t, 4*104.0, affected.Value)
}

func TestAggregateUnknownMetric(t *testing.T) {
	r, _ := newTestRegistry(t, AIEthics)
	_, err := r.Aggregate("median_age")
	var fe *InvalidFieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "metric", fe.Field)
}
