package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lalithkumar18-lk/Ai/internal/models"
	"github.com/Lalithkumar18-lk/Ai/internal/registry"
)

func chatTurns(t *testing.T, d *Desk, id string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := d.Registry.AppendChat(id, models.SenderUser, fmt.Sprintf("turn %d", i))
		require.NoError(t, err)
	}
}

func TestProgressFollowsChatLength(t *testing.T) {
	tests := []struct {
		turns   int
		current int
		percent int
	}{
		{0, 0, 0},
		{2, 0, 0},
		{3, 1, 20},
		{7, 2, 40},
		{15, 5, 100},
		{40, 5, 100},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d turns", tc.turns), func(t *testing.T) {
			d, _, _ := newTestDesk(t)
			c, err := d.Create(context.Background(), registry.NewCase{Title: "case", Priority: "low"})
			require.NoError(t, err)
			chatTurns(t, d, c.ID, tc.turns)

			p, err := d.Progress(c.ID)
			require.NoError(t, err)
			assert.False(t, p.Resolved)
			assert.Equal(t, tc.current, p.CurrentStep)
			assert.Equal(t, tc.percent, p.Percent)
			require.Len(t, p.Steps, len(ResolutionSteps))
			for i, s := range p.Steps {
				switch {
				case i < tc.current:
					assert.Equal(t, StepCompleted, s.Status)
				case i == tc.current:
					assert.Equal(t, StepCurrent, s.Status)
				default:
					assert.Equal(t, StepPending, s.Status)
				}
			}
		})
	}
}

func TestProgressResolvedCase(t *testing.T) {
	d, _, _ := newTestDesk(t)
	ctx := context.Background()
	c, err := d.Create(ctx, registry.NewCase{Title: "case", Priority: "urgent"})
	require.NoError(t, err)
	_, err = d.RecordResolution(ctx, c.ID, "Vendor withdrew the model")
	require.NoError(t, err)

	p, err := d.Progress(c.ID)
	require.NoError(t, err)
	assert.True(t, p.Resolved)
	assert.Equal(t, 100, p.Percent)
	for _, s := range p.Steps {
		assert.Equal(t, StepCompleted, s.Status)
	}
}

func TestProgressUnknownCase(t *testing.T) {
	d, _, _ := newTestDesk(t)
	_, err := d.Progress("CASE-1")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}
