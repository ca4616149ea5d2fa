package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCases(t *testing.T, r *Registry) {
	t.Helper()
	for _, in := range []NewCase{
		{Title: "Algorithmic Bias in Hiring Platform", Category: "Bias & Discrimination", Priority: "urgent", Platform: "TechHire AI"},
		{Title: "Healthcare AI Misdiagnosis", Category: "Healthcare Safety", Priority: "urgent", Platform: "MedScan AI"},
		{Title: "Facial Recognition False Positives", Category: "Privacy & Surveillance", Priority: "high", Platform: "SafeCity AI"},
		{Title: "Autonomous Vehicle Ethics Dilemma", Category: "Autonomous Systems", Priority: "medium", Platform: "AutoDrive Inc"},
	} {
		_, err := r.Create(in)
		require.NoError(t, err)
	}
}

func ids(t *testing.T, r *Registry, f Filter) []string {
	t.Helper()
	var out []string
	for _, c := range r.Filter(f) {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterEmptyReturnsAll(t *testing.T) {
	r, _ := newTestRegistry(t, AIEthics)
	seedCases(t, r)

	assert.True(t, Filter{}.IsZero())
	assert.Equal(t, []string{"CASE-1000", "CASE-1001", "CASE-1002", "CASE-1003"}, ids(t, r, Filter{}))
}

func TestFilterEnumsMatchExactly(t *testing.T) {
	r, _ := newTestRegistry(t, AIEthics)
	seedCases(t, r)

	assert.Equal(t, []string{"CASE-1000", "CASE-1001"}, ids(t, r, Filter{Priority: "urgent"}))
	assert.Empty(t, ids(t, r, Filter{Priority: "Urgent"}))
	assert.Empty(t, ids(t, r, Filter{Priority: "urg"}))
}

func TestFilterResolvedSubset(t *testing.T) {
	r, _ := newTestRegistry(t, AIEthics)
	seedCases(t, r)
	_, err := r.RecordResolution("CASE-1001", "Audit published")
	require.NoError(t, err)
	_, err = r.UpdateStatus("CASE-1003", "resolved")
	require.NoError(t, err)

	got := r.Filter(Filter{Status: "resolved"})
	require.Len(t, got, 2)
	for _, c := range got {
		assert.Equal(t, "resolved", c.Status)
	}
	assert.Equal(t, "CASE-1001", got[0].ID)
	assert.Equal(t, "CASE-1003", got[1].ID)
}

func TestFilterSubstringsIgnoreCase(t *testing.T) {
	r, _ := newTestRegistry(t, AIEthics)
	seedCases(t, r)

	assert.Equal(t, []string{"CASE-1000", "CASE-1001", "CASE-1002"}, ids(t, r, Filter{Platform: " ai"}))
	assert.Equal(t, []string{"CASE-1002"}, ids(t, r, Filter{Category: "PRIVACY"}))
	assert.Equal(t, []string{"CASE-1003"}, ids(t, r, Filter{Title: "vehicle"}))
	assert.Equal(t, []string{"CASE-1001"}, ids(t, r, Filter{Priority: "urgent", Platform: "medscan"}))

	_, err := r.Assign("CASE-1002", "David Kim")
	require.NoError(t, err)
	assert.Equal(t, []string{"CASE-1002"}, ids(t, r, Filter{AssignedTo: "david"}))
}

func TestFilterRoundTripByTitle(t *testing.T) {
	r, _ := newTestRegistry(t, AIEthics)
	seedCases(t, r)

	in := NewCase{
		Title:         "Financial AI Loan Discrimination",
		Description:   "AI loan approval system systematically denying applications from certain zip codes.",
		Category:      "Financial Equity",
		Platform:      "FinTech Solutions",
		Priority:      "urgent",
		ReportedBy:    "tester",
		AffectedGroup: "Low-income neighborhoods",
	}
	created, err := r.Create(in)
	require.NoError(t, err)

	got := r.Filter(Filter{Title: in.Title})
	require.Len(t, got, 1)
	c := got[0]
	assert.Equal(t, created, c)
	assert.Equal(t, in.Title, c.Title)
	assert.Equal(t, in.Description, c.Description)
	assert.Equal(t, in.Category, c.Category)
	assert.Equal(t, in.Platform, c.Platform)
	assert.Equal(t, in.Priority, c.Priority)
	assert.Equal(t, in.ReportedBy, c.ReportedBy)
	assert.Equal(t, in.AffectedGroup, c.AffectedGroup)
}
