package service

import (
	"context"
	"testing"

	"github.com/Lalithkumar18-lk/Ai/internal/models"
	"github.com/Lalithkumar18-lk/Ai/internal/registry"
)

func TestRosterLoads(t *testing.T) {
	team := []string{"a", "b", "c"}
	cases := []models.Case{
		{AssignedTo: "a", Status: "open"},
		{AssignedTo: "a", Status: "investigating"},
		{AssignedTo: "b", Status: "resolved"},
		{AssignedTo: "outsider", Status: "open"},
		{AssignedTo: models.Unassigned, Status: "open"},
	}
	loads := RosterLoads(team, cases, "resolved")
	want := []Advocate{{Name: "a", CurrentLoad: 2}, {Name: "b"}, {Name: "c"}}
	if len(loads) != len(want) {
		t.Fatalf("expected %d advocates, got %d", len(want), len(loads))
	}
	for i := range want {
		if loads[i] != want[i] {
			t.Fatalf("advocate %d: expected %+v, got %+v", i, want[i], loads[i])
		}
	}
}

func TestPickAssigneeDeterministic(t *testing.T) {
	advocates := []Advocate{
		{Name: "m1", CurrentLoad: 5},
		{Name: "m2", CurrentLoad: 1},
		{Name: "m3", CurrentLoad: 1},
	}
	assignee1, top2 := PickAssignee("CASE-1000", advocates)
	assignee2, _ := PickAssignee("CASE-1000", advocates)
	if assignee1 != assignee2 {
		t.Fatalf("expected deterministic assignment")
	}
	if len(top2) != 2 {
		t.Fatalf("expected top2 length 2")
	}
	if assignee1.Name == "m1" {
		t.Fatalf("expected one of the least loaded advocates, got %s", assignee1.Name)
	}
}

func TestPickAssigneePrefersSmallerLoad(t *testing.T) {
	advocates := []Advocate{
		{Name: "m1", CurrentLoad: 5},
		{Name: "m2", CurrentLoad: 1},
		{Name: "m3", CurrentLoad: 3},
	}
	for _, id := range []string{"CASE-1000", "CASE-1001", "CASE-1002", "CASE-1003"} {
		assignee, _ := PickAssignee(id, advocates)
		if assignee.Name != "m2" {
			t.Fatalf("%s: expected advocate with smaller load to be picked, got %s", id, assignee.Name)
		}
	}
}

func TestPickAssigneeDoesNotReorderInput(t *testing.T) {
	advocates := []Advocate{{Name: "z", CurrentLoad: 3}, {Name: "a", CurrentLoad: 0}}
	PickAssignee("CASE-1000", advocates)
	if advocates[0].Name != "z" {
		t.Fatalf("expected input order to be kept, got %+v", advocates)
	}
}

func TestAutoAssignPicksIdleAdvocate(t *testing.T) {
	d, _, _ := newTestDesk(t)
	ctx := context.Background()
	team := d.Catalog.Team

	var ids []string
	for i := 0; i < len(team)+1; i++ {
		c, err := d.Create(ctx, registry.NewCase{Title: "case", Priority: "high"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, c.ID)
	}
	// Everyone but the third member carries an open case. The third member's
	// only case is resolved and does not count.
	for i, name := range team {
		if _, err := d.Assign(ctx, ids[i], name); err != nil {
			t.Fatalf("assign: %v", err)
		}
	}
	if _, err := d.UpdateStatus(ctx, ids[2], "resolved"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	res, err := d.AutoAssign(ctx, ids[len(ids)-1])
	if err != nil {
		t.Fatalf("auto-assign: %v", err)
	}
	if res.Assignee.Name != team[2] {
		t.Fatalf("expected %s, got %s", team[2], res.Assignee.Name)
	}
	if res.Case.AssignedTo != team[2] {
		t.Fatalf("expected case assigned to %s, got %s", team[2], res.Case.AssignedTo)
	}
}

func TestAutoAssignUnknownCase(t *testing.T) {
	d, _, _ := newTestDesk(t)
	_, err := d.AutoAssign(context.Background(), "CASE-4242")
	if _, ok := err.(*registry.NotFoundError); !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
