package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/Lalithkumar18-lk/Ai/internal/models"
	"github.com/Lalithkumar18-lk/Ai/internal/utils"
)

// Advocate is a roster member with the number of unresolved cases they hold.
type Advocate struct {
	Name        string `json:"name"`
	CurrentLoad int    `json:"current_load"`
}

// AssignmentResult explains an automatic assignment.
type AssignmentResult struct {
	Case       models.Case `json:"case"`
	Assignee   Advocate    `json:"assignee"`
	Candidates []Advocate  `json:"candidates"`
	HashMod    int         `json:"hash_mod"`
}

// RosterLoads counts the unresolved cases held by each roster member.
// Members without cases get a zero load; assignees outside the roster are
// ignored.
func RosterLoads(team []string, cases []models.Case, resolvedStatus string) []Advocate {
	loadMap := make(map[string]int, len(team))
	for _, name := range team {
		loadMap[name] = 0
	}
	for _, c := range cases {
		if c.Status == resolvedStatus {
			continue
		}
		if _, ok := loadMap[c.AssignedTo]; ok {
			loadMap[c.AssignedTo]++
		}
	}
	out := make([]Advocate, 0, len(team))
	for _, name := range team {
		out = append(out, Advocate{Name: name, CurrentLoad: loadMap[name]})
	}
	return out
}

// PickAssignee orders the advocates by load then name and picks one of the
// two least loaded by hashing the case id. The returned slice is the
// candidate set the pick was made from.
func PickAssignee(caseID string, advocates []Advocate) (Advocate, []Advocate) {
	sorted := make([]Advocate, len(advocates))
	copy(sorted, advocates)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].CurrentLoad == sorted[j].CurrentLoad {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].CurrentLoad < sorted[j].CurrentLoad
	})

	top := sorted
	if len(top) > 2 {
		top = sorted[:2]
	}
	// A strictly lighter first candidate always wins.
	if len(top) == 2 && top[0].CurrentLoad < top[1].CurrentLoad {
		return top[0], top
	}
	return top[utils.PickIndex(caseID, len(top))], top
}

// AutoAssign hands the case to the least loaded roster member.
func (d *Desk) AutoAssign(ctx context.Context, id string) (AssignmentResult, error) {
	if _, err := d.Registry.Get(id); err != nil {
		return AssignmentResult{}, err
	}
	if len(d.Catalog.Team) == 0 {
		return AssignmentResult{}, fmt.Errorf("auto-assign %s: team roster is empty", id)
	}
	advocates := RosterLoads(d.Catalog.Team, d.Registry.List(), d.Schema().ResolvedStatus)
	assignee, top := PickAssignee(id, advocates)

	c, err := d.Assign(ctx, id, assignee.Name)
	if err != nil {
		return AssignmentResult{}, err
	}
	d.Logger.Info().Str("case_id", id).Str("assignee", assignee.Name).Int("load", assignee.CurrentLoad).Msg("case auto-assigned")
	return AssignmentResult{
		Case:       c,
		Assignee:   assignee,
		Candidates: top,
		HashMod:    utils.PickIndex(id, len(top)),
	}, nil
}
