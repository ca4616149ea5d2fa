package catalog

import (
	"github.com/Lalithkumar18-lk/Ai/internal/registry"
)

const (
	SourceGenerated  = "System Generated"
	SourceLiveStream = "Live Stream"

	livePrefix = "[LIVE] "
)

// Generator turns random catalog templates into new cases.
type Generator struct {
	Catalog Catalog
	Rand    registry.Randomizer
}

func NewGenerator(c Catalog, rnd registry.Randomizer) *Generator {
	if rnd == nil {
		rnd = registry.DefaultRandom()
	}
	return &Generator{Catalog: c, Rand: rnd}
}

// Next builds a case from a random template. Live-stream cases get a
// "[LIVE] " title prefix.
func (g *Generator) Next(source string) registry.NewCase {
	t := g.Catalog.Cases[g.Rand.IntN(len(g.Catalog.Cases))]
	title := t.Title
	if source == SourceLiveStream {
		title = livePrefix + title
	}
	return registry.NewCase{
		Title:         title,
		Description:   t.Description,
		Category:      t.Category,
		Platform:      t.Platform,
		Priority:      t.Priority,
		ReportedBy:    source,
		AffectedGroup: t.AffectedGroup,
	}
}
