package service

const (
	StepCompleted = "completed"
	StepCurrent   = "current"
	StepPending   = "pending"

	turnsPerStep = 3
)

var ResolutionSteps = []string{
	"Investigation",
	"Evidence Collection",
	"Stakeholder Engagement",
	"Solution Design",
	"Implementation",
	"Verification",
}

type ProgressStep struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Progress struct {
	CaseID      string         `json:"case_id"`
	Resolved    bool           `json:"resolved"`
	CurrentStep int            `json:"current_step"`
	Percent     int            `json:"percent"`
	Steps       []ProgressStep `json:"steps"`
}

// Progress derives the resolution steps from the chat length: every three
// turns advance one step, capped at the last one. A case with a resolution
// has every step completed.
func (d *Desk) Progress(id string) (Progress, error) {
	c, err := d.Registry.Get(id)
	if err != nil {
		return Progress{}, err
	}
	last := len(ResolutionSteps) - 1
	p := Progress{CaseID: c.ID, Steps: make([]ProgressStep, 0, len(ResolutionSteps))}

	if c.Resolution != "" {
		p.Resolved = true
		p.CurrentStep = last
		p.Percent = 100
		for _, name := range ResolutionSteps {
			p.Steps = append(p.Steps, ProgressStep{Name: name, Status: StepCompleted})
		}
		return p, nil
	}

	p.CurrentStep = min(len(c.ChatHistory)/turnsPerStep, last)
	p.Percent = p.CurrentStep * 100 / last
	for i, name := range ResolutionSteps {
		status := StepPending
		switch {
		case i < p.CurrentStep:
			status = StepCompleted
		case i == p.CurrentStep:
			status = StepCurrent
		}
		p.Steps = append(p.Steps, ProgressStep{Name: name, Status: status})
	}
	return p, nil
}
