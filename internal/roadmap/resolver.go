// Package roadmap maps a project's stage, data source, experience and budget
// to a fixed recommendation summary.
package roadmap

// Block titles, in the order they appear in a Summary.
const (
	BlockDecisions = "Key decisions"
	BlockData      = "Data"
	BlockSkills    = "Skills"
	BlockBudget    = "Budget"
)

// Timeline is the sprint estimate for a stage.
type Timeline struct {
	SprintCount int    `json:"sprintCount" yaml:"sprintCount"`
	Focus       string `json:"focus" yaml:"focus"`
}

// Block is a titled list of advice tied to one input dimension.
type Block struct {
	Title string   `json:"title" yaml:"title"`
	Items []string `json:"items" yaml:"items"`
}

// Summary is the computed recommendation shown to the user.
type Summary struct {
	Headline string   `json:"headline" yaml:"headline"`
	Timeline Timeline `json:"timeline" yaml:"timeline"`
	Blocks   []Block  `json:"blocks" yaml:"blocks"`
}

// Resolve builds the summary for a selection. It is deterministic and has no
// side effects; every returned slice is freshly allocated.
func Resolve(stage Stage, data DataSource, experience Experience, budget Budget) Summary {
	return Summary{
		Headline: headlineFor(stage),
		Timeline: timelineFor(stage),
		Blocks: []Block{
			{Title: BlockDecisions, Items: decisionAdvice(stage)},
			{Title: BlockData, Items: dataAdvice(data)},
			{Title: BlockSkills, Items: skillsAdvice(experience)},
			{Title: BlockBudget, Items: budgetAdvice(budget)},
		},
	}
}
