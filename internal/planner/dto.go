package planner

import (
	"ai-roadmap/internal/roadmap"
)

// SelectionRequest carries raw selection values from a query string, form or JSON body.
// Empty enum fields keep their default; a nil objective keeps the default objective.
// Enum values are checked by roadmap.Parse*, binding only bounds their length.
type SelectionRequest struct {
	Stage      string  `form:"stage" json:"stage" binding:"max=64"`
	DataSource string  `form:"dataSource" json:"dataSource" binding:"max=64"`
	Experience string  `form:"experience" json:"experience" binding:"max=64"`
	Budget     string  `form:"budget" json:"budget" binding:"max=64"`
	Objective  *string `form:"objective" json:"objective"`
}

type summaryResponse struct {
	Selection roadmap.Selection `json:"selection" yaml:"selection"`
	Summary   roadmap.Summary   `json:"summary" yaml:"summary"`
}

// selection applies the request on top of base, one field at a time.
func (r SelectionRequest) selection(base roadmap.Selection) (roadmap.Selection, error) {
	sel := base
	raw := map[roadmap.Field]string{
		roadmap.FieldStage:      r.Stage,
		roadmap.FieldDataSource: r.DataSource,
		roadmap.FieldExperience: r.Experience,
		roadmap.FieldBudget:     r.Budget,
	}
	for _, field := range roadmap.Fields() {
		if field == roadmap.FieldObjective {
			continue
		}
		value := raw[field]
		if value == "" {
			continue
		}
		next, err := sel.Apply(field, value)
		if err != nil {
			return base, err
		}
		sel = next
	}
	if r.Objective != nil {
		sel = sel.WithObjective(*r.Objective)
	}
	return sel, nil
}
