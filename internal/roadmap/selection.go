package roadmap

import "fmt"

// DefaultObjective pre-fills the objective field of a fresh selection.
const DefaultObjective = "Build an assistant that automates 30% of customer support."

// Field names one dimension of a Selection.
type Field string

const (
	FieldStage      Field = "stage"
	FieldDataSource Field = "dataSource"
	FieldExperience Field = "experience"
	FieldBudget     Field = "budget"
	FieldObjective  Field = "objective"
)

// Fields returns the selection fields in form order.
func Fields() []Field {
	return []Field{FieldStage, FieldDataSource, FieldExperience, FieldBudget, FieldObjective}
}

// Selection is the current choice of the interactive planner. It is a value:
// every update returns a new Selection and leaves the receiver untouched.
type Selection struct {
	Stage      Stage      `json:"stage" yaml:"stage"`
	DataSource DataSource `json:"dataSource" yaml:"dataSource"`
	Experience Experience `json:"experience" yaml:"experience"`
	Budget     Budget     `json:"budget" yaml:"budget"`
	Objective  string     `json:"objective" yaml:"objective"`
}

// DefaultSelection is the tuple shown before the user changes anything.
func DefaultSelection() Selection {
	return Selection{
		Stage:      StageIdea,
		DataSource: DataNone,
		Experience: ExperienceBeginner,
		Budget:     BudgetLean,
		Objective:  DefaultObjective,
	}
}

func (s Selection) WithStage(v Stage) Selection {
	s.Stage = v
	return s
}

func (s Selection) WithDataSource(v DataSource) Selection {
	s.DataSource = v
	return s
}

func (s Selection) WithExperience(v Experience) Selection {
	s.Experience = v
	return s
}

func (s Selection) WithBudget(v Budget) Selection {
	s.Budget = v
	return s
}

// WithObjective stores the objective verbatim.
func (s Selection) WithObjective(v string) Selection {
	s.Objective = v
	return s
}

// Valid reports whether all four enum fields are inside their domains.
func (s Selection) Valid() bool {
	return s.Stage.Valid() && s.DataSource.Valid() && s.Experience.Valid() && s.Budget.Valid()
}

// Apply returns a copy of s with one field replaced by a raw UI value.
func (s Selection) Apply(field Field, raw string) (Selection, error) {
	switch field {
	case FieldStage:
		v, err := ParseStage(raw)
		if err != nil {
			return s, err
		}
		return s.WithStage(v), nil
	case FieldDataSource:
		v, err := ParseDataSource(raw)
		if err != nil {
			return s, err
		}
		return s.WithDataSource(v), nil
	case FieldExperience:
		v, err := ParseExperience(raw)
		if err != nil {
			return s, err
		}
		return s.WithExperience(v), nil
	case FieldBudget:
		v, err := ParseBudget(raw)
		if err != nil {
			return s, err
		}
		return s.WithBudget(v), nil
	case FieldObjective:
		return s.WithObjective(raw), nil
	}
	return s, fmt.Errorf("field %q: %w", field, ErrInvalidValue)
}

// Value returns the raw form value of one field.
func (s Selection) Value(field Field) string {
	switch field {
	case FieldStage:
		return string(s.Stage)
	case FieldDataSource:
		return string(s.DataSource)
	case FieldExperience:
		return string(s.Experience)
	case FieldBudget:
		return string(s.Budget)
	case FieldObjective:
		return s.Objective
	}
	return ""
}

// Summary resolves the selection. The objective does not take part.
func (s Selection) Summary() Summary {
	return Resolve(s.Stage, s.DataSource, s.Experience, s.Budget)
}
