package roadmap

// Option is one selectable value with its display label.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Options lists every dimension's values in display order.
type Options struct {
	Stages      []Option  `json:"stages" yaml:"stages"`
	DataSources []Option  `json:"dataSources" yaml:"dataSources"`
	Experiences []Option  `json:"experiences" yaml:"experiences"`
	Budgets     []Option  `json:"budgets" yaml:"budgets"`
	Default     Selection `json:"default" yaml:"default"`
}

// AllOptions builds the option lists used by dropdowns and the options API.
func AllOptions() Options {
	out := Options{Default: DefaultSelection()}
	for _, v := range Stages() {
		out.Stages = append(out.Stages, Option{Value: string(v), Label: v.Label()})
	}
	for _, v := range DataSources() {
		out.DataSources = append(out.DataSources, Option{Value: string(v), Label: v.Label()})
	}
	for _, v := range Experiences() {
		out.Experiences = append(out.Experiences, Option{Value: string(v), Label: v.Label()})
	}
	for _, v := range Budgets() {
		out.Budgets = append(out.Budgets, Option{Value: string(v), Label: v.Label()})
	}
	return out
}

// For returns the options of a single enum field, or nil for the objective.
func (o Options) For(field Field) []Option {
	switch field {
	case FieldStage:
		return o.Stages
	case FieldDataSource:
		return o.DataSources
	case FieldExperience:
		return o.Experiences
	case FieldBudget:
		return o.Budgets
	}
	return nil
}
