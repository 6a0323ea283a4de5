package roadmap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidValue is returned when external input names a value outside a dimension's domain.
var ErrInvalidValue = errors.New("invalid selection value")

// Stage is the maturity phase of the project.
type Stage string

const (
	StageIdea       Stage = "idea"
	StagePrototype  Stage = "prototype"
	StageProduction Stage = "production"
)

// DataSource describes where the project's data comes from.
type DataSource string

const (
	DataNone         DataSource = "none"
	DataInternalFile DataSource = "internal-file"
	DataExternalAPI  DataSource = "external-api"
)

// Experience is the team's experience level with AI.
type Experience string

const (
	ExperienceBeginner Experience = "beginner"
	ExperienceAdvanced Experience = "advanced"
)

// Budget is the investment tier.
type Budget string

const (
	BudgetLean     Budget = "lean"
	BudgetStandard Budget = "standard"
	BudgetPremium  Budget = "premium"
)

// Stages returns every stage in display order.
func Stages() []Stage {
	return []Stage{StageIdea, StagePrototype, StageProduction}
}

// DataSources returns every data source in display order.
func DataSources() []DataSource {
	return []DataSource{DataNone, DataInternalFile, DataExternalAPI}
}

// Experiences returns every experience level in display order.
func Experiences() []Experience {
	return []Experience{ExperienceBeginner, ExperienceAdvanced}
}

// Budgets returns every budget tier in display order.
func Budgets() []Budget {
	return []Budget{BudgetLean, BudgetStandard, BudgetPremium}
}

// Valid reports whether s is one of Stages().
func (s Stage) Valid() bool {
	switch s {
	case StageIdea, StagePrototype, StageProduction:
		return true
	}
	return false
}

// Valid reports whether d is one of DataSources().
func (d DataSource) Valid() bool {
	switch d {
	case DataNone, DataInternalFile, DataExternalAPI:
		return true
	}
	return false
}

// Valid reports whether e is one of Experiences().
func (e Experience) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceAdvanced:
		return true
	}
	return false
}

// Valid reports whether b is one of Budgets().
func (b Budget) Valid() bool {
	switch b {
	case BudgetLean, BudgetStandard, BudgetPremium:
		return true
	}
	return false
}

// Label is the human-readable name shown in dropdowns.
func (s Stage) Label() string {
	switch s {
	case StageIdea:
		return "Ideation"
	case StagePrototype:
		return "Prototype"
	case StageProduction:
		return "Production"
	}
	panic(unknown("stage", string(s)))
}

// Label is the dropdown name of the data source.
func (d DataSource) Label() string {
	switch d {
	case DataNone:
		return "To be built"
	case DataInternalFile:
		return "Internal data (CSV/Excel)"
	case DataExternalAPI:
		return "External sources / API"
	}
	panic(unknown("data source", string(d)))
}

// Label is the dropdown name of the experience level.
func (e Experience) Label() string {
	switch e {
	case ExperienceBeginner:
		return "Beginner in AI"
	case ExperienceAdvanced:
		return "Experienced in AI"
	}
	panic(unknown("experience", string(e)))
}

// Label is the dropdown name of the budget tier, with its range.
func (b Budget) Label() string {
	switch b {
	case BudgetLean:
		return "Lean (0 - 5 k€)"
	case BudgetStandard:
		return "Standard (5 - 30 k€)"
	case BudgetPremium:
		return "Ambitious (30 k€ +)"
	}
	panic(unknown("budget", string(b)))
}

// ParseStage accepts canonical values and the legacy "idee" alias.
func ParseStage(raw string) (Stage, error) {
	switch normalize(raw) {
	case "idea", "idee":
		return StageIdea, nil
	case "prototype":
		return StagePrototype, nil
	case "production":
		return StageProduction, nil
	}
	return "", fmt.Errorf("stage %q: %w", raw, ErrInvalidValue)
}

// ParseDataSource accepts canonical values and the short aliases aucun, csv and api.
func ParseDataSource(raw string) (DataSource, error) {
	switch normalize(raw) {
	case "none", "aucun":
		return DataNone, nil
	case "internal-file", "csv":
		return DataInternalFile, nil
	case "external-api", "api":
		return DataExternalAPI, nil
	}
	return "", fmt.Errorf("data source %q: %w", raw, ErrInvalidValue)
}

// ParseExperience accepts canonical values and the aliases debutant and confirme.
func ParseExperience(raw string) (Experience, error) {
	switch normalize(raw) {
	case "beginner", "debutant":
		return ExperienceBeginner, nil
	case "advanced", "confirme":
		return ExperienceAdvanced, nil
	}
	return "", fmt.Errorf("experience %q: %w", raw, ErrInvalidValue)
}

// ParseBudget accepts the canonical budget tiers only.
func ParseBudget(raw string) (Budget, error) {
	switch normalize(raw) {
	case "lean":
		return BudgetLean, nil
	case "standard":
		return BudgetStandard, nil
	case "premium":
		return BudgetPremium, nil
	}
	return "", fmt.Errorf("budget %q: %w", raw, ErrInvalidValue)
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func unknown(dimension, value string) string {
	return fmt.Sprintf("roadmap: unknown %s %q", dimension, value)
}
