// Package cli implements the roadmap command line: resolve a selection,
// list the options, or start the HTTP server.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ai-roadmap/internal/bootstrap"
	"ai-roadmap/internal/roadmap"
	"ai-roadmap/internal/shared/config"
	"ai-roadmap/internal/shared/telemetry"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type options struct {
	output  string
	noColor bool
}

// NewRootCommand builds the command tree. Output goes to the command's writer.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "roadmap",
		Short:         "AI product roadmap planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format (text, json, yaml)")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newResolveCommand(opts), newOptionsCommand(opts), newServeCommand())
	return root
}

func newResolveCommand(opts *options) *cobra.Command {
	var stage, data, experience, budget string
	objective := roadmap.DefaultObjective

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the recommendation summary for a selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel := roadmap.DefaultSelection()
			for _, step := range []struct {
				field roadmap.Field
				value string
			}{
				{roadmap.FieldStage, stage},
				{roadmap.FieldDataSource, data},
				{roadmap.FieldExperience, experience},
				{roadmap.FieldBudget, budget},
				{roadmap.FieldObjective, objective},
			} {
				next, err := sel.Apply(step.field, step.value)
				if err != nil {
					return err
				}
				sel = next
			}
			return writeSummary(cmd.OutOrStdout(), opts, sel)
		},
	}
	cmd.Flags().StringVar(&stage, "stage", string(roadmap.StageIdea), "project stage (idea, prototype, production)")
	cmd.Flags().StringVar(&data, "data", string(roadmap.DataNone), "data source (none, internal-file, external-api)")
	cmd.Flags().StringVar(&experience, "experience", string(roadmap.ExperienceBeginner), "AI experience (beginner, advanced)")
	cmd.Flags().StringVar(&budget, "budget", string(roadmap.BudgetLean), "budget tier (lean, standard, premium)")
	cmd.Flags().StringVar(&objective, "objective", objective, "product objective, echoed verbatim")
	return cmd
}

func newOptionsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List every selectable value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := roadmap.AllOptions()
			out := cmd.OutOrStdout()
			switch opts.output {
			case outputJSON, outputYAML:
				return encode(out, opts.output, all)
			case outputText:
			default:
				return fmt.Errorf("unknown output format %q", opts.output)
			}
			heading := headingStyle(opts.noColor)
			for _, field := range roadmap.Fields() {
				values := all.For(field)
				if values == nil {
					continue
				}
				fmt.Fprintln(out, heading.Render(string(field)))
				for _, o := range values {
					fmt.Fprintf(out, "  %-14s %s\n", o.Value, o.Label)
				}
			}
			return nil
		},
	}
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			logger, err := telemetry.Init(cfg.LogLevel, cfg.Env)
			if err != nil {
				return fmt.Errorf("logger init: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			app, err := bootstrap.New(cfg)
			if err != nil {
				return err
			}
			telemetry.Info("server.start", map[string]any{"addr": app.Addr(), "env": cfg.Env})
			return app.Router.Run(app.Addr())
		},
	}
}

type resolved struct {
	Selection roadmap.Selection `json:"selection" yaml:"selection"`
	Summary   roadmap.Summary   `json:"summary" yaml:"summary"`
}

func writeSummary(w io.Writer, opts *options, sel roadmap.Selection) error {
	summary := sel.Summary()
	switch opts.output {
	case outputJSON, outputYAML:
		return encode(w, opts.output, resolved{Selection: sel, Summary: summary})
	case outputText:
	default:
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	heading := headingStyle(opts.noColor)
	muted := lipgloss.NewStyle()
	if !opts.noColor {
		muted = muted.Foreground(lipgloss.Color("6"))
	}

	var b strings.Builder
	fmt.Fprintln(&b, heading.Render(summary.Headline))
	fmt.Fprintln(&b, muted.Render(fmt.Sprintf("%d sprints: %s", summary.Timeline.SprintCount, summary.Timeline.Focus)))
	fmt.Fprintf(&b, "Stated objective: %s\n", sel.Objective)
	for _, block := range summary.Blocks {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, heading.Render(block.Title))
		for _, item := range block.Items {
			fmt.Fprintf(&b, "  ▹ %s\n", item)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func encode(w io.Writer, format string, v any) error {
	if format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func headingStyle(noColor bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if noColor {
		return lipgloss.NewStyle()
	}
	return s.Foreground(lipgloss.Color("14"))
}
