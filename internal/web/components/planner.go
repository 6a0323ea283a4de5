package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"ai-roadmap/internal/content"
	"ai-roadmap/internal/roadmap"
)

// PlannerView is everything the planner widget needs to render.
type PlannerView struct {
	Copy      content.Planner
	Options   roadmap.Options
	Selection roadmap.Selection
	Summary   roadmap.Summary
}

var fieldLabels = map[roadmap.Field]string{
	roadmap.FieldStage:      "Current stage",
	roadmap.FieldDataSource: "Data sources",
	roadmap.FieldExperience: "AI experience level",
	roadmap.FieldBudget:     "Investment level",
	roadmap.FieldObjective:  "Product objective",
}

const inputClass = "w-full rounded-xl border border-white/10 bg-white/5 px-4 py-3 text-sm text-white outline-none focus:border-cyan-400"

// Planner renders the recommendation form and the summary for the current selection.
// The form submits with GET so a selection is a plain, shareable URL.
func Planner(v PlannerView) g.Node {
	return Section(
		ID("planner"),
		card("backdrop-blur-lg",
			Div(
				Class("mb-8 flex flex-col gap-3"),
				Span(Class("text-sm font-medium uppercase tracking-widest text-cyan-300"), g.Text(v.Copy.Eyebrow)),
				H2(Class("text-3xl font-semibold text-white"), g.Text(v.Copy.Title)),
				P(Class("max-w-2xl text-base leading-relaxed text-slate-200/70"), g.Text(v.Copy.Intro)),
			),
			Form(
				Method("get"),
				Action("/#planner"),
				Class("grid gap-6 lg:grid-cols-2 lg:gap-8"),
				selectField(roadmap.FieldStage, v),
				selectField(roadmap.FieldDataSource, v),
				selectField(roadmap.FieldExperience, v),
				selectField(roadmap.FieldBudget, v),
				Label(
					Class("lg:col-span-2 flex flex-col gap-2"),
					Span(Class("text-sm font-semibold text-white/80"), g.Text(fieldLabels[roadmap.FieldObjective])),
					Textarea(
						Name(string(roadmap.FieldObjective)),
						g.Attr("rows", "3"),
						Class(inputClass),
						g.Text(v.Selection.Objective),
					),
				),
				Button(
					Type("submit"),
					Class("inline-flex items-center justify-center gap-2 rounded-full bg-cyan-500 px-6 py-3 text-sm font-semibold text-slate-950"),
					g.Text(v.Copy.Submit),
				),
			),
			summary(v),
		),
	)
}

func selectField(field roadmap.Field, v PlannerView) g.Node {
	current := v.Selection.Value(field)
	return Label(
		Class("flex flex-col gap-2"),
		Span(Class("text-sm font-semibold text-white/80"), g.Text(fieldLabels[field])),
		Select(
			Name(string(field)),
			Class(inputClass),
			g.Group(g.Map(v.Options.For(field), func(o roadmap.Option) g.Node {
				return Option(
					Value(o.Value),
					g.If(o.Value == current, Selected()),
					g.Text(o.Label),
				)
			})),
		),
	)
}

func summary(v PlannerView) g.Node {
	s := v.Summary
	return Div(
		ID("summary"),
		Class("mt-10 rounded-2xl border border-white/10 bg-white/5 p-6 md:p-8"),
		Div(
			Class("flex flex-col gap-4 md:flex-row md:items-center md:justify-between"),
			Div(
				P(Class("text-sm uppercase tracking-widest text-cyan-300"), g.Text("Summary")),
				H3(Class("mt-2 text-2xl font-semibold text-white"), g.Text(s.Headline)),
			),
			Div(
				Class("inline-flex flex-col rounded-xl border border-cyan-400/40 bg-cyan-500/10 px-4 py-3 text-sm text-cyan-100"),
				Span(Class("font-semibold"), g.Text(fmt.Sprintf("%d sprints", s.Timeline.SprintCount))),
				Span(Class("text-cyan-200/80"), g.Text(s.Timeline.Focus)),
			),
		),
		P(
			Class("mt-4 max-w-3xl text-sm text-slate-100/80"),
			g.Text("Stated objective: "),
			Span(Class("font-semibold text-white"), g.Text(v.Selection.Objective)),
		),
		Div(
			Class("mt-8 grid gap-6 sm:grid-cols-2"),
			g.Group(g.Map(s.Blocks, func(b roadmap.Block) g.Node {
				return Div(
					Class("rounded-2xl border border-white/10 bg-slate-950/40 p-5"),
					H4(Class("text-base font-semibold text-white"), g.Text(b.Title)),
					Ul(
						Class("mt-3 space-y-3 text-sm text-slate-200/80"),
						g.Group(g.Map(b.Items, func(item string) g.Node { return bullet("▹", item) })),
					),
				)
			})),
		),
	)
}
