package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"ai-roadmap/internal/content"
)

func Hero(h content.Hero) g.Node {
	return Header(
		Class("flex flex-col gap-8 rounded-3xl border border-white/10 bg-white/[0.02] p-10 shadow-xl"),
		Div(
			Class("inline-flex w-fit items-center gap-2 rounded-full border border-white/10 bg-white/10 px-3 py-1 text-xs font-semibold uppercase tracking-widest text-cyan-200"),
			g.Text(h.Badge),
		),
		H1(Class("text-4xl font-semibold leading-tight text-white md:text-5xl"), g.Text(h.Title)),
		P(Class("max-w-3xl text-lg leading-relaxed text-slate-200/80"), g.Text(h.Lede)),
		Div(
			Class("flex flex-wrap items-center gap-4 text-sm text-slate-300/90"),
			g.Group(g.Map(h.Highlights, func(s string) g.Node {
				return Span(Class("inline-flex items-center gap-2 rounded-full border border-white/20 px-3 py-1 font-medium"), g.Text(s))
			})),
		),
	)
}

func Phases(phases []content.Phase) g.Node {
	return Section(
		ID("phases"),
		Class("grid gap-10 md:grid-cols-3 md:gap-8"),
		g.Group(g.Map(phases, func(p content.Phase) g.Node {
			return Article(
				Class("flex flex-col gap-4 rounded-3xl border border-white/10 bg-white/[0.02] p-7"),
				H2(Class("text-xl font-semibold text-white"), g.Text(p.Title)),
				P(Class("text-sm text-slate-200/80"), g.Text(p.Description)),
				Ul(
					Class("flex flex-1 flex-col gap-3 text-sm text-slate-100/80"),
					g.Group(g.Map(p.Bullets, func(b string) g.Node { return bullet("●", b) })),
				),
				Div(
					Class("rounded-2xl border border-cyan-400/30 bg-cyan-500/10 px-4 py-3 text-sm text-cyan-100"),
					g.Text("Deliverable: "+p.Deliverable),
				),
			)
		})),
	)
}

// Architecture renders the reference architecture next to the KPI and team lists.
func Architecture(a content.Architecture, kpis, team content.List) g.Node {
	return Section(
		ID("architecture"),
		Class("grid gap-8 lg:grid-cols-[1.2fr,0.8fr] lg:gap-12"),
		card("",
			H2(Class("text-3xl font-semibold text-white"), g.Text(a.Title)),
			P(Class("mt-3 max-w-2xl text-sm text-slate-200/75"), g.Text(a.Intro)),
			Ul(
				Class("mt-8 space-y-6"),
				g.Group(g.Map(a.Layers, func(l content.Layer) g.Node {
					return Li(
						Class("rounded-2xl border border-white/10 bg-slate-950/40 p-5"),
						Div(
							Class("flex flex-wrap items-center justify-between gap-3"),
							H3(Class("text-lg font-semibold text-white"), g.Text(l.Name)),
							Div(
								Class("flex flex-wrap gap-2 text-xs font-medium uppercase tracking-widest text-cyan-200"),
								g.Group(g.Map(l.Stack, func(tech string) g.Node {
									return Span(Class("rounded-full border border-cyan-500/30 bg-cyan-500/10 px-3 py-1"), g.Text(tech))
								})),
							),
						),
						P(Class("mt-3 text-sm leading-relaxed text-slate-200/75"), g.Text(l.Details)),
					)
				})),
			),
		),
		Div(
			Class("flex flex-col gap-8"),
			plainList(kpis),
			plainList(team),
		),
	)
}

func plainList(l content.List) g.Node {
	return card("p-7",
		H3(Class("text-2xl font-semibold text-white"), g.Text(l.Title)),
		Ul(
			Class("mt-4 space-y-3 text-sm text-slate-100/80"),
			g.Group(g.Map(l.Items, func(s string) g.Node { return Li(g.Text(s)) })),
		),
	)
}

func Resources(r content.Resources) g.Node {
	return Section(
		ID("resources"),
		card("",
			Div(
				Class("flex flex-col gap-4 md:flex-row md:items-center md:justify-between"),
				H2(Class("text-3xl font-semibold text-white"), g.Text(r.Title)),
				Span(Class("text-sm font-medium text-cyan-100"), g.Text(r.Tagline)),
			),
			Div(
				Class("mt-8 grid gap-6 md:grid-cols-2"),
				g.Group(g.Map(r.Items, func(res content.Resource) g.Node {
					return A(
						Href(res.Link),
						Target("_blank"),
						Rel("noopener noreferrer"),
						Class("flex flex-col gap-3 rounded-2xl border border-white/10 bg-slate-950/40 p-6 transition hover:border-cyan-400/50"),
						H3(Class("text-xl font-semibold text-white"), g.Text(res.Title)),
						P(Class("text-sm leading-relaxed text-slate-200/75"), g.Text(res.Description)),
						Span(Class("text-sm font-semibold text-cyan-200"), g.Text("See the resource →")),
					)
				})),
			),
		),
	)
}

func FAQ(f content.FAQ) g.Node {
	return Section(
		ID("faq"),
		card("",
			H2(Class("text-3xl font-semibold text-white"), g.Text(f.Title)),
			Div(
				Class("mt-8 space-y-6"),
				g.Group(g.Map(f.Items, func(q content.Question) g.Node {
					return Div(
						Class("rounded-2xl border border-white/10 bg-slate-950/40 p-6"),
						H3(Class("text-lg font-semibold text-white"), g.Text(q.Question)),
						P(Class("mt-3 text-sm leading-relaxed text-slate-200/80"), g.Text(q.Answer)),
					)
				})),
			),
		),
	)
}

func PageFooter(f content.Footer) g.Node {
	return Footer(
		Class("flex flex-col items-start gap-4 rounded-3xl border border-white/10 bg-gradient-to-br from-slate-900 via-slate-950 to-black p-8 md:flex-row md:items-center md:justify-between"),
		Div(
			H2(Class("text-2xl font-semibold text-white"), g.Text(f.Title)),
			P(Class("mt-3 max-w-xl text-sm text-slate-200/80"), g.Text(f.Body)),
		),
		g.If(f.CTALink != "",
			A(
				Href(f.CTALink),
				Target("_blank"),
				Rel("noopener noreferrer"),
				Class("inline-flex items-center justify-center gap-2 rounded-full border border-cyan-400/40 bg-cyan-500/15 px-6 py-3 text-sm font-semibold text-cyan-100"),
				g.Text(f.CTALabel),
			),
		),
	)
}
