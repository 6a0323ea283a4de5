package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "AI product roadmap"
	}

	if config.Description == "" {
		config.Description = "A structured roadmap to design, prototype and ship an AI-powered application."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Script(Src("https://cdn.tailwindcss.com")),
			),
			Body(
				Class("relative min-h-screen bg-slate-950 text-slate-100"),
				Main(
					Class("relative mx-auto flex w-full max-w-6xl flex-col gap-20 px-6 pb-24 pt-16 md:gap-24 md:px-10"),
					g.Group(content),
				),
			),
		),
	})
}

func card(extra string, children ...g.Node) g.Node {
	return Div(
		Class("rounded-3xl border border-white/10 bg-white/[0.02] p-8 shadow-lg shadow-slate-950/30 "+extra),
		g.Group(children),
	)
}

func bullet(marker, text string) g.Node {
	return Li(
		Class("flex gap-3"),
		Span(g.Attr("aria-hidden", "true"), Class("mt-1 text-cyan-300"), g.Text(marker)),
		Span(g.Text(text)),
	)
}
