package landing

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"thumbforge.studio/site/internal/content"
	"thumbforge.studio/site/internal/icons"
	"thumbforge.studio/site/internal/nav"
	"thumbforge.studio/site/internal/views/components"
)

// SplineViewer is the web component that loads the hero scene.
const SplineViewer = "https://unpkg.com/@splinetool/viewer@1.9.82/build/spline-viewer.js"

const bodyClass = "min-h-screen bg-gradient-to-br from-gray-50 via-white to-gray-50 text-gray-900"

const inputClass = "px-4 py-3 rounded-md border border-black/10 bg-white/90 focus:outline-none focus:ring-2 focus:ring-black/10"

// Page assembles the full landing page in its fixed section order.
func Page(d PageData) g.Node {
	return components.Document(
		components.DocumentProps{
			Lang:      "en",
			Meta:      d.SEO,
			BodyClass: bodyClass,
			AssetBase: d.Assets,
			Head:      []g.Node{Script(Type("module"), Src(SplineViewer))},
		},
		siteHeader(d),
		Main(
			hero(d.Deck, d.SceneURL),
			work(d.Deck.Work),
			process(d.Deck.Process),
			pricing(d.Deck.Pricing),
			testimonials(d.Deck.Testimonials),
			contact(d.Deck.Contact),
		),
		siteFooter(d),
	)
}

func siteHeader(d PageData) g.Node {
	return Header(
		Class("fixed top-0 inset-x-0 z-50 backdrop-blur supports-[backdrop-filter]:bg-white/60 bg-white/70 border-b border-black/5"),
		Div(
			Class("mx-auto max-w-7xl px-4 sm:px-6 lg:px-8 h-16 flex items-center justify-between"),
			A(
				Href(nav.Anchor(nav.SectionHero)),
				Class("flex items-center gap-2 font-semibold"),
				g.Attr("data-brand", ""),
				Span(
					Class("inline-flex items-center justify-center w-9 h-9 rounded-md bg-black text-white"),
					icons.SVG(icons.Camera, 18),
				),
				Span(g.Text(d.Deck.Brand)),
			),
			Nav(
				Class("hidden md:flex items-center gap-6 text-sm"),
				g.Group(g.Map(d.Nav, func(it nav.Item) g.Node {
					return A(Href(it.Href()), Class("hover:text-black"), g.Attr("data-nav", it.Section), g.Text(it.Label))
				})),
				A(
					Href(d.CTA.Href()),
					Class("ml-2 inline-flex items-center rounded-md bg-black text-white px-3 py-2 hover:bg-gray-900"),
					g.Attr("data-nav-cta", d.CTA.Section),
					g.Text(d.CTA.Label),
				),
			),
		),
	)
}

func hero(deck content.Deck, sceneURL string) g.Node {
	h := deck.Hero
	return Section(
		ID(nav.SectionHero),
		Class("relative h-[92vh] md:h-screen overflow-hidden"),
		Div(
			Class("absolute inset-0"),
			g.El("spline-viewer",
				g.Attr("url", sceneURL),
				g.Attr("style", "width: 100%; height: 100%;"),
			),
		),
		// scrim keeps the copy readable without blocking the scene
		Div(Class("pointer-events-none absolute inset-0 bg-gradient-to-b from-white/70 via-white/40 to-white/80"), g.Attr("data-scrim", "")),
		Div(
			Class("relative z-10 max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 pt-36 md:pt-44"),
			Div(
				Class("max-w-3xl"),
				Div(
					Class("inline-flex items-center gap-2 rounded-full bg-white/70 backdrop-blur border border-black/5 px-3 py-1 text-sm text-gray-700"),
					icons.SVG(icons.Sparkles, 16, icons.Options{Class: "text-amber-600"}),
					g.Text(" "+h.Eyebrow),
				),
				H1(Class("mt-4 text-4xl md:text-6xl font-extrabold leading-tight"), g.Text(h.Headline)),
				P(Class("mt-4 text-gray-700 text-lg md:text-xl"), g.Text(h.Subheadline)),
				Div(
					Class("mt-8 flex flex-col sm:flex-row gap-3"),
					A(
						Href(nav.Anchor(nav.SectionContact)),
						Class("inline-flex items-center justify-center rounded-md bg-black text-white px-5 py-3 hover:bg-gray-900"),
						g.Text(h.PrimaryCTA),
						icons.SVG(icons.ArrowRight, 18, icons.Options{Class: "ml-2"}),
					),
					A(
						Href(nav.Anchor(nav.SectionWork)),
						Class("inline-flex items-center justify-center rounded-md bg-white/80 border border-black/10 px-5 py-3 hover:bg-white"),
						g.Text(h.SecondaryCTA),
					),
				),
				Div(
					Class("mt-10 grid grid-cols-3 gap-6 max-w-xl"),
					g.Group(g.Map(h.Stats, func(s content.Stat) g.Node {
						return components.Stat(s.Label, s.Value)
					})),
				),
			),
		),
	)
}

func work(w content.Work) g.Node {
	return Section(
		ID(nav.SectionWork),
		Class("relative py-20 md:py-28"),
		components.Container(
			components.SectionHeading(w.Title, w.Intro),
			Div(
				Class("mt-10 grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Group(g.Map(w.Placeholders(), func(p content.Placeholder) g.Node {
					return Div(
						Class("group relative overflow-hidden rounded-2xl bg-gradient-to-br from-gray-100 to-gray-200 border border-black/5"),
						g.Attr("data-placeholder", strconv.Itoa(p.Index)),
						Div(
							Class("aspect-[16/9] grid place-items-center text-gray-400"),
							Div(
								Class("text-center"),
								P(Class("text-sm uppercase tracking-wide"), g.Textf("%s %d", w.PlaceholderLabel, p.Index)),
								P(Class("text-xs text-gray-500"), g.Text(w.PlaceholderNote)),
							),
						),
						Div(Class("absolute inset-0 opacity-0 group-hover:opacity-100 transition-opacity bg-black/5")),
					)
				})),
			),
		),
	)
}

func process(p content.Process) g.Node {
	return Section(
		ID(nav.SectionProcess),
		Class("py-20 md:py-28 bg-gradient-to-b from-white to-gray-50"),
		components.Container(
			components.SectionHeading(p.Title, p.Intro),
			Div(
				Class("mt-10 grid grid-cols-1 md:grid-cols-3 gap-6"),
				g.Group(g.Map(p.Steps, func(f content.Feature) g.Node {
					return components.Feature(f.Icon, f.Title, f.Description)
				})),
			),
		),
	)
}

func pricing(p content.Pricing) g.Node {
	return Section(
		ID(nav.SectionPricing),
		Class("py-20 md:py-28"),
		components.Container(
			components.SectionHeading(p.Title, p.Intro),
			Div(
				Class("mt-10 grid grid-cols-1 md:grid-cols-3 gap-6"),
				g.Group(g.Map(p.Tiers, func(t content.Tier) g.Node {
					return components.PriceCard(components.PriceCardProps{
						Tier:      t.Name,
						Price:     t.Price,
						Items:     t.Items,
						Highlight: t.Highlight,
						CTALabel:  p.CTALabel,
					})
				})),
			),
		),
	)
}

func testimonials(t content.Testimonials) g.Node {
	return Section(
		ID(nav.SectionTestimonials),
		Class("py-20 md:py-28 bg-gradient-to-b from-gray-50 to-white"),
		components.Container(
			components.SectionHeading(t.Title, t.Intro),
			Div(
				Class("mt-10 grid grid-cols-1 md:grid-cols-3 gap-6"),
				g.Group(g.Map(t.Items, func(q content.Testimonial) g.Node {
					return components.Testimonial(q.Quote, q.Author, q.Role)
				})),
			),
		),
	)
}

// contact renders the inquiry form. Submission is cancelled in the browser and
// nothing is sent; form[data-inquiry-form] is where a real handler plugs in.
func contact(c content.Contact) g.Node {
	f := c.Form
	return Section(
		ID(nav.SectionContact),
		Class("py-20 md:py-28"),
		components.Container(
			components.SectionHeading(c.Title, c.Intro),
			Div(
				Class("mt-8 grid grid-cols-1 md:grid-cols-3 gap-6"),
				Div(
					Class("md:col-span-2 p-6 rounded-2xl bg-white/80 border border-black/5"),
					g.El("form",
						ID("inquiry-form"),
						g.Attr("data-inquiry-form", ""),
						g.Attr("onsubmit", "event.preventDefault()"),
						Class("grid grid-cols-1 sm:grid-cols-2 gap-4"),
						Input(Type("text"), Name("name"), g.Attr("required"), Placeholder(f.NamePlaceholder), Class(inputClass)),
						Input(Type("email"), Name("email"), g.Attr("required"), Placeholder(f.EmailPlaceholder), Class(inputClass)),
						Input(Type("text"), Name("channel"), Placeholder(f.ChannelPlaceholder), Class("sm:col-span-2 "+inputClass)),
						Textarea(Name("details"), g.Attr("rows", "5"), Placeholder(f.DetailsPlaceholder), Class("sm:col-span-2 "+inputClass)),
						Button(
							Type("submit"),
							Class("sm:col-span-2 inline-flex items-center justify-center rounded-md bg-black text-white px-5 py-3 hover:bg-gray-900"),
							g.Text(f.SubmitLabel),
							icons.SVG(icons.ArrowRight, 18, icons.Options{Class: "ml-2"}),
						),
					),
				),
				Div(
					Class("p-6 rounded-2xl bg-white/80 border border-black/5 space-y-4"),
					g.Attr("data-contact-details", ""),
					Div(
						Class("flex items-center gap-3"),
						icons.SVG(icons.Mail, 18),
						A(Href("mailto:"+c.Email), Class("hover:underline"), g.Text(c.Email)),
					),
					Div(
						Class("flex items-center gap-3"),
						icons.SVG(icons.Instagram, 18),
						A(Href(c.SocialURL), Class("hover:underline"), g.Text(c.SocialHandle)),
					),
					Div(
						Class("flex items-center gap-3"),
						icons.SVG(icons.MessageSquare, 18),
						Span(g.Text(c.Turnaround)),
					),
				),
			),
		),
	)
}

func siteFooter(d PageData) g.Node {
	return Footer(
		Class("py-8 border-t border-black/5"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 flex items-center justify-between text-sm text-gray-600"),
			P(g.Attr("data-copyright", ""), g.Textf("© %d %s. All rights reserved.", d.Year, d.Deck.Brand)),
			A(Class("hover:text-black"), Href(d.Deck.Footer.SystemTestHref), g.Text(d.Deck.Footer.SystemTestLabel)),
		),
	)
}
