// Package components contains the presentational building blocks of the
// landing page. Every component is a pure function of its arguments.
package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"thumbforge.studio/site/internal/icons"
	"thumbforge.studio/site/internal/nav"
)

// RatingStars is the fixed number of filled stars on every testimonial.
const RatingStars = 5

const starFill = "#f59e0b"

// Stat renders a large value over a smaller muted label.
func Stat(label, value string) g.Node {
	return Div(
		Class("text-center"),
		g.Attr("data-component", "stat"),
		P(Class("text-3xl font-bold text-gray-900"), g.Text(value)),
		P(Class("text-sm text-gray-600"), g.Text(label)),
	)
}

// Feature renders a bordered card with an icon badge above title and description.
func Feature(icon icons.Name, title, desc string) g.Node {
	return Div(
		Class("p-6 rounded-2xl border border-black/5 bg-white/70 backdrop-blur"),
		g.Attr("data-component", "feature"),
		Div(
			Class("w-10 h-10 rounded-lg bg-black text-white grid place-items-center"),
			icons.SVG(icon, 18),
		),
		H3(Class("mt-4 font-semibold text-gray-900"), g.Text(title)),
		P(Class("mt-2 text-sm text-gray-600"), g.Text(desc)),
	)
}

// PriceCardProps describes one pricing tier.
type PriceCardProps struct {
	Tier      string
	Price     string
	Items     []string
	Highlight bool
	// CTALabel defaults to "Get Started".
	CTALabel string
}

// PriceCard renders a tier with its check-marked benefits and a call to
// action that scrolls to the contact section.
func PriceCard(p PriceCardProps) g.Node {
	label := p.CTALabel
	if label == "" {
		label = "Get Started"
	}

	card := "rounded-2xl border border-black/10 bg-white/80 backdrop-blur p-6 flex flex-col"
	cta := "mt-6 inline-flex items-center justify-center rounded-md px-4 py-2 font-medium bg-gray-900 text-white hover:bg-black transition-colors"
	if p.Highlight {
		card = "rounded-2xl border border-black shadow-xl shadow-black/5 bg-white/80 backdrop-blur p-6 flex flex-col"
		cta = "mt-6 inline-flex items-center justify-center rounded-md px-4 py-2 font-medium bg-black text-white hover:bg-gray-900 transition-colors"
	}

	return Div(
		Class(card),
		g.Attr("data-component", "price-card"),
		g.Attr("data-highlighted", strconv.FormatBool(p.Highlight)),
		H3(Class("text-lg font-semibold text-gray-900"), g.Text(p.Tier)),
		P(Class("mt-2 text-4xl font-bold"), g.Text(p.Price)),
		Ul(
			Class("mt-4 space-y-2 text-sm text-gray-700"),
			g.Group(g.Map(p.Items, func(item string) g.Node {
				return Li(
					Class("flex items-start gap-2"),
					g.Attr("data-key", item),
					icons.SVG(icons.Check, 16, icons.Options{Class: "mt-0.5 text-emerald-600"}),
					Span(g.Text(item)),
				)
			})),
		),
		A(
			Href(nav.Anchor(nav.SectionContact)),
			Class(cta),
			g.Text(label),
			icons.SVG(icons.ArrowRight, 18, icons.Options{Class: "ml-2"}),
		),
	)
}

// Testimonial renders the fixed rating row, the quote and its attribution.
// The rating is decorative and never derived from a score.
func Testimonial(quote, author, role string) g.Node {
	stars := make([]g.Node, 0, RatingStars)
	for i := 0; i < RatingStars; i++ {
		stars = append(stars, Span(
			g.Attr("data-rating-star", "filled"),
			g.Attr("data-key", strconv.Itoa(i)),
			icons.SVG(icons.Star, 16, icons.Options{Class: "text-yellow-500", Fill: starFill}),
		))
	}

	return Div(
		Class("p-6 rounded-2xl bg-white/80 border border-black/5"),
		g.Attr("data-component", "testimonial"),
		Div(Class("flex items-center gap-1 text-yellow-500 mb-3"), g.Group(stars)),
		P(Class("text-gray-800"), g.Textf("“%s”", quote)),
		P(Class("mt-4 text-sm text-gray-600"), g.Textf("— %s, %s", author, role)),
	)
}

// SectionHeading is the title and intro shared by every content section.
func SectionHeading(title, intro string) g.Node {
	return Div(
		Class("max-w-2xl"),
		H2(Class("text-3xl md:text-4xl font-bold"), g.Text(title)),
		g.If(intro != "", P(Class("mt-2 text-gray-600"), g.Text(intro))),
	)
}

// Container centers content at the page width.
func Container(children ...g.Node) g.Node {
	return Div(append([]g.Node{Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8")}, children...)...)
}
