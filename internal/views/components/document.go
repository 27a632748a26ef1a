package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"thumbforge.studio/site/internal/seo"
)

const (
	// TailwindRuntime styles the utility classes in the browser; there is no CSS build step.
	TailwindRuntime = "https://cdn.tailwindcss.com"
	defaultAssets   = "/assets"
)

// DocumentProps configures the HTML shell.
type DocumentProps struct {
	Lang      string
	Meta      seo.Meta
	BodyClass string
	// AssetBase prefixes bundled asset URLs. Defaults to /assets.
	AssetBase string
	// Head holds extra nodes appended to <head>.
	Head []g.Node
}

// Document renders a full HTML5 page around body.
func Document(p DocumentProps, body ...g.Node) g.Node {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}
	assets := strings.TrimRight(p.AssetBase, "/")
	if assets == "" {
		assets = defaultAssets
	}
	m := p.Meta

	head := []g.Node{
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		g.El("title", g.Text(m.Title)),
		g.If(m.Description != "", Meta(Name("description"), Content(m.Description))),
		g.If(m.Robots != "", Meta(Name("robots"), Content(m.Robots))),
		g.If(m.Canonical != "", Link(Rel("canonical"), Href(m.Canonical))),
		property("og:title", m.OG.Title),
		property("og:description", m.OG.Description),
		property("og:type", m.OG.Type),
		property("og:url", m.OG.URL),
		property("og:site_name", m.OG.SiteName),
		property("og:image", m.OG.Image),
		named("twitter:card", m.Twitter.Card),
		named("twitter:site", m.Twitter.Site),
		named("twitter:image", m.Twitter.Image),
		Link(Rel("icon"), Type("image/svg+xml"), Href(assets+"/favicon.svg")),
		Script(Src(TailwindRuntime)),
		Script(Src(assets+"/js/site.js"), g.Attr("defer")),
	}
	for _, ld := range m.JSONLD {
		if ld == "" {
			continue
		}
		head = append(head, Script(Type("application/ld+json"), g.Raw(ld)))
	}
	head = append(head, p.Head...)

	return Doctype(
		HTML(
			Lang(lang),
			Head(head...),
			Body(append([]g.Node{g.If(p.BodyClass != "", Class(p.BodyClass))}, body...)...),
		),
	)
}

func property(name, value string) g.Node {
	if value == "" {
		return nil
	}
	return Meta(g.Attr("property", name), Content(value))
}

func named(name, value string) g.Node {
	if value == "" {
		return nil
	}
	return Meta(Name(name), Content(value))
}
