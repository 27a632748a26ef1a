// Package icons renders the small set of outline icons used across the site.
// Each Name is dispatched to a fixed SVG drawing; there is no icon registry.
package icons

import (
	"slices"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
)

// Name identifies an icon drawing.
type Name string

const (
	Camera        Name = "camera"
	Sparkles      Name = "sparkles"
	ArrowRight    Name = "arrow-right"
	Star          Name = "star"
	Shield        Name = "shield"
	Rocket        Name = "rocket"
	Check         Name = "check"
	Mail          Name = "mail"
	Instagram     Name = "instagram"
	MessageSquare Name = "message-square"
)

// All lists every known icon in declaration order.
var All = []Name{Camera, Sparkles, ArrowRight, Star, Shield, Rocket, Check, Mail, Instagram, MessageSquare}

// Valid reports whether name has a drawing.
func Valid(name Name) bool {
	return slices.Contains(All, name)
}

// Options tweaks the outer <svg> element.
type Options struct {
	Class string
	// Fill paints the shape interior; empty keeps the outline style.
	Fill string
}

// SVG renders the icon at size pixels. Unknown names render nothing.
func SVG(name Name, size int, opts ...Options) g.Node {
	if !Valid(name) {
		return nil
	}
	body := shapes(name)
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	fill := o.Fill
	if fill == "" {
		fill = "none"
	}
	px := strconv.Itoa(size)
	class := strings.TrimSpace("lucide lucide-" + string(name) + " " + o.Class)

	attrs := []g.Node{
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", px),
		g.Attr("height", px),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", fill),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("class", class),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-icon", string(name)),
	}
	return g.El("svg", append(attrs, body...)...)
}

func path(d string) g.Node {
	return g.El("path", g.Attr("d", d))
}

func shapes(name Name) []g.Node {
	switch name {
	case Camera:
		return []g.Node{
			path("M14.5 4h-5L7 7H4a2 2 0 0 0-2 2v9a2 2 0 0 0 2 2h16a2 2 0 0 0 2-2V9a2 2 0 0 0-2-2h-3l-2.5-3z"),
			g.El("circle", g.Attr("cx", "12"), g.Attr("cy", "13"), g.Attr("r", "3")),
		}
	case Sparkles:
		return []g.Node{
			path("m12 3-1.912 5.813a2 2 0 0 1-1.275 1.275L3 12l5.813 1.912a2 2 0 0 1 1.275 1.275L12 21l1.912-5.813a2 2 0 0 1 1.275-1.275L21 12l-5.813-1.912a2 2 0 0 1-1.275-1.275L12 3Z"),
			path("M5 3v4"),
			path("M19 17v4"),
			path("M3 5h4"),
			path("M17 19h4"),
		}
	case ArrowRight:
		return []g.Node{path("M5 12h14"), path("m12 5 7 7-7 7")}
	case Star:
		return []g.Node{
			g.El("polygon", g.Attr("points", "12 2 15.09 8.26 22 9.27 17 14.14 18.18 21.02 12 17.77 5.82 21.02 7 14.14 2 9.27 8.91 8.26 12 2")),
		}
	case Shield:
		return []g.Node{path("M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z")}
	case Rocket:
		return []g.Node{
			path("M4.5 16.5c-1.5 1.26-2 5-2 5s3.74-.5 5-2c.71-.84.7-2.13-.09-2.91a2.18 2.18 0 0 0-2.91-.09z"),
			path("m12 15-3-3a22 22 0 0 1 2-3.95A12.88 12.88 0 0 1 22 2c0 2.72-.78 7.5-6 11a22.35 22.35 0 0 1-4 2z"),
			path("M9 12H4s.55-3.03 2-4c1.62-1.08 5 0 5 0"),
			path("M12 15v5s3.03-.55 4-2c1.08-1.62 0-5 0-5"),
		}
	case Check:
		return []g.Node{path("M20 6 9 17l-5-5")}
	case Mail:
		return []g.Node{
			g.El("rect", g.Attr("width", "20"), g.Attr("height", "16"), g.Attr("x", "2"), g.Attr("y", "4"), g.Attr("rx", "2")),
			path("m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"),
		}
	case Instagram:
		return []g.Node{
			g.El("rect", g.Attr("width", "20"), g.Attr("height", "20"), g.Attr("x", "2"), g.Attr("y", "2"), g.Attr("rx", "5"), g.Attr("ry", "5")),
			path("M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"),
			g.El("line", g.Attr("x1", "17.5"), g.Attr("x2", "17.51"), g.Attr("y1", "6.5"), g.Attr("y2", "6.5")),
		}
	case MessageSquare:
		return []g.Node{path("M21 15a2 2 0 0 1-2 2H7l-4 4V5a2 2 0 0 1 2-2h14a2 2 0 0 1 2 2z")}
	default:
		return nil
	}
}
