package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// ForPage fills Open Graph and Twitter fields from the base title and
// description. baseURL may be empty, in which case no canonical is emitted.
func ForPage(siteName, title, description, baseURL string) Meta {
	canonical := ""
	if u := strings.TrimSpace(baseURL); u != "" {
		canonical = strings.TrimRight(u, "/") + "/"
	}
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		Robots:      "index,follow",
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Type:        "website",
			URL:         canonical,
			SiteName:    siteName,
		},
		Twitter: Twitter{Card: "summary_large_image"},
	}
}
