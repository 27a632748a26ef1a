// Package content holds the copy deck rendered by the landing page.
//
// The deck is authored in site.yaml, compiled into the binary and decoded
// once. Nothing mutates a Deck after it has been validated.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"thumbforge.studio/site/internal/icons"
)

//go:embed site.yaml
var siteYAML []byte

// Deck is the full set of copy for the landing page.
type Deck struct {
	Brand        string       `yaml:"brand"`
	Hero         Hero         `yaml:"hero"`
	Work         Work         `yaml:"work"`
	Process      Process      `yaml:"process"`
	Pricing      Pricing      `yaml:"pricing"`
	Testimonials Testimonials `yaml:"testimonials"`
	Contact      Contact      `yaml:"contact"`
	Footer       Footer       `yaml:"footer"`
}

// Hero is the copy shown over the animated background.
type Hero struct {
	Eyebrow      string `yaml:"eyebrow"`
	Headline     string `yaml:"headline"`
	Subheadline  string `yaml:"subheadline"`
	PrimaryCTA   string `yaml:"primary_cta"`
	SecondaryCTA string `yaml:"secondary_cta"`
	Stats        []Stat `yaml:"stats"`
}

// Stat is a marketing figure.
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Work describes the portfolio grid.
type Work struct {
	Title            string `yaml:"title"`
	Intro            string `yaml:"intro"`
	PlaceholderLabel string `yaml:"placeholder_label"`
	PlaceholderNote  string `yaml:"placeholder_note"`
	PlaceholderCount int    `yaml:"placeholders"`
}

// Placeholder is a portfolio slot with no real content yet.
type Placeholder struct {
	// Index is 1-based and doubles as the rendering key.
	Index int
}

// Placeholders returns the ordered placeholder entries.
func (w Work) Placeholders() []Placeholder {
	if w.PlaceholderCount <= 0 {
		return nil
	}
	out := make([]Placeholder, 0, w.PlaceholderCount)
	for i := 1; i <= w.PlaceholderCount; i++ {
		out = append(out, Placeholder{Index: i})
	}
	return out
}

// Process is the three-step workflow explainer.
type Process struct {
	Title string    `yaml:"title"`
	Intro string    `yaml:"intro"`
	Steps []Feature `yaml:"steps"`
}

// Feature pairs an icon with a short title and description.
type Feature struct {
	Icon        icons.Name `yaml:"icon"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
}

// Pricing lists the offered tiers.
type Pricing struct {
	Title    string `yaml:"title"`
	Intro    string `yaml:"intro"`
	CTALabel string `yaml:"cta_label"`
	Tiers    []Tier `yaml:"tiers"`
}

// Tier is one pricing option.
type Tier struct {
	Name      string   `yaml:"name"`
	Price     string   `yaml:"price"`
	Items     []string `yaml:"items"`
	Highlight bool     `yaml:"highlight"`
}

// Testimonials is the client quotes section.
type Testimonials struct {
	Title string        `yaml:"title"`
	Intro string        `yaml:"intro"`
	Items []Testimonial `yaml:"items"`
}

// Testimonial is a single client quote.
type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
}

// Contact is the inquiry section copy.
type Contact struct {
	Title        string      `yaml:"title"`
	Intro        string      `yaml:"intro"`
	Email        string      `yaml:"email"`
	SocialHandle string      `yaml:"social_handle"`
	SocialURL    string      `yaml:"social_url"`
	Turnaround   string      `yaml:"turnaround"`
	Form         ContactForm `yaml:"form"`
}

// ContactForm holds form placeholders and the submit label.
type ContactForm struct {
	NamePlaceholder    string `yaml:"name_placeholder"`
	EmailPlaceholder   string `yaml:"email_placeholder"`
	ChannelPlaceholder string `yaml:"channel_placeholder"`
	DetailsPlaceholder string `yaml:"details_placeholder"`
	SubmitLabel        string `yaml:"submit_label"`
}

// Footer is the copy below the contact section.
type Footer struct {
	SystemTestLabel string `yaml:"system_test_label"`
	SystemTestHref  string `yaml:"system_test_href"`
}

// Parse strictly decodes a YAML copy deck and validates it.
func Parse(raw []byte) (Deck, error) {
	var deck Deck
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&deck); err != nil {
		if errors.Is(err, io.EOF) {
			return Deck{}, errors.New("content: empty deck")
		}
		return Deck{}, fmt.Errorf("content: decode deck: %w", err)
	}
	if err := deck.Validate(); err != nil {
		return Deck{}, err
	}
	return deck, nil
}

var loadDefault = sync.OnceValues(func() (Deck, error) {
	return Parse(siteYAML)
})

// Default returns the embedded deck. It is decoded on first use only.
func Default() (Deck, error) {
	return loadDefault()
}
