package content

import (
	"fmt"
	"strings"

	"thumbforge.studio/site/internal/icons"
)

const (
	statCount        = 3
	placeholderCount = 6
	stepCount        = 3
	tierCount        = 3
	testimonialCount = 3
)

// ValidationError lists every deck field that breaks a layout invariant.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("content: invalid deck [%s]", strings.Join(e.fields, "; "))
}

// Fields returns a copy of the reported problems.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Validate checks the counts, keys and flags the page layout depends on.
func (d Deck) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}
	blank := func(s string) bool { return strings.TrimSpace(s) == "" }

	if blank(d.Brand) {
		add("brand: required")
	}

	if n := len(d.Hero.Stats); n != statCount {
		add("hero.stats: want %d entries, got %d", statCount, n)
	}
	for i, s := range d.Hero.Stats {
		if blank(s.Label) || blank(s.Value) {
			add("hero.stats[%d]: label and value required", i)
		}
	}

	if d.Work.PlaceholderCount != placeholderCount {
		add("work.placeholders: want %d, got %d", placeholderCount, d.Work.PlaceholderCount)
	}

	if n := len(d.Process.Steps); n != stepCount {
		add("process.steps: want %d entries, got %d", stepCount, n)
	}
	steps := map[string]struct{}{}
	for i, s := range d.Process.Steps {
		if !icons.Valid(s.Icon) {
			add("process.steps[%d].icon: unknown icon %q", i, s.Icon)
		}
		if blank(s.Title) {
			add("process.steps[%d].title: required", i)
			continue
		}
		if _, dup := steps[s.Title]; dup {
			add("process.steps[%d].title: duplicate %q", i, s.Title)
		}
		steps[s.Title] = struct{}{}
	}

	if n := len(d.Pricing.Tiers); n != tierCount {
		add("pricing.tiers: want %d entries, got %d", tierCount, n)
	}
	tiers := map[string]struct{}{}
	highlighted := 0
	for i, t := range d.Pricing.Tiers {
		switch {
		case blank(t.Name):
			add("pricing.tiers[%d].name: required", i)
		default:
			if _, dup := tiers[t.Name]; dup {
				add("pricing.tiers[%d].name: duplicate %q", i, t.Name)
			}
			tiers[t.Name] = struct{}{}
		}
		if blank(t.Price) {
			add("pricing.tiers[%d].price: required", i)
		}
		if len(t.Items) == 0 {
			add("pricing.tiers[%d].items: required", i)
		}
		items := map[string]struct{}{}
		for j, it := range t.Items {
			if blank(it) {
				add("pricing.tiers[%d].items[%d]: required", i, j)
				continue
			}
			if _, dup := items[it]; dup {
				add("pricing.tiers[%d].items[%d]: duplicate %q", i, j, it)
			}
			items[it] = struct{}{}
		}
		if t.Highlight {
			highlighted++
			if i != 0 {
				add("pricing.tiers[%d].highlight: only the first tier may be highlighted", i)
			}
		}
	}
	if highlighted != 1 {
		add("pricing.tiers: want exactly 1 highlighted tier, got %d", highlighted)
	}

	if n := len(d.Testimonials.Items); n != testimonialCount {
		add("testimonials.items: want %d entries, got %d", testimonialCount, n)
	}
	for i, t := range d.Testimonials.Items {
		if blank(t.Quote) || blank(t.Author) || blank(t.Role) {
			add("testimonials.items[%d]: quote, author and role required", i)
		}
	}

	if !strings.Contains(d.Contact.Email, "@") {
		add("contact.email: invalid %q", d.Contact.Email)
	}
	if blank(d.Footer.SystemTestHref) {
		add("footer.system_test_href: required")
	}

	if len(problems) > 0 {
		return &ValidationError{fields: problems}
	}
	return nil
}
