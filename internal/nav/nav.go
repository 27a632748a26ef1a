package nav

// Section identifiers exposed by the landing page. Header links and calls to
// action target these ids and nothing else.
const (
	SectionHero         = "hero"
	SectionWork         = "work"
	SectionProcess      = "process"
	SectionPricing      = "pricing"
	SectionTestimonials = "testimonials"
	SectionContact      = "contact"
)

// Sections lists every section id in page order.
var Sections = []string{
	SectionHero,
	SectionWork,
	SectionProcess,
	SectionPricing,
	SectionTestimonials,
	SectionContact,
}

// Item is a header link to an in-page section.
type Item struct {
	Section string
	Label   string
}

// Href returns the fragment link for the item.
func (i Item) Href() string { return Anchor(i.Section) }

// Main is the header navigation, in display order.
var Main = []Item{
	{Section: SectionWork, Label: "Work"},
	{Section: SectionPricing, Label: "Pricing"},
	{Section: SectionProcess, Label: "Process"},
	{Section: SectionTestimonials, Label: "Testimonials"},
}

// CTA is the highlighted header call to action.
var CTA = Item{Section: SectionContact, Label: "Get a Quote"}

// Anchor builds the fragment href for a section id.
func Anchor(section string) string {
	return "#" + section
}

// Build returns a copy of the header items so callers cannot alter Main.
func Build() []Item {
	items := make([]Item, len(Main))
	copy(items, Main)
	return items
}
