package components

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"thumbforge.studio/site/internal/icons"
	"thumbforge.studio/site/internal/seo"
)

func render(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestStatShowsValueOverLabel(t *testing.T) {
	t.Parallel()

	doc := render(t, Stat("Avg. CTR Lift", "+32%"))

	paras := doc.Find(`[data-component="stat"] p`)
	require.Equal(t, 2, paras.Length())
	require.Equal(t, "+32%", paras.Eq(0).Text())
	require.Equal(t, "Avg. CTR Lift", paras.Eq(1).Text())
	require.Contains(t, paras.Eq(1).AttrOr("class", ""), "text-gray-600")
}

func TestFeatureRendersIconBadge(t *testing.T) {
	t.Parallel()

	doc := render(t, Feature(icons.Rocket, "Brief & moodboard", "We align on goals."))

	card := doc.Find(`[data-component="feature"]`)
	require.Equal(t, 1, card.Length())
	require.Equal(t, 1, card.Find(`svg[data-icon="rocket"]`).Length())
	require.Equal(t, "Brief & moodboard", card.Find("h3").Text())
	require.Equal(t, "We align on goals.", card.Find("p").Text())
}

func TestPriceCardVariants(t *testing.T) {
	t.Parallel()

	items := []string{"1 concept + 1 revision", "Delivery in 24–48h"}

	highlighted := render(t, PriceCard(PriceCardProps{Tier: "Single Thumbnail", Price: "$35", Items: items, Highlight: true}))
	card := highlighted.Find(`[data-component="price-card"]`)
	require.Equal(t, "true", card.AttrOr("data-highlighted", ""))
	require.Contains(t, card.AttrOr("class", ""), "border-black shadow-xl")
	require.Equal(t, "Single Thumbnail", card.Find("h3").Text())
	require.Equal(t, "$35", card.Find("p").First().Text())

	lis := card.Find("li")
	require.Equal(t, 2, lis.Length())
	lis.Each(func(i int, li *goquery.Selection) {
		require.Equal(t, items[i], strings.TrimSpace(li.Text()))
		require.Equal(t, 1, li.Find(`svg[data-icon="check"]`).Length(), "benefit prefixed with a check")
	})

	cta := card.Find("a")
	require.Equal(t, "#contact", cta.AttrOr("href", ""))
	require.Equal(t, "Get Started", strings.TrimSpace(cta.Text()))

	plain := render(t, PriceCard(PriceCardProps{Tier: "Creator Pack", Price: "$149 / 5", Items: items, CTALabel: "Book"}))
	card = plain.Find(`[data-component="price-card"]`)
	require.Equal(t, "false", card.AttrOr("data-highlighted", ""))
	require.NotContains(t, card.AttrOr("class", ""), "shadow-xl")
	require.Contains(t, card.AttrOr("class", ""), "border-black/10")
	require.Equal(t, "Book", strings.TrimSpace(card.Find("a").Text()))
}

func TestTestimonialAlwaysHasFiveFilledStars(t *testing.T) {
	t.Parallel()

	for _, quote := range []string{"", "Short.", strings.Repeat("long ", 50)} {
		doc := render(t, Testimonial(quote, "Maya", "Tech Creator"))

		stars := doc.Find(`[data-rating-star="filled"]`)
		require.Equal(t, RatingStars, stars.Length())
		stars.Each(func(_ int, s *goquery.Selection) {
			require.Equal(t, starFill, s.Find("svg").AttrOr("fill", ""))
		})

		paras := doc.Find(`[data-component="testimonial"] > p`)
		require.Equal(t, "“"+quote+"”", paras.Eq(0).Text())
		require.Equal(t, "— Maya, Tech Creator", paras.Eq(1).Text())
	}
}

func TestTextIsEscaped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Stat("<b>label</b>", "1").Render(&buf))
	require.NotContains(t, buf.String(), "<b>")
}

func TestSectionHeadingOmitsEmptyIntro(t *testing.T) {
	t.Parallel()

	doc := render(t, SectionHeading("Simple pricing", ""))
	require.Equal(t, "Simple pricing", doc.Find("h2").Text())
	require.Equal(t, 0, doc.Find("p").Length())
}

func TestDocumentHead(t *testing.T) {
	t.Parallel()

	meta := seo.ForPage("ThumbForge Studio", "ThumbForge Studio", "Thumbnails", "https://thumbforge.studio")
	meta.JSONLD = []string{seo.JSON(seo.Organization("ThumbForge Studio", "", ""))}

	doc := render(t, Document(DocumentProps{Meta: meta, BodyClass: "min-h-screen"}, g.El("div")))

	require.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "ThumbForge Studio", doc.Find("title").Text())
	require.Equal(t, "Thumbnails", doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	require.Equal(t, "https://thumbforge.studio/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, "website", doc.Find(`meta[property="og:type"]`).AttrOr("content", ""))
	require.Equal(t, 0, doc.Find(`meta[property="og:image"]`).Length(), "empty og fields are skipped")
	require.Equal(t, 1, doc.Find(`script[src="/assets/js/site.js"]`).Length())
	require.Equal(t, 1, doc.Find(`script[type="application/ld+json"]`).Length())
	require.Equal(t, "min-h-screen", doc.Find("body").AttrOr("class", ""))
}
