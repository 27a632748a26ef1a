package landing

import (
	"strings"
	"time"

	"thumbforge.studio/site/internal/content"
	"thumbforge.studio/site/internal/nav"
	"thumbforge.studio/site/internal/seo"
)

// DefaultSceneURL is the hosted interactive scene behind the hero.
const DefaultSceneURL = "https://prod.spline.design/xzUirwcZB9SOxUWt/scene.splinecode"

// Site carries deployment-level settings that are not part of the copy deck.
type Site struct {
	BaseURL   string
	SceneURL  string
	AssetBase string
}

// PageData is the view model for the landing page.
type PageData struct {
	Deck     content.Deck
	Year     int
	Nav      []nav.Item
	CTA      nav.Item
	SEO      seo.Meta
	SceneURL string
	Assets   string
}

// BuildPageData fixes the footer year from now and prepares head metadata.
func BuildPageData(deck content.Deck, site Site, now time.Time) PageData {
	scene := strings.TrimSpace(site.SceneURL)
	if scene == "" {
		scene = DefaultSceneURL
	}

	meta := seo.ForPage(deck.Brand, deck.Brand+" – "+deck.Hero.Headline, deck.Hero.Subheadline, site.BaseURL)
	offers := make([]seo.Offer, 0, len(deck.Pricing.Tiers))
	for _, t := range deck.Pricing.Tiers {
		offers = append(offers, seo.Offer{Name: t.Name, Price: t.Price, Items: t.Items})
	}
	meta.JSONLD = []string{
		seo.JSON(seo.Organization(deck.Brand, meta.Canonical, deck.Contact.Email)),
		seo.JSON(seo.Service(deck.Brand, meta.Canonical, offers)),
	}

	return PageData{
		Deck:     deck,
		Year:     now.Year(),
		Nav:      nav.Build(),
		CTA:      nav.CTA,
		SEO:      meta,
		SceneURL: scene,
		Assets:   site.AssetBase,
	}
}
