package icons

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestEveryKnownIconRenders(t *testing.T) {
	t.Parallel()

	for _, name := range All {
		require.True(t, Valid(name), "icon %s must be valid", name)

		var buf bytes.Buffer
		require.NoError(t, SVG(name, 18).Render(&buf))

		doc, err := goquery.NewDocumentFromReader(&buf)
		require.NoError(t, err)

		svg := doc.Find("svg")
		require.Equal(t, 1, svg.Length(), "icon %s renders one svg", name)
		require.Equal(t, "18", svg.AttrOr("width", ""))
		require.Equal(t, string(name), svg.AttrOr("data-icon", ""))
		require.Greater(t, svg.Children().Length(), 0, "icon %s has shapes", name)
	}
}

func TestUnknownIconRendersNothing(t *testing.T) {
	t.Parallel()

	require.False(t, Valid("sparkle"))
	require.Nil(t, SVG("sparkle", 16))
}

func TestSVGOptions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, SVG(Star, 16, Options{Class: "text-yellow-500", Fill: "#f59e0b"}).Render(&buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	svg := doc.Find("svg")
	require.Equal(t, "#f59e0b", svg.AttrOr("fill", ""))
	require.Contains(t, svg.AttrOr("class", ""), "text-yellow-500")
	require.Contains(t, svg.AttrOr("class", ""), "lucide-star")
}
