package testutil

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewServerRendersWithFixedClock(t *testing.T) {
	t.Parallel()

	clock := func() time.Time { return time.Date(2030, time.July, 4, 0, 0, 0, 0, time.UTC) }
	ts := NewServer(t, WithClock(clock), WithBaseURL("https://example.com"))

	resp, err := ts.Client().Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := ParseHTML(t, body)
	require.Equal(t, "© 2030 ThumbForge Studio. All rights reserved.", doc.Find("[data-copyright]").Text())
	require.Equal(t, "https://example.com/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
}

func TestParseHTMLToleratesFragments(t *testing.T) {
	t.Parallel()

	doc := ParseHTML(t, []byte(`<p data-x="1">hi</p>`))
	require.Equal(t, "hi", doc.Find(`[data-x="1"]`).Text())
}
