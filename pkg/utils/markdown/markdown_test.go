package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkdown_Render_Empty(t *testing.T) {
	md := &Markdown{}
	require.Equal(t, "", string(md.Render()))
}

func TestMarkdown_Render_Sanitizes(t *testing.T) {
	md := &Markdown{Source: "hello <script>alert(1)</script> **world**"}

	html := string(md.Render())
	require.NotContains(t, strings.ToLower(html), "<script")
	require.Contains(t, html, "<strong>world</strong>")

	// caching path
	html2 := string(md.Render())
	require.Equal(t, html, html2)
}

func TestInline_StripsParagraph(t *testing.T) {
	out := string(Inline("gérez *toutes* vos inscriptions"))
	require.False(t, strings.HasPrefix(out, "<p>"))
	require.False(t, strings.HasSuffix(out, "</p>"))
	require.Contains(t, out, "<em>toutes</em>")
	require.Equal(t, out, string(Inline("gérez *toutes* vos inscriptions")))
}

func TestInline_CatalogFeatureDescription(t *testing.T) {
	out := string(Inline("Build custom forms and manage **all your registrations** in one place."))
	require.Equal(t, "Build custom forms and manage <strong>all your registrations</strong> in one place.", out)
}
