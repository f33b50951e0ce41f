package markdown

import (
	"bytes"
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// Markdown wraps markdown source code and provides methods to render it.
// Catalog messages such as the feature card descriptions and the consent
// notice are written in markdown.
type Markdown struct {
	// Source is the markdown source code.
	Source string
	// renderedHTML caches the sanitized HTML rendered from the source.
	renderedHTML *template.HTML
}

var (
	bfRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.HrefTargetBlank | blackfriday.Smartypants | blackfriday.SmartypantsAngledQuotes | blackfriday.SmartypantsQuotesNBSP,
	})
	bfExtensions = blackfriday.NoIntraEmphasis | blackfriday.Autolink | blackfriday.Strikethrough | blackfriday.NoEmptyLineBeforeBlock
	policy       = bluemonday.UGCPolicy()

	inlineCache sync.Map // source string -> template.HTML
)

// Render converts the Markdown Source into sanitized HTML.
func (m *Markdown) Render() template.HTML {
	if m.renderedHTML != nil {
		return *m.renderedHTML
	}

	out := blackfriday.Run([]byte(m.Source),
		blackfriday.WithRenderer(bfRenderer),
		blackfriday.WithExtensions(bfExtensions),
	)
	html := template.HTML(bytes.TrimSpace(policy.SanitizeBytes(out)))
	m.renderedHTML = &html
	return html
}

// Inline renders a single line of markdown without the wrapping paragraph,
// for use inside an existing <p> or <span>. Results are cached per source.
func Inline(source string) template.HTML {
	if v, ok := inlineCache.Load(source); ok {
		return v.(template.HTML)
	}
	md := &Markdown{Source: source}
	out := md.Render()
	out = template.HTML(bytes.TrimSuffix(bytes.TrimPrefix([]byte(out), []byte("<p>")), []byte("</p>")))
	inlineCache.Store(source, out)
	return out
}
