// Package i18n loads the site's message catalogs and picks a language for a
// request. French is the source language; English is a full translation.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

var (
	// Supported lists the site languages; the first one is the fallback.
	Supported = []language.Tag{language.French, language.English}

	matcher = language.NewMatcher(Supported)
)

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds every locale's messages and the x/text catalog built from them.
type Bundle struct {
	messages map[string]map[string]string
	cat      *catalog.Builder
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var defaultBundle = mustLoadEmbedded()

func mustLoadEmbedded() *Bundle {
	b, err := LoadFromFS(embeddedLocales)
	if err != nil {
		panic(fmt.Sprintf("i18n: load embedded locales: %v", err))
	}
	return b
}

// LoadFromFS reads locales/*.yaml from fsys. Each file's locale must match its
// file name and every supported language must be present.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	sort.Strings(paths)

	b := &Bundle{
		messages: make(map[string]map[string]string),
		cat:      catalog.NewBuilder(catalog.Fallback(Supported[0])),
	}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		var lf localeFile
		if err := yaml.Unmarshal(data, &lf); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		want := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if lf.Locale != want {
			return nil, fmt.Errorf("%s: locale %q does not match file name", p, lf.Locale)
		}
		tag, err := language.Parse(lf.Locale)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		for key, msg := range lf.Messages {
			if strings.TrimSpace(key) == "" {
				return nil, fmt.Errorf("%s: blank message key", p)
			}
			if err := b.cat.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("%s: key %q: %w", p, key, err)
			}
		}
		b.messages[lf.Locale] = lf.Messages
	}

	for _, tag := range Supported {
		if _, ok := b.messages[tag.String()]; !ok {
			return nil, fmt.Errorf("missing locale %s", tag)
		}
	}
	return b, nil
}

// Keys returns the message keys defined for locale, sorted.
func (b *Bundle) Keys(locale string) []string {
	msgs := b.messages[locale]
	out := make([]string, 0, len(msgs))
	for k := range msgs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Printer returns a printer for the supported language closest to tag.
func (b *Bundle) Printer(tag language.Tag) *Printer {
	tag = Match(tag)
	return &Printer{
		tag: tag,
		p:   message.NewPrinter(tag, message.Catalog(b.cat)),
	}
}

// Default returns the process-wide bundle built from the embedded catalogs.
func Default() *Bundle {
	return defaultBundle
}

// NewPrinter is Default().Printer(tag).
func NewPrinter(tag language.Tag) *Printer {
	return defaultBundle.Printer(tag)
}

// Printer formats catalog messages for one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// T formats the message for key. Unknown keys print as themselves.
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// Tag returns the printer's language.
func (p *Printer) Tag() language.Tag {
	return p.tag
}

// Lang returns the language as used in the html lang attribute.
func (p *Printer) Lang() string {
	return p.tag.String()
}
