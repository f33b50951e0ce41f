// Package templates renders the site's pages and SSE fragments. Markup is
// built with gomponents and exposed as templ components so handlers and
// Datastar patches share one render contract.
package templates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// component adapts a gomponents tree to templ.Component.
func component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// Datastar attribute helpers.

func dsSignals(v any) g.Node {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("templates: marshal signals: %v", err))
	}
	return g.Attr("data-signals", string(b))
}

func dsOn(event, expr string) g.Node {
	return g.Attr("data-on:"+event, expr)
}

func dsShow(expr string) g.Node {
	return g.Attr("data-show", expr)
}

func dsBind(signal string) g.Node {
	return g.Attr("data-bind:" + signal)
}

func dsAttr(name, expr string) g.Node {
	return g.Attr("data-attr:"+name, expr)
}

func dsIndicator(signal string) g.Node {
	return g.Attr("data-indicator:" + signal)
}

func dsInit(expr string) g.Node {
	return g.Attr("data-init", expr)
}

// dsClass toggles classes on and off with cond.
func dsClass(cond, on, off string) g.Node {
	return g.Attr("data-class", fmt.Sprintf("{%s: %s, %s: !(%s)}", jsString(on), cond, jsString(off), cond))
}

func jsString(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}
