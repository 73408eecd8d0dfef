// Package templates renders the application HTML. Components are authored
// directly in Go as templ.Component values; pages share the Layout shell
// and HTMX swaps reuse the bare content components.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// HeaderData is the branding bar rendered on every full page, loaded from
// company settings by the middleware.
type HeaderData struct {
	CompanyName string
	Phone       string
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// component wraps a builder function as a templ.Component.
func component(build func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		build(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// renderInto writes a nested component into the builder. Components built
// by this package never fail outside writer errors, which the outer
// component surfaces.
func renderInto(b *strings.Builder, c templ.Component) {
	_ = c.Render(context.Background(), b)
}

// Layout wraps page content with the HTML document shell, header bar and
// toast container.
func Layout(title string, header HeaderData, content templ.Component) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
		fmt.Fprintf(b, "<title>%s</title>", esc(title))
		b.WriteString(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<link rel="stylesheet" href="/static/app.css">`)
		b.WriteString(`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`)
		b.WriteString(`<script src="/static/app.js" defer></script>`)
		b.WriteString("</head><body>")

		b.WriteString(`<header class="app-header">`)
		fmt.Fprintf(b, `<a class="brand" href="/estimates">%s</a>`, esc(header.CompanyName))
		if header.Phone != "" {
			fmt.Fprintf(b, `<span class="brand-phone">%s</span>`, esc(header.Phone))
		}
		b.WriteString(`<nav><a href="/estimates">Estimates</a><a href="/customers">Customers</a></nav>`)
		b.WriteString("</header>")

		b.WriteString(`<main id="content">`)
		renderInto(b, content)
		b.WriteString("</main>")

		b.WriteString(`<div id="toast-container"></div>`)
		b.WriteString("</body></html>")
	})
}

// statusBadge renders the colored estimate status chip.
func statusBadge(b *strings.Builder, status string) {
	fmt.Fprintf(b, `<span class="badge badge-%s">%s</span>`, esc(status), esc(status))
}
