package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// TierColumn is one good/better/best option in the comparison view.
type TierColumn struct {
	EstimateID string
	TierLabel  string
	Title      string
	Number     string
	Status     string
	ItemNames  []string
	Subtotal   string
	GrandTotal string
}

// TiersData feeds the tier comparison page for one tier group.
type TiersData struct {
	TierGroup    string
	CustomerName string
	Columns      []TierColumn
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TiersContent renders the side-by-side comparison alone, for HTMX swaps.
func TiersContent(data TiersData) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<div class="page-head"><h1>Tier Comparison</h1></div>`)
		fmt.Fprintf(b, `<p class="subhead">%s</p>`, esc(data.CustomerName))

		if len(data.Columns) == 0 {
			b.WriteString(`<p class="empty-state">No estimates in this tier group.</p>`)
			return
		}

		b.WriteString(`<div class="tier-columns">`)
		for _, col := range data.Columns {
			fmt.Fprintf(b, `<div class="tier-column tier-%s">`, esc(col.TierLabel))
			fmt.Fprintf(b, `<div class="tier-label">%s</div>`, esc(titleCase(col.TierLabel)))
			fmt.Fprintf(b, `<h2><a href="/estimates/%s">%s</a></h2>`, esc(col.EstimateID), esc(col.Title))
			fmt.Fprintf(b, `<p class="muted">%s</p>`, esc(col.Number))
			statusBadge(b, col.Status)
			b.WriteString(`<ul class="tier-items">`)
			for _, name := range col.ItemNames {
				fmt.Fprintf(b, "<li>%s</li>", esc(name))
			}
			b.WriteString("</ul>")
			fmt.Fprintf(b, `<div class="tier-total">%s</div>`, esc(col.GrandTotal))
			fmt.Fprintf(b, `<a class="btn" href="/estimates/%s/preview?view=customer">Preview</a>`, esc(col.EstimateID))
			b.WriteString("</div>")
		}
		b.WriteString("</div>")
	})
}

// TiersPage renders the full tier comparison page.
func TiersPage(data TiersData, header HeaderData) templ.Component {
	return Layout("Tier Comparison", header, TiersContent(data))
}
