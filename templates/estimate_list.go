package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// EstimateListItem is one row of the estimates table.
type EstimateListItem struct {
	ID           string
	Title        string
	Number       string
	CustomerName string
	Status       string
	TierLabel    string
	CreatedDate  string
	GrandTotal   string
	ItemCount    int
}

// EstimateListData feeds the estimates list page.
type EstimateListData struct {
	Items          []EstimateListItem
	TotalEstimates int
	SumGrandTotal  string
}

// EstimateListContent renders the table alone, for HTMX swaps.
func EstimateListContent(data EstimateListData) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<div class="page-head"><h1>Estimates</h1>`)
		b.WriteString(`<a class="btn btn-primary" href="/estimates/create">New Estimate</a></div>`)

		if len(data.Items) == 0 {
			b.WriteString(`<p class="empty-state">No estimates yet. Create the first one to get started.</p>`)
			return
		}

		b.WriteString(`<table class="data-table"><thead><tr>`)
		b.WriteString("<th>Estimate</th><th>Customer</th><th>Status</th><th>Tier</th><th>Created</th><th>Items</th><th class=\"num\">Total</th><th></th>")
		b.WriteString("</tr></thead><tbody>")

		for _, item := range data.Items {
			b.WriteString("<tr>")
			fmt.Fprintf(b, `<td><a href="/estimates/%s">%s</a><span class="muted"> %s</span></td>`,
				esc(item.ID), esc(item.Title), esc(item.Number))
			fmt.Fprintf(b, "<td>%s</td>", esc(item.CustomerName))
			b.WriteString("<td>")
			statusBadge(b, item.Status)
			b.WriteString("</td>")
			fmt.Fprintf(b, "<td>%s</td>", esc(item.TierLabel))
			fmt.Fprintf(b, "<td>%s</td>", esc(item.CreatedDate))
			fmt.Fprintf(b, "<td>%d</td>", item.ItemCount)
			fmt.Fprintf(b, `<td class="num">%s</td>`, esc(item.GrandTotal))
			fmt.Fprintf(b, `<td><button class="btn btn-sm btn-danger" hx-delete="/estimates/%s" hx-confirm="Delete this estimate?">Delete</button></td>`,
				esc(item.ID))
			b.WriteString("</tr>")
		}

		b.WriteString("</tbody><tfoot><tr>")
		fmt.Fprintf(b, `<td colspan="6">%d estimate(s)</td><td class="num">%s</td><td></td>`,
			data.TotalEstimates, esc(data.SumGrandTotal))
		b.WriteString("</tr></tfoot></table>")
	})
}

// EstimateListPage renders the full list page.
func EstimateListPage(data EstimateListData, header HeaderData) templ.Component {
	return Layout("Estimates", header, EstimateListContent(data))
}
