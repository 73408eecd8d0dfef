package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// LineItemRow is one formatted row of the estimate detail table.
type LineItemRow struct {
	ID        string
	Name      string
	Desc      string
	ItemType  string
	Qty       string
	Unit      string
	UnitCost  string
	LineTotal string
}

// TotalsView is the formatted cost rollup block.
type TotalsView struct {
	MaterialTotal string
	LaborTotal    string
	Subtotal      string
	Markup        string
	Tax           string
	GrandTotal    string
	Commission    string
	ShowBreakdown bool
}

// EstimateViewData feeds the estimate detail page.
type EstimateViewData struct {
	ID             string
	Title          string
	Number         string
	Status         string
	CustomerName   string
	CreatedDate    string
	TierGroup      string
	TierLabel      string
	Items          []LineItemRow
	Totals         TotalsView
	HasMeasurement bool
	PhotoCount     int
	AttachCount    int
	PortalURL      string
}

// EstimateViewContent renders the detail body alone, for HTMX swaps.
func EstimateViewContent(data EstimateViewData) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<div class="page-head">`)
		fmt.Fprintf(b, "<h1>%s <span class=\"muted\">%s</span></h1>", esc(data.Title), esc(data.Number))
		statusBadge(b, data.Status)
		b.WriteString("</div>")

		fmt.Fprintf(b, `<p class="subhead">%s &middot; created %s</p>`, esc(data.CustomerName), esc(data.CreatedDate))

		b.WriteString(`<div class="toolbar">`)
		fmt.Fprintf(b, `<a class="btn" href="/estimates/%s/edit">Edit</a>`, esc(data.ID))
		fmt.Fprintf(b, `<a class="btn" href="/estimates/%s/preview?view=internal">Preview</a>`, esc(data.ID))
		fmt.Fprintf(b, `<a class="btn" href="/estimates/%s/export/pdf">Download PDF</a>`, esc(data.ID))
		fmt.Fprintf(b, `<a class="btn" href="/estimates/%s/export/excel">Download Excel</a>`, esc(data.ID))
		if data.TierGroup != "" {
			fmt.Fprintf(b, `<a class="btn" href="/estimates/%s/tiers">Compare Tiers</a>`, esc(data.ID))
		}
		if data.PortalURL != "" {
			fmt.Fprintf(b, `<a class="btn" href="%s">Customer Portal</a>`, esc(data.PortalURL))
		}
		fmt.Fprintf(b, `<form class="inline-form" hx-post="/estimates/%s/duplicate" hx-target="#content">`, esc(data.ID))
		b.WriteString(`<select name="tier_label"><option value="better">better</option><option value="good">good</option><option value="best">best</option></select>`)
		b.WriteString(`<button type="submit" class="btn btn-sm">Duplicate as Tier</button></form>`)
		b.WriteString("</div>")

		b.WriteString("<h2>Line Items</h2>")
		if len(data.Items) == 0 {
			b.WriteString(`<p class="empty-state">No line items yet.</p>`)
		} else {
			b.WriteString(`<table class="data-table" id="line-items"><thead><tr>`)
			b.WriteString("<th>Item</th><th>Type</th><th class=\"num\">Qty</th><th>Unit</th><th class=\"num\">Unit Cost</th><th class=\"num\">Total</th><th></th>")
			b.WriteString("</tr></thead><tbody>")
			for _, item := range data.Items {
				fmt.Fprintf(b, `<tr id="item-%s">`, esc(item.ID))
				fmt.Fprintf(b, "<td>%s", esc(item.Name))
				if item.Desc != "" {
					fmt.Fprintf(b, `<span class="muted"> - %s</span>`, esc(item.Desc))
				}
				b.WriteString("</td>")
				fmt.Fprintf(b, "<td>%s</td>", esc(item.ItemType))
				fmt.Fprintf(b, `<td class="num">%s</td>`, esc(item.Qty))
				fmt.Fprintf(b, "<td>%s</td>", esc(item.Unit))
				fmt.Fprintf(b, `<td class="num">%s</td>`, esc(item.UnitCost))
				fmt.Fprintf(b, `<td class="num">%s</td>`, esc(item.LineTotal))
				fmt.Fprintf(b, `<td><button class="btn btn-sm btn-danger" hx-delete="/estimates/%s/line-items/%s" hx-target="#content">Remove</button></td>`,
					esc(data.ID), esc(item.ID))
				b.WriteString("</tr>")
			}
			b.WriteString("</tbody></table>")
		}

		fmt.Fprintf(b, `<form class="inline-form" hx-post="/estimates/%s/line-items" hx-target="#content">`, esc(data.ID))
		b.WriteString(`<input type="text" name="name" placeholder="Item name" required>`)
		b.WriteString(`<select name="item_type"><option value="material">material</option><option value="labor">labor</option></select>`)
		b.WriteString(`<input type="number" step="0.01" name="qty" placeholder="Qty" required>`)
		b.WriteString(`<input type="text" name="unit" placeholder="Unit" required>`)
		b.WriteString(`<input type="number" step="0.01" name="unit_cost" placeholder="Unit cost" required>`)
		b.WriteString(`<button type="submit" class="btn btn-sm">Add Item</button></form>`)

		b.WriteString(`<div class="totals-card"><h2>Totals</h2><dl>`)
		if data.Totals.ShowBreakdown {
			fmt.Fprintf(b, "<dt>Materials</dt><dd>%s</dd>", esc(data.Totals.MaterialTotal))
			fmt.Fprintf(b, "<dt>Labor</dt><dd>%s</dd>", esc(data.Totals.LaborTotal))
			fmt.Fprintf(b, "<dt>Subtotal</dt><dd>%s</dd>", esc(data.Totals.Subtotal))
			fmt.Fprintf(b, "<dt>Markup</dt><dd>%s</dd>", esc(data.Totals.Markup))
		}
		fmt.Fprintf(b, "<dt>Tax</dt><dd>%s</dd>", esc(data.Totals.Tax))
		fmt.Fprintf(b, `<dt class="grand">Total</dt><dd class="grand">%s</dd>`, esc(data.Totals.GrandTotal))
		if data.Totals.ShowBreakdown {
			fmt.Fprintf(b, "<dt>Commission</dt><dd>%s</dd>", esc(data.Totals.Commission))
		}
		b.WriteString("</dl></div>")

		b.WriteString(`<div class="section-cards">`)
		fmt.Fprintf(b, `<a class="card" href="/estimates/%s/measurements">Measurements%s</a>`,
			esc(data.ID), measurementHint(data.HasMeasurement))
		fmt.Fprintf(b, `<a class="card" href="/estimates/%s/photos">Photos (%d)</a>`, esc(data.ID), data.PhotoCount)
		fmt.Fprintf(b, `<a class="card" href="/estimates/%s/attachments">Attachments (%d)</a>`, esc(data.ID), data.AttachCount)
		b.WriteString("</div>")
	})
}

func measurementHint(has bool) string {
	if has {
		return " &check;"
	}
	return ""
}

// EstimateViewPage renders the full detail page.
func EstimateViewPage(data EstimateViewData, header HeaderData) templ.Component {
	return Layout(data.Title, header, EstimateViewContent(data))
}
