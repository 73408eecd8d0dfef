package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"roofcrm/services"
)

// PreviewPage renders an assembled document plan as fixed-size page divs.
// It is the on-screen twin of the PDF: same plan, same section order, same
// header and footer decoration per page.
func PreviewPage(data services.DocumentData, view string, estimateID string, header HeaderData) templ.Component {
	content := component(func(b *strings.Builder) {
		b.WriteString(`<div class="preview-toolbar">`)
		fmt.Fprintf(b, `<a class="btn" href="/estimates/%s">Back to Estimate</a>`, esc(estimateID))
		otherView, otherLabel := "internal", "Internal View"
		if view == "internal" {
			otherView, otherLabel = "customer", "Customer View"
		}
		fmt.Fprintf(b, `<a class="btn" href="/estimates/%s/preview?view=%s">%s</a>`, esc(estimateID), otherView, otherLabel)
		fmt.Fprintf(b, `<a class="btn btn-primary" href="/estimates/%s/export/pdf?view=%s">Download PDF</a>`, esc(estimateID), esc(view))
		b.WriteString("</div>")

		b.WriteString(`<div class="preview-pages">`)
		for _, spec := range data.Plan.Pages {
			previewPage(b, spec, data)
		}
		b.WriteString("</div>")
	})
	return Layout("Preview "+data.EstimateNumber, header, content)
}

func previewPage(b *strings.Builder, spec services.PageSpec, data services.DocumentData) {
	frame := services.BuildPageFrame(spec, data.Company, data.EstimateNumber, data.DateLabel, data.Options)

	fmt.Fprintf(b, `<div class="doc-page doc-page-%s"`, esc(string(spec.Kind)))
	if frame.SignatureMarker {
		b.WriteString(` data-signature-page="true"`)
	}
	b.WriteString(">")

	if frame.ShowHeader {
		b.WriteString(`<div class="doc-header">`)
		fmt.Fprintf(b, `<span class="doc-company">%s</span>`, esc(frame.CompanyName))
		if frame.LicenseNumber != "" {
			fmt.Fprintf(b, `<span class="doc-license">Lic. %s</span>`, esc(frame.LicenseNumber))
		}
		fmt.Fprintf(b, `<span class="doc-number">%s &middot; %s</span>`, esc(frame.EstimateNumber), esc(frame.DateLabel))
		b.WriteString("</div>")
	}

	b.WriteString(`<div class="doc-body">`)
	switch spec.Kind {
	case services.PageKindCover:
		previewCover(b, data)
	case services.PageKindItems:
		previewItems(b, spec, data)
	case services.PageKindWarranty:
		previewTextSection(b, "Warranty", data.WarrantyText)
	case services.PageKindMeasurement:
		previewMeasurement(b, data.Measurement)
	case services.PageKindPhotos:
		previewPhotos(b, spec)
	case services.PageKindAttachment:
		previewAttachment(b, spec)
	}
	b.WriteString("</div>")

	if frame.ShowFooter {
		b.WriteString(`<div class="doc-footer">`)
		if len(frame.Locations) > 0 {
			fmt.Fprintf(b, `<span class="doc-locations">%s</span>`, esc(strings.Join(frame.Locations, " | ")))
		}
		if frame.LegalLine != "" {
			fmt.Fprintf(b, `<span class="doc-legal">%s</span>`, esc(frame.LegalLine))
		}
		if frame.PageLabel != "" {
			fmt.Fprintf(b, `<span class="doc-pagenum">%s</span>`, esc(frame.PageLabel))
		}
		b.WriteString("</div>")
	}

	b.WriteString("</div>")
}

func previewCover(b *strings.Builder, data services.DocumentData) {
	fmt.Fprintf(b, `<div class="cover-company">%s</div>`, esc(data.Company.Name))
	if data.Company.LicenseNumber != "" {
		fmt.Fprintf(b, `<div class="cover-license">License %s</div>`, esc(data.Company.LicenseNumber))
	}
	fmt.Fprintf(b, `<h1 class="cover-title">%s</h1>`, esc(data.Title))
	fmt.Fprintf(b, `<div class="cover-number">%s &middot; %s</div>`, esc(data.EstimateNumber), esc(data.DateLabel))
	if data.Options.ShowCustomerInfo {
		b.WriteString(`<div class="cover-customer"><div class="cover-label">Prepared for</div>`)
		fmt.Fprintf(b, "<div>%s</div>", esc(data.CustomerName))
		for _, line := range data.CustomerLines {
			fmt.Fprintf(b, "<div>%s</div>", esc(line))
		}
		b.WriteString("</div>")
	}
}

func previewItems(b *strings.Builder, spec services.PageSpec, data services.DocumentData) {
	content := spec.ItemsContent
	if content == nil {
		return
	}

	heading := "Scope of Work"
	if content.Continued {
		heading = "Scope of Work (continued)"
	}
	fmt.Fprintf(b, "<h2>%s</h2>", heading)

	opts := data.Options
	b.WriteString(`<table class="doc-items"><thead><tr><th>Item</th>`)
	if opts.ShowItemQuantities {
		b.WriteString(`<th class="num">Qty</th><th>Unit</th>`)
	}
	if opts.ShowItemUnitCosts {
		b.WriteString(`<th class="num">Unit Cost</th>`)
	}
	if opts.ShowItemTotals {
		b.WriteString(`<th class="num">Total</th>`)
	}
	b.WriteString("</tr></thead><tbody>")
	for _, item := range content.Items {
		rowClass := ""
		if item.ItemType == "labor" {
			rowClass = ` class="labor"`
		}
		fmt.Fprintf(b, "<tr%s><td>%s", rowClass, esc(item.Name))
		if opts.ShowItemDescriptions && item.Description != "" {
			fmt.Fprintf(b, `<span class="muted"> - %s</span>`, esc(item.Description))
		}
		b.WriteString("</td>")
		if opts.ShowItemQuantities {
			fmt.Fprintf(b, `<td class="num">%s</td><td>%s</td>`, services.FormatQty(item.Qty), esc(item.Unit))
		}
		if opts.ShowItemUnitCosts {
			fmt.Fprintf(b, `<td class="num">%s</td>`, esc(services.FormatUSD(item.UnitCost)))
		}
		if opts.ShowItemTotals {
			fmt.Fprintf(b, `<td class="num">%s</td>`, esc(services.FormatUSD(item.LineTotal)))
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")

	if content.ShowSummary {
		b.WriteString(`<dl class="doc-summary">`)
		if opts.ShowMaterialLaborSplit {
			fmt.Fprintf(b, "<dt>Materials</dt><dd>%s</dd>", esc(services.FormatUSD(data.Totals.MaterialTotal)))
			fmt.Fprintf(b, "<dt>Labor</dt><dd>%s</dd>", esc(services.FormatUSD(data.Totals.LaborTotal)))
		}
		if opts.ShowCostBreakdown {
			fmt.Fprintf(b, "<dt>Subtotal</dt><dd>%s</dd>", esc(services.FormatUSD(data.Totals.Subtotal)))
		}
		if opts.ShowMarkup {
			fmt.Fprintf(b, "<dt>Markup</dt><dd>%s</dd>", esc(services.FormatUSD(data.Totals.MarkupAmount)))
		}
		fmt.Fprintf(b, "<dt>Tax</dt><dd>%s</dd>", esc(services.FormatUSD(data.Totals.TaxAmount)))
		fmt.Fprintf(b, `<dt class="grand">Total</dt><dd class="grand">%s</dd>`, esc(services.FormatUSD(data.Totals.GrandTotal)))
		if opts.ShowCommission {
			fmt.Fprintf(b, "<dt>Commission</dt><dd>%s</dd>", esc(services.FormatUSD(data.Totals.CommissionAmount)))
		}
		b.WriteString("</dl>")
	}

	if content.ShowTerms && data.TermsText != "" {
		b.WriteString(`<div class="doc-terms"><h3>Terms</h3>`)
		previewParagraphs(b, data.TermsText)
		b.WriteString("</div>")
	}

	if content.ShowFinePrint {
		b.WriteString(`<p class="doc-fineprint">All work performed per manufacturer specifications and local building code. Pricing valid for 30 days.</p>`)
	}

	if content.ShowSignature {
		b.WriteString(`<div class="doc-signature">`)
		b.WriteString(`<div class="sig-line"><span>Customer Signature</span><span>Date</span></div>`)
		b.WriteString(`<div class="sig-line"><span>Company Representative</span><span>Date</span></div>`)
		b.WriteString("</div>")
	}
}

func previewTextSection(b *strings.Builder, title, text string) {
	fmt.Fprintf(b, "<h2>%s</h2>", esc(title))
	previewParagraphs(b, text)
}

func previewParagraphs(b *strings.Builder, text string) {
	for _, para := range strings.Split(text, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		fmt.Fprintf(b, "<p>%s</p>", esc(para))
	}
}

func previewMeasurement(b *strings.Builder, m *services.MeasurementSummary) {
	b.WriteString("<h2>Roof Measurements</h2>")
	if m == nil {
		return
	}
	b.WriteString(`<dl class="doc-measurements">`)
	fmt.Fprintf(b, "<dt>Squares</dt><dd>%s</dd>", services.FormatQty(m.Squares))
	fmt.Fprintf(b, "<dt>Ridge</dt><dd>%s LF</dd>", services.FormatQty(m.RidgeLF))
	fmt.Fprintf(b, "<dt>Hip</dt><dd>%s LF</dd>", services.FormatQty(m.HipLF))
	fmt.Fprintf(b, "<dt>Valley</dt><dd>%s LF</dd>", services.FormatQty(m.ValleyLF))
	fmt.Fprintf(b, "<dt>Eave</dt><dd>%s LF</dd>", services.FormatQty(m.EaveLF))
	fmt.Fprintf(b, "<dt>Rake</dt><dd>%s LF</dd>", services.FormatQty(m.RakeLF))
	fmt.Fprintf(b, "<dt>Waste</dt><dd>%s%%</dd>", services.FormatQty(m.WastePercent))
	b.WriteString("</dl>")
}

func previewPhotos(b *strings.Builder, spec services.PageSpec) {
	pp := spec.PhotoPage
	if pp == nil {
		return
	}
	fmt.Fprintf(b, "<h2>Job Photos (%d/%d)</h2>", pp.PageIndex, pp.PageCount)
	fmt.Fprintf(b, `<div class="photo-grid photo-grid-%d">`, pp.Columns)
	for _, photo := range pp.Photos {
		b.WriteString(`<figure class="photo-cell">`)
		fmt.Fprintf(b, `<img src="%s" alt="%s">`, esc(photo.FilePath), esc(photo.Description))
		caption := photo.Description
		if caption == "" {
			caption = photo.Category
		}
		if caption != "" {
			fmt.Fprintf(b, "<figcaption>%s</figcaption>", esc(caption))
		}
		b.WriteString("</figure>")
	}
	b.WriteString("</div>")
}

func previewAttachment(b *strings.Builder, spec services.PageSpec) {
	att := spec.Attachment
	if att == nil {
		return
	}
	fmt.Fprintf(b, "<h2>Attachment: %s</h2>", esc(att.Filename))
	fmt.Fprintf(b, `<div class="attachment-frame"><a href="%s">%s</a></div>`, esc(att.FilePath), esc(att.Filename))
}
