package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ExportConfig is the caller-supplied artifact format: page size and
// orientation. The engine itself is format-agnostic; these values only
// reach the renderer.
type ExportConfig struct {
	PageSize    string // "letter" or "a4"
	Orientation string // "portrait" or "landscape"
}

// DefaultExportConfig returns the letter-portrait default used by the
// estimate document.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{PageSize: "letter", Orientation: "portrait"}
}

// DocumentData bundles the assembled plan with everything the renderer
// needs to put ink on pages: branding, customer block, totals and the
// long-form text sections.
type DocumentData struct {
	Plan    DocumentPlan
	Options DisplayOptions
	Company CompanyInfo

	Title          string
	EstimateNumber string
	DateLabel      string
	CustomerName   string
	CustomerLines  []string

	Totals       EstimateTotals
	TermsText    string
	WarrantyText string
	Measurement  *MeasurementSummary
}

// GenerateDocumentPDF renders an assembled document plan to PDF bytes with
// maroto. Every PageSpec maps to exactly one physical page; overflowing
// content is clipped, not reflowed.
func GenerateDocumentPDF(data DocumentData, cfg ExportConfig) ([]byte, error) {
	size := pagesize.Letter
	if cfg.PageSize == "a4" {
		size = pagesize.A4
	}
	orient := orientation.Vertical
	if cfg.Orientation == "landscape" {
		orient = orientation.Horizontal
	}

	builder := config.NewBuilder().
		WithOrientation(orient).
		WithPageSize(size).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12)

	if data.Options.ShowPageNumbers {
		builder = builder.WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		})
	}

	m := maroto.New(builder.Build())

	for _, spec := range data.Plan.Pages {
		m.AddPages(page.New().Add(buildPageRows(spec, data)...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// buildPageRows lays out one PageSpec as maroto rows.
func buildPageRows(spec PageSpec, data DocumentData) []core.Row {
	var rows []core.Row

	frame := BuildPageFrame(spec, data.Company, data.EstimateNumber, data.DateLabel, data.Options)
	if frame.ShowHeader {
		rows = append(rows, headerRows(frame)...)
	}

	switch spec.Kind {
	case PageKindCover:
		rows = append(rows, coverRows(data)...)
	case PageKindItems:
		rows = append(rows, itemsRows(spec, data)...)
	case PageKindWarranty:
		rows = append(rows, textSectionRows("Workmanship Warranty", data.WarrantyText)...)
	case PageKindMeasurement:
		rows = append(rows, measurementRows(data.Measurement)...)
	case PageKindPhotos:
		rows = append(rows, photoRows(spec.PhotoPage)...)
	case PageKindAttachment:
		rows = append(rows, attachmentRows(spec.Attachment)...)
	}

	if frame.ShowFooter {
		rows = append(rows, footerRows(frame)...)
	}

	return rows
}

func headerRows(frame PageFrame) []core.Row {
	sub := fmt.Sprintf("Estimate %s  |  %s", frame.EstimateNumber, frame.DateLabel)
	return []core.Row{
		row.New(10).Add(
			col.New(7).Add(
				text.New(frame.CompanyName, props.Text{
					Size:  13,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(5).Add(
				text.New(sub, props.Text{
					Size:  8,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
		row.New(3),
	}
}

func coverRows(data DocumentData) []core.Row {
	rows := []core.Row{
		row.New(40),
		row.New(16).Add(
			col.New(12).Add(
				text.New(data.Company.Name, props.Text{
					Size:  22,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  14,
					Align: align.Center,
					Color: &props.Color{Red: 60, Green: 60, Blue: 60},
				}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Estimate %s  |  %s", data.EstimateNumber, data.DateLabel), props.Text{
					Size:  10,
					Align: align.Center,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	}

	if data.Options.ShowCustomerInfo && data.CustomerName != "" {
		rows = append(rows, row.New(10))
		rows = append(rows, row.New(8).Add(
			col.New(12).Add(
				text.New("Prepared for", props.Text{
					Size:  9,
					Align: align.Center,
					Color: &props.Color{Red: 120, Green: 120, Blue: 120},
				}),
			),
		))
		rows = append(rows, row.New(8).Add(
			col.New(12).Add(
				text.New(data.CustomerName, props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		))
		for _, line := range data.CustomerLines {
			rows = append(rows, row.New(6).Add(
				col.New(12).Add(
					text.New(line, props.Text{Size: 9, Align: align.Center}),
				),
			))
		}
	}

	return rows
}

func itemsRows(spec PageSpec, data DocumentData) []core.Row {
	content := spec.ItemsContent
	if content == nil {
		return nil
	}

	var rows []core.Row
	opts := data.Options

	if content.Continued {
		rows = append(rows, row.New(6).Add(
			col.New(12).Add(
				text.New("Scope of Work (continued)", props.Text{
					Size:  9,
					Style: fontstyle.Italic,
					Color: &props.Color{Red: 120, Green: 120, Blue: 120},
				}),
			),
		))
	} else if spec.IsFirstItemsPage {
		rows = append(rows, row.New(8).Add(
			col.New(12).Add(
				text.New("Scope of Work", props.Text{Size: 12, Style: fontstyle.Bold}),
			),
		))
	}

	rows = append(rows, itemsTableHeader(opts))
	for _, item := range content.Items {
		rows = append(rows, itemTableRow(item, opts))
	}

	if content.ShowSummary {
		rows = append(rows, summaryRows(data)...)
	}
	if content.ShowTerms && data.TermsText != "" {
		rows = append(rows, textSectionRows("Terms & Conditions", data.TermsText)...)
	}
	if content.ShowFinePrint && data.Company.LegalLine != "" {
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(
				text.New(data.Company.LegalLine, props.Text{
					Size:  6,
					Color: &props.Color{Red: 140, Green: 140, Blue: 140},
				}),
			),
		))
	}
	if content.ShowSignature {
		rows = append(rows, signatureRows()...)
	}

	return rows
}

func itemsTableHeader(opts DisplayOptions) core.Row {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	descWidth := 12 - 1 // item column always renders
	cols := []core.Col{}

	if opts.ShowItemQuantities {
		descWidth -= 3
	}
	if opts.ShowItemUnitCosts {
		descWidth -= 2
	}
	if opts.ShowItemTotals {
		descWidth -= 2
	}

	cols = append(cols,
		col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
		col.New(descWidth).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
	)
	if opts.ShowItemQuantities {
		cols = append(cols,
			col.New(2).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit", headerText)).WithStyle(&headerCell),
		)
	}
	if opts.ShowItemUnitCosts {
		cols = append(cols, col.New(2).Add(text.New("Unit Cost", headerText)).WithStyle(&headerCell))
	}
	if opts.ShowItemTotals {
		cols = append(cols, col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell))
	}

	return row.New(8).Add(cols...)
}

func itemTableRow(item LineItem, opts DisplayOptions) core.Row {
	baseText := props.Text{Size: 7, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	var cellStyle *props.Cell
	if item.ItemType == "labor" {
		bg := &props.Color{Red: 245, Green: 245, Blue: 245}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	desc := item.Name
	if opts.ShowItemDescriptions && item.Description != "" {
		desc = item.Name + " - " + item.Description
	}

	descWidth := 11
	if opts.ShowItemQuantities {
		descWidth -= 3
	}
	if opts.ShowItemUnitCosts {
		descWidth -= 2
	}
	if opts.ShowItemTotals {
		descWidth -= 2
	}

	cols := []core.Col{
		col.New(1).Add(text.New(fmt.Sprintf("%d", item.SortOrder+1), baseText)),
		col.New(descWidth).Add(text.New(desc, leftText)),
	}
	if opts.ShowItemQuantities {
		cols = append(cols,
			col.New(2).Add(text.New(FormatQty(item.Qty), rightText)),
			col.New(1).Add(text.New(item.Unit, baseText)),
		)
	}
	if opts.ShowItemUnitCosts {
		cols = append(cols, col.New(2).Add(text.New(FormatUSD(item.UnitCost), rightText)))
	}
	if opts.ShowItemTotals {
		cols = append(cols, col.New(2).Add(text.New(FormatUSD(item.LineTotal), rightText)))
	}

	if cellStyle != nil {
		for i := range cols {
			cols[i] = cols[i].WithStyle(cellStyle)
		}
	}

	return row.New(7).Add(cols...)
}

func summaryRows(data DocumentData) []core.Row {
	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := labelStyle

	addLine := func(rows []core.Row, label string, amount float64) []core.Row {
		return append(rows, row.New(7).Add(
			col.New(8).Add(text.New(label, labelStyle)).WithStyle(summaryCell),
			col.New(4).Add(text.New(FormatUSD(amount), valueStyle)).WithStyle(summaryCell),
		))
	}

	rows := []core.Row{row.New(4)}
	opts := data.Options
	totals := data.Totals

	if opts.ShowMaterialLaborSplit {
		rows = addLine(rows, "Materials", totals.MaterialTotal)
		rows = addLine(rows, "Labor", totals.LaborTotal)
	}
	if opts.ShowCostBreakdown {
		rows = addLine(rows, "Subtotal", totals.Subtotal)
	}
	if opts.ShowMarkup {
		rows = addLine(rows, "Markup", totals.MarkupAmount)
	}
	rows = addLine(rows, "Tax", totals.TaxAmount)
	rows = addLine(rows, "Total Investment", totals.GrandTotal)
	if opts.ShowCommission {
		rows = addLine(rows, "Commission", totals.CommissionAmount)
	}

	return rows
}

func signatureRows() []core.Row {
	sigLabel := props.Text{Size: 8, Color: &props.Color{Red: 80, Green: 80, Blue: 80}}
	return []core.Row{
		row.New(14),
		row.New(7).Add(
			col.New(5).Add(text.New("Customer Signature: _________________________", sigLabel)),
			col.New(2),
			col.New(5).Add(text.New("Date: _____________", sigLabel)),
		),
		row.New(7).Add(
			col.New(5).Add(text.New("Company Representative: _____________________", sigLabel)),
			col.New(2),
			col.New(5).Add(text.New("Date: _____________", sigLabel)),
		),
	}
}

func textSectionRows(title, body string) []core.Row {
	rows := []core.Row{
		row.New(6),
		row.New(8).Add(
			col.New(12).Add(text.New(title, props.Text{Size: 11, Style: fontstyle.Bold})),
		),
	}
	if body != "" {
		rows = append(rows, row.New(60).Add(
			col.New(12).Add(text.New(body, props.Text{Size: 8})),
		))
	}
	return rows
}

func measurementRows(m *MeasurementSummary) []core.Row {
	rows := []core.Row{
		row.New(8).Add(
			col.New(12).Add(text.New("Roof Measurements", props.Text{Size: 12, Style: fontstyle.Bold})),
		),
		row.New(2),
	}
	if m == nil {
		return rows
	}

	labelStyle := props.Text{Size: 9, Align: align.Left}
	valueStyle := props.Text{Size: 9, Align: align.Right}
	addLine := func(label, value string) {
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(label, labelStyle)),
			col.New(6).Add(text.New(value, valueStyle)),
		))
	}

	addLine("Roof Area (squares)", FormatQty(m.Squares))
	addLine("Ridge (lf)", FormatQty(m.RidgeLF))
	addLine("Hip (lf)", FormatQty(m.HipLF))
	addLine("Valley (lf)", FormatQty(m.ValleyLF))
	addLine("Eave (lf)", FormatQty(m.EaveLF))
	addLine("Rake (lf)", FormatQty(m.RakeLF))
	addLine("Waste Factor", fmt.Sprintf("%.0f%%", m.WastePercent))

	return rows
}

func photoRows(pp *PhotoPage) []core.Row {
	if pp == nil {
		return nil
	}

	rows := []core.Row{
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Job Photos (%d/%d)", pp.PageIndex, pp.PageCount),
					props.Text{Size: 12, Style: fontstyle.Bold}),
			),
		),
		row.New(2),
	}

	// Photo content is resolved from file storage at render time by the
	// caller; here each grid cell shows its caption slot.
	colWidth := 12 / pp.Columns
	captionStyle := props.Text{Size: 7, Align: align.Center, Color: &props.Color{Red: 100, Green: 100, Blue: 100}}

	for start := 0; start < len(pp.Photos); start += pp.Columns {
		end := start + pp.Columns
		if end > len(pp.Photos) {
			end = len(pp.Photos)
		}

		var cols []core.Col
		for _, photo := range pp.Photos[start:end] {
			caption := photo.Category
			if photo.Description != "" {
				caption = photo.Category + ": " + photo.Description
			}
			cols = append(cols, col.New(colWidth).Add(text.New(caption, captionStyle)))
		}
		rows = append(rows, row.New(55).Add(cols...))
	}

	return rows
}

func attachmentRows(att *Attachment) []core.Row {
	if att == nil {
		return nil
	}
	return []core.Row{
		row.New(8).Add(
			col.New(12).Add(text.New("Attachment", props.Text{Size: 12, Style: fontstyle.Bold})),
		),
		row.New(7).Add(
			col.New(12).Add(text.New(att.Filename, props.Text{Size: 9})),
		),
	}
}

func footerRows(frame PageFrame) []core.Row {
	var parts []string
	if len(frame.Locations) > 0 {
		parts = append(parts, frame.Locations...)
	}
	if frame.Phone != "" {
		parts = append(parts, frame.Phone)
	}

	var rows []core.Row
	if len(parts) > 0 {
		line := parts[0]
		for _, p := range parts[1:] {
			line += "  |  " + p
		}
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(text.New(line, props.Text{
				Size:  6,
				Align: align.Center,
				Color: &props.Color{Red: 140, Green: 140, Blue: 140},
			})),
		))
	}
	if frame.LegalLine != "" {
		rows = append(rows, row.New(4).Add(
			col.New(12).Add(text.New(frame.LegalLine, props.Text{
				Size:  6,
				Align: align.Center,
				Color: &props.Color{Red: 160, Green: 160, Blue: 160},
			})),
		))
	}
	return rows
}
