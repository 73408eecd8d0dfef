package services

// DisplayOptions controls which sections of the estimate document are
// rendered and how much pricing detail is exposed. Handlers start from one
// of the named presets and merge per-estimate overrides on top.
type DisplayOptions struct {
	// Sections.
	ShowCoverPage       bool
	ShowCustomerInfo    bool
	ShowCompanyHeader   bool
	ShowMeasurementPage bool
	ShowPhotoPages      bool
	ShowWarrantyPage    bool
	ShowAttachmentPages bool
	ShowTerms           bool
	ShowFinePrint       bool
	ShowSignatureBlock  bool
	ShowPricingSummary  bool
	ShowContinuedLabel  bool
	ShowFooter          bool
	ShowFooterLocations bool
	ShowFooterLegalLine bool
	ShowPageNumbers     bool

	// Line-item detail.
	ShowItemDescriptions bool
	ShowItemQuantities   bool
	ShowItemUnitCosts    bool
	ShowItemTotals       bool

	// Internal-only pricing detail.
	ShowCostBreakdown      bool
	ShowMarkup             bool
	ShowCommission         bool
	ShowMaterialLaborSplit bool

	// Photo layout.
	PhotoLayout PhotoLayoutMode
}

// CustomerOptions returns the customer-facing preset: unit costs, markup
// and commission are hidden, signature capture is enabled. A fresh value is
// returned on every call so callers can mutate their copy freely.
func CustomerOptions() DisplayOptions {
	return DisplayOptions{
		ShowCoverPage:        true,
		ShowCustomerInfo:     true,
		ShowCompanyHeader:    true,
		ShowMeasurementPage:  true,
		ShowPhotoPages:       true,
		ShowWarrantyPage:     true,
		ShowAttachmentPages:  true,
		ShowTerms:            true,
		ShowFinePrint:        true,
		ShowSignatureBlock:   true,
		ShowPricingSummary:   true,
		ShowContinuedLabel:   true,
		ShowFooter:           true,
		ShowFooterLocations:  true,
		ShowFooterLegalLine:  true,
		ShowPageNumbers:      true,
		ShowItemDescriptions: true,
		ShowItemQuantities:   true,
		ShowItemTotals:       true,
		PhotoLayout:          PhotoLayoutAuto,
	}
}

// InternalOptions returns the office preset: the full cost breakdown,
// markup and commission figures are visible and no signature block is
// rendered.
func InternalOptions() DisplayOptions {
	opts := CustomerOptions()
	opts.ShowCoverPage = false
	opts.ShowSignatureBlock = false
	opts.ShowFinePrint = false
	opts.ShowItemUnitCosts = true
	opts.ShowCostBreakdown = true
	opts.ShowMarkup = true
	opts.ShowCommission = true
	opts.ShowMaterialLaborSplit = true
	return opts
}

// ApplyOverrides merges free-form overrides (the estimate's display_options
// JSON) onto a preset. Unknown keys are ignored, as are values of the wrong
// type.
func ApplyOverrides(base DisplayOptions, raw map[string]any) DisplayOptions {
	opts := base

	setBool := func(key string, dst *bool) {
		if v, ok := raw[key].(bool); ok {
			*dst = v
		}
	}

	setBool("show_cover_page", &opts.ShowCoverPage)
	setBool("show_customer_info", &opts.ShowCustomerInfo)
	setBool("show_company_header", &opts.ShowCompanyHeader)
	setBool("show_measurement_page", &opts.ShowMeasurementPage)
	setBool("show_photo_pages", &opts.ShowPhotoPages)
	setBool("show_warranty_page", &opts.ShowWarrantyPage)
	setBool("show_attachment_pages", &opts.ShowAttachmentPages)
	setBool("show_terms", &opts.ShowTerms)
	setBool("show_fine_print", &opts.ShowFinePrint)
	setBool("show_signature_block", &opts.ShowSignatureBlock)
	setBool("show_pricing_summary", &opts.ShowPricingSummary)
	setBool("show_continued_label", &opts.ShowContinuedLabel)
	setBool("show_footer", &opts.ShowFooter)
	setBool("show_footer_locations", &opts.ShowFooterLocations)
	setBool("show_footer_legal_line", &opts.ShowFooterLegalLine)
	setBool("show_page_numbers", &opts.ShowPageNumbers)
	setBool("show_item_descriptions", &opts.ShowItemDescriptions)
	setBool("show_item_quantities", &opts.ShowItemQuantities)
	setBool("show_item_unit_costs", &opts.ShowItemUnitCosts)
	setBool("show_item_totals", &opts.ShowItemTotals)
	setBool("show_cost_breakdown", &opts.ShowCostBreakdown)
	setBool("show_markup", &opts.ShowMarkup)
	setBool("show_commission", &opts.ShowCommission)
	setBool("show_material_labor_split", &opts.ShowMaterialLaborSplit)

	if v, ok := raw["photo_layout"].(string); ok {
		if mode, valid := ParsePhotoLayoutMode(v); valid {
			opts.PhotoLayout = mode
		}
	}

	return opts
}
