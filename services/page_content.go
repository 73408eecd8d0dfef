package services

// ItemsPageContent describes one items page: its line-item group plus the
// blocks that attach to it. The pricing summary and the terms/signature
// blocks only ever attach to the terminal items page; continuation pages
// carry the table alone, optionally with a "(continued)" caption.
type ItemsPageContent struct {
	Items         []LineItem
	Continued     bool
	ShowSummary   bool
	ShowTerms     bool
	ShowFinePrint bool
	ShowSignature bool
}

// ResolveItemsPages maps chunked line items to per-page content. When there
// is a single chunk the first and last page are the same page, so the
// summary and terms both attach to it.
func ResolveItemsPages(chunks [][]LineItem, opts DisplayOptions) []ItemsPageContent {
	pages := make([]ItemsPageContent, 0, len(chunks))

	for i, chunk := range chunks {
		last := i == len(chunks)-1
		pages = append(pages, ItemsPageContent{
			Items:         chunk,
			Continued:     i > 0 && opts.ShowContinuedLabel,
			ShowSummary:   last && opts.ShowPricingSummary,
			ShowTerms:     last && opts.ShowTerms,
			ShowFinePrint: last && opts.ShowFinePrint,
			ShowSignature: last && opts.ShowSignatureBlock,
		})
	}

	return pages
}
