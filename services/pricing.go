package services

// CalcLineTotal prices a single line item.
func CalcLineTotal(qty, unitCost float64) float64 {
	return qty * unitCost
}

// EstimateTotals is the full cost rollup for an estimate. Commission is an
// internal figure paid from margin and never part of the customer-facing
// grand total.
type EstimateTotals struct {
	MaterialTotal    float64
	LaborTotal       float64
	Subtotal         float64
	MarkupAmount     float64
	TaxAmount        float64
	GrandTotal       float64
	CommissionAmount float64
}

// CalcEstimateTotals rolls up pre-priced line items. Markup applies to the
// material plus labor subtotal, tax applies after markup, and commission is
// computed on the marked-up base.
func CalcEstimateTotals(items []LineItem, markupPct, taxPct, commissionPct float64) EstimateTotals {
	var totals EstimateTotals

	for _, item := range items {
		switch item.ItemType {
		case "labor":
			totals.LaborTotal += item.LineTotal
		default:
			totals.MaterialTotal += item.LineTotal
		}
	}

	totals.Subtotal = totals.MaterialTotal + totals.LaborTotal
	totals.MarkupAmount = totals.Subtotal * markupPct / 100
	base := totals.Subtotal + totals.MarkupAmount
	totals.TaxAmount = base * taxPct / 100
	totals.GrandTotal = base + totals.TaxAmount
	totals.CommissionAmount = base * commissionPct / 100

	return totals
}
