package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// CustomerOption is a customer choice in the estimate form dropdown.
type CustomerOption struct {
	ID   string
	Name string
}

// EstimateFormData feeds both the create and edit forms.
type EstimateFormData struct {
	ID             string
	Title          string
	EstimateNumber string
	CustomerID     string
	Status         string
	TierGroup      string
	TierLabel      string
	MarkupPercent  string
	TaxRatePercent string
	CommissionRate string
	TermsText      string
	WarrantyText   string
	Notes          string
	Customers      []CustomerOption
	Errors         map[string]string
}

func fieldError(b *strings.Builder, errors map[string]string, field string) {
	if msg, ok := errors[field]; ok {
		fmt.Fprintf(b, `<p class="field-error">%s</p>`, esc(msg))
	}
}

func estimateFormFields(b *strings.Builder, data EstimateFormData) {
	b.WriteString(`<label>Title<input type="text" name="title" value="` + esc(data.Title) + `" required></label>`)
	fieldError(b, data.Errors, "title")

	b.WriteString(`<label>Estimate Number<input type="text" name="estimate_number" value="` + esc(data.EstimateNumber) + `"></label>`)
	fieldError(b, data.Errors, "estimate_number")

	b.WriteString(`<label>Customer<select name="customer" required>`)
	b.WriteString(`<option value="">Select a customer...</option>`)
	for _, c := range data.Customers {
		selected := ""
		if c.ID == data.CustomerID {
			selected = " selected"
		}
		fmt.Fprintf(b, `<option value="%s"%s>%s</option>`, esc(c.ID), selected, esc(c.Name))
	}
	b.WriteString("</select></label>")
	fieldError(b, data.Errors, "customer")

	b.WriteString(`<label>Status<select name="status">`)
	for _, s := range []string{"draft", "sent", "approved", "declined"} {
		selected := ""
		if s == data.Status {
			selected = " selected"
		}
		fmt.Fprintf(b, `<option value="%s"%s>%s</option>`, s, selected, s)
	}
	b.WriteString("</select></label>")

	b.WriteString(`<fieldset><legend>Proposal Tier</legend>`)
	b.WriteString(`<label>Tier Group<input type="text" name="tier_group" value="` + esc(data.TierGroup) + `" placeholder="e.g. maple-street-2026"></label>`)
	b.WriteString(`<label>Tier<select name="tier_label"><option value="">None</option>`)
	for _, tier := range []string{"good", "better", "best"} {
		selected := ""
		if tier == data.TierLabel {
			selected = " selected"
		}
		fmt.Fprintf(b, `<option value="%s"%s>%s</option>`, tier, selected, tier)
	}
	b.WriteString("</select></label></fieldset>")

	b.WriteString(`<fieldset><legend>Pricing</legend>`)
	b.WriteString(`<label>Markup %<input type="number" step="0.1" name="markup_percent" value="` + esc(data.MarkupPercent) + `"></label>`)
	fieldError(b, data.Errors, "markup_percent")
	b.WriteString(`<label>Tax Rate %<input type="number" step="0.01" name="tax_rate_percent" value="` + esc(data.TaxRatePercent) + `"></label>`)
	fieldError(b, data.Errors, "tax_rate_percent")
	b.WriteString(`<label>Commission %<input type="number" step="0.1" name="commission_rate_percent" value="` + esc(data.CommissionRate) + `"></label>`)
	fieldError(b, data.Errors, "commission_rate_percent")
	b.WriteString("</fieldset>")

	b.WriteString(`<label>Terms<textarea name="terms_text" rows="4">` + esc(data.TermsText) + `</textarea></label>`)
	b.WriteString(`<label>Warranty<textarea name="warranty_text" rows="4">` + esc(data.WarrantyText) + `</textarea></label>`)
	b.WriteString(`<label>Notes<textarea name="notes" rows="3">` + esc(data.Notes) + `</textarea></label>`)
}

// EstimateCreatePage renders the new-estimate form.
func EstimateCreatePage(data EstimateFormData, header HeaderData) templ.Component {
	content := component(func(b *strings.Builder) {
		b.WriteString("<h1>New Estimate</h1>")
		b.WriteString(`<form method="post" action="/estimates" class="form-grid">`)
		estimateFormFields(b, data)
		b.WriteString(`<div class="form-actions"><button type="submit" class="btn btn-primary">Create Estimate</button>`)
		b.WriteString(`<a class="btn" href="/estimates">Cancel</a></div></form>`)
	})
	return Layout("New Estimate", header, content)
}

// EstimateEditPage renders the edit form for an existing estimate.
func EstimateEditPage(data EstimateFormData, header HeaderData) templ.Component {
	content := component(func(b *strings.Builder) {
		fmt.Fprintf(b, "<h1>Edit %s</h1>", esc(data.Title))
		fmt.Fprintf(b, `<form method="post" action="/estimates/%s/save" class="form-grid">`, esc(data.ID))
		estimateFormFields(b, data)
		b.WriteString(`<div class="form-actions"><button type="submit" class="btn btn-primary">Save Changes</button>`)
		fmt.Fprintf(b, `<a class="btn" href="/estimates/%s">Cancel</a></div></form>`, esc(data.ID))
	})
	return Layout("Edit Estimate", header, content)
}
