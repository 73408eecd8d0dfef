package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// CustomerListItem is one row of the customer list.
type CustomerListItem struct {
	ID            string
	Name          string
	Phone         string
	Email         string
	City          string
	EstimateCount int
}

// CustomerListContent renders the customer table alone, for HTMX swaps.
func CustomerListContent(customers []CustomerListItem) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<div class="page-head"><h1>Customers</h1>`)
		b.WriteString(`<a class="btn btn-primary" href="/customers/new">New Customer</a></div>`)
		if len(customers) == 0 {
			b.WriteString(`<p class="empty-state">No customers yet. Add your first customer to get started.</p>`)
			return
		}
		b.WriteString(`<table class="data-table"><thead><tr>`)
		b.WriteString("<th>Name</th><th>Phone</th><th>Email</th><th>City</th><th class=\"num\">Estimates</th><th></th>")
		b.WriteString("</tr></thead><tbody>")
		for _, c := range customers {
			b.WriteString("<tr>")
			fmt.Fprintf(b, `<td><a href="/customers/%s">%s</a></td>`, esc(c.ID), esc(c.Name))
			fmt.Fprintf(b, "<td>%s</td>", esc(c.Phone))
			fmt.Fprintf(b, "<td>%s</td>", esc(c.Email))
			fmt.Fprintf(b, "<td>%s</td>", esc(c.City))
			fmt.Fprintf(b, `<td class="num">%d</td>`, c.EstimateCount)
			fmt.Fprintf(b, `<td><button class="btn btn-sm btn-danger" hx-delete="/customers/%s" hx-target="#content" hx-confirm="Delete this customer and all their estimates?">Delete</button></td>`, esc(c.ID))
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody></table>")
	})
}

// CustomerListPage renders the full customer list page.
func CustomerListPage(customers []CustomerListItem, header HeaderData) templ.Component {
	return Layout("Customers", header, CustomerListContent(customers))
}

// CustomerFormData feeds the customer create/edit form.
type CustomerFormData struct {
	ID     string
	Name   string
	Phone  string
	Email  string
	Street string
	City   string
	State  string
	Zip    string
	Errors map[string]string
}

func customerFormFields(b *strings.Builder, data CustomerFormData) {
	b.WriteString(`<div class="form-row"><label for="name">Name</label>`)
	fmt.Fprintf(b, `<input type="text" id="name" name="name" value="%s" required>`, esc(data.Name))
	fieldError(b, data.Errors, "name")
	b.WriteString("</div>")

	b.WriteString(`<div class="form-row"><label for="phone">Phone</label>`)
	fmt.Fprintf(b, `<input type="tel" id="phone" name="phone" value="%s">`, esc(data.Phone))
	b.WriteString("</div>")

	b.WriteString(`<div class="form-row"><label for="email">Email</label>`)
	fmt.Fprintf(b, `<input type="email" id="email" name="email" value="%s">`, esc(data.Email))
	fieldError(b, data.Errors, "email")
	b.WriteString("</div>")

	b.WriteString(`<div class="form-row"><label for="street">Street Address</label>`)
	fmt.Fprintf(b, `<input type="text" id="street" name="street" value="%s">`, esc(data.Street))
	b.WriteString("</div>")

	b.WriteString(`<div class="form-row form-row-split">`)
	fmt.Fprintf(b, `<span><label for="city">City</label><input type="text" id="city" name="city" value="%s"></span>`, esc(data.City))
	fmt.Fprintf(b, `<span><label for="state">State</label><input type="text" id="state" name="state" value="%s"></span>`, esc(data.State))
	fmt.Fprintf(b, `<span><label for="zip">Zip</label><input type="text" id="zip" name="zip" value="%s"></span>`, esc(data.Zip))
	b.WriteString("</div>")
}

// CustomerCreatePage renders the new-customer form.
func CustomerCreatePage(data CustomerFormData, header HeaderData) templ.Component {
	content := component(func(b *strings.Builder) {
		b.WriteString("<h1>New Customer</h1>")
		b.WriteString(`<form hx-post="/customers" hx-target="#content">`)
		customerFormFields(b, data)
		b.WriteString(`<div class="form-actions"><button type="submit" class="btn btn-primary">Create Customer</button>`)
		b.WriteString(`<a class="btn" href="/customers">Cancel</a></div></form>`)
	})
	return Layout("New Customer", header, content)
}

// CustomerEditPage renders the edit form for an existing customer.
func CustomerEditPage(data CustomerFormData, header HeaderData) templ.Component {
	content := component(func(b *strings.Builder) {
		fmt.Fprintf(b, "<h1>Edit %s</h1>", esc(data.Name))
		fmt.Fprintf(b, `<form hx-put="/customers/%s" hx-target="#content">`, esc(data.ID))
		customerFormFields(b, data)
		b.WriteString(`<div class="form-actions"><button type="submit" class="btn btn-primary">Save Changes</button>`)
		fmt.Fprintf(b, `<a class="btn" href="/customers/%s">Cancel</a></div></form>`, esc(data.ID))
	})
	return Layout("Edit Customer", header, content)
}

// CustomerDetailData feeds the single-customer page.
type CustomerDetailData struct {
	CustomerFormData
	AddressLine string
	Estimates   []EstimateListItem
}

// CustomerDetailPage shows one customer with their estimates.
func CustomerDetailPage(data CustomerDetailData, header HeaderData) templ.Component {
	content := component(func(b *strings.Builder) {
		fmt.Fprintf(b, `<div class="page-head"><h1>%s</h1>`, esc(data.Name))
		fmt.Fprintf(b, `<a class="btn" href="/customers/%s/edit">Edit</a></div>`, esc(data.ID))
		b.WriteString(`<dl class="detail-list">`)
		if data.Phone != "" {
			fmt.Fprintf(b, "<dt>Phone</dt><dd>%s</dd>", esc(data.Phone))
		}
		if data.Email != "" {
			fmt.Fprintf(b, "<dt>Email</dt><dd>%s</dd>", esc(data.Email))
		}
		if data.AddressLine != "" {
			fmt.Fprintf(b, "<dt>Address</dt><dd>%s</dd>", esc(data.AddressLine))
		}
		b.WriteString("</dl>")

		b.WriteString("<h2>Estimates</h2>")
		if len(data.Estimates) == 0 {
			b.WriteString(`<p class="empty-state">No estimates for this customer.</p>`)
		} else {
			b.WriteString(`<table class="data-table"><thead><tr>`)
			b.WriteString("<th>Title</th><th>Number</th><th>Status</th><th>Created</th><th class=\"num\">Total</th>")
			b.WriteString("</tr></thead><tbody>")
			for _, e := range data.Estimates {
				b.WriteString("<tr>")
				fmt.Fprintf(b, `<td><a href="/estimates/%s">%s</a></td>`, esc(e.ID), esc(e.Title))
				fmt.Fprintf(b, "<td>%s</td>", esc(e.Number))
				b.WriteString("<td>")
				statusBadge(b, e.Status)
				b.WriteString("</td>")
				fmt.Fprintf(b, "<td>%s</td>", esc(e.CreatedDate))
				fmt.Fprintf(b, `<td class="num">%s</td>`, esc(e.GrandTotal))
				b.WriteString("</tr>")
			}
			b.WriteString("</tbody></table>")
		}
		fmt.Fprintf(b, `<a class="btn btn-primary" href="/estimates/new?customer=%s">New Estimate</a>`, esc(data.ID))
	})
	return Layout(data.Name, header, content)
}
