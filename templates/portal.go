package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"roofcrm/services"
)

// PortalData feeds the customer-facing portal page. It carries no
// internal figures; the portal always renders the customer view.
type PortalData struct {
	Token        string
	CustomerName string
	CompanyName  string
	CompanyPhone string
	Estimates    []PortalEstimate
}

// PortalEstimate is one estimate shown on the portal.
type PortalEstimate struct {
	ID          string
	Title       string
	Number      string
	Status      string
	TierLabel   string
	CreatedDate string
	GrandTotal  string
	Document    services.DocumentData
}

// PortalPage renders the tokenized customer portal: every sent estimate
// for the customer, each with its document preview and approve/decline
// actions. Draft estimates never appear here.
func PortalPage(data PortalData) templ.Component {
	content := component(func(b *strings.Builder) {
		fmt.Fprintf(b, `<div class="portal-head"><h1>%s</h1>`, esc(data.CompanyName))
		fmt.Fprintf(b, `<p>Estimates prepared for %s</p>`, esc(data.CustomerName))
		if data.CompanyPhone != "" {
			fmt.Fprintf(b, `<p class="muted">Questions? Call us at %s</p>`, esc(data.CompanyPhone))
		}
		b.WriteString("</div>")

		if len(data.Estimates) == 0 {
			b.WriteString(`<p class="empty-state">No estimates are ready for review yet.</p>`)
			return
		}

		for _, est := range data.Estimates {
			fmt.Fprintf(b, `<section class="portal-estimate" id="portal-%s">`, esc(est.Number))
			fmt.Fprintf(b, `<div class="portal-estimate-head"><h2>%s <span class="muted">%s</span></h2>`, esc(est.Title), esc(est.Number))
			statusBadge(b, est.Status)
			b.WriteString("</div>")
			if est.TierLabel != "" {
				fmt.Fprintf(b, `<p class="tier-tag">%s option</p>`, esc(titleCase(est.TierLabel)))
			}
			fmt.Fprintf(b, `<p>%s &middot; %s</p>`, esc(est.CreatedDate), esc(est.GrandTotal))

			b.WriteString(`<div class="preview-pages portal-preview">`)
			for _, spec := range est.Document.Plan.Pages {
				previewPage(b, spec, est.Document)
			}
			b.WriteString("</div>")

			if est.Status == "sent" {
				b.WriteString(`<div class="portal-actions">`)
				fmt.Fprintf(b, `<form method="post" action="/portal/%s/approve"><input type="hidden" name="estimate" value="%s"><button type="submit" class="btn btn-primary">Approve</button></form>`,
					esc(data.Token), esc(est.ID))
				fmt.Fprintf(b, `<form method="post" action="/portal/%s/decline"><input type="hidden" name="estimate" value="%s"><button type="submit" class="btn btn-danger">Decline</button></form>`,
					esc(data.Token), esc(est.ID))
				b.WriteString("</div>")
			}
			b.WriteString("</section>")
		}
	})

	return component(func(b *strings.Builder) {
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(b, "<title>%s Estimates</title>", esc(data.CompanyName))
		b.WriteString(`<link rel="stylesheet" href="/static/app.css"></head><body class="portal-body">`)
		renderInto(b, content)
		b.WriteString("</body></html>")
	})
}

// PortalDecisionPage is the confirmation shown after approve/decline.
func PortalDecisionPage(companyName, estimateNumber, decision, token string) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		fmt.Fprintf(b, "<title>%s Estimates</title>", esc(companyName))
		b.WriteString(`<link rel="stylesheet" href="/static/app.css"></head><body class="portal-body">`)
		b.WriteString(`<div class="portal-head">`)
		fmt.Fprintf(b, "<h1>%s</h1>", esc(companyName))
		if decision == "approved" {
			fmt.Fprintf(b, "<p>Thank you! Estimate %s has been approved. We will be in touch to schedule the work.</p>", esc(estimateNumber))
		} else {
			fmt.Fprintf(b, "<p>Estimate %s has been declined. Let us know if you would like a revised proposal.</p>", esc(estimateNumber))
		}
		fmt.Fprintf(b, `<a class="btn" href="/portal/%s">Back to your estimates</a>`, esc(token))
		b.WriteString("</div></body></html>")
	})
}
