package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
	"roofcrm/templates"
)

func findCustomerByToken(app *pocketbase.PocketBase, token string) (*core.Record, error) {
	records, err := app.FindRecordsByFilter(
		"customers",
		"portal_token = {:token}",
		"", 1, 0,
		map[string]any{"token": token},
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, sql.ErrNoRows
	}
	return records[0], nil
}

// HandlePortal renders the customer-facing portal for a portal token.
// Only non-draft estimates appear, always in the customer view.
func HandlePortal(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		token := e.Request.PathValue("token")
		if token == "" {
			return e.String(http.StatusNotFound, "Not found")
		}

		customer, err := findCustomerByToken(app, token)
		if err != nil {
			log.Printf("portal: unknown token: %v", err)
			return e.String(http.StatusNotFound, "Not found")
		}

		company := LoadCompanyInfo(app)

		estimates, err := app.FindRecordsByFilter(
			"estimates",
			"customer = {:customerId} && status != 'draft'",
			"-created", 0, 0,
			map[string]any{"customerId": customer.Id},
		)
		if err != nil {
			log.Printf("portal: could not load estimates for %s: %v", customer.Id, err)
			return e.String(http.StatusInternalServerError, "Something went wrong")
		}

		data := templates.PortalData{
			Token:        token,
			CustomerName: customer.GetString("name"),
			CompanyName:  company.Name,
			CompanyPhone: company.Phone,
		}

		for _, est := range estimates {
			doc, err := buildDocumentData(app, est, company, "customer")
			if err != nil {
				log.Printf("portal: could not assemble estimate %s: %v", est.Id, err)
				continue
			}
			data.Estimates = append(data.Estimates, templates.PortalEstimate{
				ID:          est.Id,
				Title:       est.GetString("title"),
				Number:      est.GetString("estimate_number"),
				Status:      est.GetString("status"),
				TierLabel:   est.GetString("tier_label"),
				CreatedDate: est.GetDateTime("created").Time().Format("January 2, 2006"),
				GrandTotal:  services.FormatUSD(doc.Totals.GrandTotal),
				Document:    doc,
			})
		}

		component := templates.PortalPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// portalDecision applies an approve/decline transition. Only estimates in
// "sent" may transition; anything else is rejected so a customer cannot
// flip an already-decided estimate.
func portalDecision(app *pocketbase.PocketBase, decision string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		token := e.Request.PathValue("token")
		customer, err := findCustomerByToken(app, token)
		if err != nil {
			log.Printf("portal_%s: unknown token: %v", decision, err)
			return e.String(http.StatusNotFound, "Not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}
		estimateID := e.Request.FormValue("estimate")

		estimate, err := app.FindRecordById("estimates", estimateID)
		if err != nil || estimate.GetString("customer") != customer.Id {
			log.Printf("portal_%s: estimate %s not found for customer %s", decision, estimateID, customer.Id)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		if estimate.GetString("status") != "sent" {
			return e.String(http.StatusConflict, "This estimate has already been decided")
		}

		estimate.Set("status", decision)
		if err := app.Save(estimate); err != nil {
			log.Printf("portal_%s: could not save estimate %s: %v", decision, estimateID, err)
			return e.String(http.StatusInternalServerError, "Something went wrong")
		}

		log.Printf("portal_%s: estimate %s %s by customer %s\n", decision, estimateID, decision, customer.Id)

		company := LoadCompanyInfo(app)
		component := templates.PortalDecisionPage(company.Name, estimate.GetString("estimate_number"), decision, token)
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandlePortalApprove(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return portalDecision(app, "approved")
}

func HandlePortalDecline(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return portalDecision(app, "declined")
}
