package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
	"roofcrm/templates"
)

func HandleCustomerView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customerID := e.Request.PathValue("id")
		record, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("customer_view: could not find customer %s: %v", customerID, err)
			return e.String(http.StatusNotFound, "Customer not found")
		}

		estimates, err := app.FindRecordsByFilter(
			"estimates",
			"customer = {:customerId}",
			"-created", 0, 0,
			map[string]any{"customerId": customerID},
		)
		if err != nil {
			log.Printf("customer_view: could not load estimates for %s: %v", customerID, err)
		}

		var rows []templates.EstimateListItem
		for _, est := range estimates {
			items, err := loadLineItems(app, est.Id)
			if err != nil {
				log.Printf("customer_view: could not load line items for %s: %v", est.Id, err)
				continue
			}
			totals := estimateTotals(est, items)
			rows = append(rows, templates.EstimateListItem{
				ID:          est.Id,
				Title:       est.GetString("title"),
				Number:      est.GetString("estimate_number"),
				Status:      est.GetString("status"),
				TierLabel:   est.GetString("tier_label"),
				CreatedDate: est.GetDateTime("created").Time().Format("Jan 2, 2006"),
				GrandTotal:  services.FormatUSD(totals.GrandTotal),
				ItemCount:   len(items),
			})
		}

		var addressParts []string
		for _, part := range []string{record.GetString("street"), record.GetString("city"), record.GetString("state")} {
			if part != "" {
				addressParts = append(addressParts, part)
			}
		}
		addressLine := strings.Join(addressParts, ", ")
		if zip := record.GetString("zip"); zip != "" && addressLine != "" {
			addressLine += " " + zip
		}

		data := templates.CustomerDetailData{
			CustomerFormData: templates.CustomerFormData{
				ID:    record.Id,
				Name:  record.GetString("name"),
				Phone: record.GetString("phone"),
				Email: record.GetString("email"),
			},
			AddressLine: addressLine,
			Estimates:   rows,
		}

		headerData := GetHeaderData(e.Request)
		component := templates.CustomerDetailPage(data, headerData)
		return component.Render(e.Request.Context(), e.Response)
	}
}
