package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
	"roofcrm/templates"
)

func HandleEstimateList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("estimates", "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("estimate_list: could not query estimates: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var items []templates.EstimateListItem
		sumGrand := 0.0
		for _, rec := range records {
			lineItems, err := loadLineItems(app, rec.Id)
			if err != nil {
				log.Printf("estimate_list: could not load line items for %s: %v", rec.Id, err)
				continue
			}
			totals := estimateTotals(rec, lineItems)
			sumGrand += totals.GrandTotal

			customerName := ""
			if customerID := rec.GetString("customer"); customerID != "" {
				if customer, err := app.FindRecordById("customers", customerID); err == nil {
					customerName = customer.GetString("name")
				}
			}

			items = append(items, templates.EstimateListItem{
				ID:           rec.Id,
				Title:        rec.GetString("title"),
				Number:       rec.GetString("estimate_number"),
				CustomerName: customerName,
				Status:       rec.GetString("status"),
				TierLabel:    rec.GetString("tier_label"),
				CreatedDate:  rec.GetDateTime("created").Time().Format("Jan 2, 2006"),
				GrandTotal:   services.FormatUSD(totals.GrandTotal),
				ItemCount:    len(lineItems),
			})
		}

		data := templates.EstimateListData{
			Items:          items,
			TotalEstimates: len(items),
			SumGrandTotal:  services.FormatUSD(sumGrand),
		}

		headerData := GetHeaderData(e.Request)
		if e.Request.Header.Get("HX-Request") == "true" {
			component := templates.EstimateListContent(data)
			return component.Render(e.Request.Context(), e.Response)
		}
		component := templates.EstimateListPage(data, headerData)
		return component.Render(e.Request.Context(), e.Response)
	}
}
