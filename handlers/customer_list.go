package handlers

import (
	"log"
	"net/http"
	"sort"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/templates"
)

func HandleCustomerList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindAllRecords("customers")
		if err != nil {
			log.Printf("customer_list: could not query customers: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		sort.Slice(records, func(i, j int) bool {
			return records[i].GetString("name") < records[j].GetString("name")
		})

		customers := make([]templates.CustomerListItem, 0, len(records))
		for _, rec := range records {
			estimates, _ := app.FindRecordsByFilter(
				"estimates",
				"customer = {:customerId}",
				"", 0, 0,
				map[string]any{"customerId": rec.Id},
			)
			customers = append(customers, templates.CustomerListItem{
				ID:            rec.Id,
				Name:          rec.GetString("name"),
				Phone:         rec.GetString("phone"),
				Email:         rec.GetString("email"),
				City:          rec.GetString("city"),
				EstimateCount: len(estimates),
			})
		}

		headerData := GetHeaderData(e.Request)
		if e.Request.Header.Get("HX-Request") == "true" {
			component := templates.CustomerListContent(customers)
			return component.Render(e.Request.Context(), e.Response)
		}
		component := templates.CustomerListPage(customers, headerData)
		return component.Render(e.Request.Context(), e.Response)
	}
}
