package handlers

import (
	"log"
	"net/http"
	"sort"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
	"roofcrm/templates"
)

var tierRank = map[string]int{"good": 0, "better": 1, "best": 2}

// HandleTiersCompare renders the good/better/best comparison for the tier
// group the estimate belongs to.
func HandleTiersCompare(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		estimate, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			log.Printf("tiers: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		tierGroup := estimate.GetString("tier_group")
		if tierGroup == "" {
			return e.String(http.StatusNotFound, "Estimate is not part of a tier group")
		}

		siblings, err := app.FindRecordsByFilter(
			"estimates",
			"tier_group = {:group}",
			"", 0, 0,
			map[string]any{"group": tierGroup},
		)
		if err != nil {
			log.Printf("tiers: could not load tier group %s: %v", tierGroup, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		sort.Slice(siblings, func(i, j int) bool {
			return tierRank[siblings[i].GetString("tier_label")] < tierRank[siblings[j].GetString("tier_label")]
		})

		customerName := ""
		if customerID := estimate.GetString("customer"); customerID != "" {
			if customer, err := app.FindRecordById("customers", customerID); err == nil {
				customerName = customer.GetString("name")
			}
		}

		data := templates.TiersData{
			TierGroup:    tierGroup,
			CustomerName: customerName,
		}

		for _, sib := range siblings {
			items, err := loadLineItems(app, sib.Id)
			if err != nil {
				log.Printf("tiers: could not load line items for %s: %v", sib.Id, err)
				continue
			}
			totals := estimateTotals(sib, items)

			col := templates.TierColumn{
				EstimateID: sib.Id,
				TierLabel:  sib.GetString("tier_label"),
				Title:      sib.GetString("title"),
				Number:     sib.GetString("estimate_number"),
				Status:     sib.GetString("status"),
				Subtotal:   services.FormatUSD(totals.Subtotal),
				GrandTotal: services.FormatUSD(totals.GrandTotal),
			}
			for _, item := range items {
				col.ItemNames = append(col.ItemNames, item.Name)
			}
			data.Columns = append(data.Columns, col)
		}

		headerData := GetHeaderData(e.Request)
		if e.Request.Header.Get("HX-Request") == "true" {
			component := templates.TiersContent(data)
			return component.Render(e.Request.Context(), e.Response)
		}
		component := templates.TiersPage(data, headerData)
		return component.Render(e.Request.Context(), e.Response)
	}
}
