package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
	"roofcrm/templates"
)

func HandleEstimateView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		record, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			log.Printf("estimate_view: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		items, err := loadLineItems(app, record.Id)
		if err != nil {
			log.Printf("estimate_view: could not load line items for %s: %v", estimateID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		totals := estimateTotals(record, items)

		rows := make([]templates.LineItemRow, 0, len(items))
		for _, item := range items {
			rows = append(rows, templates.LineItemRow{
				ID:        item.ID,
				Name:      item.Name,
				Desc:      item.Description,
				ItemType:  item.ItemType,
				Qty:       services.FormatQty(item.Qty),
				Unit:      item.Unit,
				UnitCost:  services.FormatUSD(item.UnitCost),
				LineTotal: services.FormatUSD(item.LineTotal),
			})
		}

		customerName := ""
		portalURL := ""
		if customerID := record.GetString("customer"); customerID != "" {
			if customer, err := app.FindRecordById("customers", customerID); err == nil {
				customerName = customer.GetString("name")
				if token := customer.GetString("portal_token"); token != "" {
					portalURL = "/portal/" + token
				}
			}
		}

		photos := loadPhotos(app, record.Id)
		attachments := loadAttachments(app, record.Id)

		data := templates.EstimateViewData{
			ID:           record.Id,
			Title:        record.GetString("title"),
			Number:       record.GetString("estimate_number"),
			Status:       record.GetString("status"),
			CustomerName: customerName,
			CreatedDate:  record.GetDateTime("created").Time().Format("Jan 2, 2006"),
			TierGroup:    record.GetString("tier_group"),
			TierLabel:    record.GetString("tier_label"),
			Items:        rows,
			Totals: templates.TotalsView{
				MaterialTotal: services.FormatUSD(totals.MaterialTotal),
				LaborTotal:    services.FormatUSD(totals.LaborTotal),
				Subtotal:      services.FormatUSD(totals.Subtotal),
				Markup:        services.FormatUSD(totals.MarkupAmount),
				Tax:           services.FormatUSD(totals.TaxAmount),
				GrandTotal:    services.FormatUSD(totals.GrandTotal),
				Commission:    services.FormatUSD(totals.CommissionAmount),
				ShowBreakdown: true,
			},
			HasMeasurement: loadMeasurement(app, record.Id) != nil,
			PhotoCount:     len(photos),
			AttachCount:    len(attachments),
			PortalURL:      portalURL,
		}

		headerData := GetHeaderData(e.Request)
		if e.Request.Header.Get("HX-Request") == "true" {
			component := templates.EstimateViewContent(data)
			return component.Render(e.Request.Context(), e.Response)
		}
		component := templates.EstimateViewPage(data, headerData)
		return component.Render(e.Request.Context(), e.Response)
	}
}
