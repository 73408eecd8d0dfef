package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
)

// loadLineItems fetches an estimate's line items ordered by sort_order.
func loadLineItems(app *pocketbase.PocketBase, estimateID string) ([]services.LineItem, error) {
	records, err := app.FindRecordsByFilter(
		"line_items",
		"estimate = {:estimateId}",
		"sort_order", 0, 0,
		map[string]any{"estimateId": estimateID},
	)
	if err != nil {
		return nil, fmt.Errorf("load line items: %w", err)
	}

	items := make([]services.LineItem, 0, len(records))
	for _, rec := range records {
		items = append(items, services.LineItem{
			ID:          rec.Id,
			Name:        rec.GetString("name"),
			Description: rec.GetString("description"),
			ItemType:    rec.GetString("item_type"),
			Qty:         rec.GetFloat("qty"),
			Unit:        rec.GetString("unit"),
			UnitCost:    rec.GetFloat("unit_cost"),
			LineTotal:   rec.GetFloat("line_total"),
			SortOrder:   int(rec.GetFloat("sort_order")),
		})
	}
	return items, nil
}

// loadMeasurement fetches the estimate's measurement record, or nil when
// none exists.
func loadMeasurement(app *pocketbase.PocketBase, estimateID string) *services.MeasurementSummary {
	records, err := app.FindRecordsByFilter(
		"measurements",
		"estimate = {:estimateId}",
		"", 1, 0,
		map[string]any{"estimateId": estimateID},
	)
	if err != nil || len(records) == 0 {
		return nil
	}
	rec := records[0]
	return &services.MeasurementSummary{
		Squares:      rec.GetFloat("squares"),
		RidgeLF:      rec.GetFloat("ridge_lf"),
		HipLF:        rec.GetFloat("hip_lf"),
		ValleyLF:     rec.GetFloat("valley_lf"),
		EaveLF:       rec.GetFloat("eave_lf"),
		RakeLF:       rec.GetFloat("rake_lf"),
		WastePercent: rec.GetFloat("waste_percent"),
	}
}

func loadPhotos(app *pocketbase.PocketBase, estimateID string) []services.Photo {
	records, err := app.FindRecordsByFilter(
		"photos",
		"estimate = {:estimateId}",
		"sort_order", 0, 0,
		map[string]any{"estimateId": estimateID},
	)
	if err != nil {
		return nil
	}
	photos := make([]services.Photo, 0, len(records))
	for _, rec := range records {
		photos = append(photos, services.Photo{
			ID:          rec.Id,
			FilePath:    rec.GetString("file_path"),
			Category:    rec.GetString("category"),
			Description: rec.GetString("description"),
			SortOrder:   int(rec.GetFloat("sort_order")),
		})
	}
	return photos
}

func loadAttachments(app *pocketbase.PocketBase, estimateID string) []services.Attachment {
	records, err := app.FindRecordsByFilter(
		"attachments",
		"estimate = {:estimateId}",
		"sort_order", 0, 0,
		map[string]any{"estimateId": estimateID},
	)
	if err != nil {
		return nil
	}
	attachments := make([]services.Attachment, 0, len(records))
	for _, rec := range records {
		attachments = append(attachments, services.Attachment{
			DocumentID: rec.Id,
			FilePath:   rec.GetString("file_path"),
			Filename:   rec.GetString("filename"),
			SortOrder:  int(rec.GetFloat("sort_order")),
		})
	}
	return attachments
}

// resolveOptions picks the preset for the requested view and layers the
// estimate's stored display_options overrides on top.
func resolveOptions(estimate *core.Record, view string) services.DisplayOptions {
	opts := services.CustomerOptions()
	if view == "internal" {
		opts = services.InternalOptions()
	}

	var overrides map[string]any
	if err := estimate.UnmarshalJSONField("display_options", &overrides); err == nil && len(overrides) > 0 {
		opts = services.ApplyOverrides(opts, overrides)
	}
	return opts
}

// estimateTotals computes the pricing rollup from stored line totals and
// the estimate's rate fields.
func estimateTotals(estimate *core.Record, items []services.LineItem) services.EstimateTotals {
	return services.CalcEstimateTotals(
		items,
		estimate.GetFloat("markup_percent"),
		estimate.GetFloat("tax_rate_percent"),
		estimate.GetFloat("commission_rate_percent"),
	)
}

// buildDocumentData loads every data source an estimate document needs,
// assembles the page plan and returns the render-ready bundle. view is
// "customer" or "internal".
func buildDocumentData(app *pocketbase.PocketBase, estimate *core.Record, company services.CompanyInfo, view string) (services.DocumentData, error) {
	items, err := loadLineItems(app, estimate.Id)
	if err != nil {
		return services.DocumentData{}, err
	}

	opts := resolveOptions(estimate, view)
	measurement := loadMeasurement(app, estimate.Id)
	photos := loadPhotos(app, estimate.Id)
	attachments := loadAttachments(app, estimate.Id)

	plan := services.AssembleDocument(services.DocumentInput{
		Items:       items,
		Options:     opts,
		Measurement: measurement,
		Photos:      photos,
		Attachments: attachments,
	})

	customerName := ""
	var customerLines []string
	if customerID := estimate.GetString("customer"); customerID != "" {
		customer, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("docdata: could not load customer %s: %v", customerID, err)
		} else {
			customerName = customer.GetString("name")
			if street := customer.GetString("street"); street != "" {
				customerLines = append(customerLines, street)
			}
			var cityParts []string
			for _, part := range []string{customer.GetString("city"), customer.GetString("state")} {
				if part != "" {
					cityParts = append(cityParts, part)
				}
			}
			cityLine := strings.Join(cityParts, ", ")
			if zip := customer.GetString("zip"); zip != "" {
				cityLine = strings.TrimSpace(cityLine + " " + zip)
			}
			if cityLine != "" {
				customerLines = append(customerLines, cityLine)
			}
			if phone := customer.GetString("phone"); phone != "" {
				customerLines = append(customerLines, phone)
			}
		}
	}

	return services.DocumentData{
		Plan:           plan,
		Options:        opts,
		Company:        company,
		Title:          estimate.GetString("title"),
		EstimateNumber: estimate.GetString("estimate_number"),
		DateLabel:      estimate.GetDateTime("created").Time().Format("January 2, 2006"),
		CustomerName:   customerName,
		CustomerLines:  customerLines,
		Totals:         estimateTotals(estimate, items),
		TermsText:      estimate.GetString("terms_text"),
		WarrantyText:   estimate.GetString("warranty_text"),
		Measurement:    measurement,
	}, nil
}
