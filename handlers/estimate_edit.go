package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/templates"
)

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func HandleEstimateEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		record, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			log.Printf("estimate_edit: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		data := templates.EstimateFormData{
			ID:             record.Id,
			Title:          record.GetString("title"),
			EstimateNumber: record.GetString("estimate_number"),
			CustomerID:     record.GetString("customer"),
			Status:         record.GetString("status"),
			TierGroup:      record.GetString("tier_group"),
			TierLabel:      record.GetString("tier_label"),
			MarkupPercent:  formatRate(record.GetFloat("markup_percent")),
			TaxRatePercent: formatRate(record.GetFloat("tax_rate_percent")),
			CommissionRate: formatRate(record.GetFloat("commission_rate_percent")),
			TermsText:      record.GetString("terms_text"),
			WarrantyText:   record.GetString("warranty_text"),
			Notes:          record.GetString("notes"),
			Customers:      loadCustomerOptions(app),
			Errors:         make(map[string]string),
		}
		headerData := GetHeaderData(e.Request)
		component := templates.EstimateEditPage(data, headerData)
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleEstimateUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		record, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			log.Printf("estimate_update: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := estimateFormData(e.Request)
		data.ID = record.Id
		errors, rates := validateEstimateForm(data)

		status := data.Status
		validStatus := false
		for _, s := range EstimateStatusOptions {
			if status == s {
				validStatus = true
				break
			}
		}
		if !validStatus {
			errors["status"] = "Invalid status"
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data.Errors = errors
			data.Customers = loadCustomerOptions(app)
			headerData := GetHeaderData(e.Request)
			component := templates.EstimateEditPage(data, headerData)
			return component.Render(e.Request.Context(), e.Response)
		}

		record.Set("customer", data.CustomerID)
		record.Set("title", data.Title)
		record.Set("estimate_number", data.EstimateNumber)
		record.Set("status", status)
		record.Set("tier_group", data.TierGroup)
		record.Set("tier_label", data.TierLabel)
		record.Set("markup_percent", rates["markup_percent"])
		record.Set("tax_rate_percent", rates["tax_rate_percent"])
		record.Set("commission_rate_percent", rates["commission_rate_percent"])
		record.Set("terms_text", data.TermsText)
		record.Set("warranty_text", data.WarrantyText)
		record.Set("notes", data.Notes)

		if err := app.Save(record); err != nil {
			log.Printf("estimate_update: could not save estimate %s: %v", estimateID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Estimate updated")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/estimates/"+record.Id)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/estimates/"+record.Id)
	}
}
