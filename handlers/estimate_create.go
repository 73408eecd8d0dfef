package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/templates"
)

var EstimateStatusOptions = []string{"draft", "sent", "approved", "declined"}
var TierLabelOptions = []string{"good", "better", "best"}

func loadCustomerOptions(app *pocketbase.PocketBase) []templates.CustomerOption {
	records, err := app.FindAllRecords("customers")
	if err != nil {
		return nil
	}
	options := make([]templates.CustomerOption, 0, len(records))
	for _, rec := range records {
		options = append(options, templates.CustomerOption{
			ID:   rec.Id,
			Name: rec.GetString("name"),
		})
	}
	return options
}

// nextEstimateNumber produces a sequential EST-NNNN number.
func nextEstimateNumber(app *pocketbase.PocketBase) string {
	records, err := app.FindAllRecords("estimates")
	if err != nil {
		return "EST-1001"
	}
	max := 1000
	for _, rec := range records {
		num := rec.GetString("estimate_number")
		if n, err := strconv.Atoi(strings.TrimPrefix(num, "EST-")); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("EST-%d", max+1)
}

func HandleEstimateCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.EstimateFormData{
			EstimateNumber: nextEstimateNumber(app),
			CustomerID:     e.Request.URL.Query().Get("customer"),
			Status:         "draft",
			MarkupPercent:  "20",
			TaxRatePercent: "0",
			CommissionRate: "0",
			Customers:      loadCustomerOptions(app),
			Errors:         make(map[string]string),
		}
		headerData := GetHeaderData(e.Request)
		component := templates.EstimateCreatePage(data, headerData)
		return component.Render(e.Request.Context(), e.Response)
	}
}

func estimateFormData(r *http.Request) templates.EstimateFormData {
	return templates.EstimateFormData{
		Title:          strings.TrimSpace(r.FormValue("title")),
		EstimateNumber: strings.TrimSpace(r.FormValue("estimate_number")),
		CustomerID:     strings.TrimSpace(r.FormValue("customer")),
		Status:         strings.TrimSpace(r.FormValue("status")),
		TierGroup:      strings.TrimSpace(r.FormValue("tier_group")),
		TierLabel:      strings.TrimSpace(r.FormValue("tier_label")),
		MarkupPercent:  strings.TrimSpace(r.FormValue("markup_percent")),
		TaxRatePercent: strings.TrimSpace(r.FormValue("tax_rate_percent")),
		CommissionRate: strings.TrimSpace(r.FormValue("commission_rate_percent")),
		TermsText:      r.FormValue("terms_text"),
		WarrantyText:   r.FormValue("warranty_text"),
		Notes:          r.FormValue("notes"),
	}
}

func validateEstimateForm(data templates.EstimateFormData) (map[string]string, map[string]float64) {
	errors := make(map[string]string)
	rates := make(map[string]float64)

	if data.Title == "" {
		errors["title"] = "Estimate title is required"
	}
	if data.CustomerID == "" {
		errors["customer"] = "A customer is required"
	}

	for field, raw := range map[string]string{
		"markup_percent":          data.MarkupPercent,
		"tax_rate_percent":        data.TaxRatePercent,
		"commission_rate_percent": data.CommissionRate,
	} {
		if raw == "" {
			rates[field] = 0
			continue
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil || val < 0 {
			errors[field] = "Must be a non-negative number"
			continue
		}
		rates[field] = val
	}

	if data.TierLabel != "" {
		valid := false
		for _, l := range TierLabelOptions {
			if data.TierLabel == l {
				valid = true
				break
			}
		}
		if !valid {
			errors["tier_label"] = "Tier must be good, better or best"
		}
	}

	return errors, rates
}

func HandleEstimateSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := estimateFormData(e.Request)
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
			status = "draft"
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data.Errors = errors
			data.Customers = loadCustomerOptions(app)
			headerData := GetHeaderData(e.Request)
			component := templates.EstimateCreatePage(data, headerData)
			return component.Render(e.Request.Context(), e.Response)
		}

		estimatesCol, err := app.FindCollectionByNameOrId("estimates")
		if err != nil {
			log.Printf("estimate_create: could not find estimates collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		number := data.EstimateNumber
		if number == "" {
			number = nextEstimateNumber(app)
		}

		record := core.NewRecord(estimatesCol)
		record.Set("customer", data.CustomerID)
		record.Set("title", data.Title)
		record.Set("estimate_number", number)
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
			log.Printf("estimate_create: could not save estimate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Estimate created successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/estimates/"+record.Id)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/estimates/"+record.Id)
	}
}
