package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/templates"
)

var measurementFields = []string{"squares", "ridge_lf", "hip_lf", "valley_lf", "eave_lf", "rake_lf", "waste_percent"}

func HandleMeasurementForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		estimate, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			log.Printf("measurement_form: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		data := templates.MeasurementFormData{
			EstimateID:    estimate.Id,
			EstimateTitle: estimate.GetString("title"),
		}

		records, err := app.FindRecordsByFilter(
			"measurements",
			"estimate = {:estimateId}",
			"", 1, 0,
			map[string]any{"estimateId": estimateID},
		)
		if err == nil && len(records) > 0 {
			rec := records[0]
			format := func(field string) string {
				return strconv.FormatFloat(rec.GetFloat(field), 'f', -1, 64)
			}
			data.Squares = format("squares")
			data.RidgeLF = format("ridge_lf")
			data.HipLF = format("hip_lf")
			data.ValleyLF = format("valley_lf")
			data.EaveLF = format("eave_lf")
			data.RakeLF = format("rake_lf")
			data.WastePercent = format("waste_percent")
		}

		headerData := GetHeaderData(e.Request)
		component := templates.MeasurementPage(data, headerData)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleMeasurementUpsert saves the estimate's measurement record,
// creating it on first save and updating it afterwards.
func HandleMeasurementUpsert(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("estimates", estimateID); err != nil {
			log.Printf("measurement_upsert: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		values := make(map[string]float64, len(measurementFields))
		for _, field := range measurementFields {
			raw := strings.TrimSpace(e.Request.FormValue(field))
			if raw == "" {
				values[field] = 0
				continue
			}
			val, err := strconv.ParseFloat(raw, 64)
			if err != nil || val < 0 {
				return ErrorToast(e, http.StatusBadRequest, "Measurements must be non-negative numbers")
			}
			values[field] = val
		}

		var record *core.Record
		existing, err := app.FindRecordsByFilter(
			"measurements",
			"estimate = {:estimateId}",
			"", 1, 0,
			map[string]any{"estimateId": estimateID},
		)
		if err == nil && len(existing) > 0 {
			record = existing[0]
		} else {
			measCol, err := app.FindCollectionByNameOrId("measurements")
			if err != nil {
				log.Printf("measurement_upsert: could not find measurements collection: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			record = core.NewRecord(measCol)
			record.Set("estimate", estimateID)
		}

		for field, val := range values {
			record.Set(field, val)
		}

		if err := app.Save(record); err != nil {
			log.Printf("measurement_upsert: could not save measurement for %s: %v", estimateID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Measurements saved")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/estimates/"+estimateID)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/estimates/"+estimateID)
	}
}
