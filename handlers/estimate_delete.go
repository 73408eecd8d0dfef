package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleEstimateDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		if estimateID == "" {
			return e.String(http.StatusBadRequest, "Missing estimate ID")
		}

		record, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			log.Printf("estimate_delete: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		// Line items, measurements, photos and attachments cascade.
		if err := app.Delete(record); err != nil {
			log.Printf("estimate_delete: failed to delete estimate %s: %v", estimateID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete estimate")
		}

		log.Printf("estimate_delete: deleted estimate %s\n", estimateID)
		SetToast(e, "success", "Estimate deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/estimates")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/estimates")
	}
}
