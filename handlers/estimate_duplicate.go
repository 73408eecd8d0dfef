package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleEstimateDuplicate clones an estimate into a new tier. The copy
// carries over line items, measurement and rates, gets the requested tier
// label and joins the source's tier group (creating the group when the
// source has none).
func HandleEstimateDuplicate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		source, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			log.Printf("estimate_duplicate: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		tierLabel := strings.TrimSpace(e.Request.FormValue("tier_label"))
		valid := false
		for _, l := range TierLabelOptions {
			if tierLabel == l {
				valid = true
				break
			}
		}
		if !valid {
			return ErrorToast(e, http.StatusBadRequest, "Tier must be good, better or best")
		}

		tierGroup := source.GetString("tier_group")
		if tierGroup == "" {
			tierGroup = uuid.NewString()
			source.Set("tier_group", tierGroup)
			if source.GetString("tier_label") == "" {
				source.Set("tier_label", "good")
			}
			if err := app.Save(source); err != nil {
				log.Printf("estimate_duplicate: could not assign tier group to %s: %v", estimateID, err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		}

		estimatesCol, err := app.FindCollectionByNameOrId("estimates")
		if err != nil {
			log.Printf("estimate_duplicate: could not find estimates collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		copyRec := core.NewRecord(estimatesCol)
		copyRec.Set("customer", source.GetString("customer"))
		copyRec.Set("title", source.GetString("title")+" ("+tierLabel+")")
		copyRec.Set("estimate_number", nextEstimateNumber(app))
		copyRec.Set("status", "draft")
		copyRec.Set("tier_group", tierGroup)
		copyRec.Set("tier_label", tierLabel)
		copyRec.Set("markup_percent", source.GetFloat("markup_percent"))
		copyRec.Set("tax_rate_percent", source.GetFloat("tax_rate_percent"))
		copyRec.Set("commission_rate_percent", source.GetFloat("commission_rate_percent"))
		copyRec.Set("terms_text", source.GetString("terms_text"))
		copyRec.Set("warranty_text", source.GetString("warranty_text"))
		copyRec.Set("notes", source.GetString("notes"))
		copyRec.Set("display_options", source.Get("display_options"))

		if err := app.Save(copyRec); err != nil {
			log.Printf("estimate_duplicate: could not save copy of %s: %v", estimateID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		itemsCol, err := app.FindCollectionByNameOrId("line_items")
		if err != nil {
			log.Printf("estimate_duplicate: could not find line_items collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		items, err := app.FindRecordsByFilter(
			itemsCol,
			"estimate = {:estimateId}",
			"sort_order", 0, 0,
			map[string]any{"estimateId": estimateID},
		)
		if err != nil {
			items = nil
		}
		for _, item := range items {
			clone := core.NewRecord(itemsCol)
			clone.Set("estimate", copyRec.Id)
			clone.Set("sort_order", item.GetFloat("sort_order"))
			clone.Set("name", item.GetString("name"))
			clone.Set("description", item.GetString("description"))
			clone.Set("item_type", item.GetString("item_type"))
			clone.Set("qty", item.GetFloat("qty"))
			clone.Set("unit", item.GetString("unit"))
			clone.Set("unit_cost", item.GetFloat("unit_cost"))
			clone.Set("line_total", item.GetFloat("line_total"))
			if err := app.Save(clone); err != nil {
				log.Printf("estimate_duplicate: failed to clone line item %s: %v", item.Id, err)
			}
		}

		measurements, err := app.FindRecordsByFilter(
			"measurements",
			"estimate = {:estimateId}",
			"", 1, 0,
			map[string]any{"estimateId": estimateID},
		)
		if err == nil && len(measurements) > 0 {
			measCol, err := app.FindCollectionByNameOrId("measurements")
			if err == nil {
				src := measurements[0]
				clone := core.NewRecord(measCol)
				clone.Set("estimate", copyRec.Id)
				for _, field := range []string{"squares", "ridge_lf", "hip_lf", "valley_lf", "eave_lf", "rake_lf", "waste_percent"} {
					clone.Set(field, src.GetFloat(field))
				}
				if err := app.Save(clone); err != nil {
					log.Printf("estimate_duplicate: failed to clone measurement: %v", err)
				}
			}
		}

		log.Printf("estimate_duplicate: cloned estimate %s into %s (tier=%s, items=%d)\n",
			estimateID, copyRec.Id, tierLabel, len(items))
		SetToast(e, "success", "Created "+tierLabel+" tier")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/estimates/"+copyRec.Id)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/estimates/"+copyRec.Id)
	}
}
