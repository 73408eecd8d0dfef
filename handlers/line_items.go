package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
)

// renderEstimateContent re-renders the estimate detail after a line item
// mutation so HTMX can swap the whole page body in one round trip.
func renderEstimateContent(app *pocketbase.PocketBase, e *core.RequestEvent, estimateID string) error {
	return HandleEstimateView(app)(cloneEventForEstimate(e, estimateID))
}

func cloneEventForEstimate(e *core.RequestEvent, estimateID string) *core.RequestEvent {
	e.Request.SetPathValue("id", estimateID)
	return e
}

func HandleLineItemAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("estimates", estimateID); err != nil {
			log.Printf("line_item_add: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Item name is required")
		}

		itemType := e.Request.FormValue("item_type")
		if itemType != "material" && itemType != "labor" {
			itemType = "material"
		}

		qty, err := strconv.ParseFloat(e.Request.FormValue("qty"), 64)
		if err != nil || qty < 0 {
			return ErrorToast(e, http.StatusBadRequest, "Quantity must be a non-negative number")
		}
		unitCost, err := strconv.ParseFloat(e.Request.FormValue("unit_cost"), 64)
		if err != nil || unitCost < 0 {
			return ErrorToast(e, http.StatusBadRequest, "Unit cost must be a non-negative number")
		}

		unit := strings.TrimSpace(e.Request.FormValue("unit"))
		if unit == "" {
			unit = "ea"
		}

		existing, err := app.FindRecordsByFilter(
			"line_items",
			"estimate = {:estimateId}",
			"-sort_order", 1, 0,
			map[string]any{"estimateId": estimateID},
		)
		nextOrder := 1.0
		if err == nil && len(existing) > 0 {
			nextOrder = existing[0].GetFloat("sort_order") + 1
		}

		itemsCol, err := app.FindCollectionByNameOrId("line_items")
		if err != nil {
			log.Printf("line_item_add: could not find line_items collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(itemsCol)
		record.Set("estimate", estimateID)
		record.Set("sort_order", nextOrder)
		record.Set("name", name)
		record.Set("description", strings.TrimSpace(e.Request.FormValue("description")))
		record.Set("item_type", itemType)
		record.Set("qty", qty)
		record.Set("unit", unit)
		record.Set("unit_cost", unitCost)
		record.Set("line_total", services.CalcLineTotal(qty, unitCost))

		if err := app.Save(record); err != nil {
			log.Printf("line_item_add: could not save line item: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Item added")
		return renderEstimateContent(app, e, estimateID)
	}
}

// HandleLineItemPatch updates individual fields on a line item. Whenever
// qty or unit_cost changes the stored line_total is recomputed.
func HandleLineItemPatch(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")

		record, err := app.FindRecordById("line_items", itemID)
		if err != nil || record.GetString("estimate") != estimateID {
			log.Printf("line_item_patch: could not find line item %s on estimate %s: %v", itemID, estimateID, err)
			return e.String(http.StatusNotFound, "Line item not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		recompute := false
		for field, raw := range e.Request.PostForm {
			if len(raw) == 0 {
				continue
			}
			value := strings.TrimSpace(raw[0])
			switch field {
			case "name":
				if value == "" {
					return ErrorToast(e, http.StatusBadRequest, "Item name is required")
				}
				record.Set("name", value)
			case "description", "unit":
				record.Set(field, value)
			case "item_type":
				if value != "material" && value != "labor" {
					return ErrorToast(e, http.StatusBadRequest, "Item type must be material or labor")
				}
				record.Set("item_type", value)
			case "qty", "unit_cost":
				num, err := strconv.ParseFloat(value, 64)
				if err != nil || num < 0 {
					return ErrorToast(e, http.StatusBadRequest, "Must be a non-negative number")
				}
				record.Set(field, num)
				recompute = true
			}
		}

		if recompute {
			record.Set("line_total", services.CalcLineTotal(record.GetFloat("qty"), record.GetFloat("unit_cost")))
		}

		if err := app.Save(record); err != nil {
			log.Printf("line_item_patch: could not save line item %s: %v", itemID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Item updated")
		return renderEstimateContent(app, e, estimateID)
	}
}

func HandleLineItemDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")

		record, err := app.FindRecordById("line_items", itemID)
		if err != nil || record.GetString("estimate") != estimateID {
			log.Printf("line_item_delete: could not find line item %s on estimate %s: %v", itemID, estimateID, err)
			return e.String(http.StatusNotFound, "Line item not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("line_item_delete: failed to delete line item %s: %v", itemID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete item")
		}

		SetToast(e, "success", "Item removed")
		return renderEstimateContent(app, e, estimateID)
	}
}

// HandleLineItemReorder swaps a line item's sort_order with its neighbor
// in the requested direction ("up" or "down").
func HandleLineItemReorder(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")

		record, err := app.FindRecordById("line_items", itemID)
		if err != nil || record.GetString("estimate") != estimateID {
			log.Printf("line_item_reorder: could not find line item %s on estimate %s: %v", itemID, estimateID, err)
			return e.String(http.StatusNotFound, "Line item not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		direction := e.Request.FormValue("direction")
		if direction != "up" && direction != "down" {
			return ErrorToast(e, http.StatusBadRequest, "Direction must be up or down")
		}

		siblings, err := app.FindRecordsByFilter(
			"line_items",
			"estimate = {:estimateId}",
			"sort_order", 0, 0,
			map[string]any{"estimateId": estimateID},
		)
		if err != nil {
			log.Printf("line_item_reorder: could not load line items for %s: %v", estimateID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		pos := -1
		for i, sib := range siblings {
			if sib.Id == itemID {
				pos = i
				break
			}
		}
		if pos == -1 {
			return e.String(http.StatusNotFound, "Line item not found")
		}

		swap := pos - 1
		if direction == "down" {
			swap = pos + 1
		}
		if swap < 0 || swap >= len(siblings) {
			// Already at the boundary, nothing to do.
			return renderEstimateContent(app, e, estimateID)
		}

		a, b := siblings[pos], siblings[swap]
		aOrder, bOrder := a.GetFloat("sort_order"), b.GetFloat("sort_order")
		a.Set("sort_order", bOrder)
		b.Set("sort_order", aOrder)

		if err := app.Save(a); err != nil {
			log.Printf("line_item_reorder: failed to save %s: %v", a.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		if err := app.Save(b); err != nil {
			log.Printf("line_item_reorder: failed to save %s: %v", b.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return renderEstimateContent(app, e, estimateID)
	}
}
