package collections

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type itemDef struct {
	sortOrder   int
	name        string
	description string
	itemType    string
	qty         float64
	unit        string
	unitCost    float64
}

type photoDef struct {
	sortOrder   int
	filePath    string
	category    string
	description string
}

// Seed inserts a demo company, customer and estimate so a fresh install has
// something to render. It is a no-op when any estimate already exists.
func Seed(app *pocketbase.PocketBase) error {
	estimatesCol, err := app.FindCollectionByNameOrId("estimates")
	if err != nil {
		return fmt.Errorf("seed: could not find estimates collection: %w", err)
	}

	existing, err := app.FindAllRecords(estimatesCol)
	if err == nil && len(existing) > 0 {
		return nil
	}

	if err := seedCompanySettings(app); err != nil {
		return err
	}

	customersCol, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return fmt.Errorf("seed: could not find customers collection: %w", err)
	}

	customer := core.NewRecord(customersCol)
	customer.Set("name", "Dana Whitfield")
	customer.Set("email", "dana.whitfield@example.com")
	customer.Set("phone", "(503) 555-0188")
	customer.Set("street", "418 Maple Street")
	customer.Set("city", "Portland")
	customer.Set("state", "OR")
	customer.Set("zip", "97214")
	customer.Set("portal_token", uuid.NewString())
	if err := app.Save(customer); err != nil {
		return fmt.Errorf("seed: could not save customer: %w", err)
	}

	estimate := core.NewRecord(estimatesCol)
	estimate.Set("customer", customer.Id)
	estimate.Set("title", "Roof Replacement - Maple Street")
	estimate.Set("estimate_number", "EST-1001")
	estimate.Set("status", "draft")
	estimate.Set("markup_percent", 20.0)
	estimate.Set("tax_rate_percent", 0.0)
	estimate.Set("commission_rate_percent", 5.0)
	estimate.Set("terms_text", "This estimate is valid for 30 days. A 30% deposit is due on acceptance; the balance is due on completion.")
	estimate.Set("warranty_text", "Summit Ridge Roofing warrants all workmanship for ten years from the completion date. Manufacturer material warranties apply separately.")
	if err := app.Save(estimate); err != nil {
		return fmt.Errorf("seed: could not save estimate: %w", err)
	}

	items := []itemDef{
		{1, "Architectural shingles", "Owens Corning Duration, driftwood", "material", 26, "sq", 128.50},
		{2, "Synthetic underlayment", "", "material", 26, "sq", 18.75},
		{3, "Ice & water shield", "Eaves and valleys", "material", 180, "lf", 2.10},
		{4, "Ridge cap shingles", "", "material", 48, "lf", 4.85},
		{5, "Drip edge", "Aluminum, white", "material", 210, "lf", 1.95},
		{6, "Pipe boot flashings", "", "material", 4, "ea", 22.00},
		{7, "Tear-off & disposal", "Two layers", "labor", 26, "sq", 65.00},
		{8, "Shingle installation", "", "labor", 26, "sq", 95.00},
		{9, "Flashing & detail work", "Chimney and skylight", "labor", 8, "hr", 85.00},
	}

	lineItemsCol, err := app.FindCollectionByNameOrId("line_items")
	if err != nil {
		return fmt.Errorf("seed: could not find line_items collection: %w", err)
	}
	for _, def := range items {
		rec := core.NewRecord(lineItemsCol)
		rec.Set("estimate", estimate.Id)
		rec.Set("sort_order", def.sortOrder)
		rec.Set("name", def.name)
		rec.Set("description", def.description)
		rec.Set("item_type", def.itemType)
		rec.Set("qty", def.qty)
		rec.Set("unit", def.unit)
		rec.Set("unit_cost", def.unitCost)
		rec.Set("line_total", def.qty*def.unitCost)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: could not save line item %q: %w", def.name, err)
		}
	}

	measurementsCol, err := app.FindCollectionByNameOrId("measurements")
	if err != nil {
		return fmt.Errorf("seed: could not find measurements collection: %w", err)
	}
	measurement := core.NewRecord(measurementsCol)
	measurement.Set("estimate", estimate.Id)
	measurement.Set("squares", 24.3)
	measurement.Set("ridge_lf", 48.0)
	measurement.Set("hip_lf", 0.0)
	measurement.Set("valley_lf", 36.0)
	measurement.Set("eave_lf", 120.0)
	measurement.Set("rake_lf", 90.0)
	measurement.Set("waste_percent", 10.0)
	if err := app.Save(measurement); err != nil {
		return fmt.Errorf("seed: could not save measurement: %w", err)
	}

	photos := []photoDef{
		{1, "photos/maple-before-south.jpg", "before", "South slope, curled shingles"},
		{2, "photos/maple-before-valley.jpg", "before", "Valley wear"},
		{3, "photos/maple-damage-deck.jpg", "damage", "Soft decking near chimney"},
	}

	photosCol, err := app.FindCollectionByNameOrId("photos")
	if err != nil {
		return fmt.Errorf("seed: could not find photos collection: %w", err)
	}
	for _, def := range photos {
		rec := core.NewRecord(photosCol)
		rec.Set("estimate", estimate.Id)
		rec.Set("sort_order", def.sortOrder)
		rec.Set("file_path", def.filePath)
		rec.Set("category", def.category)
		rec.Set("description", def.description)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: could not save photo: %w", err)
		}
	}

	log.Printf("seed: created demo estimate %s\n", estimate.GetString("estimate_number"))
	return nil
}

func seedCompanySettings(app *pocketbase.PocketBase) error {
	settingsCol, err := app.FindCollectionByNameOrId("company_settings")
	if err != nil {
		return fmt.Errorf("seed: could not find company_settings collection: %w", err)
	}

	existing, err := app.FindAllRecords(settingsCol)
	if err == nil && len(existing) > 0 {
		return nil
	}

	rec := core.NewRecord(settingsCol)
	rec.Set("company_name", "Summit Ridge Roofing")
	rec.Set("license_number", "CCB-204518")
	rec.Set("phone", "(503) 555-0142")
	rec.Set("email", "office@summitridgeroofing.example.com")
	rec.Set("locations", "Portland, OR\nVancouver, WA")
	rec.Set("legal_line", "Licensed, bonded and insured. OR CCB-204518 / WA SUMMIRR842KD.")
	if err := app.Save(rec); err != nil {
		return fmt.Errorf("seed: could not save company settings: %w", err)
	}
	return nil
}
