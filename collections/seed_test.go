package collections_test

import (
	"testing"

	"roofcrm/collections"
	"roofcrm/testhelpers"
)

func TestSeed_CreatesDemoData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	estimatesCol, _ := app.FindCollectionByNameOrId("estimates")
	estimates, err := app.FindAllRecords(estimatesCol)
	if err != nil || len(estimates) != 1 {
		t.Fatalf("expected 1 seeded estimate, got %d (err=%v)", len(estimates), err)
	}

	estimate := estimates[0]
	if estimate.GetString("estimate_number") != "EST-1001" {
		t.Errorf("estimate_number = %q", estimate.GetString("estimate_number"))
	}

	itemsCol, _ := app.FindCollectionByNameOrId("line_items")
	items, err := app.FindRecordsByFilter(itemsCol, "estimate = {:id}", "sort_order", 0, 0,
		map[string]any{"id": estimate.Id})
	if err != nil || len(items) == 0 {
		t.Fatalf("expected seeded line items, got %d (err=%v)", len(items), err)
	}

	// line_total must equal qty * unit_cost for every seeded item.
	for _, item := range items {
		qty := item.GetFloat("qty")
		cost := item.GetFloat("unit_cost")
		total := item.GetFloat("line_total")
		if total != qty*cost {
			t.Errorf("item %q: line_total %v != qty %v * unit_cost %v",
				item.GetString("name"), total, qty, cost)
		}
	}

	settingsCol, _ := app.FindCollectionByNameOrId("company_settings")
	settings, err := app.FindAllRecords(settingsCol)
	if err != nil || len(settings) != 1 {
		t.Fatalf("expected 1 company settings record, got %d", len(settings))
	}

	customersCol, _ := app.FindCollectionByNameOrId("customers")
	customers, _ := app.FindAllRecords(customersCol)
	if len(customers) != 1 {
		t.Fatalf("expected 1 seeded customer, got %d", len(customers))
	}
	if customers[0].GetString("portal_token") == "" {
		t.Error("seeded customer has no portal token")
	}
}

func TestSeed_SkipsWhenDataExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Existing Customer")
	testhelpers.CreateTestEstimate(t, app, customer.Id, "Existing Estimate")

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	estimatesCol, _ := app.FindCollectionByNameOrId("estimates")
	estimates, _ := app.FindAllRecords(estimatesCol)
	if len(estimates) != 1 {
		t.Errorf("seed should be a no-op with existing data, got %d estimates", len(estimates))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	estimatesCol, _ := app.FindCollectionByNameOrId("estimates")
	estimates, _ := app.FindAllRecords(estimatesCol)
	if len(estimates) != 1 {
		t.Errorf("expected 1 estimate after double seed, got %d", len(estimates))
	}
}
