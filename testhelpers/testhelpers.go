// Package testhelpers provides utilities for testing PocketBase-based
// applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test
// finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCustomer creates a customer record with the given name and
// returns it.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("failed to find customers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("email", "customer@example.com")
	record.Set("phone", "(503) 555-0100")
	record.Set("street", "100 Test Avenue")
	record.Set("city", "Portland")
	record.Set("state", "OR")
	record.Set("zip", "97201")
	record.Set("portal_token", uuid.NewString())

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test customer: %v", err)
	}

	return record
}

// CreateTestEstimate creates an estimate record linked to a customer and
// returns it.
func CreateTestEstimate(t *testing.T, app *pocketbase.PocketBase, customerID, title string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("estimates")
	if err != nil {
		t.Fatalf("failed to find estimates collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer", customerID)
	record.Set("title", title)
	record.Set("estimate_number", "EST-TEST")
	record.Set("status", "draft")
	record.Set("markup_percent", 20.0)
	record.Set("tax_rate_percent", 8.0)
	record.Set("commission_rate_percent", 5.0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test estimate: %v", err)
	}

	return record
}

// CreateTestLineItem creates a line item record on an estimate.
func CreateTestLineItem(t *testing.T, app *pocketbase.PocketBase, estimateID string, sortOrder int, name, itemType string, qty, unitCost float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("line_items")
	if err != nil {
		t.Fatalf("failed to find line_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("estimate", estimateID)
	record.Set("sort_order", sortOrder)
	record.Set("name", name)
	record.Set("item_type", itemType)
	record.Set("qty", qty)
	record.Set("unit", "sq")
	record.Set("unit_cost", unitCost)
	record.Set("line_total", qty*unitCost)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test line item: %v", err)
	}

	return record
}

// CreateTestMeasurement creates a measurement record for an estimate.
func CreateTestMeasurement(t *testing.T, app *pocketbase.PocketBase, estimateID string, squares float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("measurements")
	if err != nil {
		t.Fatalf("failed to find measurements collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("estimate", estimateID)
	record.Set("squares", squares)
	record.Set("ridge_lf", 48.0)
	record.Set("eave_lf", 120.0)
	record.Set("waste_percent", 10.0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test measurement: %v", err)
	}

	return record
}

// CreateTestPhoto creates a photo record for an estimate.
func CreateTestPhoto(t *testing.T, app *pocketbase.PocketBase, estimateID string, sortOrder int, category string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("photos")
	if err != nil {
		t.Fatalf("failed to find photos collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("estimate", estimateID)
	record.Set("sort_order", sortOrder)
	record.Set("file_path", "photos/test.jpg")
	record.Set("category", category)
	record.Set("description", "Test photo")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test photo: %v", err)
	}

	return record
}

// CreateTestAttachment creates an attachment record for an estimate.
func CreateTestAttachment(t *testing.T, app *pocketbase.PocketBase, estimateID string, sortOrder int, filename string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("attachments")
	if err != nil {
		t.Fatalf("failed to find attachments collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("estimate", estimateID)
	record.Set("sort_order", sortOrder)
	record.Set("document_id", "doc-"+filename)
	record.Set("file_path", "attachments/"+filename)
	record.Set("filename", filename)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test attachment: %v", err)
	}

	return record
}

// CreateTestCompanySettings creates the company settings record.
func CreateTestCompanySettings(t *testing.T, app *pocketbase.PocketBase) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("company_settings")
	if err != nil {
		t.Fatalf("failed to find company_settings collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company_name", "Summit Ridge Roofing")
	record.Set("license_number", "CCB-204518")
	record.Set("phone", "(503) 555-0142")
	record.Set("locations", "Portland, OR\nVancouver, WA")
	record.Set("legal_line", "Licensed, bonded and insured.")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test company settings: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with
// the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
