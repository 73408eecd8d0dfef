package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the customers, estimates,
// line_items, measurements, photos, attachments and company_settings
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	customers := ensureCollection(app, "customers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "street", Required: false})
		c.Fields.Add(&core.TextField{Name: "city", Required: false})
		c.Fields.Add(&core.TextField{Name: "state", Required: false})
		c.Fields.Add(&core.TextField{Name: "zip", Required: false})
		c.Fields.Add(&core.TextField{Name: "portal_token", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	estimates := ensureCollection(app, "estimates", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "customer",
			Required:      true,
			CollectionId:  customers.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "title", Required: true})
		c.Fields.Add(&core.TextField{Name: "estimate_number", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"draft", "sent", "approved", "declined"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "tier_group", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "tier_label",
			Required:  false,
			Values:    []string{"good", "better", "best"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "markup_percent", Required: false})
		c.Fields.Add(&core.NumberField{Name: "tax_rate_percent", Required: false})
		c.Fields.Add(&core.NumberField{Name: "commission_rate_percent", Required: false})
		c.Fields.Add(&core.TextField{Name: "terms_text", Required: false})
		c.Fields.Add(&core.TextField{Name: "warranty_text", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.JSONField{Name: "display_options", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "line_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "estimate",
			Required:      true,
			CollectionId:  estimates.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "item_type",
			Required:  true,
			Values:    []string{"material", "labor"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "qty", Required: true})
		c.Fields.Add(&core.TextField{Name: "unit", Required: true})
		c.Fields.Add(&core.NumberField{Name: "unit_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "line_total", Required: false})
	})

	ensureCollection(app, "measurements", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "estimate",
			Required:      true,
			CollectionId:  estimates.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "squares", Required: false})
		c.Fields.Add(&core.NumberField{Name: "ridge_lf", Required: false})
		c.Fields.Add(&core.NumberField{Name: "hip_lf", Required: false})
		c.Fields.Add(&core.NumberField{Name: "valley_lf", Required: false})
		c.Fields.Add(&core.NumberField{Name: "eave_lf", Required: false})
		c.Fields.Add(&core.NumberField{Name: "rake_lf", Required: false})
		c.Fields.Add(&core.NumberField{Name: "waste_percent", Required: false})
	})

	ensureCollection(app, "photos", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "estimate",
			Required:      true,
			CollectionId:  estimates.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "file_path", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "category",
			Required:  true,
			Values:    []string{"before", "during", "after", "damage"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
	})

	ensureCollection(app, "attachments", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "estimate",
			Required:      true,
			CollectionId:  estimates.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "document_id", Required: false})
		c.Fields.Add(&core.TextField{Name: "file_path", Required: true})
		c.Fields.Add(&core.TextField{Name: "filename", Required: true})
	})

	ensureCollection(app, "company_settings", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "company_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "license_number", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "locations", Required: false})
		c.Fields.Add(&core.TextField{Name: "legal_line", Required: false})
	})
}

// ensureCollection checks if a collection already exists by name. If it
// does, the existing collection is returned. Otherwise a new base
// collection is created, the addFields callback is invoked to populate its
// fields, and the collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
