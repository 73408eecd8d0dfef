package collections

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
)

// MigratePortalTokens backfills a portal_token for every customer missing
// one. Tokens are the only credential for the read-only customer portal, so
// older records created before the portal existed need one generated.
// Safe to call on every startup -- returns early if nothing to migrate.
func MigratePortalTokens(app *pocketbase.PocketBase) error {
	customersCol, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return fmt.Errorf("migrate: could not find customers collection: %w", err)
	}

	missing, err := app.FindRecordsByFilter(
		customersCol,
		"portal_token = ''",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query customers without tokens: %w", err)
	}

	if len(missing) == 0 {
		return nil
	}

	log.Printf("migrate: found %d customer(s) without a portal token -- generating...\n", len(missing))

	for _, customer := range missing {
		customer.Set("portal_token", uuid.NewString())
		if err := app.Save(customer); err != nil {
			return fmt.Errorf("migrate: could not save token for customer %s: %w", customer.Id, err)
		}
	}

	log.Printf("migrate: portal token backfill complete (%d customer(s))\n", len(missing))
	return nil
}
