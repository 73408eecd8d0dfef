package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cobra"

	"roofcrm/collections"
	"roofcrm/handlers"
)

func main() {
	app := pocketbase.New()

	// Re-seed demo data on demand without touching the serve lifecycle.
	app.RootCmd.AddCommand(&cobra.Command{
		Use:   "seed-demo",
		Short: "Create the demo customer, estimate and company settings",
		Run: func(cmd *cobra.Command, args []string) {
			if err := app.Bootstrap(); err != nil {
				log.Fatal(err)
			}
			collections.Setup(app)
			if err := collections.Seed(app); err != nil {
				log.Fatal(err)
			}
		},
	})

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigratePortalTokens(app); err != nil {
			log.Printf("Warning: portal token migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Static assets and uploaded files
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))
		se.Router.GET("/uploads/{path...}", apis.Static(os.DirFS(filepath.Join(app.DataDir(), "uploads")), false))

		// Company branding is loaded once per request
		se.Router.BindFunc(handlers.CompanySettingsMiddleware(app))

		// ── Customer CRUD ────────────────────────────────────────
		se.Router.GET("/customers", handlers.HandleCustomerList(app))
		se.Router.GET("/customers/new", handlers.HandleCustomerCreate(app))
		se.Router.POST("/customers", handlers.HandleCustomerSave(app))
		se.Router.GET("/customers/{id}/edit", handlers.HandleCustomerEdit(app))
		se.Router.PUT("/customers/{id}", handlers.HandleCustomerUpdate(app))
		se.Router.DELETE("/customers/{id}", handlers.HandleCustomerDelete(app))
		se.Router.GET("/customers/{id}", handlers.HandleCustomerView(app))

		// ── Estimate CRUD ────────────────────────────────────────
		se.Router.GET("/estimates", handlers.HandleEstimateList(app))
		se.Router.GET("/estimates/new", handlers.HandleEstimateCreate(app))
		se.Router.POST("/estimates", handlers.HandleEstimateSave(app))
		se.Router.GET("/estimates/{id}/edit", handlers.HandleEstimateEdit(app))
		se.Router.PUT("/estimates/{id}", handlers.HandleEstimateUpdate(app))
		se.Router.DELETE("/estimates/{id}", handlers.HandleEstimateDelete(app))
		se.Router.POST("/estimates/{id}/duplicate", handlers.HandleEstimateDuplicate(app))

		// ── Line items ───────────────────────────────────────────
		se.Router.POST("/estimates/{id}/line-items", handlers.HandleLineItemAdd(app))
		se.Router.PATCH("/estimates/{id}/line-items/{itemId}", handlers.HandleLineItemPatch(app))
		se.Router.DELETE("/estimates/{id}/line-items/{itemId}", handlers.HandleLineItemDelete(app))
		se.Router.POST("/estimates/{id}/line-items/{itemId}/reorder", handlers.HandleLineItemReorder(app))

		// ── Measurements ─────────────────────────────────────────
		se.Router.GET("/estimates/{id}/measurements", handlers.HandleMeasurementForm(app))
		se.Router.PUT("/estimates/{id}/measurements", handlers.HandleMeasurementUpsert(app))

		// ── Photos ───────────────────────────────────────────────
		se.Router.GET("/estimates/{id}/photos", handlers.HandlePhotosPage(app))
		se.Router.POST("/estimates/{id}/photos", handlers.HandlePhotoAdd(app))
		se.Router.PATCH("/estimates/{id}/photos/{photoId}", handlers.HandlePhotoPatch(app))
		se.Router.DELETE("/estimates/{id}/photos/{photoId}", handlers.HandlePhotoDelete(app))

		// ── Attachments ──────────────────────────────────────────
		se.Router.GET("/estimates/{id}/attachments", handlers.HandleAttachmentsPage(app))
		se.Router.POST("/estimates/{id}/attachments", handlers.HandleAttachmentAdd(app))
		se.Router.POST("/estimates/{id}/attachments/{attachmentId}/reorder", handlers.HandleAttachmentReorder(app))
		se.Router.DELETE("/estimates/{id}/attachments/{attachmentId}", handlers.HandleAttachmentDelete(app))

		// ── Documents ────────────────────────────────────────────
		se.Router.GET("/estimates/{id}/preview", handlers.HandleEstimatePreview(app))
		se.Router.GET("/estimates/{id}/export/pdf", handlers.HandleEstimateExportPDF(app))
		se.Router.GET("/estimates/{id}/export/excel", handlers.HandleEstimateExportExcel(app))
		se.Router.GET("/estimates/{id}/tiers", handlers.HandleTiersCompare(app))

		// Estimate view (after specific /estimates/{id}/* routes)
		se.Router.GET("/estimates/{id}", handlers.HandleEstimateView(app))

		// ── Customer portal (tokenized, unauthenticated) ─────────
		se.Router.GET("/portal/{token}", handlers.HandlePortal(app))
		se.Router.POST("/portal/{token}/approve", handlers.HandlePortalApprove(app))
		se.Router.POST("/portal/{token}/decline", handlers.HandlePortalDecline(app))

		// Redirect home to estimates list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/estimates")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
