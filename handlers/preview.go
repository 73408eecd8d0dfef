package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/templates"
)

// HandleEstimatePreview assembles the estimate document and renders it as
// on-screen pages. ?view=customer|internal picks the option preset.
func HandleEstimatePreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		estimate, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			log.Printf("preview: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		view := documentView(e)
		company := GetCompanyInfo(e.Request)
		if company.Name == "" {
			company = LoadCompanyInfo(app)
		}

		data, err := buildDocumentData(app, estimate, company, view)
		if err != nil {
			log.Printf("preview: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to assemble document")
		}

		headerData := GetHeaderData(e.Request)
		component := templates.PreviewPage(data, view, estimate.Id, headerData)
		return component.Render(e.Request.Context(), e.Response)
	}
}
