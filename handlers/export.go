package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// documentView normalizes the ?view query param; anything other than
// "internal" falls back to the customer view.
func documentView(e *core.RequestEvent) string {
	if e.Request.URL.Query().Get("view") == "internal" {
		return "internal"
	}
	return "customer"
}

// HandleEstimateExportPDF generates and downloads the estimate document as
// a PDF in the requested view.
func HandleEstimateExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		if estimateID == "" {
			return e.String(http.StatusBadRequest, "Missing estimate ID")
		}

		estimate, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			log.Printf("export_pdf: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		company := GetCompanyInfo(e.Request)
		if company.Name == "" {
			company = LoadCompanyInfo(app)
		}

		data, err := buildDocumentData(app, estimate, company, documentView(e))
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to assemble document")
		}

		pdfBytes, err := services.GenerateDocumentPDF(data, services.DefaultExportConfig())
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("%s_%s.pdf",
			sanitizeFilename(data.EstimateNumber), sanitizeFilename(data.Title))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleEstimateExportExcel generates and downloads the line-item workbook.
func HandleEstimateExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		if estimateID == "" {
			return e.String(http.StatusBadRequest, "Missing estimate ID")
		}

		estimate, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			log.Printf("export_excel: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		items, err := loadLineItems(app, estimate.Id)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load line items")
		}

		opts := resolveOptions(estimate, documentView(e))
		data := services.ExcelData{
			Title:          estimate.GetString("title"),
			EstimateNumber: estimate.GetString("estimate_number"),
			DateLabel:      estimate.GetDateTime("created").Time().Format("January 2, 2006"),
			Items:          items,
			Totals:         estimateTotals(estimate, items),
			ShowUnitCosts:  opts.ShowItemUnitCosts,
		}

		xlsxBytes, err := services.GenerateEstimateExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("%s_%s.xlsx",
			sanitizeFilename(data.EstimateNumber), sanitizeFilename(data.Title))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
