package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
	"roofcrm/templates"
)

type contextKey string

const HeaderDataKey contextKey = "headerData"
const CompanyInfoKey contextKey = "companyInfo"

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{}
}

// GetCompanyInfo extracts the company branding block from the request
// context. Falls back to a zero value when the middleware did not run.
func GetCompanyInfo(r *http.Request) services.CompanyInfo {
	if val, ok := r.Context().Value(CompanyInfoKey).(services.CompanyInfo); ok {
		return val
	}
	return services.CompanyInfo{}
}

// LoadCompanyInfo reads the singleton company_settings record. Documents
// and page headers pull their branding from here.
func LoadCompanyInfo(app *pocketbase.PocketBase) services.CompanyInfo {
	records, err := app.FindAllRecords("company_settings")
	if err != nil || len(records) == 0 {
		return services.CompanyInfo{}
	}
	rec := records[0]

	var locations []string
	for _, line := range strings.Split(rec.GetString("locations"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			locations = append(locations, line)
		}
	}

	return services.CompanyInfo{
		Name:          rec.GetString("company_name"),
		LicenseNumber: rec.GetString("license_number"),
		Phone:         rec.GetString("phone"),
		Email:         rec.GetString("email"),
		Locations:     locations,
		LegalLine:     rec.GetString("legal_line"),
	}
}

// CompanySettingsMiddleware loads company settings once per request and
// stores both the branding block and the header data in the request
// context so handlers and templates can use them.
func CompanySettingsMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		company := LoadCompanyInfo(app)

		headerData := templates.HeaderData{
			CompanyName: company.Name,
			Phone:       company.Phone,
		}

		ctx := context.WithValue(e.Request.Context(), CompanyInfoKey, company)
		ctx = context.WithValue(ctx, HeaderDataKey, headerData)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}
