package services

import "fmt"

// CompanyInfo is the branding block shared by every decorated page,
// sourced from the company_settings record.
type CompanyInfo struct {
	Name          string
	LicenseNumber string
	Phone         string
	Email         string
	Locations     []string
	LegalLine     string
}

// PageFrame is the header/footer decoration resolved for one page. Page
// dimensions are fixed: content that exceeds the page is clipped by the
// renderer, never reflowed.
type PageFrame struct {
	ShowHeader      bool
	ShowFooter      bool
	CompanyName     string
	LicenseNumber   string
	Phone           string
	EstimateNumber  string
	DateLabel       string
	PageLabel       string
	Locations       []string
	LegalLine       string
	SignatureMarker bool
}

// BuildPageFrame resolves the shell decoration for a page. Cover pages
// carry no header (the cover supplies its own branding; wrapping it again
// would double the header). The signature-bearing page gets a marker that
// signature-capture tooling keys off.
func BuildPageFrame(spec PageSpec, company CompanyInfo, estimateNumber, dateLabel string, opts DisplayOptions) PageFrame {
	frame := PageFrame{
		CompanyName:    company.Name,
		LicenseNumber:  company.LicenseNumber,
		Phone:          company.Phone,
		EstimateNumber: estimateNumber,
		DateLabel:      dateLabel,
	}

	frame.ShowHeader = opts.ShowCompanyHeader && spec.Kind != PageKindCover
	frame.ShowFooter = opts.ShowFooter

	if opts.ShowPageNumbers {
		frame.PageLabel = fmt.Sprintf("Page %d of %d", spec.PageNumber, spec.TotalPages)
	}
	if opts.ShowFooterLocations {
		frame.Locations = company.Locations
	}
	if opts.ShowFooterLegalLine {
		frame.LegalLine = company.LegalLine
	}
	if spec.Kind == PageKindItems && spec.ItemsContent != nil && spec.ItemsContent.ShowSignature {
		frame.SignatureMarker = true
	}

	return frame
}
