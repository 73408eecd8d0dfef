package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roofcrm/testhelpers"
)

func TestHandleEstimatePreview_CustomerViewHidesCosts(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCompanySettings(t, app)
	customer := testhelpers.CreateTestCustomer(t, app, "Preview Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Preview Estimate")
	testhelpers.CreateTestLineItem(t, app, estimate.Id, 1, "Synthetic Underlayment", "material", 10, 45)

	handler := HandleEstimatePreview(app)

	req := httptest.NewRequest(http.MethodGet, "/estimates/"+estimate.Id+"/preview?view=customer", nil)
	req.SetPathValue("id", estimate.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"doc-page doc-page-cover",
		"doc-page doc-page-items",
		"Synthetic Underlayment",
		"Scope of Work",
	)
	if strings.Contains(body, "Commission") {
		t.Error("customer preview must not show commission")
	}
	if strings.Contains(body, "Unit Cost") {
		t.Error("customer preview must not show unit costs")
	}
}

func TestHandleEstimatePreview_InternalViewShowsBreakdown(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCompanySettings(t, app)
	customer := testhelpers.CreateTestCustomer(t, app, "Internal Viewer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Internal Estimate")
	testhelpers.CreateTestLineItem(t, app, estimate.Id, 1, "Crew Labor", "labor", 8, 95)

	handler := HandleEstimatePreview(app)

	req := httptest.NewRequest(http.MethodGet, "/estimates/"+estimate.Id+"/preview?view=internal", nil)
	req.SetPathValue("id", estimate.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Commission", "Markup", "Unit Cost")
	// Internal preset drops the cover page.
	if strings.Contains(body, "doc-page doc-page-cover") {
		t.Error("internal preview must not include a cover page")
	}
}

func TestHandleEstimatePreview_PhotoPages(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCompanySettings(t, app)
	customer := testhelpers.CreateTestCustomer(t, app, "Photo Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Photo Estimate")
	for i := 1; i <= 10; i++ {
		testhelpers.CreateTestPhoto(t, app, estimate.Id, i, "during")
	}

	handler := HandleEstimatePreview(app)

	req := httptest.NewRequest(http.MethodGet, "/estimates/"+estimate.Id+"/preview?view=customer", nil)
	req.SetPathValue("id", estimate.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// 10 photos auto-resolve to 4 columns, 8 per page, 2 pages.
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Job Photos (1/2)", "Job Photos (2/2)", "photo-grid-4")
}
