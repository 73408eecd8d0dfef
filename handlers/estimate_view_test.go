package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roofcrm/testhelpers"
)

func TestHandleEstimateView_RendersItemsAndTotals(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "View Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Ridge Replacement")
	testhelpers.CreateTestLineItem(t, app, estimate.Id, 1, "Architectural Shingles", "material", 32, 125)
	testhelpers.CreateTestLineItem(t, app, estimate.Id, 2, "Tear-Off Labor", "labor", 16, 85)

	handler := HandleEstimateView(app)

	req := httptest.NewRequest(http.MethodGet, "/estimates/"+estimate.Id, nil)
	req.SetPathValue("id", estimate.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"Ridge Replacement",
		"Architectural Shingles",
		"Tear-Off Labor",
		"View Customer",
	)

	// materials 32*125=4000, labor 16*85=1360, subtotal 5360,
	// markup 20% = 1072, tax 8% of 6432 = 514.56, grand 6946.56
	testhelpers.AssertHTMLContains(t, body, "$5,360.00", "$1,072.00", "$6,946.56")
}

func TestHandleEstimateView_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleEstimateView(app)

	req := httptest.NewRequest(http.MethodGet, "/estimates/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleEstimateView_ContentSwapForHTMX(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Swap Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Swap Estimate")

	handler := HandleEstimateView(app)

	req := httptest.NewRequest(http.MethodGet, "/estimates/"+estimate.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", estimate.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Error("expected content fragment without full layout for HTMX request")
	}
	testhelpers.AssertHTMLContains(t, body, "Swap Estimate")
}
