package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roofcrm/testhelpers"
)

func TestHandleEstimateExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCompanySettings(t, app)
	customer := testhelpers.CreateTestCustomer(t, app, "PDF Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "PDF Estimate")
	testhelpers.CreateTestLineItem(t, app, estimate.Id, 1, "Shingles", "material", 30, 120)

	handler := HandleEstimateExportPDF(app)

	req := httptest.NewRequest(http.MethodGet, "/estimates/"+estimate.Id+"/export/pdf", nil)
	req.SetPathValue("id", estimate.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected PDF content type, got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, ".pdf") {
		t.Errorf("expected PDF filename in Content-Disposition, got %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("expected response body to start with %PDF-")
	}
}

func TestHandleEstimateExportPDF_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleEstimateExportPDF(app)

	req := httptest.NewRequest(http.MethodGet, "/estimates/missing/export/pdf", nil)
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

func TestHandleEstimateExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Excel Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Excel Estimate")
	testhelpers.CreateTestLineItem(t, app, estimate.Id, 1, "Drip Edge", "material", 12, 15)

	handler := HandleEstimateExportExcel(app)

	req := httptest.NewRequest(http.MethodGet, "/estimates/"+estimate.Id+"/export/excel", nil)
	req.SetPathValue("id", estimate.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("expected xlsx content type, got %q", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty workbook body")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Plain", "Plain"},
		{"EST-1001 Roof", "EST-1001-Roof"},
		{"a/b\\c:d", "a-b-c-d"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.input); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
