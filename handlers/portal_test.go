package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"roofcrm/testhelpers"
)

func TestHandlePortal_ShowsSentEstimatesOnly(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCompanySettings(t, app)
	customer := testhelpers.CreateTestCustomer(t, app, "Portal Customer")

	sent := testhelpers.CreateTestEstimate(t, app, customer.Id, "Sent Proposal")
	sent.Set("status", "sent")
	if err := app.Save(sent); err != nil {
		t.Fatalf("failed to mark estimate sent: %v", err)
	}
	testhelpers.CreateTestEstimate(t, app, customer.Id, "Draft Proposal")

	handler := HandlePortal(app)

	token := customer.GetString("portal_token")
	req := httptest.NewRequest(http.MethodGet, "/portal/"+token, nil)
	req.SetPathValue("token", token)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Sent Proposal", "Portal Customer")
	if strings.Contains(body, "Draft Proposal") {
		t.Error("draft estimates must not appear on the portal")
	}
}

func TestHandlePortal_UnknownToken(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandlePortal(app)

	req := httptest.NewRequest(http.MethodGet, "/portal/bogus-token", nil)
	req.SetPathValue("token", "bogus-token")
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown token, got %d", rec.Code)
	}
}

func TestHandlePortalApprove_TransitionsSent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCompanySettings(t, app)
	customer := testhelpers.CreateTestCustomer(t, app, "Approver")

	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Approve Me")
	estimate.Set("status", "sent")
	if err := app.Save(estimate); err != nil {
		t.Fatalf("failed to mark estimate sent: %v", err)
	}

	handler := HandlePortalApprove(app)

	token := customer.GetString("portal_token")
	form := url.Values{}
	form.Set("estimate", estimate.Id)

	req := httptest.NewRequest(http.MethodPost, "/portal/"+token+"/approve", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("token", token)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	updated, err := app.FindRecordById("estimates", estimate.Id)
	if err != nil {
		t.Fatalf("estimate disappeared: %v", err)
	}
	if got := updated.GetString("status"); got != "approved" {
		t.Errorf("expected status approved, got %q", got)
	}
}

func TestHandlePortalDecline_RejectsAlreadyDecided(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCompanySettings(t, app)
	customer := testhelpers.CreateTestCustomer(t, app, "Decliner")

	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Already Approved")
	estimate.Set("status", "approved")
	if err := app.Save(estimate); err != nil {
		t.Fatalf("failed to set status: %v", err)
	}

	handler := HandlePortalDecline(app)

	token := customer.GetString("portal_token")
	form := url.Values{}
	form.Set("estimate", estimate.Id)

	req := httptest.NewRequest(http.MethodPost, "/portal/"+token+"/decline", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("token", token)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for already-decided estimate, got %d", rec.Code)
	}

	updated, _ := app.FindRecordById("estimates", estimate.Id)
	if got := updated.GetString("status"); got != "approved" {
		t.Errorf("status must not change, got %q", got)
	}
}

func TestHandlePortalApprove_WrongCustomer(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCompanySettings(t, app)
	owner := testhelpers.CreateTestCustomer(t, app, "Owner")
	other := testhelpers.CreateTestCustomer(t, app, "Other")

	estimate := testhelpers.CreateTestEstimate(t, app, owner.Id, "Owned Estimate")
	estimate.Set("status", "sent")
	if err := app.Save(estimate); err != nil {
		t.Fatalf("failed to mark estimate sent: %v", err)
	}

	handler := HandlePortalApprove(app)

	token := other.GetString("portal_token")
	form := url.Values{}
	form.Set("estimate", estimate.Id)

	req := httptest.NewRequest(http.MethodPost, "/portal/"+token+"/approve", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("token", token)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 when token does not own the estimate, got %d", rec.Code)
	}
}
