package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"roofcrm/testhelpers"
)

func TestHandleAttachmentsPage_ListsInOrder(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Attach Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Attach Estimate")
	testhelpers.CreateTestAttachment(t, app, estimate.Id, 2, "warranty.pdf")
	testhelpers.CreateTestAttachment(t, app, estimate.Id, 1, "permit.pdf")

	req := httptest.NewRequest(http.MethodGet, "/estimates/"+estimate.Id+"/attachments", nil)
	req.SetPathValue("id", estimate.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := HandleAttachmentsPage(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "permit.pdf")
	testhelpers.AssertHTMLContains(t, body, "warranty.pdf")
	if strings.Index(body, "permit.pdf") > strings.Index(body, "warranty.pdf") {
		t.Error("expected attachments listed in sort order")
	}
}

func TestHandleAttachmentAdd_AppendsAfterExisting(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Attach Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Attach Estimate")
	testhelpers.CreateTestAttachment(t, app, estimate.Id, 3, "existing.pdf")

	req, rec := multipartUpload(t, "/estimates/"+estimate.Id+"/attachments", "file", "scope of work.pdf", nil)
	req.SetPathValue("id", estimate.Id)

	e := newTestRequestEvent(app, req, rec)
	if err := HandleAttachmentAdd(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	records, err := app.FindRecordsByFilter(
		"attachments",
		"estimate = {:estimateId}",
		"sort_order", 0, 0,
		map[string]any{"estimateId": estimate.Id},
	)
	if err != nil {
		t.Fatalf("failed to load attachments: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 attachments, got %d", len(records))
	}
	added := records[1]
	if got := added.GetString("filename"); got != "scope of work.pdf" {
		t.Errorf("expected original filename preserved, got %q", got)
	}
	if got := added.GetInt("sort_order"); got != 4 {
		t.Errorf("expected sort_order 4, got %d", got)
	}
}

func TestHandleAttachmentReorder_SwapsNeighbors(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Attach Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Attach Estimate")
	first := testhelpers.CreateTestAttachment(t, app, estimate.Id, 1, "first.pdf")
	second := testhelpers.CreateTestAttachment(t, app, estimate.Id, 2, "second.pdf")

	form := url.Values{}
	form.Set("direction", "up")

	req, rec := postForm(t, "/estimates/"+estimate.Id+"/attachments/"+second.Id+"/reorder", form)
	req.SetPathValue("id", estimate.Id)
	req.SetPathValue("attachmentId", second.Id)

	e := newTestRequestEvent(app, req, rec)
	if err := HandleAttachmentReorder(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	reloadedFirst, err := app.FindRecordById("attachments", first.Id)
	if err != nil {
		t.Fatalf("failed to reload first attachment: %v", err)
	}
	reloadedSecond, err := app.FindRecordById("attachments", second.Id)
	if err != nil {
		t.Fatalf("failed to reload second attachment: %v", err)
	}
	if reloadedFirst.GetInt("sort_order") != 2 || reloadedSecond.GetInt("sort_order") != 1 {
		t.Errorf("expected orders swapped, got first=%d second=%d",
			reloadedFirst.GetInt("sort_order"), reloadedSecond.GetInt("sort_order"))
	}
}

func TestHandleAttachmentReorder_TopBoundaryIsNoop(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Attach Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Attach Estimate")
	first := testhelpers.CreateTestAttachment(t, app, estimate.Id, 1, "first.pdf")

	form := url.Values{}
	form.Set("direction", "up")

	req, rec := postForm(t, "/estimates/"+estimate.Id+"/attachments/"+first.Id+"/reorder", form)
	req.SetPathValue("id", estimate.Id)
	req.SetPathValue("attachmentId", first.Id)

	e := newTestRequestEvent(app, req, rec)
	if err := HandleAttachmentReorder(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	reloaded, err := app.FindRecordById("attachments", first.Id)
	if err != nil {
		t.Fatalf("failed to reload attachment: %v", err)
	}
	if got := reloaded.GetInt("sort_order"); got != 1 {
		t.Errorf("expected sort_order unchanged at 1, got %d", got)
	}
}

func TestHandleAttachmentDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Attach Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Attach Estimate")
	att := testhelpers.CreateTestAttachment(t, app, estimate.Id, 1, "gone.pdf")

	req := httptest.NewRequest(http.MethodDelete, "/estimates/"+estimate.Id+"/attachments/"+att.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", estimate.Id)
	req.SetPathValue("attachmentId", att.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := HandleAttachmentDelete(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if _, err := app.FindRecordById("attachments", att.Id); err == nil {
		t.Error("expected attachment to be deleted")
	}
}
