package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"roofcrm/testhelpers"
)

func multipartUpload(t *testing.T, path, field, filename string, fields map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte("fake image bytes")); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("failed to write field %s: %v", k, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("HX-Request", "true")
	return req, httptest.NewRecorder()
}

func TestHandlePhotoAdd_SavesUpload(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Photo Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Photo Estimate")

	req, rec := multipartUpload(t, "/estimates/"+estimate.Id+"/photos", "file", "roof damage.jpg", map[string]string{
		"category":    "damage",
		"description": "Hail damage on south slope",
	})
	req.SetPathValue("id", estimate.Id)

	e := newTestRequestEvent(app, req, rec)
	if err := HandlePhotoAdd(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	photos, err := app.FindRecordsByFilter(
		"photos",
		"estimate = {:estimateId}",
		"sort_order", 0, 0,
		map[string]any{"estimateId": estimate.Id},
	)
	if err != nil {
		t.Fatalf("failed to load photos: %v", err)
	}
	if len(photos) != 1 {
		t.Fatalf("expected 1 photo, got %d", len(photos))
	}
	if got := photos[0].GetString("category"); got != "damage" {
		t.Errorf("expected category damage, got %q", got)
	}
	filePath := photos[0].GetString("file_path")
	if filePath == "" {
		t.Fatal("expected file_path to be set")
	}
	// Spaces in the original name must be sanitized out of the stored path.
	if bytes.ContainsRune([]byte(filePath), ' ') {
		t.Errorf("expected sanitized file path, got %q", filePath)
	}
}

func TestHandlePhotoAdd_InvalidCategoryFallsBack(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Photo Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Photo Estimate")

	req, rec := multipartUpload(t, "/estimates/"+estimate.Id+"/photos", "file", "shot.jpg", map[string]string{
		"category": "not-a-category",
	})
	req.SetPathValue("id", estimate.Id)

	e := newTestRequestEvent(app, req, rec)
	if err := HandlePhotoAdd(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	photos, err := app.FindRecordsByFilter(
		"photos",
		"estimate = {:estimateId}",
		"sort_order", 0, 0,
		map[string]any{"estimateId": estimate.Id},
	)
	if err != nil {
		t.Fatalf("failed to load photos: %v", err)
	}
	if len(photos) != 1 {
		t.Fatalf("expected 1 photo, got %d", len(photos))
	}
	if got := photos[0].GetString("category"); got != "before" {
		t.Errorf("expected fallback category before, got %q", got)
	}
}

func TestHandlePhotoPatch_UpdatesCategory(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Photo Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Photo Estimate")
	photo := testhelpers.CreateTestPhoto(t, app, estimate.Id, 1, "before")

	form := url.Values{}
	form.Set("category", "after")
	form.Set("description", "Completed ridge line")

	req, rec := postForm(t, "/estimates/"+estimate.Id+"/photos/"+photo.Id, form)
	req.Method = http.MethodPatch
	req.SetPathValue("id", estimate.Id)
	req.SetPathValue("photoId", photo.Id)

	e := newTestRequestEvent(app, req, rec)
	if err := HandlePhotoPatch(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	updated, err := app.FindRecordById("photos", photo.Id)
	if err != nil {
		t.Fatalf("failed to reload photo: %v", err)
	}
	if got := updated.GetString("category"); got != "after" {
		t.Errorf("expected category after, got %q", got)
	}
	if got := updated.GetString("description"); got != "Completed ridge line" {
		t.Errorf("expected updated description, got %q", got)
	}
}

func TestHandlePhotoPatch_RejectsInvalidCategory(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Photo Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Photo Estimate")
	photo := testhelpers.CreateTestPhoto(t, app, estimate.Id, 1, "before")

	form := url.Values{}
	form.Set("category", "bogus")

	req, rec := postForm(t, "/estimates/"+estimate.Id+"/photos/"+photo.Id, form)
	req.Method = http.MethodPatch
	req.SetPathValue("id", estimate.Id)
	req.SetPathValue("photoId", photo.Id)

	e := newTestRequestEvent(app, req, rec)
	if err := HandlePhotoPatch(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	unchanged, err := app.FindRecordById("photos", photo.Id)
	if err != nil {
		t.Fatalf("failed to reload photo: %v", err)
	}
	if got := unchanged.GetString("category"); got != "before" {
		t.Errorf("expected category unchanged, got %q", got)
	}
}

func TestHandlePhotoDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Photo Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Photo Estimate")
	photo := testhelpers.CreateTestPhoto(t, app, estimate.Id, 1, "before")

	req := httptest.NewRequest(http.MethodDelete, "/estimates/"+estimate.Id+"/photos/"+photo.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", estimate.Id)
	req.SetPathValue("photoId", photo.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := HandlePhotoDelete(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if _, err := app.FindRecordById("photos", photo.Id); err == nil {
		t.Error("expected photo to be deleted")
	}
}

func TestHandlePhotoDelete_WrongEstimate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Photo Customer")
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Photo Estimate")
	other := testhelpers.CreateTestEstimate(t, app, customer.Id, "Other Estimate")
	photo := testhelpers.CreateTestPhoto(t, app, estimate.Id, 1, "before")

	req := httptest.NewRequest(http.MethodDelete, "/estimates/"+other.Id+"/photos/"+photo.Id, nil)
	req.SetPathValue("id", other.Id)
	req.SetPathValue("photoId", photo.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := HandlePhotoDelete(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
	if _, err := app.FindRecordById("photos", photo.Id); err != nil {
		t.Error("expected photo to survive a cross-estimate delete")
	}
}
