package handlers

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/templates"
)

func attachmentsPageData(app *pocketbase.PocketBase, estimate *core.Record) templates.AttachmentsData {
	data := templates.AttachmentsData{
		EstimateID:    estimate.Id,
		EstimateTitle: estimate.GetString("title"),
	}
	for _, att := range loadAttachments(app, estimate.Id) {
		data.Attachments = append(data.Attachments, templates.AttachmentItem{
			ID:       att.DocumentID,
			Filename: att.Filename,
			FilePath: att.FilePath,
		})
	}
	return data
}

func HandleAttachmentsPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		estimate, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			log.Printf("attachments_page: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		data := attachmentsPageData(app, estimate)
		headerData := GetHeaderData(e.Request)
		if e.Request.Header.Get("HX-Request") == "true" {
			component := templates.AttachmentsContent(data)
			return component.Render(e.Request.Context(), e.Response)
		}
		component := templates.AttachmentsPage(data, headerData)
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleAttachmentAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		estimate, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			log.Printf("attachment_add: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		publicPath, filename, err := saveUpload(app, e, "file")
		if err != nil {
			log.Printf("attachment_add: upload failed: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not read the uploaded file")
		}

		existing := loadAttachments(app, estimateID)
		nextOrder := 1
		if len(existing) > 0 {
			nextOrder = existing[len(existing)-1].SortOrder + 1
		}

		attachmentsCol, err := app.FindCollectionByNameOrId("attachments")
		if err != nil {
			log.Printf("attachment_add: could not find attachments collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(attachmentsCol)
		record.Set("estimate", estimateID)
		record.Set("sort_order", nextOrder)
		record.Set("document_id", uuid.NewString())
		record.Set("file_path", publicPath)
		record.Set("filename", filename)

		if err := app.Save(record); err != nil {
			log.Printf("attachment_add: could not save attachment: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Attachment uploaded")
		data := attachmentsPageData(app, estimate)
		component := templates.AttachmentsContent(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleAttachmentDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		attachmentID := e.Request.PathValue("attachmentId")

		record, err := app.FindRecordById("attachments", attachmentID)
		if err != nil || record.GetString("estimate") != estimateID {
			log.Printf("attachment_delete: could not find attachment %s on estimate %s: %v", attachmentID, estimateID, err)
			return e.String(http.StatusNotFound, "Attachment not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("attachment_delete: failed to delete attachment %s: %v", attachmentID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete attachment")
		}

		SetToast(e, "success", "Attachment removed")
		estimate, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			return e.String(http.StatusNotFound, "Estimate not found")
		}
		data := attachmentsPageData(app, estimate)
		component := templates.AttachmentsContent(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleAttachmentReorder swaps an attachment's sort_order with its
// neighbor in the requested direction.
func HandleAttachmentReorder(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		attachmentID := e.Request.PathValue("attachmentId")

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		direction := e.Request.FormValue("direction")
		if direction != "up" && direction != "down" {
			return ErrorToast(e, http.StatusBadRequest, "Direction must be up or down")
		}

		records, err := app.FindRecordsByFilter(
			"attachments",
			"estimate = {:estimateId}",
			"sort_order", 0, 0,
			map[string]any{"estimateId": estimateID},
		)
		if err != nil {
			log.Printf("attachment_reorder: could not load attachments for %s: %v", estimateID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		pos := -1
		for i, rec := range records {
			if rec.Id == attachmentID {
				pos = i
				break
			}
		}
		if pos == -1 {
			return e.String(http.StatusNotFound, "Attachment not found")
		}

		swap := pos - 1
		if direction == "down" {
			swap = pos + 1
		}
		if swap >= 0 && swap < len(records) {
			a, b := records[pos], records[swap]
			aOrder, bOrder := a.GetFloat("sort_order"), b.GetFloat("sort_order")
			a.Set("sort_order", bOrder)
			b.Set("sort_order", aOrder)
			if err := app.Save(a); err != nil {
				log.Printf("attachment_reorder: failed to save %s: %v", a.Id, err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			if err := app.Save(b); err != nil {
				log.Printf("attachment_reorder: failed to save %s: %v", b.Id, err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		}

		estimate, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			return e.String(http.StatusNotFound, "Estimate not found")
		}
		data := attachmentsPageData(app, estimate)
		component := templates.AttachmentsContent(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}
