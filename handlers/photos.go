package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/templates"
)

var PhotoCategoryOptions = []string{"before", "during", "after", "damage"}

// saveUpload writes a multipart upload under the app's data dir and
// returns the public path it will be served from.
func saveUpload(app *pocketbase.PocketBase, e *core.RequestEvent, field string) (publicPath, filename string, err error) {
	file, header, err := e.Request.FormFile(field)
	if err != nil {
		return "", "", fmt.Errorf("read upload: %w", err)
	}
	defer file.Close()

	filename = filepath.Base(header.Filename)
	stored := uuid.NewString() + "_" + sanitizeFilename(filename)

	uploadDir := filepath.Join(app.DataDir(), "uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(uploadDir, stored))
	if err != nil {
		return "", "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", "", fmt.Errorf("write upload: %w", err)
	}

	return "/uploads/" + stored, filename, nil
}

func photosPageData(app *pocketbase.PocketBase, estimate *core.Record) templates.PhotosData {
	data := templates.PhotosData{
		EstimateID:    estimate.Id,
		EstimateTitle: estimate.GetString("title"),
	}
	for _, photo := range loadPhotos(app, estimate.Id) {
		data.Photos = append(data.Photos, templates.PhotoItem{
			ID:          photo.ID,
			FilePath:    photo.FilePath,
			Category:    photo.Category,
			Description: photo.Description,
		})
	}
	return data
}

func HandlePhotosPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		estimate, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			log.Printf("photos_page: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		data := photosPageData(app, estimate)
		headerData := GetHeaderData(e.Request)
		if e.Request.Header.Get("HX-Request") == "true" {
			component := templates.PhotosContent(data)
			return component.Render(e.Request.Context(), e.Response)
		}
		component := templates.PhotosPage(data, headerData)
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandlePhotoAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		estimate, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			log.Printf("photo_add: could not find estimate %s: %v", estimateID, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		publicPath, _, err := saveUpload(app, e, "file")
		if err != nil {
			log.Printf("photo_add: upload failed: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not read the uploaded photo")
		}

		category := e.Request.FormValue("category")
		validCategory := false
		for _, c := range PhotoCategoryOptions {
			if category == c {
				validCategory = true
				break
			}
		}
		if !validCategory {
			category = "before"
		}

		photos := loadPhotos(app, estimateID)
		nextOrder := 1
		if len(photos) > 0 {
			nextOrder = photos[len(photos)-1].SortOrder + 1
		}

		photosCol, err := app.FindCollectionByNameOrId("photos")
		if err != nil {
			log.Printf("photo_add: could not find photos collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(photosCol)
		record.Set("estimate", estimateID)
		record.Set("sort_order", nextOrder)
		record.Set("file_path", publicPath)
		record.Set("category", category)
		record.Set("description", strings.TrimSpace(e.Request.FormValue("description")))

		if err := app.Save(record); err != nil {
			log.Printf("photo_add: could not save photo: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Photo uploaded")
		data := photosPageData(app, estimate)
		component := templates.PhotosContent(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandlePhotoPatch updates category, description or sort order.
func HandlePhotoPatch(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		photoID := e.Request.PathValue("photoId")

		record, err := app.FindRecordById("photos", photoID)
		if err != nil || record.GetString("estimate") != estimateID {
			log.Printf("photo_patch: could not find photo %s on estimate %s: %v", photoID, estimateID, err)
			return e.String(http.StatusNotFound, "Photo not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		for field, raw := range e.Request.PostForm {
			if len(raw) == 0 {
				continue
			}
			value := strings.TrimSpace(raw[0])
			switch field {
			case "category":
				valid := false
				for _, c := range PhotoCategoryOptions {
					if value == c {
						valid = true
						break
					}
				}
				if !valid {
					return ErrorToast(e, http.StatusBadRequest, "Invalid photo category")
				}
				record.Set("category", value)
			case "description":
				record.Set("description", value)
			case "sort_order":
				order, err := strconv.Atoi(value)
				if err != nil {
					return ErrorToast(e, http.StatusBadRequest, "Sort order must be a number")
				}
				record.Set("sort_order", order)
			}
		}

		if err := app.Save(record); err != nil {
			log.Printf("photo_patch: could not save photo %s: %v", photoID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Photo updated")
		estimate, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			return e.String(http.StatusNotFound, "Estimate not found")
		}
		data := photosPageData(app, estimate)
		component := templates.PhotosContent(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandlePhotoDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		photoID := e.Request.PathValue("photoId")

		record, err := app.FindRecordById("photos", photoID)
		if err != nil || record.GetString("estimate") != estimateID {
			log.Printf("photo_delete: could not find photo %s on estimate %s: %v", photoID, estimateID, err)
			return e.String(http.StatusNotFound, "Photo not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("photo_delete: failed to delete photo %s: %v", photoID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete photo")
		}

		SetToast(e, "success", "Photo removed")
		estimate, err := app.FindRecordById("estimates", estimateID)
		if err != nil {
			return e.String(http.StatusNotFound, "Estimate not found")
		}
		data := photosPageData(app, estimate)
		component := templates.PhotosContent(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}
