package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// MeasurementFormData feeds the measurement upsert form. Values are
// pre-formatted strings so an empty form shows blanks, not zeros.
type MeasurementFormData struct {
	EstimateID    string
	EstimateTitle string
	Squares       string
	RidgeLF       string
	HipLF         string
	ValleyLF      string
	EaveLF        string
	RakeLF        string
	WastePercent  string
}

func measurementField(b *strings.Builder, id, label, value string) {
	fmt.Fprintf(b, `<span><label for="%s">%s</label>`, id, esc(label))
	fmt.Fprintf(b, `<input type="number" step="0.01" id="%s" name="%s" value="%s"></span>`, id, id, esc(value))
}

// MeasurementPage renders the measurement form for an estimate.
func MeasurementPage(data MeasurementFormData, header HeaderData) templ.Component {
	content := component(func(b *strings.Builder) {
		fmt.Fprintf(b, "<h1>Measurements <span class=\"muted\">%s</span></h1>", esc(data.EstimateTitle))
		fmt.Fprintf(b, `<form hx-put="/estimates/%s/measurements" hx-target="#content">`, esc(data.EstimateID))
		b.WriteString(`<div class="form-row form-row-split">`)
		measurementField(b, "squares", "Squares", data.Squares)
		measurementField(b, "waste_percent", "Waste %", data.WastePercent)
		b.WriteString("</div>")
		b.WriteString(`<div class="form-row form-row-split">`)
		measurementField(b, "ridge_lf", "Ridge (LF)", data.RidgeLF)
		measurementField(b, "hip_lf", "Hip (LF)", data.HipLF)
		measurementField(b, "valley_lf", "Valley (LF)", data.ValleyLF)
		b.WriteString("</div>")
		b.WriteString(`<div class="form-row form-row-split">`)
		measurementField(b, "eave_lf", "Eave (LF)", data.EaveLF)
		measurementField(b, "rake_lf", "Rake (LF)", data.RakeLF)
		b.WriteString("</div>")
		b.WriteString(`<div class="form-actions"><button type="submit" class="btn btn-primary">Save Measurements</button>`)
		fmt.Fprintf(b, `<a class="btn" href="/estimates/%s">Back</a></div></form>`, esc(data.EstimateID))
	})
	return Layout("Measurements", header, content)
}

// PhotoItem is one photo on the photos management page.
type PhotoItem struct {
	ID          string
	FilePath    string
	Category    string
	Description string
}

// PhotosData feeds the photo management page.
type PhotosData struct {
	EstimateID    string
	EstimateTitle string
	Photos        []PhotoItem
}

// PhotosContent renders the photo grid and upload form alone, for HTMX swaps.
func PhotosContent(data PhotosData) templ.Component {
	return component(func(b *strings.Builder) {
		fmt.Fprintf(b, "<h1>Photos <span class=\"muted\">%s</span></h1>", esc(data.EstimateTitle))

		if len(data.Photos) == 0 {
			b.WriteString(`<p class="empty-state">No photos yet.</p>`)
		} else {
			b.WriteString(`<div class="photo-grid photo-grid-3">`)
			for _, photo := range data.Photos {
				fmt.Fprintf(b, `<figure class="photo-cell" id="photo-%s">`, esc(photo.ID))
				fmt.Fprintf(b, `<img src="%s" alt="%s">`, esc(photo.FilePath), esc(photo.Description))
				fmt.Fprintf(b, `<figcaption><span class="badge badge-%s">%s</span> %s`, esc(photo.Category), esc(photo.Category), esc(photo.Description))
				fmt.Fprintf(b, ` <button class="btn btn-sm btn-danger" hx-delete="/estimates/%s/photos/%s" hx-target="#content">Remove</button>`,
					esc(data.EstimateID), esc(photo.ID))
				b.WriteString("</figcaption></figure>")
			}
			b.WriteString("</div>")
		}

		fmt.Fprintf(b, `<form class="inline-form" hx-post="/estimates/%s/photos" hx-target="#content" hx-encoding="multipart/form-data">`, esc(data.EstimateID))
		b.WriteString(`<input type="file" name="file" accept="image/*" required>`)
		b.WriteString(`<select name="category"><option value="before">before</option><option value="during">during</option><option value="after">after</option><option value="damage">damage</option></select>`)
		b.WriteString(`<input type="text" name="description" placeholder="Description">`)
		b.WriteString(`<button type="submit" class="btn btn-sm">Upload Photo</button></form>`)
		fmt.Fprintf(b, `<a class="btn" href="/estimates/%s">Back</a>`, esc(data.EstimateID))
	})
}

// PhotosPage renders the full photos page.
func PhotosPage(data PhotosData, header HeaderData) templ.Component {
	return Layout("Photos", header, PhotosContent(data))
}

// AttachmentItem is one row of the attachments page.
type AttachmentItem struct {
	ID       string
	Filename string
	FilePath string
}

// AttachmentsData feeds the attachments management page.
type AttachmentsData struct {
	EstimateID    string
	EstimateTitle string
	Attachments   []AttachmentItem
}

// AttachmentsContent renders the attachment list and upload form alone.
func AttachmentsContent(data AttachmentsData) templ.Component {
	return component(func(b *strings.Builder) {
		fmt.Fprintf(b, "<h1>Attachments <span class=\"muted\">%s</span></h1>", esc(data.EstimateTitle))

		if len(data.Attachments) == 0 {
			b.WriteString(`<p class="empty-state">No attachments yet.</p>`)
		} else {
			b.WriteString(`<ul class="attachment-list">`)
			for _, att := range data.Attachments {
				fmt.Fprintf(b, `<li id="attachment-%s"><a href="%s">%s</a>`, esc(att.ID), esc(att.FilePath), esc(att.Filename))
				fmt.Fprintf(b, ` <button class="btn btn-sm btn-danger" hx-delete="/estimates/%s/attachments/%s" hx-target="#content">Remove</button></li>`,
					esc(data.EstimateID), esc(att.ID))
			}
			b.WriteString("</ul>")
		}

		fmt.Fprintf(b, `<form class="inline-form" hx-post="/estimates/%s/attachments" hx-target="#content" hx-encoding="multipart/form-data">`, esc(data.EstimateID))
		b.WriteString(`<input type="file" name="file" required>`)
		b.WriteString(`<button type="submit" class="btn btn-sm">Upload Attachment</button></form>`)
		fmt.Fprintf(b, `<a class="btn" href="/estimates/%s">Back</a>`, esc(data.EstimateID))
	})
}

// AttachmentsPage renders the full attachments page.
func AttachmentsPage(data AttachmentsData, header HeaderData) templ.Component {
	return Layout("Attachments", header, AttachmentsContent(data))
}
