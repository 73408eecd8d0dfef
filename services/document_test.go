package services

import (
	"reflect"
	"testing"
)

func baseInput(itemCount int) DocumentInput {
	opts := CustomerOptions()
	opts.ShowCoverPage = false
	opts.ShowWarrantyPage = false
	return DocumentInput{
		Items:   makeItems(itemCount),
		Options: opts,
	}
}

func TestAssembleDocument_EndToEnd(t *testing.T) {
	// 30 items, caps 12/16, cover + warranty, no measurements or photos:
	// cover, items(12), items(16), items(2)+summary+terms, warranty.
	opts := CustomerOptions()
	input := DocumentInput{
		Items:                makeItems(30),
		Options:              opts,
		FirstPageCapacity:    12,
		ContinuationCapacity: 16,
	}

	plan := AssembleDocument(input)

	wantKinds := []PageKind{PageKindCover, PageKindItems, PageKindItems, PageKindItems, PageKindWarranty}
	if len(plan.Pages) != len(wantKinds) {
		t.Fatalf("got %d pages, want %d", len(plan.Pages), len(wantKinds))
	}
	for i, want := range wantKinds {
		if plan.Pages[i].Kind != want {
			t.Errorf("page %d kind = %s, want %s", i, plan.Pages[i].Kind, want)
		}
	}

	wantItemCounts := []int{12, 16, 2}
	for i, want := range wantItemCounts {
		page := plan.Pages[i+1]
		if page.ItemsContent == nil {
			t.Fatalf("items page %d has nil content", i+1)
		}
		if len(page.ItemsContent.Items) != want {
			t.Errorf("items page %d has %d items, want %d", i+1, len(page.ItemsContent.Items), want)
		}
	}

	last := plan.Pages[3]
	if !last.IsLastItemsPage || !last.ItemsContent.ShowSummary || !last.ItemsContent.ShowTerms {
		t.Errorf("terminal items page should carry summary and terms, got %+v", last.ItemsContent)
	}
	if plan.Pages[1].ItemsContent.ShowSummary || plan.Pages[2].ItemsContent.ShowSummary {
		t.Error("summary attached to a non-terminal items page")
	}

	for i, page := range plan.Pages {
		if page.PageNumber != i+1 {
			t.Errorf("page %d has PageNumber %d, want %d", i, page.PageNumber, i+1)
		}
		if page.TotalPages != 5 {
			t.Errorf("page %d has TotalPages %d, want 5", i, page.TotalPages)
		}
	}

	if plan.SignaturePageIndex != 3 {
		t.Errorf("SignaturePageIndex = %d, want 3", plan.SignaturePageIndex)
	}
}

func TestAssembleDocument_SectionFlagsChangePageCountByOne(t *testing.T) {
	measurement := &MeasurementSummary{Squares: 24.5, WastePercent: 10}

	tests := []struct {
		name   string
		toggle func(*DocumentInput)
	}{
		{"cover page", func(in *DocumentInput) { in.Options.ShowCoverPage = true }},
		{"warranty page", func(in *DocumentInput) { in.Options.ShowWarrantyPage = true }},
		{"measurement page", func(in *DocumentInput) {
			in.Options.ShowMeasurementPage = true
			in.Measurement = measurement
		}},
	}

	// Independent of item count.
	for _, itemCount := range []int{3, 30} {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				off := baseInput(itemCount)
				off.Options.ShowMeasurementPage = false
				base := AssembleDocument(off).TotalPages()

				on := baseInput(itemCount)
				on.Options.ShowMeasurementPage = false
				tt.toggle(&on)
				got := AssembleDocument(on).TotalPages()

				if got != base+1 {
					t.Errorf("%s with %d items: %d pages, want %d", tt.name, itemCount, got, base+1)
				}
			})
		}
	}
}

func TestAssembleDocument_MeasurementRequiresData(t *testing.T) {
	input := baseInput(3)
	input.Options.ShowMeasurementPage = true
	input.Measurement = nil

	plan := AssembleDocument(input)
	for _, page := range plan.Pages {
		if page.Kind == PageKindMeasurement {
			t.Error("measurement page assembled without measurement data")
		}
	}
}

func TestAssembleDocument_PhotoPages(t *testing.T) {
	input := baseInput(3)
	input.Photos = makePhotos(10) // auto resolves 4 columns, 8 per page

	plan := AssembleDocument(input)

	var photoPages []PageSpec
	for _, page := range plan.Pages {
		if page.Kind == PageKindPhotos {
			photoPages = append(photoPages, page)
		}
	}
	if len(photoPages) != 2 {
		t.Fatalf("got %d photo pages, want 2", len(photoPages))
	}
	if photoPages[0].PhotoPage.Columns != 4 {
		t.Errorf("columns = %d, want 4", photoPages[0].PhotoPage.Columns)
	}
	if photoPages[0].PhotoPage.PageIndex != 1 || photoPages[0].PhotoPage.PageCount != 2 {
		t.Errorf("first photo page caption = (%d/%d), want (1/2)",
			photoPages[0].PhotoPage.PageIndex, photoPages[0].PhotoPage.PageCount)
	}
	if len(photoPages[1].PhotoPage.Photos) != 2 {
		t.Errorf("second photo page has %d photos, want 2", len(photoPages[1].PhotoPage.Photos))
	}
}

func TestAssembleDocument_AttachmentsLast(t *testing.T) {
	input := baseInput(3)
	input.Options.ShowCoverPage = true
	input.Attachments = []Attachment{
		{DocumentID: "d1", Filename: "permit.pdf", SortOrder: 0},
		{DocumentID: "d2", Filename: "warranty-cert.pdf", SortOrder: 1},
	}

	plan := AssembleDocument(input)
	n := len(plan.Pages)
	if plan.Pages[n-2].Kind != PageKindAttachment || plan.Pages[n-1].Kind != PageKindAttachment {
		t.Fatalf("attachments should be the final pages, got %s, %s",
			plan.Pages[n-2].Kind, plan.Pages[n-1].Kind)
	}
	if plan.Pages[n-2].Attachment.Filename != "permit.pdf" {
		t.Errorf("attachment order not preserved: %q", plan.Pages[n-2].Attachment.Filename)
	}
}

func TestAssembleDocument_Idempotent(t *testing.T) {
	input := DocumentInput{
		Items:       makeItems(30),
		Options:     CustomerOptions(),
		Measurement: &MeasurementSummary{Squares: 18},
		Photos:      makePhotos(5),
		Attachments: []Attachment{{DocumentID: "d1", Filename: "a.pdf"}},
	}

	first := AssembleDocument(input)
	second := AssembleDocument(input)

	if !reflect.DeepEqual(first, second) {
		t.Error("two assemblies of identical input differ")
	}
}

func TestAssembleDocument_EmptyItems(t *testing.T) {
	input := baseInput(0)
	plan := AssembleDocument(input)

	for _, page := range plan.Pages {
		if page.Kind == PageKindItems {
			t.Error("items page assembled for empty item list")
		}
	}
	if plan.SignaturePageIndex != -1 {
		t.Errorf("SignaturePageIndex = %d, want -1 with no items pages", plan.SignaturePageIndex)
	}
}

func TestAssembleDocument_SignatureIndexShiftsWithCover(t *testing.T) {
	withCover := baseInput(3)
	withCover.Options.ShowCoverPage = true
	planCover := AssembleDocument(withCover)

	planPlain := AssembleDocument(baseInput(3))

	if planCover.SignaturePageIndex != planPlain.SignaturePageIndex+1 {
		t.Errorf("cover page should shift signature index by 1: with=%d without=%d",
			planCover.SignaturePageIndex, planPlain.SignaturePageIndex)
	}
}
