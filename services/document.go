package services

// PageKind identifies what a document page renders.
type PageKind string

const (
	PageKindCover       PageKind = "cover"
	PageKindItems       PageKind = "items"
	PageKindWarranty    PageKind = "warranty"
	PageKindMeasurement PageKind = "measurement"
	PageKindPhotos      PageKind = "photos"
	PageKindAttachment  PageKind = "attachment"
)

// MeasurementSummary holds aggregate roof measurement figures. The
// assembler only checks for presence; the renderer displays the numbers.
type MeasurementSummary struct {
	Squares      float64
	RidgeLF      float64
	HipLF        float64
	ValleyLF     float64
	EaveLF       float64
	RakeLF       float64
	WastePercent float64
}

// Attachment references a supporting document appended after all other
// sections. Rendering the attachment content (e.g. PDF-to-image) is
// external; the assembler only decides page placement.
type Attachment struct {
	DocumentID string
	FilePath   string
	Filename   string
	SortOrder  int
}

// PhotoPage is one grid page of photos plus the figures for its
// "Photos (i/n)" caption.
type PhotoPage struct {
	Photos    []Photo
	Columns   int
	PageIndex int
	PageCount int
}

// PageSpec is a single assembled document page. Specs are built in one
// synchronous pass, never mutated afterwards, and regenerated wholesale
// whenever any input changes.
type PageSpec struct {
	Kind             PageKind
	PageNumber       int
	TotalPages       int
	IsFirstItemsPage bool
	IsLastItemsPage  bool

	// Populated depending on Kind.
	ItemsContent *ItemsPageContent
	PhotoPage    *PhotoPage
	Attachment   *Attachment
}

// DocumentInput is the already-resolved snapshot the assembler consumes.
// All data is fetched and priced before assembly; the assembler performs no
// I/O and no validation beyond presence checks.
type DocumentInput struct {
	Items       []LineItem
	Options     DisplayOptions
	Measurement *MeasurementSummary
	Photos      []Photo
	Attachments []Attachment

	FirstPageCapacity    int
	ContinuationCapacity int
}

// DocumentPlan is the assembled page sequence. SignaturePageIndex is the
// index into Pages of the page carrying the signature block, or -1 when no
// page does; it is returned explicitly so signature-capture tooling does
// not have to rescan the pages.
type DocumentPlan struct {
	Pages              []PageSpec
	SignaturePageIndex int
}

// TotalPages returns the page count of the plan.
func (p DocumentPlan) TotalPages() int {
	return len(p.Pages)
}

// AssembleDocument builds the full page sequence in the fixed section
// order: cover, items, warranty, measurements, photos, attachments. Each
// optional section is included when its option flag is set and, for
// data-backed sections, the data is present. Page numbers are assigned as
// pages are appended; the total is stamped across every page in a second
// pass since footers render "Page N of Total" before the last page exists.
func AssembleDocument(input DocumentInput) DocumentPlan {
	firstCap := input.FirstPageCapacity
	if firstCap <= 0 {
		firstCap = DefaultFirstPageCapacity
	}
	contCap := input.ContinuationCapacity
	if contCap <= 0 {
		contCap = DefaultContinuationCapacity
	}

	opts := input.Options
	plan := DocumentPlan{SignaturePageIndex: -1}

	appendPage := func(spec PageSpec) int {
		spec.PageNumber = len(plan.Pages) + 1
		plan.Pages = append(plan.Pages, spec)
		return len(plan.Pages) - 1
	}

	if opts.ShowCoverPage {
		appendPage(PageSpec{Kind: PageKindCover})
	}

	chunks := ChunkLineItems(input.Items, firstCap, contCap)
	itemPages := ResolveItemsPages(chunks, opts)
	for i := range itemPages {
		content := itemPages[i]
		idx := appendPage(PageSpec{
			Kind:             PageKindItems,
			IsFirstItemsPage: i == 0,
			IsLastItemsPage:  i == len(itemPages)-1,
			ItemsContent:     &content,
		})
		if content.ShowSignature {
			plan.SignaturePageIndex = idx
		}
	}

	if opts.ShowWarrantyPage {
		appendPage(PageSpec{Kind: PageKindWarranty})
	}

	if opts.ShowMeasurementPage && input.Measurement != nil {
		appendPage(PageSpec{Kind: PageKindMeasurement})
	}

	if opts.ShowPhotoPages && len(input.Photos) > 0 {
		photoPlan := PlanPhotoPages(input.Photos, opts.PhotoLayout)
		for i, page := range photoPlan.Pages {
			appendPage(PageSpec{
				Kind: PageKindPhotos,
				PhotoPage: &PhotoPage{
					Photos:    page,
					Columns:   photoPlan.Columns,
					PageIndex: i + 1,
					PageCount: len(photoPlan.Pages),
				},
			})
		}
	}

	if opts.ShowAttachmentPages {
		for i := range input.Attachments {
			att := input.Attachments[i]
			appendPage(PageSpec{Kind: PageKindAttachment, Attachment: &att})
		}
	}

	total := len(plan.Pages)
	for i := range plan.Pages {
		plan.Pages[i].TotalPages = total
	}

	return plan
}
