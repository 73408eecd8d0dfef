package services

// Photo is one job photo reference. The engine only looks at count and
// order; image content lives in file storage and is resolved by the
// renderer.
type Photo struct {
	ID          string
	FilePath    string
	Category    string // "before", "during", "after", "damage"
	Description string
	SortOrder   int
}

// PhotoLayoutMode selects the photo grid column count. Auto picks a column
// count from the photo count.
type PhotoLayoutMode string

const (
	PhotoLayoutAuto PhotoLayoutMode = "auto"
	PhotoLayout1Col PhotoLayoutMode = "1col"
	PhotoLayout2Col PhotoLayoutMode = "2col"
	PhotoLayout3Col PhotoLayoutMode = "3col"
	PhotoLayout4Col PhotoLayoutMode = "4col"
)

// ParsePhotoLayoutMode returns the mode for a stored string value and
// whether it was recognized.
func ParsePhotoLayoutMode(s string) (PhotoLayoutMode, bool) {
	switch PhotoLayoutMode(s) {
	case PhotoLayoutAuto, PhotoLayout1Col, PhotoLayout2Col, PhotoLayout3Col, PhotoLayout4Col:
		return PhotoLayoutMode(s), true
	}
	return PhotoLayoutAuto, false
}

// PhotoPlan is the output of the photo grid planner: the resolved column
// count, photos per page, and the ordered page groups.
type PhotoPlan struct {
	Columns int
	PerPage int
	Pages   [][]Photo
}

// ResolvePhotoColumns maps a layout mode and photo count to a column count.
// Explicit modes map directly to 1-4 columns. Auto buckets by count: a
// single photo gets one column, up to four get two, up to nine get three,
// anything more gets four.
func ResolvePhotoColumns(count int, mode PhotoLayoutMode) int {
	switch mode {
	case PhotoLayout1Col:
		return 1
	case PhotoLayout2Col:
		return 2
	case PhotoLayout3Col:
		return 3
	case PhotoLayout4Col:
		return 4
	}

	switch {
	case count <= 1:
		return 1
	case count <= 4:
		return 2
	case count <= 9:
		return 3
	default:
		return 4
	}
}

// photosPerPage approximates how many photos fit a page for a column
// count. Like the item row capacities this is a fixed lookup, not a
// measured fit.
func photosPerPage(columns int) int {
	switch columns {
	case 1:
		return 2
	case 2:
		return 4
	case 3:
		return 6
	default:
		return 8
	}
}

// PlanPhotoPages chunks photos into grid pages for the resolved column
// count. Photo order is preserved. An empty photo set yields a plan with no
// pages.
func PlanPhotoPages(photos []Photo, mode PhotoLayoutMode) PhotoPlan {
	columns := ResolvePhotoColumns(len(photos), mode)
	perPage := photosPerPage(columns)

	plan := PhotoPlan{Columns: columns, PerPage: perPage}

	rest := photos
	for len(rest) > 0 {
		n := perPage
		if n > len(rest) {
			n = len(rest)
		}
		plan.Pages = append(plan.Pages, rest[:n])
		rest = rest[n:]
	}

	return plan
}
