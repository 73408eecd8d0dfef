package services

import (
	"fmt"
	"testing"
)

func makePhotos(n int) []Photo {
	photos := make([]Photo, n)
	for i := range photos {
		photos[i] = Photo{
			ID:        fmt.Sprintf("photo-%d", i),
			FilePath:  fmt.Sprintf("photos/p%d.jpg", i),
			SortOrder: i,
		}
	}
	return photos
}

func TestResolvePhotoColumns_AutoBoundaries(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{4, 2},
		{5, 3},
		{9, 3},
		{10, 4},
		{50, 4},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("count=%d", tt.count), func(t *testing.T) {
			got := ResolvePhotoColumns(tt.count, PhotoLayoutAuto)
			if got != tt.want {
				t.Errorf("ResolvePhotoColumns(%d, auto) = %d, want %d", tt.count, got, tt.want)
			}
		})
	}
}

func TestResolvePhotoColumns_ExplicitModes(t *testing.T) {
	tests := []struct {
		mode PhotoLayoutMode
		want int
	}{
		{PhotoLayout1Col, 1},
		{PhotoLayout2Col, 2},
		{PhotoLayout3Col, 3},
		{PhotoLayout4Col, 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			// Explicit modes ignore the count entirely.
			for _, count := range []int{0, 1, 7, 30} {
				got := ResolvePhotoColumns(count, tt.mode)
				if got != tt.want {
					t.Errorf("ResolvePhotoColumns(%d, %s) = %d, want %d", count, tt.mode, got, tt.want)
				}
			}
		})
	}
}

func TestPlanPhotoPages_PerPageLookup(t *testing.T) {
	tests := []struct {
		mode        PhotoLayoutMode
		wantPerPage int
	}{
		{PhotoLayout1Col, 2},
		{PhotoLayout2Col, 4},
		{PhotoLayout3Col, 6},
		{PhotoLayout4Col, 8},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			plan := PlanPhotoPages(makePhotos(20), tt.mode)
			if plan.PerPage != tt.wantPerPage {
				t.Errorf("PerPage = %d, want %d", plan.PerPage, tt.wantPerPage)
			}
			if len(plan.Pages[0]) != tt.wantPerPage {
				t.Errorf("first page has %d photos, want %d", len(plan.Pages[0]), tt.wantPerPage)
			}
		})
	}
}

func TestPlanPhotoPages_OrderPreservingLossless(t *testing.T) {
	for _, mode := range []PhotoLayoutMode{PhotoLayoutAuto, PhotoLayout1Col, PhotoLayout2Col, PhotoLayout3Col, PhotoLayout4Col} {
		t.Run(string(mode), func(t *testing.T) {
			photos := makePhotos(13)
			plan := PlanPhotoPages(photos, mode)

			var flat []Photo
			for _, page := range plan.Pages {
				flat = append(flat, page...)
			}

			if len(flat) != len(photos) {
				t.Fatalf("concatenated pages have %d photos, want %d", len(flat), len(photos))
			}
			for i := range photos {
				if flat[i].ID != photos[i].ID {
					t.Errorf("position %d: got %q, want %q", i, flat[i].ID, photos[i].ID)
				}
			}
		})
	}
}

func TestPlanPhotoPages_Empty(t *testing.T) {
	plan := PlanPhotoPages(nil, PhotoLayoutAuto)
	if len(plan.Pages) != 0 {
		t.Errorf("expected 0 pages for empty photo set, got %d", len(plan.Pages))
	}
}

func TestParsePhotoLayoutMode(t *testing.T) {
	tests := []struct {
		input string
		want  PhotoLayoutMode
		valid bool
	}{
		{"auto", PhotoLayoutAuto, true},
		{"1col", PhotoLayout1Col, true},
		{"4col", PhotoLayout4Col, true},
		{"5col", PhotoLayoutAuto, false},
		{"", PhotoLayoutAuto, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, valid := ParsePhotoLayoutMode(tt.input)
			if got != tt.want || valid != tt.valid {
				t.Errorf("ParsePhotoLayoutMode(%q) = (%v, %v), want (%v, %v)",
					tt.input, got, valid, tt.want, tt.valid)
			}
		})
	}
}
