// Package services provides the document pagination engine, pricing
// calculations and export generators for estimates.
package services

// LineItem is a single priced row on an estimate. The pagination engine
// treats it as immutable: it groups items into pages but never recomputes
// quantities, costs or line totals.
type LineItem struct {
	ID          string
	Name        string
	Description string
	ItemType    string // "material" or "labor"
	Qty         float64
	Unit        string
	UnitCost    float64
	LineTotal   float64
	SortOrder   int
}

// Row capacities for the items table. The first page fits fewer rows
// because the document header and customer block consume vertical space.
// These are static heuristics, not measured layout: rows with unusually
// long descriptions can overflow the physical page.
const (
	DefaultFirstPageCapacity    = 12
	DefaultContinuationCapacity = 16
)

// ChunkLineItems splits items into page-sized groups. The first group holds
// up to firstPageCap items, every following group up to continuationCap.
// Order is preserved and no item is dropped. An empty input yields no
// groups.
func ChunkLineItems(items []LineItem, firstPageCap, continuationCap int) [][]LineItem {
	if len(items) == 0 {
		return nil
	}

	var chunks [][]LineItem

	first := firstPageCap
	if first > len(items) {
		first = len(items)
	}
	chunks = append(chunks, items[:first])

	rest := items[first:]
	for len(rest) > 0 {
		n := continuationCap
		if n > len(rest) {
			n = len(rest)
		}
		chunks = append(chunks, rest[:n])
		rest = rest[n:]
	}

	return chunks
}
