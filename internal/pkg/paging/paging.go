// Package paging implements the numbered page control used by index-paginated
// screens: one batch is fetched up front and sliced into fixed-size display
// pages, with first/prev/next/last plus an ellipsis-collapsed window of page
// numbers around the current page.
package paging

// Entry is one cell of the page control. Either a concrete page number or a
// single marker standing in for a run of two or more skipped pages.
type Entry struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

type Control struct {
	Current    int     `json:"current"`
	TotalPages int     `json:"total_pages"`
	HasPrev    bool    `json:"has_prev"`
	HasNext    bool    `json:"has_next"`
	Entries    []Entry `json:"entries"`
}

func PageCount(totalItems, perPage int) int {
	if totalItems <= 0 || perPage <= 0 {
		return 0
	}
	return (totalItems + perPage - 1) / perPage
}

// Clamp keeps a requested page inside [1, totalPages]. A zero-page result
// means there is nothing to show at all.
func Clamp(page, totalPages int) int {
	if totalPages == 0 {
		return 0
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// SliceBounds converts a 1-based page to half-open slice indexes into the
// prefetched batch.
func SliceBounds(page, perPage, totalItems int) (int, int) {
	start := (page - 1) * perPage
	if start < 0 || start >= totalItems {
		return 0, 0
	}
	end := start + perPage
	if end > totalItems {
		end = totalItems
	}
	return start, end
}

// Window renders the page-number row: always page 1 and the last page, the
// current page with one neighbor on each side, and a single ellipsis where two
// or more pages are skipped. A skipped run of exactly one page is shown as the
// page itself rather than a marker.
func Window(current, totalPages int) []Entry {
	if totalPages <= 0 {
		return nil
	}
	current = Clamp(current, totalPages)

	shown := func(p int) bool {
		return p == 1 || p == totalPages || (p >= current-1 && p <= current+1)
	}

	var entries []Entry
	for p := 1; p <= totalPages; p++ {
		if shown(p) {
			entries = append(entries, Entry{Page: p, Current: p == current})
			continue
		}
		// A run of exactly one hidden page collapses to nothing useful, so it
		// is rendered as its number instead of an ellipsis.
		if !shown(p - 1) {
			continue // already covered by the run's first hidden page
		}
		runEnd := p
		for runEnd+1 <= totalPages && !shown(runEnd+1) {
			runEnd++
		}
		if runEnd == p {
			entries = append(entries, Entry{Page: p, Current: false})
		} else {
			entries = append(entries, Entry{Ellipsis: true})
		}
	}
	return entries
}

func NewControl(current, totalPages int) Control {
	current = Clamp(current, totalPages)
	return Control{
		Current:    current,
		TotalPages: totalPages,
		HasPrev:    current > 1,
		HasNext:    current < totalPages && totalPages > 0,
		Entries:    Window(current, totalPages),
	}
}
