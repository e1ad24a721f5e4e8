package deck

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Row is one swipeable entry of a deck. Body is the markdown shown on the
// center panel, Left and Right label the side panels; an empty label means
// the side has no panel.
type Row struct {
	ID    string
	Path  string
	Title string
	Left  string
	Right string
	Order int
	Body  string
}

// HasLeft reports whether the row has a left panel.
func (r Row) HasLeft() bool { return strings.TrimSpace(r.Left) != "" }

// HasRight reports whether the row has a right panel.
func (r Row) HasRight() bool { return strings.TrimSpace(r.Right) != "" }

// RowID derives a stable identifier from the row path.
func RowID(path string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("swipeview:"+path)).String()
}

func sortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := rows[i], rows[j]
		if ri.Order != rj.Order {
			return ri.Order < rj.Order
		}
		return strings.ToLower(ri.Title) < strings.ToLower(rj.Title)
	})
}

// Diff compares two row lists by ID and returns the rows only present in
// next and the rows only present in prev.
func Diff(prev, next []Row) (added, removed []Row) {
	seen := make(map[string]bool, len(prev))
	for _, r := range prev {
		seen[r.ID] = true
	}
	kept := make(map[string]bool, len(next))
	for _, r := range next {
		kept[r.ID] = true
		if !seen[r.ID] {
			added = append(added, r)
		}
	}
	for _, r := range prev {
		if !kept[r.ID] {
			removed = append(removed, r)
		}
	}
	return added, removed
}
