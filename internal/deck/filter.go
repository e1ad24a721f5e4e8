package deck

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Filter returns the rows whose title contains query, or whose title words
// are within a small edit distance of it. An empty query keeps every row.
func Filter(rows []Row, query string) []Row {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}
	var out []Row
	for _, r := range rows {
		if matches(r.Title, query) {
			out = append(out, r)
		}
	}
	return out
}

func matches(title, query string) bool {
	lower := strings.ToLower(title)
	if strings.Contains(lower, query) {
		return true
	}
	budget := len([]rune(query)) / 4
	if budget == 0 {
		return false
	}
	for _, word := range strings.Fields(lower) {
		if levenshtein.ComputeDistance(word, query) <= budget {
			return true
		}
	}
	return false
}
