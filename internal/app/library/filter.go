package library

import "strings"

// MatchesSearch reports case-insensitive substring containment of term in any
// of the given fields. An empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}

	needle := strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// MatchesCategory reports category equality against a normalized category id.
// The "all" sentinel bypasses the check.
func MatchesCategory(got, want string) bool {
	return want == CategoryAll || got == want
}

// Filter returns the diseases whose name, description, or any symptom contains
// the search term (case-insensitive) AND whose category matches. Recomputed
// synchronously on every call; the source collection is small and local, so no
// caching or debouncing is needed.
func Filter(items []Disease, searchTerm, category string) []Disease {
	out := make([]Disease, 0, len(items))

	for _, d := range items {
		fields := append([]string{d.Name, d.Description}, d.Symptoms...)
		if MatchesSearch(searchTerm, fields...) && MatchesCategory(d.Category, category) {
			out = append(out, d)
		}
	}

	return out
}
