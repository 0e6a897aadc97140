package catalog

import "strings"

// Search flattens the overview's lists into a deduplicated, query-matched
// sequence of books. A list is relevant when its name contains the full query
// string, or any of its books has a matching title or author. A book from a
// relevant list is kept when every query token appears in its title, or every
// token appears in its author; the multi-token match must land entirely in
// one field. Result order follows upstream list and within-list book order.
func Search(query string, overview Overview) ([]Book, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, ErrInvalidQuery
	}
	tokens := strings.Fields(q)

	containsAll := func(text string) bool {
		lowered := strings.ToLower(text)
		for _, token := range tokens {
			if !strings.Contains(lowered, token) {
				return false
			}
		}
		return true
	}
	containsQuery := func(text string) bool {
		return strings.Contains(strings.ToLower(text), q)
	}

	seen := make(map[string]bool)
	results := []Book{}
	for _, list := range overview.Lists {
		if !listRelevant(list, containsQuery) {
			continue
		}
		for _, book := range list.Books {
			// The first occurrence claims the identity whether or not it
			// matches; later duplicates are dropped either way.
			id := book.Identity()
			if seen[id] {
				continue
			}
			seen[id] = true
			if containsAll(book.Title) || containsAll(book.Author) {
				results = append(results, book)
			}
		}
	}
	return results, nil
}

func listRelevant(list List, containsQuery func(string) bool) bool {
	if containsQuery(list.ListName) {
		return true
	}
	for _, book := range list.Books {
		if containsQuery(book.Title) || containsQuery(book.Author) {
			return true
		}
	}
	return false
}
