package catalog

import "errors"

var (
	// ErrUpstream is returned when the best-seller provider cannot be reached
	// or answers with a non-200 status.
	ErrUpstream = errors.New("upstream provider unavailable")

	// ErrInvalidQuery is returned for blank or whitespace-only search input.
	ErrInvalidQuery = errors.New("invalid search query")
)

// Book is a denormalized best-seller entry as returned by the upstream
// provider. It is never persisted locally.
type Book struct {
	Title            string `json:"title"`
	Author           string `json:"author"`
	Description      string `json:"description"`
	PrimaryISBN13    string `json:"primary_isbn13"`
	BookImage        string `json:"book_image"`
	AmazonProductURL string `json:"amazon_product_url"`
	BookURI          string `json:"book_uri"`
}

// Identity returns the dedup key for a book: the ISBN-13 when present,
// otherwise the provider-assigned URI.
func (b Book) Identity() string {
	if b.PrimaryISBN13 != "" {
		return b.PrimaryISBN13
	}
	return b.BookURI
}

// List is a named best-seller list with its books in upstream order.
type List struct {
	ListName        string `json:"list_name"`
	DisplayName     string `json:"display_name"`
	ListNameEncoded string `json:"list_name_encoded"`
	Books           []Book `json:"books"`
}

// Overview is a full snapshot of every list the provider publishes.
type Overview struct {
	Lists []List `json:"lists"`
}

// ListName identifies a list for the category-browsing path.
type ListName struct {
	DisplayName     string `json:"display_name"`
	ListNameEncoded string `json:"list_name_encoded"`
}
