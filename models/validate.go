package models

import "regexp"

// AcceptedGenres is the fixed set of genres a book may carry.
var AcceptedGenres = []string{
	"Fiction", "Children", "Biography", "Science", "Science Fiction", "Fantasy", "Other",
}

var (
	isbnRX = regexp.MustCompile(`^\d{13}$`)
	dateRX = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError reports a request field that failed validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks the caller-supplied book fields: genre must be one of
// AcceptedGenres, ISBN must be exactly 13 digits, and publishedDate must be
// YYYY-MM-DD when set. The "missing" sentinel written by enrichment is
// accepted so that a full replace of an enriched book can round-trip.
func (b *Book) Validate() error {
	if !in(b.Genre, AcceptedGenres...) {
		return &ValidationError{"genre is not one of the accepted values"}
	}
	if !isbnRX.MatchString(b.ISBN) {
		return &ValidationError{"ISBN must be a 13-digit number"}
	}
	if b.PublishedDate != "" && b.PublishedDate != "missing" && !dateRX.MatchString(b.PublishedDate) {
		return &ValidationError{"publishedDate must be in the form 'YYYY-MM-DD'"}
	}
	return nil
}

func in(value string, list ...string) bool {
	for _, item := range list {
		if value == item {
			return true
		}
	}
	return false
}
