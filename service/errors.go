package service

import "errors"

var (
	// ErrNotFound is returned when an operation targets a record that
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateISBN is returned when a created book's ISBN is already
	// in the catalog.
	ErrDuplicateISBN = errors.New("a book with the same ISBN already exists")

	// ErrMemberLoanLimit is returned when a member already holds two
	// active loans.
	ErrMemberLoanLimit = errors.New("member already has 2 or more books on loan")

	// ErrBookAlreadyLoaned is returned when the requested ISBN is
	// already lent out.
	ErrBookAlreadyLoaned = errors.New("book is already on loan")

	// ErrNoMetadataMatch is returned when the metadata service answers
	// but has no volume for the ISBN.
	ErrNoMetadataMatch = errors.New("no items returned from the books metadata service for the given ISBN")

	// ErrMetadataUnavailable is returned when the metadata service
	// cannot be reached.
	ErrMetadataUnavailable = errors.New("unable to connect to the books metadata service")

	// ErrCatalogUnavailable is returned when the books service cannot be
	// reached from the loan desk.
	ErrCatalogUnavailable = errors.New("unable to connect to the books service")

	// ErrBookNotFound is returned when the books service has no book for
	// the requested ISBN.
	ErrBookNotFound = errors.New("book with the given ISBN not found")
)
