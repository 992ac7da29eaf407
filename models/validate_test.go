package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBook() Book {
	return Book{
		Title:         "The Trial",
		ISBN:          "9780805209990",
		Genre:         "Fiction",
		PublishedDate: "1998-05-25",
	}
}

func TestBookValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *Book)
		wantErr bool
	}{
		{"valid book", func(b *Book) {}, false},
		{"every accepted genre", func(b *Book) { b.Genre = "Science Fiction" }, false},
		{"unknown genre", func(b *Book) { b.Genre = "Horror" }, true},
		{"lowercased genre rejected", func(b *Book) { b.Genre = "fiction" }, true},
		{"isbn too short", func(b *Book) { b.ISBN = "123456789" }, true},
		{"isbn with letters", func(b *Book) { b.ISBN = "97808052099AB" }, true},
		{"isbn fourteen digits", func(b *Book) { b.ISBN = "97808052099901" }, true},
		{"date wrong shape", func(b *Book) { b.PublishedDate = "25-05-1998" }, true},
		{"date empty allowed", func(b *Book) { b.PublishedDate = "" }, false},
		{"date missing sentinel allowed", func(b *Book) { b.PublishedDate = "missing" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBook()
			tt.mutate(&b)
			err := b.Validate()
			if tt.wantErr {
				var verr *ValidationError
				require.Error(t, err)
				assert.ErrorAs(t, err, &verr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
