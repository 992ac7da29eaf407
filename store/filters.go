package store

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// bookFilterFields maps lowercased query keys to stored field names.
var bookFilterFields = map[string]string{
	"title":         "title",
	"authors":       "authors",
	"isbn":          "ISBN",
	"genre":         "genre",
	"publisher":     "publisher",
	"publisheddate": "publishedDate",
}

// BookQuery builds a Mongo filter matching every recognized key with a
// case-insensitive exact match on the trimmed value. Unknown keys are
// ignored.
func BookQuery(filters map[string]string) bson.M {
	query := bson.M{}
	for key, value := range filters {
		field, ok := bookFilterFields[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			continue
		}
		query[field] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(strings.TrimSpace(value)) + "$",
			Options: "i",
		}
	}
	return query
}
