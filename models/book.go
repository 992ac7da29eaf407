package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book is a catalog record. Authors, Publisher and PublishedDate are filled
// from the metadata lookup at creation time ("missing" when the upstream has
// no value); Authors is a single string, multiple names joined with " and ".
type Book struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Authors       string             `bson:"authors" json:"authors"`
	ISBN          string             `bson:"ISBN" json:"ISBN"`
	Genre         string             `bson:"genre" json:"genre"`
	Publisher     string             `bson:"publisher" json:"publisher"`
	PublishedDate string             `bson:"publishedDate" json:"publishedDate"`
}
