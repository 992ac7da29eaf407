package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is the ledger entry paired 1:1 with a book. Its ID is the paired
// book's ID, and Title is a denormalized copy kept in sync on rename.
// Values is append-only; Average is recomputed on every append and is 0
// while Values is empty.
type Rating struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Title   string             `bson:"title" json:"title"`
	Values  []int              `bson:"values" json:"values"`
	Average float64            `bson:"average" json:"average"`
}
