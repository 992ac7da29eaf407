package service

import (
	"context"
	"errors"

	"github.com/sapirHafner/Library-management-project/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Ledger owns the rating records paired 1:1 with catalog books. Entries are
// keyed by the paired book's ID; the catalog provisions one on book
// creation and removes it on book deletion.
type Ledger struct {
	DB RatingStore
}

// Provision creates the ledger entry for a newly created book: empty
// values, average 0.
func (l *Ledger) Provision(ctx context.Context, bookID primitive.ObjectID, title string) error {
	return l.DB.InsertRating(ctx, &models.Rating{
		ID:     bookID,
		Title:  title,
		Values: []int{},
	})
}

func (l *Ledger) Get(ctx context.Context, bookID primitive.ObjectID) (*models.Rating, error) {
	rating, err := l.DB.RatingByID(ctx, bookID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	return rating, err
}

func (l *Ledger) List(ctx context.Context) ([]models.Rating, error) {
	return l.DB.AllRatings(ctx)
}

func (l *Ledger) Remove(ctx context.Context, bookID primitive.ObjectID) error {
	err := l.DB.DeleteRating(ctx, bookID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// UpdateTitle keeps the denormalized title in sync after a book rename.
func (l *Ledger) UpdateTitle(ctx context.Context, bookID primitive.ObjectID, title string) error {
	err := l.DB.UpdateRatingTitle(ctx, bookID, title)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// AppendValue appends one reader rating in [1,5] and recomputes the
// average. The read-modify-write is not atomic; concurrent appends to the
// same book can lose one (same contract as single-document writes allow).
func (l *Ledger) AppendValue(ctx context.Context, bookID primitive.ObjectID, value int) error {
	if value < 1 || value > 5 {
		return &models.ValidationError{Message: "value must be an integer between 1 and 5"}
	}
	rating, err := l.DB.RatingByID(ctx, bookID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	values := append(rating.Values, value)
	err = l.DB.SetRatingValues(ctx, bookID, values, Average(values))
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// TopRated returns the ranking served on /top.
func (l *Ledger) TopRated(ctx context.Context) ([]RankedBook, error) {
	eligible, err := l.DB.EligibleRatings(ctx)
	if err != nil {
		return nil, err
	}
	return TopDistinct(eligible, 3), nil
}
