package service

import (
	"context"

	"github.com/sapirHafner/Library-management-project/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The stores the services depend on, satisfied by *store.DB. Keeping them
// as interfaces lets the lifecycle and eligibility decisions run against
// in-memory fakes in tests.

type BookStore interface {
	InsertBook(ctx context.Context, book *models.Book) (primitive.ObjectID, error)
	BookByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error)
	BookByISBN(ctx context.Context, isbn string) (*models.Book, error)
	AllBooks(ctx context.Context) ([]models.Book, error)
	BooksMatching(ctx context.Context, filters map[string]string) ([]models.Book, error)
	ReplaceBook(ctx context.Context, id primitive.ObjectID, book *models.Book) error
	DeleteBook(ctx context.Context, id primitive.ObjectID) error
}

type RatingStore interface {
	InsertRating(ctx context.Context, rating *models.Rating) error
	RatingByID(ctx context.Context, id primitive.ObjectID) (*models.Rating, error)
	AllRatings(ctx context.Context) ([]models.Rating, error)
	DeleteRating(ctx context.Context, id primitive.ObjectID) error
	UpdateRatingTitle(ctx context.Context, id primitive.ObjectID, title string) error
	SetRatingValues(ctx context.Context, id primitive.ObjectID, values []int, average float64) error
	EligibleRatings(ctx context.Context) ([]models.Rating, error)
}

type LoanStore interface {
	InsertLoan(ctx context.Context, loan *models.Loan) error
	LoanByID(ctx context.Context, loanID string) (*models.Loan, error)
	AllLoans(ctx context.Context) ([]models.Loan, error)
	DeleteLoan(ctx context.Context, loanID string) error
	CountLoansByMember(ctx context.Context, memberName string) (int64, error)
	LoanByISBN(ctx context.Context, isbn string) (*models.Loan, error)
}

// MetadataFetcher is the enrichment lookup run at book creation.
type MetadataFetcher interface {
	FetchByISBN(ctx context.Context, isbn string) (*BookMetadata, error)
}

// BookResolver resolves an ISBN to a catalog book for the loan desk.
type BookResolver interface {
	BookByISBN(ctx context.Context, isbn string) (*models.Book, error)
}
