package service

import (
	"context"

	"github.com/sapirHafner/Library-management-project/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory store fakes mirroring the *store.DB contract: absent records
// are mongo.ErrNoDocuments, every write is a whole-document copy.

type fakeBookStore struct {
	books     map[primitive.ObjectID]*models.Book
	insertErr error
}

func newFakeBookStore() *fakeBookStore {
	return &fakeBookStore{books: make(map[primitive.ObjectID]*models.Book)}
}

func (f *fakeBookStore) InsertBook(_ context.Context, book *models.Book) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	id := primitive.NewObjectID()
	stored := *book
	stored.ID = id
	f.books[id] = &stored
	return id, nil
}

func (f *fakeBookStore) BookByID(_ context.Context, id primitive.ObjectID) (*models.Book, error) {
	book, ok := f.books[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := *book
	return &out, nil
}

func (f *fakeBookStore) BookByISBN(_ context.Context, isbn string) (*models.Book, error) {
	for _, book := range f.books {
		if book.ISBN == isbn {
			out := *book
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBookStore) AllBooks(_ context.Context) ([]models.Book, error) {
	var books []models.Book
	for _, book := range f.books {
		books = append(books, *book)
	}
	return books, nil
}

func (f *fakeBookStore) BooksMatching(ctx context.Context, _ map[string]string) ([]models.Book, error) {
	return f.AllBooks(ctx)
}

func (f *fakeBookStore) ReplaceBook(_ context.Context, id primitive.ObjectID, book *models.Book) error {
	if _, ok := f.books[id]; !ok {
		return mongo.ErrNoDocuments
	}
	stored := *book
	stored.ID = id
	f.books[id] = &stored
	return nil
}

func (f *fakeBookStore) DeleteBook(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.books[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.books, id)
	return nil
}

type fakeRatingStore struct {
	ratings   map[primitive.ObjectID]*models.Rating
	insertErr error
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{ratings: make(map[primitive.ObjectID]*models.Rating)}
}

func (f *fakeRatingStore) InsertRating(_ context.Context, rating *models.Rating) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	stored := *rating
	stored.Values = append([]int(nil), rating.Values...)
	f.ratings[rating.ID] = &stored
	return nil
}

func (f *fakeRatingStore) RatingByID(_ context.Context, id primitive.ObjectID) (*models.Rating, error) {
	rating, ok := f.ratings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := *rating
	out.Values = append([]int(nil), rating.Values...)
	return &out, nil
}

func (f *fakeRatingStore) AllRatings(_ context.Context) ([]models.Rating, error) {
	var ratings []models.Rating
	for _, rating := range f.ratings {
		ratings = append(ratings, *rating)
	}
	return ratings, nil
}

func (f *fakeRatingStore) DeleteRating(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.ratings[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.ratings, id)
	return nil
}

func (f *fakeRatingStore) UpdateRatingTitle(_ context.Context, id primitive.ObjectID, title string) error {
	rating, ok := f.ratings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	rating.Title = title
	return nil
}

func (f *fakeRatingStore) SetRatingValues(_ context.Context, id primitive.ObjectID, values []int, average float64) error {
	rating, ok := f.ratings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	rating.Values = append([]int(nil), values...)
	rating.Average = average
	return nil
}

func (f *fakeRatingStore) EligibleRatings(_ context.Context) ([]models.Rating, error) {
	var eligible []models.Rating
	for _, rating := range f.ratings {
		if len(rating.Values) >= 3 {
			eligible = append(eligible, *rating)
		}
	}
	return eligible, nil
}

type fakeLoanStore struct {
	loans     []models.Loan
	insertErr error
}

func (f *fakeLoanStore) InsertLoan(_ context.Context, loan *models.Loan) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.loans = append(f.loans, *loan)
	return nil
}

func (f *fakeLoanStore) LoanByID(_ context.Context, loanID string) (*models.Loan, error) {
	for i := range f.loans {
		if f.loans[i].LoanID == loanID {
			out := f.loans[i]
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeLoanStore) AllLoans(_ context.Context) ([]models.Loan, error) {
	return append([]models.Loan(nil), f.loans...), nil
}

func (f *fakeLoanStore) DeleteLoan(_ context.Context, loanID string) error {
	for i := range f.loans {
		if f.loans[i].LoanID == loanID {
			f.loans = append(f.loans[:i], f.loans[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeLoanStore) CountLoansByMember(_ context.Context, memberName string) (int64, error) {
	var count int64
	for i := range f.loans {
		if f.loans[i].MemberName == memberName {
			count++
		}
	}
	return count, nil
}

func (f *fakeLoanStore) LoanByISBN(_ context.Context, isbn string) (*models.Loan, error) {
	for i := range f.loans {
		if f.loans[i].ISBN == isbn {
			out := f.loans[i]
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

// fakeMetadata stands in for the Google Books client.
type fakeMetadata struct {
	meta *BookMetadata
	err  error
}

func (f *fakeMetadata) FetchByISBN(context.Context, string) (*BookMetadata, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.meta != nil {
		return f.meta, nil
	}
	return &BookMetadata{Authors: "missing", Publisher: "missing", PublishedDate: "missing"}, nil
}

// fakeResolver stands in for the loans→books HTTP client and counts calls
// so tests can assert which eligibility check fired first.
type fakeResolver struct {
	books map[string]*models.Book
	err   error
	calls int
}

func (f *fakeResolver) BookByISBN(_ context.Context, isbn string) (*models.Book, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	book, ok := f.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	out := *book
	return &out, nil
}
