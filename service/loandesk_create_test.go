package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/sapirHafner/Library-management-project/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const odysseyISBN = "9780140449136"

func newTestDesk() (*LoanDesk, *fakeLoanStore, *fakeResolver) {
	loans := &fakeLoanStore{}
	resolver := &fakeResolver{books: map[string]*models.Book{
		odysseyISBN: {ID: primitive.NewObjectID(), Title: "The Odyssey", ISBN: odysseyISBN, Genre: "Fiction"},
	}}
	return &LoanDesk{DB: loans, Catalog: resolver}, loans, resolver
}

func TestCreateLoan_SnapshotsBookFields(t *testing.T) {
	desk, loans, resolver := newTestDesk()

	id, err := desk.CreateLoan(context.Background(), "Alice Smith", odysseyISBN, "2024-03-01")
	require.NoError(t, err)

	require.NotEmpty(t, id)
	require.Len(t, loans.loans, 1)
	loan := loans.loans[0]
	assert.Equal(t, id, loan.LoanID)
	assert.Equal(t, "The Odyssey", loan.Title)
	assert.Equal(t, resolver.books[odysseyISBN].ID.Hex(), loan.BookID)
	assert.Equal(t, "2024-03-01", loan.LoanDate)
}

func TestCreateLoan_MemberAtLimitConflicts(t *testing.T) {
	desk, loans, resolver := newTestDesk()
	loans.loans = []models.Loan{
		{LoanID: "loan-1", MemberName: "Alice Smith", ISBN: "9780000000001"},
		{LoanID: "loan-2", MemberName: "Alice Smith", ISBN: "9780000000002"},
	}

	_, err := desk.CreateLoan(context.Background(), "Alice Smith", odysseyISBN, "2024-03-01")

	assert.ErrorIs(t, err, ErrMemberLoanLimit)
	assert.Len(t, loans.loans, 2)
	assert.Zero(t, resolver.calls)
}

func TestCreateLoan_ISBNAlreadyLoanedConflictsForOtherMember(t *testing.T) {
	desk, loans, resolver := newTestDesk()
	loans.loans = []models.Loan{
		{LoanID: "loan-1", MemberName: "Bob Jones", ISBN: odysseyISBN},
	}

	_, err := desk.CreateLoan(context.Background(), "Alice Smith", odysseyISBN, "2024-03-01")

	assert.ErrorIs(t, err, ErrBookAlreadyLoaned)
	assert.Len(t, loans.loans, 1)
	assert.Zero(t, resolver.calls)
}

// When both conflicts hold, the member limit is reported: the checks run
// in order, member limit before ISBN availability before catalog lookup.
func TestCreateLoan_MemberLimitCheckedFirst(t *testing.T) {
	desk, loans, resolver := newTestDesk()
	loans.loans = []models.Loan{
		{LoanID: "loan-1", MemberName: "Alice Smith", ISBN: "9780000000001"},
		{LoanID: "loan-2", MemberName: "Alice Smith", ISBN: "9780000000002"},
		{LoanID: "loan-3", MemberName: "Bob Jones", ISBN: odysseyISBN},
	}

	_, err := desk.CreateLoan(context.Background(), "Alice Smith", odysseyISBN, "2024-03-01")

	assert.ErrorIs(t, err, ErrMemberLoanLimit)
	assert.Zero(t, resolver.calls)
}

func TestCreateLoan_UnknownISBN(t *testing.T) {
	desk, loans, _ := newTestDesk()

	_, err := desk.CreateLoan(context.Background(), "Alice Smith", "9780000000009", "2024-03-01")

	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.Empty(t, loans.loans)
}

func TestCreateLoan_CatalogUnreachable(t *testing.T) {
	desk, loans, resolver := newTestDesk()
	resolver.err = fmt.Errorf("%w: connection refused", ErrCatalogUnavailable)

	_, err := desk.CreateLoan(context.Background(), "Alice Smith", odysseyISBN, "2024-03-01")

	assert.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.Empty(t, loans.loans)
}

func TestGetLoan_UnknownID(t *testing.T) {
	desk, _, _ := newTestDesk()

	_, err := desk.GetLoan(context.Background(), "no-such-loan")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteLoan_RemovesWithoutCascade(t *testing.T) {
	desk, loans, _ := newTestDesk()
	id, err := desk.CreateLoan(context.Background(), "Alice Smith", odysseyISBN, "2024-03-01")
	require.NoError(t, err)

	require.NoError(t, desk.DeleteLoan(context.Background(), id))
	assert.Empty(t, loans.loans)

	assert.ErrorIs(t, desk.DeleteLoan(context.Background(), id), ErrNotFound)
}
