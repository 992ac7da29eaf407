package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sapirHafner/Library-management-project/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// LoanDesk owns loan records and enforces eligibility against the book
// catalog before lending.
type LoanDesk struct {
	DB      LoanStore
	Catalog BookResolver
}

// CreateLoan runs the eligibility checks in order: the member may hold at
// most two loans, the ISBN must not already be lent out, and the ISBN must
// resolve to a catalog book. On success the book's title and id are
// snapshotted onto the loan and a server-generated loan id is returned.
func (d *LoanDesk) CreateLoan(ctx context.Context, memberName, isbn, loanDate string) (string, error) {
	count, err := d.DB.CountLoansByMember(ctx, memberName)
	if err != nil {
		return "", err
	}
	if count >= 2 {
		return "", ErrMemberLoanLimit
	}

	if _, err := d.DB.LoanByISBN(ctx, isbn); err == nil {
		return "", ErrBookAlreadyLoaned
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	book, err := d.Catalog.BookByISBN(ctx, isbn)
	if err != nil {
		return "", err
	}

	loan := &models.Loan{
		LoanID:     uuid.NewString(),
		MemberName: memberName,
		ISBN:       isbn,
		Title:      book.Title,
		BookID:     book.ID.Hex(),
		LoanDate:   loanDate,
	}
	if err := d.DB.InsertLoan(ctx, loan); err != nil {
		return "", err
	}
	return loan.LoanID, nil
}

func (d *LoanDesk) GetLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	loan, err := d.DB.LoanByID(ctx, loanID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	return loan, err
}

// DeleteLoan returns the book without any cascade back to the catalog.
func (d *LoanDesk) DeleteLoan(ctx context.Context, loanID string) error {
	err := d.DB.DeleteLoan(ctx, loanID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// QueryLoans returns all loans when filters is empty, otherwise the loans
// matching every filter.
func (d *LoanDesk) QueryLoans(ctx context.Context, filters map[string]string) ([]models.Loan, error) {
	loans, err := d.DB.AllLoans(ctx)
	if err != nil {
		return nil, err
	}
	return FilterLoans(loans, filters), nil
}

// FilterLoans narrows loans by each filter in turn: case-insensitive exact
// match for the identifying fields, exact-after-trim for loanDate. Unknown
// keys are ignored.
func FilterLoans(loans []models.Loan, filters map[string]string) []models.Loan {
	matched := loans
	for key, value := range filters {
		field := strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		var keep []models.Loan
		for _, loan := range matched {
			if loanMatches(loan, field, value) {
				keep = append(keep, loan)
			}
		}
		matched = keep
	}
	return matched
}

func loanMatches(loan models.Loan, field, value string) bool {
	switch field {
	case "membername":
		return strings.EqualFold(loan.MemberName, value)
	case "isbn":
		return strings.EqualFold(loan.ISBN, value)
	case "bookid":
		return strings.EqualFold(loan.BookID, value)
	case "loanid":
		return strings.EqualFold(loan.LoanID, value)
	case "title":
		return strings.EqualFold(loan.Title, value)
	case "loandate":
		return value == strings.TrimSpace(loan.LoanDate)
	default:
		return true
	}
}
