package store

import (
	"context"

	"github.com/sapirHafner/Library-management-project/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (db *DB) InsertLoan(ctx context.Context, loan *models.Loan) error {
	_, err := db.Loans().InsertOne(ctx, loan)
	return err
}

func (db *DB) LoanByID(ctx context.Context, loanID string) (*models.Loan, error) {
	var loan models.Loan
	if err := db.Loans().FindOne(ctx, bson.M{"loanID": loanID}).Decode(&loan); err != nil {
		return nil, err
	}
	return &loan, nil
}

func (db *DB) AllLoans(ctx context.Context) ([]models.Loan, error) {
	cur, err := db.Loans().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var loans []models.Loan
	if err := cur.All(ctx, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (db *DB) DeleteLoan(ctx context.Context, loanID string) error {
	res, err := db.Loans().DeleteOne(ctx, bson.M{"loanID": loanID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CountLoansByMember returns how many loans the member currently holds.
func (db *DB) CountLoansByMember(ctx context.Context, memberName string) (int64, error) {
	return db.Loans().CountDocuments(ctx, bson.M{"memberName": memberName})
}

// LoanByISBN returns the active loan for an ISBN, or mongo.ErrNoDocuments
// when the book is not lent out.
func (db *DB) LoanByISBN(ctx context.Context, isbn string) (*models.Loan, error) {
	var loan models.Loan
	if err := db.Loans().FindOne(ctx, bson.M{"ISBN": isbn}).Decode(&loan); err != nil {
		return nil, err
	}
	return &loan, nil
}
