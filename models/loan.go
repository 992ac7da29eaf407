package models

// Loan records one book lent to one member. Title and BookID are snapshots
// taken from the books service when the loan is created; deleting or
// renaming the book later does not touch them.
type Loan struct {
	LoanID     string `bson:"loanID" json:"loanID"`
	MemberName string `bson:"memberName" json:"memberName"`
	ISBN       string `bson:"ISBN" json:"ISBN"`
	Title      string `bson:"title" json:"title"`
	BookID     string `bson:"bookID" json:"bookID"`
	LoanDate   string `bson:"loanDate" json:"loanDate"`
}
