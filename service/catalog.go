package service

import (
	"context"
	"errors"
	"log"

	"github.com/sapirHafner/Library-management-project/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Catalog owns book records and keeps the rating ledger in step with their
// lifecycle: every created book gets a ledger entry, deletion removes it,
// and a rename is propagated to the denormalized ledger title.
type Catalog struct {
	DB       BookStore
	Ledger   *Ledger
	Metadata MetadataFetcher
}

// CreateBook validates and enriches a new book, persists it and provisions
// the paired ledger entry. The book insert and the ledger insert are two
// separate writes with no rollback; if the second fails the book is left
// without a ledger entry and the error surfaces to the caller.
func (c *Catalog) CreateBook(ctx context.Context, book *models.Book) (primitive.ObjectID, error) {
	if err := book.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	if _, err := c.DB.BookByISBN(ctx, book.ISBN); err == nil {
		return primitive.NilObjectID, ErrDuplicateISBN
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, err
	}

	meta, err := c.Metadata.FetchByISBN(ctx, book.ISBN)
	if err != nil {
		return primitive.NilObjectID, err
	}
	book.Authors = meta.Authors
	book.Publisher = meta.Publisher
	book.PublishedDate = meta.PublishedDate

	id, err := c.DB.InsertBook(ctx, book)
	if err != nil {
		return primitive.NilObjectID, err
	}
	book.ID = id
	if err := c.Ledger.Provision(ctx, id, book.Title); err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

func (c *Catalog) GetBook(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	book, err := c.DB.BookByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	return book, err
}

// UpdateBook fully replaces the book's fields and propagates the title to
// the ledger. A missing ledger entry is logged, not surfaced; the book
// update already succeeded.
func (c *Catalog) UpdateBook(ctx context.Context, id primitive.ObjectID, book *models.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}
	err := c.DB.ReplaceBook(ctx, id, book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := c.Ledger.UpdateTitle(ctx, id, book.Title); err != nil {
		log.Printf("catalog: propagate title to rating %s: %v", id.Hex(), err)
	}
	return nil
}

// DeleteBook removes the book and its ledger entry. The ledger delete is
// best-effort cleanup: a missing entry is not an error.
func (c *Catalog) DeleteBook(ctx context.Context, id primitive.ObjectID) error {
	err := c.DB.DeleteBook(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := c.Ledger.Remove(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		log.Printf("catalog: delete rating %s: %v", id.Hex(), err)
	}
	return nil
}

// QueryBooks returns all books when filters is empty, otherwise the books
// matching every filter. The caller distinguishes an empty filtered result
// from an empty catalog.
func (c *Catalog) QueryBooks(ctx context.Context, filters map[string]string) ([]models.Book, error) {
	if len(filters) == 0 {
		return c.DB.AllBooks(ctx)
	}
	return c.DB.BooksMatching(ctx, filters)
}
