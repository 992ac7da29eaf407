package store

import (
	"context"

	"github.com/sapirHafner/Library-management-project/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (db *DB) InsertBook(ctx context.Context, book *models.Book) (primitive.ObjectID, error) {
	res, err := db.Books().InsertOne(ctx, book)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) BookByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	var book models.Book
	if err := db.Books().FindOne(ctx, bson.M{"_id": id}).Decode(&book); err != nil {
		return nil, err
	}
	return &book, nil
}

// BookByISBN returns the book carrying the given ISBN, or
// mongo.ErrNoDocuments when the ISBN is unused.
func (db *DB) BookByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	var book models.Book
	if err := db.Books().FindOne(ctx, bson.M{"ISBN": isbn}).Decode(&book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (db *DB) AllBooks(ctx context.Context) ([]models.Book, error) {
	return db.findBooks(ctx, bson.M{})
}

// BooksMatching returns the books matching a filter set built by BookQuery.
func (db *DB) BooksMatching(ctx context.Context, filters map[string]string) ([]models.Book, error) {
	return db.findBooks(ctx, BookQuery(filters))
}

func (db *DB) findBooks(ctx context.Context, query bson.M) ([]models.Book, error) {
	cur, err := db.Books().Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var books []models.Book
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// ReplaceBook overwrites every field of the book with the given ID.
// Returns mongo.ErrNoDocuments when the book does not exist.
func (db *DB) ReplaceBook(ctx context.Context, id primitive.ObjectID, book *models.Book) error {
	update := bson.M{
		"title":         book.Title,
		"authors":       book.Authors,
		"ISBN":          book.ISBN,
		"genre":         book.Genre,
		"publisher":     book.Publisher,
		"publishedDate": book.PublishedDate,
	}
	res, err := db.Books().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteBook removes a book by ID. Returns mongo.ErrNoDocuments when no
// book carries the ID.
func (db *DB) DeleteBook(ctx context.Context, id primitive.ObjectID) error {
	res, err := db.Books().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
