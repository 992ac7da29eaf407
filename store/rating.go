package store

import (
	"context"

	"github.com/sapirHafner/Library-management-project/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (db *DB) InsertRating(ctx context.Context, rating *models.Rating) error {
	_, err := db.Ratings().InsertOne(ctx, rating)
	return err
}

func (db *DB) RatingByID(ctx context.Context, id primitive.ObjectID) (*models.Rating, error) {
	var rating models.Rating
	if err := db.Ratings().FindOne(ctx, bson.M{"_id": id}).Decode(&rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

func (db *DB) AllRatings(ctx context.Context) ([]models.Rating, error) {
	cur, err := db.Ratings().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var ratings []models.Rating
	if err := cur.All(ctx, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (db *DB) DeleteRating(ctx context.Context, id primitive.ObjectID) error {
	res, err := db.Ratings().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (db *DB) UpdateRatingTitle(ctx context.Context, id primitive.ObjectID, title string) error {
	res, err := db.Ratings().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"title": title}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetRatingValues stores a recomputed values sequence and its average in a
// single document write.
func (db *DB) SetRatingValues(ctx context.Context, id primitive.ObjectID, values []int, average float64) error {
	res, err := db.Ratings().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"values": values, "average": average}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// EligibleRatings returns the entries with at least three recorded values,
// the only ones the ranking considers.
func (db *DB) EligibleRatings(ctx context.Context) ([]models.Rating, error) {
	cur, err := db.Ratings().Find(ctx, bson.M{"values.2": bson.M{"$exists": true}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var ratings []models.Rating
	if err := cur.All(ctx, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}
