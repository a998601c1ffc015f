package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"estatia/internal/domain/entity"
	"estatia/internal/domain/repository"
	"estatia/pkg/errors"
)

const reviewCollection = "reviews"

type mongoReviewRepository struct {
	collection *mongo.Collection
}

func NewMongoReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &mongoReviewRepository{collection: db.Collection(reviewCollection)}
}

// Create relies on the unique (property, user) index to reject a second
// review from the same user.
func (r *mongoReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	now := time.Now()
	review.ID = primitive.NewObjectID()
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, review); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Conflict("You have already reviewed this property", err)
		}
		return errors.Internal("Failed to create review", err)
	}
	return nil
}

func (r *mongoReviewRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Review, error) {
	var review entity.Review
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Review", err)
		}
		return nil, errors.Internal("Failed to get review", err)
	}
	return &review, nil
}

func (r *mongoReviewRepository) ListByProperty(ctx context.Context, propertyID primitive.ObjectID) ([]*entity.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"property": propertyID}, opts)
	if err != nil {
		return nil, errors.Internal("Failed to list reviews", err)
	}
	defer cursor.Close(ctx)

	reviews := []*entity.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, errors.Internal("Failed to decode reviews", err)
	}
	return reviews, nil
}

func (r *mongoReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	review.UpdatedAt = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": review.ID}, bson.M{
		"$set": bson.M{
			"rating":    review.Rating,
			"comment":   review.Comment,
			"updatedAt": review.UpdatedAt,
		},
	})
	if err != nil {
		return errors.Internal("Failed to update review", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Review", nil)
	}
	return nil
}

func (r *mongoReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Internal("Failed to delete review", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Review", nil)
	}
	return nil
}

// AggregateRating computes the mean rating and review count for one
// property in a single $group pass. No reviews yields (0, 0).
func (r *mongoReviewRepository) AggregateRating(ctx context.Context, propertyID primitive.ObjectID) (float64, int, error) {
	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"property": propertyID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$property",
			"average": bson.M{"$avg": "$rating"},
			"count":   bson.M{"$sum": 1},
		}}},
	})
	if err != nil {
		return 0, 0, errors.Internal("Failed to aggregate ratings", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Average float64 `bson:"average"`
		Count   int     `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, 0, errors.Internal("Failed to decode rating aggregate", err)
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].Average, results[0].Count, nil
}
