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

const propertyCollection = "properties"

type mongoPropertyRepository struct {
	collection *mongo.Collection
}

func NewMongoPropertyRepository(db *mongo.Database) repository.PropertyRepository {
	return &mongoPropertyRepository{collection: db.Collection(propertyCollection)}
}

func (r *mongoPropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	now := time.Now()
	property.ID = primitive.NewObjectID()
	property.CreatedAt = now
	property.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, property); err != nil {
		return errors.Internal("Failed to create property", err)
	}
	return nil
}

func (r *mongoPropertyRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Property, error) {
	var property entity.Property
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Property", err)
		}
		return nil, errors.Internal("Failed to get property", err)
	}
	return &property, nil
}

func (r *mongoPropertyRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Property, error) {
	if len(ids) == 0 {
		return []*entity.Property{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (r *mongoPropertyRepository) List(ctx context.Context, query repository.PropertyQuery) ([]*entity.Property, int64, error) {
	filter := propertyFilterDoc(query.Filter)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count properties", err)
	}

	opts := options.Find().
		SetSort(sortDoc(query.Sort)).
		SetSkip(query.Skip()).
		SetLimit(int64(query.Limit))

	properties, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

func (r *mongoPropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	property.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": property.ID}, property)
	if err != nil {
		return errors.Internal("Failed to update property", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Property", nil)
	}
	return nil
}

func (r *mongoPropertyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Internal("Failed to delete property", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Property", nil)
	}
	return nil
}

// IncrementViews bumps the counter server-side so concurrent reads never
// lose increments.
func (r *mongoPropertyRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return errors.Internal("Failed to increment views", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Property", nil)
	}
	return nil
}

func (r *mongoPropertyRepository) UpdateRatings(ctx context.Context, id primitive.ObjectID, average float64, count int) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"ratings.average": average,
			"ratings.count":   count,
			"updatedAt":       time.Now(),
		},
	})
	if err != nil {
		return errors.Internal("Failed to update ratings", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Property", nil)
	}
	return nil
}

func (r *mongoPropertyRepository) ListFeatured(ctx context.Context, limit int) ([]*entity.Property, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{"featured": true, "status": entity.PropertyStatusAvailable}, opts)
}

func (r *mongoPropertyRepository) ListWithTours(ctx context.Context) ([]*entity.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, withToursFilterDoc(), opts)
}

func (r *mongoPropertyRepository) ListSimilar(ctx context.Context, reference *entity.Property, limit int) ([]*entity.Property, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, similarFilterDoc(reference), opts)
}

func (r *mongoPropertyRepository) Stats(ctx context.Context) (*repository.PropertyStats, error) {
	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":      "$propertyType",
			"count":    bson.M{"$sum": 1},
			"avgPrice": bson.M{"$avg": "$price"},
			"minPrice": bson.M{"$min": "$price"},
			"maxPrice": bson.M{"$max": "$price"},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	})
	if err != nil {
		return nil, errors.Internal("Failed to aggregate property stats", err)
	}
	defer cursor.Close(ctx)

	byType := []repository.TypeStats{}
	if err := cursor.All(ctx, &byType); err != nil {
		return nil, errors.Internal("Failed to decode property stats", err)
	}

	stats := &repository.PropertyStats{ByType: byType}
	for _, t := range byType {
		stats.Total += t.Count
	}

	if stats.Available, err = r.collection.CountDocuments(ctx, bson.M{"status": entity.PropertyStatusAvailable}); err != nil {
		return nil, errors.Internal("Failed to count available properties", err)
	}
	if stats.Sold, err = r.collection.CountDocuments(ctx, bson.M{"status": entity.PropertyStatusSold}); err != nil {
		return nil, errors.Internal("Failed to count sold properties", err)
	}
	return stats, nil
}

func (r *mongoPropertyRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*entity.Property, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection.Find(ctx, filter, opts)
	} else {
		cursor, err = r.collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, errors.Internal("Failed to list properties", err)
	}
	defer cursor.Close(ctx)

	properties := []*entity.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, errors.Internal("Failed to decode properties", err)
	}
	return properties, nil
}
