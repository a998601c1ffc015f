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

const inquiryCollection = "inquiries"

type mongoInquiryRepository struct {
	collection *mongo.Collection
}

func NewMongoInquiryRepository(db *mongo.Database) repository.InquiryRepository {
	return &mongoInquiryRepository{collection: db.Collection(inquiryCollection)}
}

func (r *mongoInquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	now := time.Now()
	inquiry.ID = primitive.NewObjectID()
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, inquiry); err != nil {
		return errors.Internal("Failed to create inquiry", err)
	}
	return nil
}

func (r *mongoInquiryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Inquiry, error) {
	var inquiry entity.Inquiry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&inquiry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Inquiry", err)
		}
		return nil, errors.Internal("Failed to get inquiry", err)
	}
	return &inquiry, nil
}

func (r *mongoInquiryRepository) ListBySender(ctx context.Context, senderID primitive.ObjectID) ([]*entity.Inquiry, error) {
	return r.list(ctx, bson.M{"sender": senderID})
}

func (r *mongoInquiryRepository) ListByReceiver(ctx context.Context, receiverID primitive.ObjectID) ([]*entity.Inquiry, error) {
	return r.list(ctx, bson.M{"receiver": receiverID})
}

func (r *mongoInquiryRepository) Update(ctx context.Context, inquiry *entity.Inquiry) error {
	inquiry.UpdatedAt = time.Now()

	update := bson.M{
		"status":    inquiry.Status,
		"updatedAt": inquiry.UpdatedAt,
	}
	if inquiry.VisitDate != nil {
		update["visitDate"] = inquiry.VisitDate
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": inquiry.ID}, bson.M{"$set": update})
	if err != nil {
		return errors.Internal("Failed to update inquiry", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Inquiry", nil)
	}
	return nil
}

func (r *mongoInquiryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Internal("Failed to delete inquiry", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Inquiry", nil)
	}
	return nil
}

func (r *mongoInquiryRepository) list(ctx context.Context, filter bson.M) ([]*entity.Inquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Internal("Failed to list inquiries", err)
	}
	defer cursor.Close(ctx)

	inquiries := []*entity.Inquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, errors.Internal("Failed to decode inquiries", err)
	}
	return inquiries, nil
}
