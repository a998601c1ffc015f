package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/domain/entity"
)

type ReviewRepository interface {
	// Create reports a conflict error when the (property, user) pair
	// already has a review.
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Review, error)
	ListByProperty(ctx context.Context, propertyID primitive.ObjectID) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// AggregateRating recomputes the mean rating and review count for a
	// property from the reviews collection. Zero reviews yield (0, 0).
	AggregateRating(ctx context.Context, propertyID primitive.ObjectID) (average float64, count int, err error)
}
