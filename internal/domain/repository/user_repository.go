package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	SetSavedProperties(ctx context.Context, userID primitive.ObjectID, propertyIDs []primitive.ObjectID) error
}
