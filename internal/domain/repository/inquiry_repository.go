package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/domain/entity"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Inquiry, error)
	ListBySender(ctx context.Context, senderID primitive.ObjectID) ([]*entity.Inquiry, error)
	ListByReceiver(ctx context.Context, receiverID primitive.ObjectID) ([]*entity.Inquiry, error)
	Update(ctx context.Context, inquiry *entity.Inquiry) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
