package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/domain/entity"
	"estatia/internal/domain/repository"
	"estatia/pkg/errors"
	"estatia/pkg/logger"
)

type InquiryUseCase struct {
	inquiryRepo  repository.InquiryRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

func NewInquiryUseCase(
	inquiryRepo repository.InquiryRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
) *InquiryUseCase {
	return &InquiryUseCase{
		inquiryRepo:  inquiryRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

type CreateInquiryInput struct {
	PropertyID primitive.ObjectID
	Message    string
	Phone      string
	VisitDate  *time.Time
}

type UpdateInquiryInput struct {
	Status    string
	VisitDate *time.Time
}

// ListInquiries returns the actor's inbox (agents and admins, as property
// owners) or outbox (buyers).
func (uc *InquiryUseCase) ListInquiries(ctx context.Context, actorID primitive.ObjectID, actorRole string) ([]*entity.Inquiry, error) {
	var inquiries []*entity.Inquiry
	var err error

	if actorRole == entity.RoleAgent || actorRole == entity.RoleAdmin {
		inquiries, err = uc.inquiryRepo.ListByReceiver(ctx, actorID)
	} else {
		inquiries, err = uc.inquiryRepo.ListBySender(ctx, actorID)
	}
	if err != nil {
		return nil, err
	}

	uc.hydrate(ctx, inquiries)
	return inquiries, nil
}

// CreateInquiry rejects self-inquiries before anything is written.
func (uc *InquiryUseCase) CreateInquiry(ctx context.Context, senderID primitive.ObjectID, input CreateInquiryInput) (*entity.Inquiry, error) {
	property, err := uc.propertyRepo.GetByID(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}

	if property.Owner == senderID {
		return nil, errors.BadRequest("Cannot inquire about your own property", nil)
	}

	inquiry := &entity.Inquiry{
		Property:  property.ID,
		Sender:    senderID,
		Receiver:  property.Owner,
		Message:   input.Message,
		Phone:     input.Phone,
		Status:    entity.InquiryStatusPending,
		VisitDate: input.VisitDate,
	}

	if err := uc.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

// UpdateInquiry lets only the receiver (the property owner) move the
// inquiry through its statuses.
func (uc *InquiryUseCase) UpdateInquiry(ctx context.Context, id, actorID primitive.ObjectID, input UpdateInquiryInput) (*entity.Inquiry, error) {
	inquiry, err := uc.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if inquiry.Receiver != actorID {
		return nil, errors.Unauthorized("Not authorized to update this inquiry", nil)
	}

	if input.Status != "" {
		inquiry.Status = input.Status
	}
	if input.VisitDate != nil {
		inquiry.VisitDate = input.VisitDate
	}

	if err := uc.inquiryRepo.Update(ctx, inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

func (uc *InquiryUseCase) DeleteInquiry(ctx context.Context, id, actorID primitive.ObjectID) error {
	inquiry, err := uc.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if inquiry.Sender != actorID && inquiry.Receiver != actorID {
		return errors.Unauthorized("Not authorized to delete this inquiry", nil)
	}

	return uc.inquiryRepo.Delete(ctx, id)
}

func (uc *InquiryUseCase) hydrate(ctx context.Context, inquiries []*entity.Inquiry) {
	if len(inquiries) == 0 {
		return
	}

	propertyIDs := make([]primitive.ObjectID, 0, len(inquiries))
	userIDs := make([]primitive.ObjectID, 0, 2*len(inquiries))
	seenProperty := make(map[primitive.ObjectID]bool)
	seenUser := make(map[primitive.ObjectID]bool)
	for _, inq := range inquiries {
		if !seenProperty[inq.Property] {
			seenProperty[inq.Property] = true
			propertyIDs = append(propertyIDs, inq.Property)
		}
		for _, id := range []primitive.ObjectID{inq.Sender, inq.Receiver} {
			if !seenUser[id] {
				seenUser[id] = true
				userIDs = append(userIDs, id)
			}
		}
	}

	properties, err := uc.propertyRepo.GetByIDs(ctx, propertyIDs)
	if err != nil {
		logger.Warn("failed to hydrate inquiry properties: %v", err)
		properties = nil
	}
	users, err := uc.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		logger.Warn("failed to hydrate inquiry users: %v", err)
		users = nil
	}

	propertyByID := make(map[primitive.ObjectID]*entity.Property, len(properties))
	for _, p := range properties {
		propertyByID[p.ID] = p
	}
	userByID := make(map[primitive.ObjectID]*entity.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	for _, inq := range inquiries {
		if p, ok := propertyByID[inq.Property]; ok {
			inq.PropertyDetail = &entity.PropertySummary{
				ID:      p.ID,
				Title:   p.Title,
				Price:   p.Price,
				Address: p.Address,
				Images:  p.Images,
			}
		}
		if u, ok := userByID[inq.Sender]; ok {
			inq.SenderDetail = u.Summary()
		}
		if u, ok := userByID[inq.Receiver]; ok {
			inq.ReceiverDetail = u.Summary()
		}
	}
}
