package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/domain/entity"
	"estatia/internal/domain/repository"
	"estatia/pkg/errors"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	propertyRepo repository.PropertyRepository,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
	}
}

type UpdateUserInput struct {
	Name   string
	Email  string
	Phone  string
	Avatar string
}

func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx)
}

func (uc *UserUseCase) GetUser(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

func (uc *UserUseCase) UpdateUser(ctx context.Context, id, actorID primitive.ObjectID, actorRole string, input UpdateUserInput) (*entity.User, error) {
	if id != actorID && actorRole != entity.RoleAdmin {
		return nil, errors.Unauthorized("Not authorized to update this user", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	return uc.userRepo.Delete(ctx, id)
}

// ToggleSavedProperty adds the property to the acting user's saved set
// when absent and removes it when present. Returns the resulting set.
func (uc *UserUseCase) ToggleSavedProperty(ctx context.Context, userID, propertyID primitive.ObjectID) ([]primitive.ObjectID, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	saved := make([]primitive.ObjectID, 0, len(user.SavedProperties)+1)
	found := false
	for _, id := range user.SavedProperties {
		if id == propertyID {
			found = true
			continue
		}
		saved = append(saved, id)
	}
	if !found {
		saved = append(saved, propertyID)
	}

	if err := uc.userRepo.SetSavedProperties(ctx, userID, saved); err != nil {
		return nil, err
	}

	return saved, nil
}

func (uc *UserUseCase) SavedProperties(ctx context.Context, userID primitive.ObjectID) ([]*entity.Property, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(user.SavedProperties) == 0 {
		return []*entity.Property{}, nil
	}

	return uc.propertyRepo.GetByIDs(ctx, user.SavedProperties)
}
