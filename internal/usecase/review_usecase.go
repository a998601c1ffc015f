package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/domain/entity"
	"estatia/internal/domain/repository"
	"estatia/pkg/errors"
	"estatia/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo   repository.ReviewRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:   reviewRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

type ReviewInput struct {
	Rating  int
	Comment string
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context, propertyID primitive.ObjectID) ([]*entity.Review, error) {
	reviews, err := uc.reviewRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	uc.hydrateReviewers(ctx, reviews)
	return reviews, nil
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, propertyID, userID primitive.ObjectID, input ReviewInput) (*entity.Review, error) {
	if _, err := uc.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		Property: propertyID,
		User:     userID,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}

	// The unique (property, user) index turns a second attempt into a
	// conflict error from the repository; no duplicate document is written.
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	uc.refreshPropertyRatings(ctx, propertyID)
	return review, nil
}

func (uc *ReviewUseCase) UpdateReview(ctx context.Context, id, actorID primitive.ObjectID, actorRole string, input ReviewInput) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if review.User != actorID && actorRole != entity.RoleAdmin {
		return nil, errors.Unauthorized("Not authorized to update this review", nil)
	}

	review.Rating = input.Rating
	review.Comment = input.Comment

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	uc.refreshPropertyRatings(ctx, review.Property)
	return review, nil
}

func (uc *ReviewUseCase) DeleteReview(ctx context.Context, id, actorID primitive.ObjectID, actorRole string) error {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if review.User != actorID && actorRole != entity.RoleAdmin {
		return errors.Unauthorized("Not authorized to delete this review", nil)
	}

	// Deletion deliberately does not refresh the property's cached
	// ratings; they stay stale until the next review write.
	return uc.reviewRepo.Delete(ctx, id)
}

// refreshPropertyRatings recomputes the denormalized rating cache from the
// reviews collection. Best-effort: the review write already succeeded, so
// a failure here is logged and the cache self-heals on the next write.
func (uc *ReviewUseCase) refreshPropertyRatings(ctx context.Context, propertyID primitive.ObjectID) {
	average, count, err := uc.reviewRepo.AggregateRating(ctx, propertyID)
	if err != nil {
		logger.Error("failed to aggregate ratings for property %s: %v", propertyID.Hex(), err)
		return
	}

	if err := uc.propertyRepo.UpdateRatings(ctx, propertyID, average, count); err != nil {
		logger.Error("failed to update ratings for property %s: %v", propertyID.Hex(), err)
	}
}

func (uc *ReviewUseCase) hydrateReviewers(ctx context.Context, reviews []*entity.Review) {
	ids := make([]primitive.ObjectID, 0, len(reviews))
	seen := make(map[primitive.ObjectID]bool, len(reviews))
	for _, r := range reviews {
		if !seen[r.User] {
			seen[r.User] = true
			ids = append(ids, r.User)
		}
	}
	if len(ids) == 0 {
		return
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		logger.Warn("failed to hydrate reviewers: %v", err)
		return
	}

	byID := make(map[primitive.ObjectID]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for _, r := range reviews {
		if u, ok := byID[r.User]; ok {
			// Reviews expose only the reviewer's public face.
			r.UserDetail = &entity.UserSummary{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
		}
	}
}
