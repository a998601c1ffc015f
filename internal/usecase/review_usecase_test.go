package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/domain/entity"
	"estatia/pkg/errors"
)

func newReviewFixture(t *testing.T) (*ReviewUseCase, *fakePropertyRepo, *fakeReviewRepo, *fakeUserRepo, *entity.Property) {
	t.Helper()

	propertyRepo := newFakePropertyRepo()
	reviewRepo := newFakeReviewRepo()
	userRepo := newFakeUserRepo()

	owner := userRepo.add(entity.RoleAgent)
	property := &entity.Property{
		Title:        "City centre apartment",
		PropertyType: "apartment",
		ListingType:  "sale",
		Status:       entity.PropertyStatusAvailable,
		Owner:        owner.ID,
	}
	require.NoError(t, propertyRepo.Create(context.Background(), property))

	return NewReviewUseCase(reviewRepo, propertyRepo, userRepo), propertyRepo, reviewRepo, userRepo, property
}

func TestCreateReviewRecomputesRatings(t *testing.T) {
	uc, propertyRepo, _, userRepo, property := newReviewFixture(t)
	ctx := context.Background()

	for _, rating := range []int{5, 3, 4} {
		reviewer := userRepo.add(entity.RoleBuyer)
		_, err := uc.CreateReview(ctx, property.ID, reviewer.ID, ReviewInput{Rating: rating, Comment: "ok"})
		require.NoError(t, err)
	}

	stored := propertyRepo.properties[property.ID]
	assert.Equal(t, 4.0, stored.Ratings.Average)
	assert.Equal(t, 3, stored.Ratings.Count)

	// A fourth review shifts the mean.
	reviewer := userRepo.add(entity.RoleBuyer)
	_, err := uc.CreateReview(ctx, property.ID, reviewer.ID, ReviewInput{Rating: 2, Comment: "meh"})
	require.NoError(t, err)

	assert.Equal(t, 3.5, stored.Ratings.Average)
	assert.Equal(t, 4, stored.Ratings.Count)
}

func TestCreateReviewDuplicateIsConflict(t *testing.T) {
	uc, _, reviewRepo, userRepo, property := newReviewFixture(t)
	ctx := context.Background()

	reviewer := userRepo.add(entity.RoleBuyer)
	_, err := uc.CreateReview(ctx, property.ID, reviewer.ID, ReviewInput{Rating: 5, Comment: "great"})
	require.NoError(t, err)

	_, err = uc.CreateReview(ctx, property.ID, reviewer.ID, ReviewInput{Rating: 1, Comment: "changed my mind"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
	// No second document was written.
	assert.Len(t, reviewRepo.reviews, 1)
}

func TestCreateReviewUnknownProperty(t *testing.T) {
	uc, _, _, userRepo, _ := newReviewFixture(t)

	reviewer := userRepo.add(entity.RoleBuyer)
	_, err := uc.CreateReview(context.Background(), primitive.NewObjectID(), reviewer.ID, ReviewInput{Rating: 4, Comment: "?"})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestCreateReviewSurvivesRatingsWriteFailure(t *testing.T) {
	uc, propertyRepo, _, userRepo, property := newReviewFixture(t)
	propertyRepo.failRating = true

	reviewer := userRepo.add(entity.RoleBuyer)
	review, err := uc.CreateReview(context.Background(), property.ID, reviewer.ID, ReviewInput{Rating: 5, Comment: "fine"})

	// The review write succeeded; the cache refresh failure is swallowed.
	require.NoError(t, err)
	assert.False(t, review.ID.IsZero())
	assert.Equal(t, entity.Ratings{}, propertyRepo.properties[property.ID].Ratings)
}

func TestUpdateReviewAuthorization(t *testing.T) {
	uc, propertyRepo, _, userRepo, property := newReviewFixture(t)
	ctx := context.Background()

	author := userRepo.add(entity.RoleBuyer)
	review, err := uc.CreateReview(ctx, property.ID, author.ID, ReviewInput{Rating: 2, Comment: "noisy"})
	require.NoError(t, err)

	stranger := userRepo.add(entity.RoleBuyer)
	_, err = uc.UpdateReview(ctx, review.ID, stranger.ID, entity.RoleBuyer, ReviewInput{Rating: 5, Comment: "hijack"})
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	// The author may update, and the cached average follows.
	updated, err := uc.UpdateReview(ctx, review.ID, author.ID, entity.RoleBuyer, ReviewInput{Rating: 4, Comment: "quieter now"})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, 4.0, propertyRepo.properties[property.ID].Ratings.Average)

	// So may an admin.
	admin := userRepo.add(entity.RoleAdmin)
	_, err = uc.UpdateReview(ctx, review.ID, admin.ID, entity.RoleAdmin, ReviewInput{Rating: 3, Comment: "moderated"})
	assert.NoError(t, err)
}

func TestDeleteReviewLeavesRatingsStale(t *testing.T) {
	uc, propertyRepo, reviewRepo, userRepo, property := newReviewFixture(t)
	ctx := context.Background()

	author := userRepo.add(entity.RoleBuyer)
	review, err := uc.CreateReview(ctx, property.ID, author.ID, ReviewInput{Rating: 5, Comment: "top"})
	require.NoError(t, err)
	require.Equal(t, 5.0, propertyRepo.properties[property.ID].Ratings.Average)

	require.NoError(t, uc.DeleteReview(ctx, review.ID, author.ID, entity.RoleBuyer))

	assert.Empty(t, reviewRepo.reviews)
	// Deletion does not refresh the cache; it stays at the old value
	// until the next review write.
	assert.Equal(t, 5.0, propertyRepo.properties[property.ID].Ratings.Average)
	assert.Equal(t, 1, propertyRepo.properties[property.ID].Ratings.Count)
}

func TestDeleteReviewAuthorization(t *testing.T) {
	uc, _, _, userRepo, property := newReviewFixture(t)
	ctx := context.Background()

	author := userRepo.add(entity.RoleBuyer)
	review, err := uc.CreateReview(ctx, property.ID, author.ID, ReviewInput{Rating: 3, Comment: "ok"})
	require.NoError(t, err)

	stranger := userRepo.add(entity.RoleBuyer)
	err = uc.DeleteReview(ctx, review.ID, stranger.ID, entity.RoleBuyer)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}
