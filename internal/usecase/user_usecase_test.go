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

func newUserFixture(t *testing.T) (*UserUseCase, *fakeUserRepo, *fakePropertyRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	propertyRepo := newFakePropertyRepo()
	return NewUserUseCase(userRepo, propertyRepo), userRepo, propertyRepo
}

func TestToggleSavedPropertyIsAnAddRemovePair(t *testing.T) {
	uc, userRepo, _ := newUserFixture(t)
	ctx := context.Background()

	buyer := userRepo.add(entity.RoleBuyer)
	propertyID := primitive.NewObjectID()

	saved, err := uc.ToggleSavedProperty(ctx, buyer.ID, propertyID)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{propertyID}, saved)

	// Second toggle removes it again.
	saved, err = uc.ToggleSavedProperty(ctx, buyer.ID, propertyID)
	require.NoError(t, err)
	assert.Empty(t, saved)

	// Other saved entries survive a toggle.
	otherID := primitive.NewObjectID()
	_, err = uc.ToggleSavedProperty(ctx, buyer.ID, otherID)
	require.NoError(t, err)
	saved, err = uc.ToggleSavedProperty(ctx, buyer.ID, propertyID)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{otherID, propertyID}, saved)
}

func TestSavedPropertiesResolvesDocuments(t *testing.T) {
	uc, userRepo, propertyRepo := newUserFixture(t)
	ctx := context.Background()

	agent := userRepo.add(entity.RoleAgent)
	property := &entity.Property{Title: "Studio flat", Owner: agent.ID}
	require.NoError(t, propertyRepo.Create(ctx, property))

	buyer := userRepo.add(entity.RoleBuyer)
	_, err := uc.ToggleSavedProperty(ctx, buyer.ID, property.ID)
	require.NoError(t, err)

	properties, err := uc.SavedProperties(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "Studio flat", properties[0].Title)

	// An empty set is an empty list, not an error.
	empty := userRepo.add(entity.RoleBuyer)
	properties, err = uc.SavedProperties(ctx, empty.ID)
	require.NoError(t, err)
	assert.Empty(t, properties)
}

func TestUpdateUserSelfOrAdmin(t *testing.T) {
	uc, userRepo, _ := newUserFixture(t)
	ctx := context.Background()

	user := userRepo.add(entity.RoleBuyer)
	stranger := userRepo.add(entity.RoleBuyer)

	_, err := uc.UpdateUser(ctx, user.ID, stranger.ID, entity.RoleBuyer, UpdateUserInput{Name: "Hijacked"})
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	updated, err := uc.UpdateUser(ctx, user.ID, user.ID, entity.RoleBuyer, UpdateUserInput{Name: "Renamed", Phone: "+919999999999"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "+919999999999", updated.Phone)

	admin := userRepo.add(entity.RoleAdmin)
	_, err = uc.UpdateUser(ctx, user.ID, admin.ID, entity.RoleAdmin, UpdateUserInput{Email: "moderated@example.com"})
	assert.NoError(t, err)
}
