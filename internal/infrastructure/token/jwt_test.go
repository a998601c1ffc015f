package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/pkg/errors"
)

func TestGenerateAndVerify(t *testing.T) {
	mgr := NewManager("test-secret", 24)
	uid := primitive.NewObjectID()

	signed, err := mgr.Generate(uid, "agent@example.com", "agent")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := mgr.Verify(signed)
	assert.NoError(t, err)
	assert.Equal(t, uid, claims.UserID)
	assert.Equal(t, "agent@example.com", claims.Email)
	assert.Equal(t, "agent", claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", 24).Generate(primitive.NewObjectID(), "a@b.c", "buyer")
	assert.NoError(t, err)

	_, err = NewManager("secret-b", 24).Verify(signed)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestVerifyRejectsExpired(t *testing.T) {
	mgr := NewManager("test-secret", -1)
	signed, err := mgr.Generate(primitive.NewObjectID(), "a@b.c", "buyer")
	assert.NoError(t, err)

	_, err = mgr.Verify(signed)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewManager("test-secret", 24).Verify("not-a-token")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}
