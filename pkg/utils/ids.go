package utils

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/pkg/errors"
)

// ParseObjectID validates the 24-character hex form of a document id.
// resource names the entity for the error message ("property", "review", ...).
func ParseObjectID(resource, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.BadRequest(
			fmt.Sprintf("Invalid %s ID format", resource), err)
	}
	return oid, nil
}
