package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review carries a unique (property, user) constraint: one review per user
// per property, enforced by a compound index.
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Property  primitive.ObjectID `json:"property" bson:"property"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`

	UserDetail *UserSummary `json:"userDetail,omitempty" bson:"-"`
}
