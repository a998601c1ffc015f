package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleBuyer = "buyer"
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

// User holds profile data only. Credentials and session issuance live in
// the external auth service; this module just trusts its tokens.
type User struct {
	ID              primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name            string               `json:"name" bson:"name"`
	Email           string               `json:"email" bson:"email"`
	Role            string               `json:"role" bson:"role"`
	Phone           string               `json:"phone,omitempty" bson:"phone,omitempty"`
	Avatar          string               `json:"avatar,omitempty" bson:"avatar,omitempty"`
	SavedProperties []primitive.ObjectID `json:"savedProperties" bson:"savedProperties"`
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// UserSummary is the public slice of a user attached to hydrated
// properties, reviews, and inquiries.
type UserSummary struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	Email  string             `json:"email,omitempty"`
	Phone  string             `json:"phone,omitempty"`
	Avatar string             `json:"avatar,omitempty"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Avatar: u.Avatar,
	}
}
