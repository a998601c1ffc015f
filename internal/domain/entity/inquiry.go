package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	InquiryStatusPending   = "pending"
	InquiryStatusContacted = "contacted"
	InquiryStatusClosed    = "closed"
)

var InquiryStatuses = []string{
	InquiryStatusPending,
	InquiryStatusContacted,
	InquiryStatusClosed,
}

// Inquiry records a buyer reaching out about a listing. Receiver is the
// property owner at creation time, denormalized so the inbox survives a
// later ownership change.
type Inquiry struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Property  primitive.ObjectID `json:"property" bson:"property"`
	Sender    primitive.ObjectID `json:"sender" bson:"sender"`
	Receiver  primitive.ObjectID `json:"receiver" bson:"receiver"`
	Message   string             `json:"message" bson:"message"`
	Phone     string             `json:"phone" bson:"phone"`
	Status    string             `json:"status" bson:"status"`
	VisitDate *time.Time         `json:"visitDate,omitempty" bson:"visitDate,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`

	PropertyDetail *PropertySummary `json:"propertyDetail,omitempty" bson:"-"`
	SenderDetail   *UserSummary     `json:"senderDetail,omitempty" bson:"-"`
	ReceiverDetail *UserSummary     `json:"receiverDetail,omitempty" bson:"-"`
}

// PropertySummary is the slim listing view attached to hydrated inquiries.
type PropertySummary struct {
	ID      primitive.ObjectID `json:"id"`
	Title   string             `json:"title"`
	Price   int64              `json:"price"`
	Address Address            `json:"address"`
	Images  []PropertyImage    `json:"images"`
}

func ValidInquiryStatus(s string) bool {
	return contains(InquiryStatuses, s)
}
