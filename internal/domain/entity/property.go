package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PropertyStatusAvailable = "available"
	PropertyStatusSold      = "sold"
	PropertyStatusRented    = "rented"
	PropertyStatusPending   = "pending"
)

var (
	PropertyTypes    = []string{"apartment", "villa", "house", "land", "commercial"}
	ListingTypes     = []string{"sale", "rent"}
	PropertyStatuses = []string{
		PropertyStatusAvailable,
		PropertyStatusSold,
		PropertyStatusRented,
		PropertyStatusPending,
	}
)

type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
	Country string `json:"country" bson:"country"`
}

// GeoPoint is a GeoJSON point, longitude first.
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

type PropertyImage struct {
	ID  string `json:"id" bson:"id"`
	URL string `json:"url" bson:"url"`
}

type PanoramicImage struct {
	ID       string `json:"id" bson:"id"`
	URL      string `json:"url" bson:"url"`
	RoomName string `json:"roomName" bson:"roomName"`
}

// Ratings is denormalized from the reviews collection; it is recomputed
// from scratch after every review create/update, never maintained
// incrementally.
type Ratings struct {
	Average float64 `json:"average" bson:"average"`
	Count   int     `json:"count" bson:"count"`
}

type Property struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	Price           int64              `json:"price" bson:"price"`
	Address         Address            `json:"address" bson:"address"`
	Location        *GeoPoint          `json:"location,omitempty" bson:"location,omitempty"`
	PropertyType    string             `json:"propertyType" bson:"propertyType"`
	ListingType     string             `json:"listingType" bson:"listingType"`
	Bedrooms        int                `json:"bedrooms" bson:"bedrooms"`
	Bathrooms       int                `json:"bathrooms" bson:"bathrooms"`
	Area            float64            `json:"area" bson:"area"`
	Amenities       []string           `json:"amenities" bson:"amenities"`
	Images          []PropertyImage    `json:"images" bson:"images"`
	PanoramicImages []PanoramicImage   `json:"panoramicImages" bson:"panoramicImages"`
	Featured        bool               `json:"featured" bson:"featured"`
	Status          string             `json:"status" bson:"status"`
	Views           int64              `json:"views" bson:"views"`
	Owner           primitive.ObjectID `json:"owner" bson:"owner"`
	Ratings         Ratings            `json:"ratings" bson:"ratings"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`

	// Hydrated from the users collection on reads, never stored.
	OwnerDetail *UserSummary `json:"ownerDetail,omitempty" bson:"-"`
}

func ValidPropertyType(t string) bool {
	return contains(PropertyTypes, t)
}

func ValidListingType(t string) bool {
	return contains(ListingTypes, t)
}

func ValidPropertyStatus(s string) bool {
	return contains(PropertyStatuses, s)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
