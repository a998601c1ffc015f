package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/domain/entity"
	"estatia/internal/domain/repository"
)

// propertyFilterDoc translates the validated filter into a Mongo query
// document. Kept as a pure function so the translation is testable
// without a running database.
func propertyFilterDoc(f repository.PropertyFilter) bson.M {
	q := bson.M{}

	if f.Search != "" {
		q["$text"] = bson.M{"$search": f.Search}
	}
	if f.City != "" {
		q["address.city"] = containsInsensitive(f.City)
	}
	if f.State != "" {
		q["address.state"] = containsInsensitive(f.State)
	}
	if f.PropertyType != "" {
		q["propertyType"] = f.PropertyType
	}
	if f.ListingType != "" {
		q["listingType"] = f.ListingType
	}
	if f.Status != "" {
		q["status"] = f.Status
	}

	if r := rangeDoc(f.MinPrice, f.MaxPrice); r != nil {
		q["price"] = r
	}
	if r := rangeDoc(f.MinArea, f.MaxArea); r != nil {
		q["area"] = r
	}
	if f.Bedrooms != nil {
		q["bedrooms"] = bson.M{"$gte": *f.Bedrooms}
	}
	if f.Bathrooms != nil {
		q["bathrooms"] = bson.M{"$gte": *f.Bathrooms}
	}
	if f.Featured != nil {
		q["featured"] = *f.Featured
	}
	if len(f.Amenities) > 0 {
		q["amenities"] = bson.M{"$all": f.Amenities}
	}

	return q
}

// rangeDoc builds an inclusive $gte/$lte range. Both bounds are optional
// and independent; an inverted range is passed through as-is.
func rangeDoc(min, max *float64) bson.M {
	if min == nil && max == nil {
		return nil
	}
	r := bson.M{}
	if min != nil {
		r["$gte"] = *min
	}
	if max != nil {
		r["$lte"] = *max
	}
	return r
}

// withToursFilterDoc matches available listings that carry at least one
// panoramic image.
func withToursFilterDoc() bson.M {
	return bson.M{
		"panoramicImages.0": bson.M{"$exists": true},
		"status":            entity.PropertyStatusAvailable,
	}
}

// similarFilterDoc matches available listings of the same type in the same
// city within ±20% of the reference price, excluding the reference itself.
// City is an exact match here; a substring would pull "New Delhi" into
// "Delhi" results.
func similarFilterDoc(reference *entity.Property) bson.M {
	price := float64(reference.Price)
	return bson.M{
		"_id":          bson.M{"$ne": reference.ID},
		"propertyType": reference.PropertyType,
		"address.city": reference.Address.City,
		"status":       entity.PropertyStatusAvailable,
		"price": bson.M{
			"$gte": price * 0.8,
			"$lte": price * 1.2,
		},
	}
}

func containsInsensitive(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}

func sortDoc(s repository.SortSpec) bson.D {
	direction := 1
	if s.Desc {
		direction = -1
	}
	return bson.D{{Key: s.Field, Value: direction}}
}
