package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/domain/entity"
	"estatia/internal/domain/repository"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestPropertyFilterDocEmpty(t *testing.T) {
	q := propertyFilterDoc(repository.PropertyFilter{})
	assert.Empty(t, q)
}

func TestPropertyFilterDocTextSearch(t *testing.T) {
	q := propertyFilterDoc(repository.PropertyFilter{Search: "sea view villa"})
	assert.Equal(t, bson.M{"$search": "sea view villa"}, q["$text"])
}

func TestPropertyFilterDocCityRegexEscaped(t *testing.T) {
	q := propertyFilterDoc(repository.PropertyFilter{City: "St. Louis"})

	re, ok := q["address.city"].(primitive.Regex)
	assert.True(t, ok)
	assert.Equal(t, `St\. Louis`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestPropertyFilterDocRanges(t *testing.T) {
	q := propertyFilterDoc(repository.PropertyFilter{
		MinPrice: floatPtr(100000),
		MaxPrice: floatPtr(500000),
		MinArea:  floatPtr(800),
	})

	assert.Equal(t, bson.M{"$gte": float64(100000), "$lte": float64(500000)}, q["price"])
	assert.Equal(t, bson.M{"$gte": float64(800)}, q["area"])
}

func TestPropertyFilterDocRoomsFloor(t *testing.T) {
	q := propertyFilterDoc(repository.PropertyFilter{
		Bedrooms:  floatPtr(3),
		Bathrooms: floatPtr(2),
	})

	assert.Equal(t, bson.M{"$gte": float64(3)}, q["bedrooms"])
	assert.Equal(t, bson.M{"$gte": float64(2)}, q["bathrooms"])
}

func TestPropertyFilterDocAmenitiesAll(t *testing.T) {
	q := propertyFilterDoc(repository.PropertyFilter{Amenities: []string{"pool", "gym"}})
	assert.Equal(t, bson.M{"$all": []string{"pool", "gym"}}, q["amenities"])
}

func TestPropertyFilterDocEnumsAndFeatured(t *testing.T) {
	q := propertyFilterDoc(repository.PropertyFilter{
		PropertyType: "villa",
		ListingType:  "sale",
		Status:       "available",
		Featured:     boolPtr(true),
	})

	assert.Equal(t, "villa", q["propertyType"])
	assert.Equal(t, "sale", q["listingType"])
	assert.Equal(t, "available", q["status"])
	assert.Equal(t, true, q["featured"])
}

func TestWithToursFilterDocRequiresAvailable(t *testing.T) {
	q := withToursFilterDoc()

	assert.Equal(t, bson.M{"$exists": true}, q["panoramicImages.0"])
	assert.Equal(t, entity.PropertyStatusAvailable, q["status"])
}

func TestSimilarFilterDoc(t *testing.T) {
	reference := &entity.Property{
		ID:           primitive.NewObjectID(),
		PropertyType: "apartment",
		Price:        10_000_000,
		Address:      entity.Address{City: "Delhi"},
	}

	q := similarFilterDoc(reference)

	assert.Equal(t, bson.M{"$ne": reference.ID}, q["_id"])
	assert.Equal(t, "apartment", q["propertyType"])
	assert.Equal(t, entity.PropertyStatusAvailable, q["status"])
	assert.Equal(t, bson.M{"$gte": 8_000_000.0, "$lte": 12_000_000.0}, q["price"])
	// Same city means exactly the same city; a pattern match would also
	// pull "New Delhi".
	assert.Equal(t, "Delhi", q["address.city"])
}

func TestSortDoc(t *testing.T) {
	asc := sortDoc(repository.SortSpec{Field: "price"})
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, asc)

	desc := sortDoc(repository.SortSpec{Field: "createdAt", Desc: true})
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, desc)
}
