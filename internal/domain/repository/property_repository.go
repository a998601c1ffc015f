package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/domain/entity"
)

// PropertyFilter is the validated, strongly-typed form of the listing
// filter parameters. A nil pointer field means "no filter on this field";
// invalid optional input never reaches this struct.
type PropertyFilter struct {
	Search       string
	City         string
	State        string
	PropertyType string
	ListingType  string
	Status       string
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *float64
	Bathrooms    *float64
	MinArea      *float64
	MaxArea      *float64
	Featured     *bool
	Amenities    []string
}

// SortSpec is a single sort key with direction.
type SortSpec struct {
	Field string
	Desc  bool
}

// PropertyQuery pairs a filter with its sort key and page window.
type PropertyQuery struct {
	Filter PropertyFilter
	Sort   SortSpec
	Page   int
	Limit  int
}

// Skip is the number of documents preceding the requested page.
func (q PropertyQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}

// TypeStats is one $group bucket of the admin statistics aggregation.
type TypeStats struct {
	PropertyType string  `json:"propertyType" bson:"_id"`
	Count        int64   `json:"count" bson:"count"`
	AvgPrice     float64 `json:"avgPrice" bson:"avgPrice"`
	MinPrice     int64   `json:"minPrice" bson:"minPrice"`
	MaxPrice     int64   `json:"maxPrice" bson:"maxPrice"`
}

type PropertyStats struct {
	ByType    []TypeStats `json:"byType"`
	Total     int64       `json:"total"`
	Available int64       `json:"available"`
	Sold      int64       `json:"sold"`
}

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Property, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Property, error)
	List(ctx context.Context, query PropertyQuery) ([]*entity.Property, int64, error)
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
	UpdateRatings(ctx context.Context, id primitive.ObjectID, average float64, count int) error
	ListFeatured(ctx context.Context, limit int) ([]*entity.Property, error)
	ListWithTours(ctx context.Context) ([]*entity.Property, error)
	ListSimilar(ctx context.Context, reference *entity.Property, limit int) ([]*entity.Property, error)
	Stats(ctx context.Context) (*PropertyStats, error)
}
