package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/domain/entity"
	"estatia/internal/domain/repository"
	"estatia/pkg/errors"
	"estatia/pkg/logger"
)

const (
	featuredLimit = 6
	similarLimit  = 4
)

type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

func NewPropertyUseCase(
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
) *PropertyUseCase {
	return &PropertyUseCase{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

type PropertyImageInput struct {
	URL string `json:"url"`
}

type PanoramicImageInput struct {
	URL      string `json:"url"`
	RoomName string `json:"room_name"`
}

type PropertyInput struct {
	Title           string
	Description     string
	Price           int64
	Address         entity.Address
	Location        *entity.GeoPoint
	PropertyType    string
	ListingType     string
	Bedrooms        int
	Bathrooms       int
	Area            float64
	Amenities       []string
	Images          []PropertyImageInput
	PanoramicImages []PanoramicImageInput
	Featured        bool
	Status          string
}

// CreateProperty stores a new listing. The owner is always the acting
// user; callers cannot list on someone else's behalf.
func (uc *PropertyUseCase) CreateProperty(ctx context.Context, ownerID primitive.ObjectID, input PropertyInput) (*entity.Property, error) {
	if _, err := uc.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, errors.BadRequest("Invalid owner", err)
	}

	status := input.Status
	if status == "" {
		status = entity.PropertyStatusAvailable
	}
	if input.Address.Country == "" {
		input.Address.Country = "India"
	}

	property := &entity.Property{
		Title:           input.Title,
		Description:     input.Description,
		Price:           input.Price,
		Address:         input.Address,
		Location:        input.Location,
		PropertyType:    input.PropertyType,
		ListingType:     input.ListingType,
		Bedrooms:        input.Bedrooms,
		Bathrooms:       input.Bathrooms,
		Area:            input.Area,
		Amenities:       input.Amenities,
		Images:          buildImages(input.Images),
		PanoramicImages: buildPanoramicImages(input.PanoramicImages),
		Featured:        input.Featured,
		Status:          status,
		Owner:           ownerID,
	}

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

func (uc *PropertyUseCase) UpdateProperty(ctx context.Context, id, actorID primitive.ObjectID, actorRole string, input PropertyInput) (*entity.Property, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if property.Owner != actorID && actorRole != entity.RoleAdmin {
		return nil, errors.Unauthorized("Not authorized to update this property", nil)
	}

	property.Title = input.Title
	property.Description = input.Description
	property.Price = input.Price
	property.Address = input.Address
	property.Location = input.Location
	property.PropertyType = input.PropertyType
	property.ListingType = input.ListingType
	property.Bedrooms = input.Bedrooms
	property.Bathrooms = input.Bathrooms
	property.Area = input.Area
	property.Amenities = input.Amenities
	property.Featured = input.Featured
	if input.Status != "" {
		property.Status = input.Status
	}
	if len(input.Images) > 0 {
		property.Images = buildImages(input.Images)
	}
	if len(input.PanoramicImages) > 0 {
		property.PanoramicImages = buildPanoramicImages(input.PanoramicImages)
	}

	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

func (uc *PropertyUseCase) DeleteProperty(ctx context.Context, id, actorID primitive.ObjectID, actorRole string) error {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if property.Owner != actorID && actorRole != entity.RoleAdmin {
		return errors.Unauthorized("Not authorized to delete this property", nil)
	}

	return uc.propertyRepo.Delete(ctx, id)
}

// GetProperty fetches a single listing and counts the read. Every fetch
// increments views, repeats from the same viewer included.
func (uc *PropertyUseCase) GetProperty(ctx context.Context, id primitive.ObjectID) (*entity.Property, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.propertyRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn("failed to increment views for property %s: %v", id.Hex(), err)
	} else {
		property.Views++
	}

	uc.hydrateOwners(ctx, property)
	return property, nil
}

func (uc *PropertyUseCase) ListProperties(ctx context.Context, params map[string]string) ([]*entity.Property, int64, repository.PropertyQuery, error) {
	query := BuildPropertyQuery(params)

	properties, total, err := uc.propertyRepo.List(ctx, query)
	if err != nil {
		return nil, 0, query, err
	}

	uc.hydrateOwners(ctx, properties...)
	return properties, total, query, nil
}

func (uc *PropertyUseCase) FeaturedProperties(ctx context.Context) ([]*entity.Property, error) {
	properties, err := uc.propertyRepo.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}
	uc.hydrateOwners(ctx, properties...)
	return properties, nil
}

func (uc *PropertyUseCase) PropertiesWithTours(ctx context.Context) ([]*entity.Property, error) {
	properties, err := uc.propertyRepo.ListWithTours(ctx)
	if err != nil {
		return nil, err
	}
	uc.hydrateOwners(ctx, properties...)
	return properties, nil
}

func (uc *PropertyUseCase) SimilarProperties(ctx context.Context, id primitive.ObjectID) ([]*entity.Property, error) {
	reference, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	properties, err := uc.propertyRepo.ListSimilar(ctx, reference, similarLimit)
	if err != nil {
		return nil, err
	}
	uc.hydrateOwners(ctx, properties...)
	return properties, nil
}

func (uc *PropertyUseCase) PropertyStats(ctx context.Context) (*repository.PropertyStats, error) {
	return uc.propertyRepo.Stats(ctx)
}

// hydrateOwners attaches owner summaries with a single batched lookup.
// Hydration is best-effort; listings render without owner contact details
// when the lookup fails.
func (uc *PropertyUseCase) hydrateOwners(ctx context.Context, properties ...*entity.Property) {
	ids := make([]primitive.ObjectID, 0, len(properties))
	seen := make(map[primitive.ObjectID]bool, len(properties))
	for _, p := range properties {
		if !seen[p.Owner] {
			seen[p.Owner] = true
			ids = append(ids, p.Owner)
		}
	}
	if len(ids) == 0 {
		return
	}

	owners, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		logger.Warn("failed to hydrate property owners: %v", err)
		return
	}

	byID := make(map[primitive.ObjectID]*entity.User, len(owners))
	for _, owner := range owners {
		byID[owner.ID] = owner
	}
	for _, p := range properties {
		if owner, ok := byID[p.Owner]; ok {
			p.OwnerDetail = owner.Summary()
		}
	}
}

func buildImages(inputs []PropertyImageInput) []entity.PropertyImage {
	images := make([]entity.PropertyImage, len(inputs))
	for i, img := range inputs {
		images[i] = entity.PropertyImage{
			ID:  uuid.NewString(),
			URL: img.URL,
		}
	}
	return images
}

func buildPanoramicImages(inputs []PanoramicImageInput) []entity.PanoramicImage {
	images := make([]entity.PanoramicImage, len(inputs))
	for i, img := range inputs {
		images[i] = entity.PanoramicImage{
			ID:       uuid.NewString(),
			URL:      img.URL,
			RoomName: img.RoomName,
		}
	}
	return images
}
