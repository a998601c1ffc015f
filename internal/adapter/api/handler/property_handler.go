package handler

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/domain/entity"
	"estatia/internal/usecase"
	"estatia/pkg/response"
	"estatia/pkg/utils"
)

type PropertyHandler struct {
	propertyUseCase *usecase.PropertyUseCase
}

func NewPropertyHandler(propertyUseCase *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{propertyUseCase: propertyUseCase}
}

type addressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type locationRequest struct {
	Type        string    `json:"type" validate:"required,oneof=Point"`
	Coordinates []float64 `json:"coordinates" validate:"required,len=2"`
}

type propertyImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type panoramicImageRequest struct {
	URL      string `json:"url" validate:"required,url"`
	RoomName string `json:"roomName"`
}

type propertyRequest struct {
	Title           string                  `json:"title" validate:"required,max=100"`
	Description     string                  `json:"description" validate:"required,max=2000"`
	Price           int64                   `json:"price" validate:"required,gt=0"`
	Address         addressRequest          `json:"address" validate:"required"`
	Location        *locationRequest        `json:"location" validate:"omitempty"`
	PropertyType    string                  `json:"propertyType" validate:"required,oneof=apartment villa house land commercial"`
	ListingType     string                  `json:"listingType" validate:"required,oneof=sale rent"`
	Bedrooms        int                     `json:"bedrooms" validate:"min=0"`
	Bathrooms       int                     `json:"bathrooms" validate:"min=0"`
	Area            float64                 `json:"area" validate:"required,gt=0"`
	Amenities       []string                `json:"amenities"`
	Images          []propertyImageRequest  `json:"images" validate:"dive"`
	PanoramicImages []panoramicImageRequest `json:"panoramicImages" validate:"dive"`
	Featured        bool                    `json:"featured"`
	Status          string                  `json:"status" validate:"omitempty,oneof=available sold rented pending"`
}

func (r propertyRequest) toInput() usecase.PropertyInput {
	input := usecase.PropertyInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Address: entity.Address{
			Street:  r.Address.Street,
			City:    r.Address.City,
			State:   r.Address.State,
			ZipCode: r.Address.ZipCode,
			Country: r.Address.Country,
		},
		PropertyType: r.PropertyType,
		ListingType:  r.ListingType,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		Area:         r.Area,
		Amenities:    r.Amenities,
		Featured:     r.Featured,
		Status:       r.Status,
	}
	if r.Location != nil {
		input.Location = &entity.GeoPoint{
			Type:        r.Location.Type,
			Coordinates: r.Location.Coordinates,
		}
	}
	for _, img := range r.Images {
		input.Images = append(input.Images, usecase.PropertyImageInput{URL: img.URL})
	}
	for _, img := range r.PanoramicImages {
		input.PanoramicImages = append(input.PanoramicImages, usecase.PanoramicImageInput{
			URL:      img.URL,
			RoomName: img.RoomName,
		})
	}
	return input
}

func (h *PropertyHandler) ListProperties(c echo.Context) error {
	params := map[string]string{}
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	properties, total, query, err := h.propertyUseCase.ListProperties(c.Request().Context(), params)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, properties, len(properties), total, query.Page, query.Limit)
}

func (h *PropertyHandler) GetProperty(c echo.Context) error {
	id, err := utils.ParseObjectID("property", c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.GetProperty(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(primitive.ObjectID)

	property, err := h.propertyUseCase.CreateProperty(c.Request().Context(), ownerID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, property)
}

func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	id, err := utils.ParseObjectID("property", c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(primitive.ObjectID)
	actorRole := c.Get("role").(string)

	property, err := h.propertyUseCase.UpdateProperty(c.Request().Context(), id, actorID, actorRole, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	id, err := utils.ParseObjectID("property", c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(primitive.ObjectID)
	actorRole := c.Get("role").(string)

	if err := h.propertyUseCase.DeleteProperty(c.Request().Context(), id, actorID, actorRole); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Property deleted"})
}

func (h *PropertyHandler) FeaturedProperties(c echo.Context) error {
	properties, err := h.propertyUseCase.FeaturedProperties(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Collection(c, properties, len(properties))
}

func (h *PropertyHandler) PropertiesWithTours(c echo.Context) error {
	properties, err := h.propertyUseCase.PropertiesWithTours(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Collection(c, properties, len(properties))
}

func (h *PropertyHandler) SimilarProperties(c echo.Context) error {
	id, err := utils.ParseObjectID("property", c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	properties, err := h.propertyUseCase.SimilarProperties(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Collection(c, properties, len(properties))
}

func (h *PropertyHandler) PropertyStats(c echo.Context) error {
	stats, err := h.propertyUseCase.PropertyStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
