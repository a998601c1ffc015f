package handler

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/usecase"
	"estatia/pkg/response"
	"estatia/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{reviewUseCase: reviewUseCase}
}

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=500"`
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	propertyID, err := utils.ParseObjectID("property", c.Param("propertyId"))
	if err != nil {
		return response.Error(c, err)
	}

	reviews, err := h.reviewUseCase.ListReviews(c.Request().Context(), propertyID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Collection(c, reviews, len(reviews))
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	propertyID, err := utils.ParseObjectID("property", c.Param("propertyId"))
	if err != nil {
		return response.Error(c, err)
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(primitive.ObjectID)

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), propertyID, userID, usecase.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	id, err := utils.ParseObjectID("review", c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(primitive.ObjectID)
	actorRole := c.Get("role").(string)

	review, err := h.reviewUseCase.UpdateReview(c.Request().Context(), id, actorID, actorRole, usecase.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, err := utils.ParseObjectID("review", c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(primitive.ObjectID)
	actorRole := c.Get("role").(string)

	if err := h.reviewUseCase.DeleteReview(c.Request().Context(), id, actorID, actorRole); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Review deleted"})
}
