package handler

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/usecase"
	"estatia/pkg/response"
	"estatia/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

type updateUserRequest struct {
	Name   string `json:"name" validate:"omitempty,max=100"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar" validate:"omitempty,url"`
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUseCase.ListUsers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Collection(c, users, len(users))
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := utils.ParseObjectID("user", c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := utils.ParseObjectID("user", c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(primitive.ObjectID)
	actorRole := c.Get("role").(string)

	user, err := h.userUseCase.UpdateUser(c.Request().Context(), id, actorID, actorRole, usecase.UpdateUserInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Avatar: req.Avatar,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := utils.ParseObjectID("user", c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.DeleteUser(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "User deleted"})
}

func (h *UserHandler) ToggleSavedProperty(c echo.Context) error {
	propertyID, err := utils.ParseObjectID("property", c.Param("propertyId"))
	if err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(primitive.ObjectID)

	saved, err := h.userUseCase.ToggleSavedProperty(c.Request().Context(), userID, propertyID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{"savedProperties": saved})
}

func (h *UserHandler) SavedProperties(c echo.Context) error {
	userID := c.Get("uid").(primitive.ObjectID)

	properties, err := h.userUseCase.SavedProperties(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Collection(c, properties, len(properties))
}
