package handler

import (
	"github.com/labstack/echo/v4"

	"estatia/internal/domain/repository"
	"estatia/internal/infrastructure/token"
	"estatia/pkg/response"
	"estatia/pkg/utils"
)

// DevTokenHandler mints tokens for local development. Its routes are
// only registered in the development environment.
type DevTokenHandler struct {
	tokens   *token.Manager
	userRepo repository.UserRepository
}

var devTokenHandler *DevTokenHandler

func SetupDevTokenHandler(tokens *token.Manager, userRepo repository.UserRepository) {
	devTokenHandler = &DevTokenHandler{tokens: tokens, userRepo: userRepo}
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

type devTokenRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func (h *DevTokenHandler) GenerateToken(c echo.Context) error {
	var req devTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID, err := utils.ParseObjectID("user", req.UserID)
	if err != nil {
		return response.Error(c, err)
	}

	user, err := h.userRepo.GetByID(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	signed, err := h.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"token": signed,
		"user":  user.Summary(),
	})
}
