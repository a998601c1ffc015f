package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/usecase"
	"estatia/pkg/errors"
	"estatia/pkg/response"
	"estatia/pkg/utils"
)

type InquiryHandler struct {
	inquiryUseCase *usecase.InquiryUseCase
}

func NewInquiryHandler(inquiryUseCase *usecase.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{inquiryUseCase: inquiryUseCase}
}

type createInquiryRequest struct {
	PropertyID string `json:"property" validate:"required"`
	Message    string `json:"message" validate:"required,max=1000"`
	Phone      string `json:"phone"`
	VisitDate  string `json:"visitDate"`
}

// Both fields are optional so the receiver can reschedule a visit
// without touching the status, or vice versa.
type updateInquiryRequest struct {
	Status    string `json:"status" validate:"omitempty,oneof=pending contacted closed"`
	VisitDate string `json:"visitDate"`
}

func parseVisitDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, errors.BadRequest("visitDate must be an RFC 3339 timestamp", err)
	}
	return &t, nil
}

func (h *InquiryHandler) ListInquiries(c echo.Context) error {
	actorID := c.Get("uid").(primitive.ObjectID)
	actorRole := c.Get("role").(string)

	inquiries, err := h.inquiryUseCase.ListInquiries(c.Request().Context(), actorID, actorRole)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Collection(c, inquiries, len(inquiries))
}

func (h *InquiryHandler) CreateInquiry(c echo.Context) error {
	var req createInquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	propertyID, err := utils.ParseObjectID("property", req.PropertyID)
	if err != nil {
		return response.Error(c, err)
	}
	visitDate, err := parseVisitDate(req.VisitDate)
	if err != nil {
		return response.Error(c, err)
	}

	senderID := c.Get("uid").(primitive.ObjectID)

	inquiry, err := h.inquiryUseCase.CreateInquiry(c.Request().Context(), senderID, usecase.CreateInquiryInput{
		PropertyID: propertyID,
		Message:    req.Message,
		Phone:      req.Phone,
		VisitDate:  visitDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, inquiry)
}

func (h *InquiryHandler) UpdateInquiry(c echo.Context) error {
	id, err := utils.ParseObjectID("inquiry", c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	var req updateInquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	visitDate, err := parseVisitDate(req.VisitDate)
	if err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(primitive.ObjectID)

	inquiry, err := h.inquiryUseCase.UpdateInquiry(c.Request().Context(), id, actorID, usecase.UpdateInquiryInput{
		Status:    req.Status,
		VisitDate: visitDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inquiry)
}

func (h *InquiryHandler) DeleteInquiry(c echo.Context) error {
	id, err := utils.ParseObjectID("inquiry", c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(primitive.ObjectID)

	if err := h.inquiryUseCase.DeleteInquiry(c.Request().Context(), id, actorID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Inquiry deleted"})
}
