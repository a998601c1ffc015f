package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/domain/entity"
	"estatia/internal/usecase"
	"estatia/pkg/errors"
)

type stubInquiryRepo struct {
	inquiries map[primitive.ObjectID]*entity.Inquiry
}

func (s *stubInquiryRepo) Create(_ context.Context, inquiry *entity.Inquiry) error {
	inquiry.ID = primitive.NewObjectID()
	s.inquiries[inquiry.ID] = inquiry
	return nil
}

func (s *stubInquiryRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Inquiry, error) {
	if inquiry, ok := s.inquiries[id]; ok {
		return inquiry, nil
	}
	return nil, errors.NotFound("Inquiry", nil)
}

func (s *stubInquiryRepo) ListBySender(_ context.Context, _ primitive.ObjectID) ([]*entity.Inquiry, error) {
	return nil, nil
}

func (s *stubInquiryRepo) ListByReceiver(_ context.Context, _ primitive.ObjectID) ([]*entity.Inquiry, error) {
	return nil, nil
}

func (s *stubInquiryRepo) Update(_ context.Context, inquiry *entity.Inquiry) error {
	s.inquiries[inquiry.ID] = inquiry
	return nil
}

func (s *stubInquiryRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(s.inquiries, id)
	return nil
}

func newInquiryHandlerFixture(t *testing.T) (*InquiryHandler, *stubInquiryRepo, *entity.Inquiry) {
	t.Helper()

	repo := &stubInquiryRepo{inquiries: make(map[primitive.ObjectID]*entity.Inquiry)}
	inquiry := &entity.Inquiry{
		ID:       primitive.NewObjectID(),
		Property: primitive.NewObjectID(),
		Sender:   primitive.NewObjectID(),
		Receiver: primitive.NewObjectID(),
		Message:  "When can I visit?",
		Status:   entity.InquiryStatusPending,
	}
	repo.inquiries[inquiry.ID] = inquiry

	uc := usecase.NewInquiryUseCase(repo, &stubPropertyRepo{}, &stubUserRepo{})
	return NewInquiryHandler(uc), repo, inquiry
}

func TestUpdateInquiryVisitDateOnly(t *testing.T) {
	h, repo, inquiry := newInquiryHandlerFixture(t)

	c, rec := request(t, http.MethodPut, "/v1/inquiries/"+inquiry.ID.Hex(), `{"visitDate":"2026-09-15T10:00:00Z"}`)
	c.SetParamNames("id")
	c.SetParamValues(inquiry.ID.Hex())
	c.Set("uid", inquiry.Receiver)

	assert.NoError(t, h.UpdateInquiry(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	stored := repo.inquiries[inquiry.ID]
	// Rescheduling leaves the status where it was.
	assert.Equal(t, entity.InquiryStatusPending, stored.Status)
	require.NotNil(t, stored.VisitDate)
	assert.Equal(t, time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC), stored.VisitDate.UTC())
}

func TestUpdateInquiryStatusOnly(t *testing.T) {
	h, repo, inquiry := newInquiryHandlerFixture(t)

	c, rec := request(t, http.MethodPut, "/v1/inquiries/"+inquiry.ID.Hex(), `{"status":"contacted"}`)
	c.SetParamNames("id")
	c.SetParamValues(inquiry.ID.Hex())
	c.Set("uid", inquiry.Receiver)

	assert.NoError(t, h.UpdateInquiry(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.InquiryStatusContacted, repo.inquiries[inquiry.ID].Status)
}

func TestUpdateInquiryRejectsUnknownStatus(t *testing.T) {
	h, repo, inquiry := newInquiryHandlerFixture(t)

	c, rec := request(t, http.MethodPut, "/v1/inquiries/"+inquiry.ID.Hex(), `{"status":"ghosted"}`)
	c.SetParamNames("id")
	c.SetParamValues(inquiry.ID.Hex())
	c.Set("uid", inquiry.Receiver)

	assert.NoError(t, h.UpdateInquiry(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, entity.InquiryStatusPending, repo.inquiries[inquiry.ID].Status)
}
