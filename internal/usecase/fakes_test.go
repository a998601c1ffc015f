package usecase

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatia/internal/domain/entity"
	"estatia/internal/domain/repository"
	"estatia/pkg/errors"
)

// In-memory repository fakes. They implement just enough of the contracts
// for the business rules under test; query shaping itself is covered by
// the adapter tests. Reads return copies, the way a driver decodes a
// fresh document per query, so callers never alias the stored entity.

func cloneProperty(p *entity.Property) *entity.Property {
	c := *p
	return &c
}

func cloneReview(r *entity.Review) *entity.Review {
	c := *r
	return &c
}

func cloneInquiry(i *entity.Inquiry) *entity.Inquiry {
	c := *i
	return &c
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

type fakePropertyRepo struct {
	properties map[primitive.ObjectID]*entity.Property
	viewIncs   map[primitive.ObjectID]int
	failRating bool
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{
		properties: make(map[primitive.ObjectID]*entity.Property),
		viewIncs:   make(map[primitive.ObjectID]int),
	}
}

func (r *fakePropertyRepo) Create(_ context.Context, p *entity.Property) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.properties[p.ID] = p
	return nil
}

func (r *fakePropertyRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, errors.NotFound("Property", nil)
	}
	return cloneProperty(p), nil
}

func (r *fakePropertyRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]*entity.Property, error) {
	var out []*entity.Property
	for _, id := range ids {
		if p, ok := r.properties[id]; ok {
			out = append(out, cloneProperty(p))
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) List(_ context.Context, _ repository.PropertyQuery) ([]*entity.Property, int64, error) {
	var out []*entity.Property
	for _, p := range r.properties {
		out = append(out, cloneProperty(p))
	}
	return out, int64(len(out)), nil
}

func (r *fakePropertyRepo) Update(_ context.Context, p *entity.Property) error {
	r.properties[p.ID] = p
	return nil
}

func (r *fakePropertyRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.properties, id)
	return nil
}

func (r *fakePropertyRepo) IncrementViews(_ context.Context, id primitive.ObjectID) error {
	r.viewIncs[id]++
	if p, ok := r.properties[id]; ok {
		p.Views++
	}
	return nil
}

func (r *fakePropertyRepo) UpdateRatings(_ context.Context, id primitive.ObjectID, average float64, count int) error {
	if r.failRating {
		return errors.Internal("ratings write failed", nil)
	}
	p, ok := r.properties[id]
	if !ok {
		return errors.NotFound("Property", nil)
	}
	p.Ratings = entity.Ratings{Average: average, Count: count}
	return nil
}

func (r *fakePropertyRepo) ListFeatured(_ context.Context, limit int) ([]*entity.Property, error) {
	var out []*entity.Property
	for _, p := range r.properties {
		if p.Featured && p.Status == entity.PropertyStatusAvailable {
			out = append(out, cloneProperty(p))
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakePropertyRepo) ListWithTours(_ context.Context) ([]*entity.Property, error) {
	var out []*entity.Property
	for _, p := range r.properties {
		if len(p.PanoramicImages) > 0 && p.Status == entity.PropertyStatusAvailable {
			out = append(out, cloneProperty(p))
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) ListSimilar(_ context.Context, ref *entity.Property, limit int) ([]*entity.Property, error) {
	var out []*entity.Property
	for _, p := range r.properties {
		if p.ID != ref.ID && p.PropertyType == ref.PropertyType && p.Address.City == ref.Address.City && len(out) < limit {
			out = append(out, cloneProperty(p))
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) Stats(_ context.Context) (*repository.PropertyStats, error) {
	return &repository.PropertyStats{Total: int64(len(r.properties))}, nil
}

type fakeReviewRepo struct {
	reviews map[primitive.ObjectID]*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[primitive.ObjectID]*entity.Review)}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	for _, existing := range r.reviews {
		if existing.Property == review.Property && existing.User == review.User {
			return errors.Conflict("You have already reviewed this property", nil)
		}
	}
	review.ID = primitive.NewObjectID()
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Review, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	return cloneReview(review), nil
}

func (r *fakeReviewRepo) ListByProperty(_ context.Context, propertyID primitive.ObjectID) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, review := range r.reviews {
		if review.Property == propertyID {
			out = append(out, cloneReview(review))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeReviewRepo) Update(_ context.Context, review *entity.Review) error {
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) AggregateRating(_ context.Context, propertyID primitive.ObjectID) (float64, int, error) {
	var sum, count int
	for _, review := range r.reviews {
		if review.Property == propertyID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type fakeInquiryRepo struct {
	inquiries map[primitive.ObjectID]*entity.Inquiry
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{inquiries: make(map[primitive.ObjectID]*entity.Inquiry)}
}

func (r *fakeInquiryRepo) Create(_ context.Context, inquiry *entity.Inquiry) error {
	inquiry.ID = primitive.NewObjectID()
	r.inquiries[inquiry.ID] = inquiry
	return nil
}

func (r *fakeInquiryRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Inquiry, error) {
	inquiry, ok := r.inquiries[id]
	if !ok {
		return nil, errors.NotFound("Inquiry", nil)
	}
	return cloneInquiry(inquiry), nil
}

func (r *fakeInquiryRepo) ListBySender(_ context.Context, senderID primitive.ObjectID) ([]*entity.Inquiry, error) {
	var out []*entity.Inquiry
	for _, inq := range r.inquiries {
		if inq.Sender == senderID {
			out = append(out, cloneInquiry(inq))
		}
	}
	return out, nil
}

func (r *fakeInquiryRepo) ListByReceiver(_ context.Context, receiverID primitive.ObjectID) ([]*entity.Inquiry, error) {
	var out []*entity.Inquiry
	for _, inq := range r.inquiries {
		if inq.Receiver == receiverID {
			out = append(out, cloneInquiry(inq))
		}
	}
	return out, nil
}

func (r *fakeInquiryRepo) Update(_ context.Context, inquiry *entity.Inquiry) error {
	r.inquiries[inquiry.ID] = inquiry
	return nil
}

func (r *fakeInquiryRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.inquiries, id)
	return nil
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*entity.User)}
}

func (r *fakeUserRepo) add(role string) *entity.User {
	user := &entity.User{
		ID:    primitive.NewObjectID(),
		Name:  "Test " + role,
		Email: role + "@example.com",
		Role:  role,
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return cloneUser(user), nil
}

func (r *fakeUserRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]*entity.User, error) {
	var out []*entity.User
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			out = append(out, cloneUser(user))
		}
	}
	return out, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range r.users {
		out = append(out, cloneUser(user))
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) SetSavedProperties(_ context.Context, userID primitive.ObjectID, propertyIDs []primitive.ObjectID) error {
	user, ok := r.users[userID]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.SavedProperties = propertyIDs
	return nil
}
