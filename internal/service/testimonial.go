package service

import (
	"context"
	"fmt"
	"log/slog"

	"atelier/internal/collection"
	"atelier/internal/domain"
	"atelier/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateTestimonialRequest carries the fields of a new testimonial. The
// rating is stored as supplied; the admin form keeps it within 1-5.
type CreateTestimonialRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Role   string `json:"role"`
	Rating int    `json:"rating"`
}

// UpdateTestimonialRequest is a partial update: nil fields keep their
// current value.
type UpdateTestimonialRequest struct {
	Text   *string `json:"text,omitempty"`
	Author *string `json:"author,omitempty"`
	Role   *string `json:"role,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

// TestimonialService owns the testimonials collection.
type TestimonialService struct {
	testimonials *collection.Collection[models.Testimonial]
	logger       *slog.Logger
}

// NewTestimonialService creates a new testimonial service.
func NewTestimonialService(testimonials *collection.Collection[models.Testimonial], logger *slog.Logger) *TestimonialService {
	return &TestimonialService{
		testimonials: testimonials,
		logger:       logger,
	}
}

// List returns all testimonials in stored order, degrading to an empty
// list when the document is unreadable.
func (s *TestimonialService) List(ctx context.Context) []models.Testimonial {
	testimonials, err := s.testimonials.List(ctx)
	if err != nil {
		s.logger.Warn("testimonial list degraded to empty", "error", err)
		return []models.Testimonial{}
	}
	if testimonials == nil {
		testimonials = []models.Testimonial{}
	}
	return testimonials
}

// Get returns one testimonial by id.
func (s *TestimonialService) Get(ctx context.Context, id int) (*models.Testimonial, error) {
	testimonial, err := s.testimonials.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Create validates the request, assigns the next id and persists the new
// testimonial.
func (s *TestimonialService) Create(ctx context.Context, req *CreateTestimonialRequest) (*models.Testimonial, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	testimonial, err := s.testimonials.Create(ctx, models.Testimonial{
		Text:   req.Text,
		Author: req.Author,
		Role:   req.Role,
		Rating: req.Rating,
	})
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Update merges the supplied fields onto the existing testimonial.
func (s *TestimonialService) Update(ctx context.Context, id int, req *UpdateTestimonialRequest) (*models.Testimonial, error) {
	testimonial, err := s.testimonials.Update(ctx, id, func(cur models.Testimonial) models.Testimonial {
		if req.Text != nil {
			cur.Text = *req.Text
		}
		if req.Author != nil {
			cur.Author = *req.Author
		}
		if req.Role != nil {
			cur.Role = *req.Role
		}
		if req.Rating != nil {
			cur.Rating = *req.Rating
		}
		return cur
	})
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Delete removes one testimonial by id.
func (s *TestimonialService) Delete(ctx context.Context, id int) error {
	return s.testimonials.Delete(ctx, id)
}

func (s *TestimonialService) validateCreateRequest(req *CreateTestimonialRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Text, validation.Required),
		validation.Field(&req.Author, validation.Required),
	)
}
