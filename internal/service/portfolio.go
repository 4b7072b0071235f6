package service

import (
	"context"
	"fmt"
	"log/slog"

	"atelier/internal/catalog"
	"atelier/internal/collection"
	"atelier/internal/domain"
	"atelier/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreatePortfolioRequest carries the fields of a new portfolio item. The
// id is assigned by the collection, never by the caller.
type CreatePortfolioRequest struct {
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Alt         string   `json:"alt"`
	Category    string   `json:"category"`
	Year        string   `json:"year"`
	Medium      string   `json:"medium"`
	Dimensions  string   `json:"dimensions"`
}

// UpdatePortfolioRequest is a partial update: nil fields keep their
// current value, set fields overwrite it.
type UpdatePortfolioRequest struct {
	Image       *string   `json:"image,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Alt         *string   `json:"alt,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Year        *string   `json:"year,omitempty"`
	Medium      *string   `json:"medium,omitempty"`
	Dimensions  *string   `json:"dimensions,omitempty"`
}

// PortfolioService owns the portfolio collection.
type PortfolioService struct {
	items      *collection.Collection[models.PortfolioItem]
	categories *catalog.Registry
	logger     *slog.Logger
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(items *collection.Collection[models.PortfolioItem], categories *catalog.Registry, logger *slog.Logger) *PortfolioService {
	return &PortfolioService{
		items:      items,
		categories: categories,
		logger:     logger,
	}
}

// List returns all portfolio items in stored order. An unreadable
// document degrades to an empty list; a broken file must never take down
// the gallery page.
func (s *PortfolioService) List(ctx context.Context) []models.PortfolioItem {
	items, err := s.items.List(ctx)
	if err != nil {
		s.logger.Warn("portfolio list degraded to empty", "error", err)
		return []models.PortfolioItem{}
	}
	if items == nil {
		items = []models.PortfolioItem{}
	}
	return items
}

// Get returns one portfolio item by id.
func (s *PortfolioService) Get(ctx context.Context, id int) (*models.PortfolioItem, error) {
	item, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create validates the request, assigns the next id and persists the new
// item.
func (s *PortfolioService) Create(ctx context.Context, req *CreatePortfolioRequest) (*models.PortfolioItem, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	item, err := s.items.Create(ctx, models.PortfolioItem{
		Image:       req.Image,
		Images:      req.Images,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Alt:         req.Alt,
		Category:    req.Category,
		Year:        req.Year,
		Medium:      req.Medium,
		Dimensions:  req.Dimensions,
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update merges the supplied fields onto the existing item. Fields not
// present in the request keep their prior values.
func (s *PortfolioService) Update(ctx context.Context, id int, req *UpdatePortfolioRequest) (*models.PortfolioItem, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	item, err := s.items.Update(ctx, id, func(cur models.PortfolioItem) models.PortfolioItem {
		if req.Image != nil {
			cur.Image = *req.Image
		}
		if req.Images != nil {
			cur.Images = *req.Images
		}
		if req.Title != nil {
			cur.Title = *req.Title
		}
		if req.Description != nil {
			cur.Description = *req.Description
		}
		if req.Content != nil {
			cur.Content = *req.Content
		}
		if req.Alt != nil {
			cur.Alt = *req.Alt
		}
		if req.Category != nil {
			cur.Category = *req.Category
		}
		if req.Year != nil {
			cur.Year = *req.Year
		}
		if req.Medium != nil {
			cur.Medium = *req.Medium
		}
		if req.Dimensions != nil {
			cur.Dimensions = *req.Dimensions
		}
		return cur
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes one portfolio item by id.
func (s *PortfolioService) Delete(ctx context.Context, id int) error {
	return s.items.Delete(ctx, id)
}

func (s *PortfolioService) validateCreateRequest(req *CreatePortfolioRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.Image, validation.Required),
		validation.Field(&req.Category, validation.Required, validation.By(s.validateCategory)),
	)
}

func (s *PortfolioService) validateUpdateRequest(req *UpdatePortfolioRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Category, validation.By(s.validateCategory)),
	)
}

func (s *PortfolioService) validateCategory(value interface{}) error {
	var category string
	switch v := value.(type) {
	case string:
		category = v
	case *string:
		if v == nil {
			return nil
		}
		category = *v
	default:
		return fmt.Errorf("must be a string")
	}
	if !s.categories.Valid(catalog.KindPortfolio, category) {
		return fmt.Errorf("unknown category %q", category)
	}
	return nil
}
