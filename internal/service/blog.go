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

// CreateBlogPostRequest carries the fields of a new blog post.
type CreateBlogPostRequest struct {
	Image    string   `json:"image"`
	Images   []string `json:"images"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Alt      string   `json:"alt"`
	ReadTime string   `json:"readTime"`
}

// UpdateBlogPostRequest is a partial update: nil fields keep their
// current value.
type UpdateBlogPostRequest struct {
	Image    *string   `json:"image,omitempty"`
	Images   *[]string `json:"images,omitempty"`
	Title    *string   `json:"title,omitempty"`
	Excerpt  *string   `json:"excerpt,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Date     *string   `json:"date,omitempty"`
	Category *string   `json:"category,omitempty"`
	Alt      *string   `json:"alt,omitempty"`
	ReadTime *string   `json:"readTime,omitempty"`
}

// BlogService owns the blog collection.
type BlogService struct {
	posts      *collection.Collection[models.BlogPost]
	categories *catalog.Registry
	logger     *slog.Logger
}

// NewBlogService creates a new blog service.
func NewBlogService(posts *collection.Collection[models.BlogPost], categories *catalog.Registry, logger *slog.Logger) *BlogService {
	return &BlogService{
		posts:      posts,
		categories: categories,
		logger:     logger,
	}
}

// List returns all blog posts in stored order, degrading to an empty
// list when the document is unreadable.
func (s *BlogService) List(ctx context.Context) []models.BlogPost {
	posts, err := s.posts.List(ctx)
	if err != nil {
		s.logger.Warn("blog list degraded to empty", "error", err)
		return []models.BlogPost{}
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	return posts
}

// Get returns one blog post by id.
func (s *BlogService) Get(ctx context.Context, id int) (*models.BlogPost, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create validates the request, assigns the next id and persists the new
// post.
func (s *BlogService) Create(ctx context.Context, req *CreateBlogPostRequest) (*models.BlogPost, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	post, err := s.posts.Create(ctx, models.BlogPost{
		Image:    req.Image,
		Images:   req.Images,
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Date:     req.Date,
		Category: req.Category,
		Alt:      req.Alt,
		ReadTime: req.ReadTime,
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update merges the supplied fields onto the existing post.
func (s *BlogService) Update(ctx context.Context, id int, req *UpdateBlogPostRequest) (*models.BlogPost, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	post, err := s.posts.Update(ctx, id, func(cur models.BlogPost) models.BlogPost {
		if req.Image != nil {
			cur.Image = *req.Image
		}
		if req.Images != nil {
			cur.Images = *req.Images
		}
		if req.Title != nil {
			cur.Title = *req.Title
		}
		if req.Excerpt != nil {
			cur.Excerpt = *req.Excerpt
		}
		if req.Content != nil {
			cur.Content = *req.Content
		}
		if req.Date != nil {
			cur.Date = *req.Date
		}
		if req.Category != nil {
			cur.Category = *req.Category
		}
		if req.Alt != nil {
			cur.Alt = *req.Alt
		}
		if req.ReadTime != nil {
			cur.ReadTime = *req.ReadTime
		}
		return cur
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes one blog post by id.
func (s *BlogService) Delete(ctx context.Context, id int) error {
	return s.posts.Delete(ctx, id)
}

func (s *BlogService) validateCreateRequest(req *CreateBlogPostRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.Image, validation.Required),
		validation.Field(&req.Excerpt, validation.Required),
		validation.Field(&req.Category, validation.Required, validation.By(s.validateCategory)),
	)
}

func (s *BlogService) validateUpdateRequest(req *UpdateBlogPostRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Category, validation.By(s.validateCategory)),
	)
}

func (s *BlogService) validateCategory(value interface{}) error {
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
	if !s.categories.Valid(catalog.KindBlog, category) {
		return fmt.Errorf("unknown category %q", category)
	}
	return nil
}
