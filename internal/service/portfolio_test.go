package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"atelier/internal/catalog"
	"atelier/internal/collection"
	"atelier/internal/domain"
	"atelier/internal/models"
	"atelier/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPortfolioService(t *testing.T) (*PortfolioService, *storage.Memory) {
	t.Helper()
	registry, err := catalog.NewRegistry()
	if err != nil {
		t.Fatalf("catalog.NewRegistry() error: %v", err)
	}
	store := storage.NewMemory()
	items := collection.New[models.PortfolioItem]("portfolio", store, nil, testLogger())
	return NewPortfolioService(items, registry, testLogger()), store
}

func strPtr(s string) *string { return &s }

func TestPortfolioCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreatePortfolioRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req:  CreatePortfolioRequest{Title: "Portrait Study", Image: "/images/1.jpg", Category: "portraits"},
		},
		{
			name:    "missing title",
			req:     CreatePortfolioRequest{Image: "/images/1.jpg", Category: "portraits"},
			wantErr: true,
		},
		{
			name:    "missing image",
			req:     CreatePortfolioRequest{Title: "Portrait Study", Category: "portraits"},
			wantErr: true,
		},
		{
			name:    "unknown category",
			req:     CreatePortfolioRequest{Title: "Portrait Study", Image: "/images/1.jpg", Category: "sculpture"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newPortfolioService(t)
			_, err := s.Create(context.Background(), &tt.req)

			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("Create() error = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Create() unexpected error: %v", err)
			}
		})
	}
}

func TestPortfolioCreateThenGet(t *testing.T) {
	ctx := context.Background()
	s, _ := newPortfolioService(t)

	created, err := s.Create(ctx, &CreatePortfolioRequest{
		Title:       "Portrait Study",
		Image:       "/images/1.jpg",
		Description: "Acrylic on canvas, 2025",
		Alt:         "Portrait Study",
		Category:    "portraits",
		Year:        "2025",
		Medium:      "Acrylic",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("first id = %d, want 1", created.ID)
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Title != "Portrait Study" || got.Medium != "Acrylic" || got.Year != "2025" {
		t.Errorf("Get() = %+v", got)
	}
}

func TestPortfolioUpdateMergesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	s, _ := newPortfolioService(t)

	created, err := s.Create(ctx, &CreatePortfolioRequest{
		Title:       "Portrait Study",
		Image:       "/images/1.jpg",
		Description: "Acrylic on canvas, 2025",
		Category:    "portraits",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	updated, err := s.Update(ctx, created.ID, &UpdatePortfolioRequest{
		Title: strPtr("Portrait Study II"),
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if updated.Title != "Portrait Study II" {
		t.Errorf("title = %q, want overwritten value", updated.Title)
	}
	if updated.Image != "/images/1.jpg" || updated.Description != "Acrylic on canvas, 2025" || updated.Category != "portraits" {
		t.Errorf("omitted fields changed: %+v", updated)
	}
	if updated.ID != created.ID {
		t.Errorf("id changed on update: %d", updated.ID)
	}
}

func TestPortfolioUpdateRejectsUnknownCategory(t *testing.T) {
	ctx := context.Background()
	s, _ := newPortfolioService(t)

	created, err := s.Create(ctx, &CreatePortfolioRequest{Title: "x", Image: "/a.jpg", Category: "portraits"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	_, err = s.Update(ctx, created.ID, &UpdatePortfolioRequest{Category: strPtr("sculpture")})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Update() error = %v, want ErrValidation", err)
	}
}

func TestPortfolioUpdateMissingID(t *testing.T) {
	s, _ := newPortfolioService(t)

	_, err := s.Update(context.Background(), 42, &UpdatePortfolioRequest{Title: strPtr("x")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update(42) error = %v, want ErrNotFound", err)
	}
}

func TestPortfolioListDegradesToEmpty(t *testing.T) {
	s, store := newPortfolioService(t)
	store.FailLoad = errors.New("disk gone")

	items := s.List(context.Background())
	if items == nil {
		t.Fatalf("List() = nil, want empty slice")
	}
	if len(items) != 0 {
		t.Errorf("List() = %+v, want empty", items)
	}
}
