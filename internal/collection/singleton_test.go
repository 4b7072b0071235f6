package collection

import (
	"context"
	"errors"
	"testing"

	"atelier/internal/domain"
	"atelier/internal/models"
	"atelier/internal/storage"
)

func defaultSettings() models.SiteSettings {
	return models.SiteSettings{
		SiteName: "Chughtai Arts",
		Email:    "info@example.com",
		SocialLinks: models.SocialLinks{
			Instagram: "https://instagram.com/x",
			Twitter:   "https://twitter.com/x",
		},
	}
}

func newTestSingleton() (*Singleton[models.SiteSettings], *storage.Memory) {
	store := storage.NewMemory()
	return NewSingleton("settings", store, defaultSettings(), testLogger()), store
}

func TestSingletonGetSeedsMissingDocument(t *testing.T) {
	ctx := context.Background()
	s, store := newTestSingleton()

	got := s.Get(ctx)
	if got != defaultSettings() {
		t.Errorf("Get() = %+v, want seed value", got)
	}
	if store.Bytes() == nil {
		t.Errorf("seed value was not persisted")
	}
}

func TestSingletonGetDegradesOnReadFailure(t *testing.T) {
	ctx := context.Background()
	s, store := newTestSingleton()
	store.FailLoad = errors.New("corrupt")

	// Never nil, never an error: a broken settings file falls back to
	// the defaults.
	if got := s.Get(ctx); got != defaultSettings() {
		t.Errorf("Get() = %+v, want seed value", got)
	}
}

func TestSingletonUpdatePersistsMergedValue(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSingleton()

	merged, err := s.Update(ctx, func(cur models.SiteSettings) models.SiteSettings {
		cur.Phone = "+92 300 000 0000"
		return cur
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if merged.Phone != "+92 300 000 0000" || merged.SiteName != "Chughtai Arts" {
		t.Errorf("Update() = %+v", merged)
	}

	if got := s.Get(ctx); got != merged {
		t.Errorf("Get() after update = %+v, want %+v", got, merged)
	}
}

func TestSingletonUpdateSurfacesWriteFailure(t *testing.T) {
	ctx := context.Background()
	s, store := newTestSingleton()
	store.FailSave = errors.New("disk full")

	_, err := s.Update(ctx, func(cur models.SiteSettings) models.SiteSettings { return cur })
	if !errors.Is(err, domain.ErrStorage) {
		t.Errorf("Update() error = %v, want ErrStorage", err)
	}
}
