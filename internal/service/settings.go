package service

import (
	"context"
	"log/slog"

	"atelier/internal/collection"
	"atelier/internal/models"
)

// UpdateSettingsRequest is a partial update of the site settings. Nil
// fields keep their current value; the socialLinks group merges one
// level deep, so updating one link never erases its siblings.
type UpdateSettingsRequest struct {
	SiteName        *string            `json:"siteName,omitempty"`
	SiteDescription *string            `json:"siteDescription,omitempty"`
	Email           *string            `json:"email,omitempty"`
	Phone           *string            `json:"phone,omitempty"`
	Address         *string            `json:"address,omitempty"`
	SocialLinks     *SocialLinksUpdate `json:"socialLinks,omitempty"`
}

// SocialLinksUpdate is the nested partial update for the social links
// group.
type SocialLinksUpdate struct {
	Instagram *string `json:"instagram,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
}

// SettingsService owns the singleton site settings record.
type SettingsService struct {
	settings *collection.Singleton[models.SiteSettings]
	logger   *slog.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settings *collection.Singleton[models.SiteSettings], logger *slog.Logger) *SettingsService {
	return &SettingsService{
		settings: settings,
		logger:   logger,
	}
}

// Get returns the current settings. Never nil: an absent or unreadable
// document yields the default settings.
func (s *SettingsService) Get(ctx context.Context) models.SiteSettings {
	return s.settings.Get(ctx)
}

// Update merges the supplied fields onto the current settings, persists
// and returns the merged record.
func (s *SettingsService) Update(ctx context.Context, req *UpdateSettingsRequest) (*models.SiteSettings, error) {
	merged, err := s.settings.Update(ctx, func(cur models.SiteSettings) models.SiteSettings {
		if req.SiteName != nil {
			cur.SiteName = *req.SiteName
		}
		if req.SiteDescription != nil {
			cur.SiteDescription = *req.SiteDescription
		}
		if req.Email != nil {
			cur.Email = *req.Email
		}
		if req.Phone != nil {
			cur.Phone = *req.Phone
		}
		if req.Address != nil {
			cur.Address = *req.Address
		}
		if links := req.SocialLinks; links != nil {
			if links.Instagram != nil {
				cur.SocialLinks.Instagram = *links.Instagram
			}
			if links.Twitter != nil {
				cur.SocialLinks.Twitter = *links.Twitter
			}
			if links.LinkedIn != nil {
				cur.SocialLinks.LinkedIn = *links.LinkedIn
			}
		}
		return cur
	})
	if err != nil {
		return nil, err
	}
	return &merged, nil
}
