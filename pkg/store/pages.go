package store

import (
	"context"
	"slices"

	"github.com/KoboSteruS/atii/pkg/models"
)

// updatedJustNow is the stamp the admin panel shows for a freshly saved page.
const updatedJustNow = "только что"

// PagePatch is a partial update of a page. Nil fields are left as is.
// Content replaces the whole body: individual sub-arrays are never diffed,
// the last full save wins.
type PagePatch struct {
	Name     *string          `json:"name,omitempty"`
	Sections *int             `json:"sections,omitempty"`
	Content  *models.PageBody `json:"content,omitempty"`
}

// SettingsPatch is a partial update of the site settings. Nil fields are
// left as is.
type SettingsPatch struct {
	SiteName        *string `json:"siteName,omitempty"`
	Domain          *string `json:"domain,omitempty"`
	Description     *string `json:"description,omitempty"`
	PrimaryColor    *string `json:"primaryColor,omitempty"`
	AccentColor     *string `json:"accentColor,omitempty"`
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	MetaTitle       *string `json:"metaTitle,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
	Keywords        *string `json:"keywords,omitempty"`
}

// UpdatePage applies a partial update and refreshes the page's updated stamp.
// Unknown ids are a silent no-op.
func (s *Store) UpdatePage(ctx context.Context, id string, patch PagePatch) {
	s.mu.Lock()

	idx := slices.IndexFunc(s.pages, func(p models.PageContent) bool { return p.ID == id })
	if idx < 0 {
		s.mu.Unlock()

		return
	}

	page := &s.pages[idx]

	if patch.Name != nil {
		page.Name = *patch.Name
	}

	if patch.Sections != nil {
		page.Sections = *patch.Sections
	}

	if patch.Content != nil {
		page.Content = *patch.Content
	}

	page.Updated = updatedJustNow

	value := slices.Clone(s.pages)
	s.mu.Unlock()

	s.emit(ctx, models.CollectionPages, value)
}

// UpdateSettings applies a partial update to the singleton settings record.
func (s *Store) UpdateSettings(ctx context.Context, patch SettingsPatch) {
	s.mu.Lock()

	if patch.SiteName != nil {
		s.settings.SiteName = *patch.SiteName
	}

	if patch.Domain != nil {
		s.settings.Domain = *patch.Domain
	}

	if patch.Description != nil {
		s.settings.Description = *patch.Description
	}

	if patch.PrimaryColor != nil {
		s.settings.PrimaryColor = *patch.PrimaryColor
	}

	if patch.AccentColor != nil {
		s.settings.AccentColor = *patch.AccentColor
	}

	if patch.BackgroundColor != nil {
		s.settings.BackgroundColor = *patch.BackgroundColor
	}

	if patch.MetaTitle != nil {
		s.settings.MetaTitle = *patch.MetaTitle
	}

	if patch.MetaDescription != nil {
		s.settings.MetaDescription = *patch.MetaDescription
	}

	if patch.Keywords != nil {
		s.settings.Keywords = *patch.Keywords
	}

	value := s.settings
	s.mu.Unlock()

	s.emit(ctx, models.CollectionSettings, value)
}
