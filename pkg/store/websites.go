package store

import (
	"context"
	"slices"

	"github.com/KoboSteruS/atii/pkg/models"
	"github.com/google/uuid"
)

// duplicateSuffix marks a cloned entity's display name, matching the admin
// panel wording.
const duplicateSuffix = " (копия)"

// WebsitePatch is a partial update of a Website. Nil fields are left as is.
type WebsitePatch struct {
	Name         *string   `json:"name,omitempty"`
	Client       *string   `json:"client,omitempty"`
	Description  *string   `json:"description,omitempty"`
	URL          *string   `json:"url,omitempty"`
	Screenshot   *string   `json:"screenshot,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Date         *string   `json:"date,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
}

// AddWebsite stores a new portfolio entry and returns it with its generated
// id.
func (s *Store) AddWebsite(ctx context.Context, website models.Website) models.Website {
	website.ID = uuid.New().String()

	s.mu.Lock()
	s.websites = append(s.websites, website)
	value := slices.Clone(s.websites)
	s.mu.Unlock()

	s.emit(ctx, models.CollectionWebsites, value)

	return website
}

// UpdateWebsite applies a partial update. Unknown ids are a silent no-op.
func (s *Store) UpdateWebsite(ctx context.Context, id string, patch WebsitePatch) {
	s.mu.Lock()

	idx := slices.IndexFunc(s.websites, func(w models.Website) bool { return w.ID == id })
	if idx < 0 {
		s.mu.Unlock()

		return
	}

	website := &s.websites[idx]

	if patch.Name != nil {
		website.Name = *patch.Name
	}

	if patch.Client != nil {
		website.Client = *patch.Client
	}

	if patch.Description != nil {
		website.Description = *patch.Description
	}

	if patch.URL != nil {
		website.URL = *patch.URL
	}

	if patch.Screenshot != nil {
		website.Screenshot = *patch.Screenshot
	}

	if patch.Technologies != nil {
		website.Technologies = slices.Clone(*patch.Technologies)
	}

	if patch.Category != nil {
		website.Category = *patch.Category
	}

	if patch.Date != nil {
		website.Date = *patch.Date
	}

	if patch.Featured != nil {
		website.Featured = *patch.Featured
	}

	value := slices.Clone(s.websites)
	s.mu.Unlock()

	s.emit(ctx, models.CollectionWebsites, value)
}

// DeleteWebsite removes a portfolio entry. Unknown ids are a silent no-op.
func (s *Store) DeleteWebsite(ctx context.Context, id string) {
	s.mu.Lock()

	remaining := slices.DeleteFunc(slices.Clone(s.websites), func(w models.Website) bool { return w.ID == id })
	if len(remaining) == len(s.websites) {
		s.mu.Unlock()

		return
	}

	s.websites = remaining
	value := slices.Clone(s.websites)
	s.mu.Unlock()

	s.emit(ctx, models.CollectionWebsites, value)
}

// DuplicateWebsite clones an entry under a new id with the copy marker
// appended to its name. Unknown ids are a silent no-op.
func (s *Store) DuplicateWebsite(ctx context.Context, id string) {
	s.mu.Lock()

	idx := slices.IndexFunc(s.websites, func(w models.Website) bool { return w.ID == id })
	if idx < 0 {
		s.mu.Unlock()

		return
	}

	duplicated := s.websites[idx]
	duplicated.ID = uuid.New().String()
	duplicated.Name += duplicateSuffix
	duplicated.Technologies = slices.Clone(duplicated.Technologies)

	s.websites = append(s.websites, duplicated)
	value := slices.Clone(s.websites)
	s.mu.Unlock()

	s.emit(ctx, models.CollectionWebsites, value)
}
