package services

import (
	"github.com/velandev/website/internal/app/models"
	"github.com/velandev/website/internal/pkg/apperrors"
)

// ContentService serves the structured content of the public site pages.
// Content is compiled in; rendering belongs to the client.
type ContentService interface {
	ListPages() []string
	GetPage(slug string) (*models.Page, error)
}

// contentServiceImpl implements the ContentService interface
type contentServiceImpl struct {
	pages map[string]*models.Page
	slugs []string
}

// NewContentService creates a new content service instance
func NewContentService() ContentService {
	s := &contentServiceImpl{pages: map[string]*models.Page{}}
	for i := range sitePages {
		page := &sitePages[i]
		s.pages[page.Slug] = page
		s.slugs = append(s.slugs, page.Slug)
	}
	return s
}

// ListPages returns the available page slugs in site order
func (s *contentServiceImpl) ListPages() []string {
	return s.slugs
}

// GetPage returns the content of a single page or ErrPageNotFound
func (s *contentServiceImpl) GetPage(slug string) (*models.Page, error) {
	page, ok := s.pages[slug]
	if !ok {
		return nil, apperrors.ErrPageNotFound
	}
	return page, nil
}
