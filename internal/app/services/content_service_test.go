package services

import (
	"errors"
	"testing"

	"github.com/velandev/website/internal/pkg/apperrors"
)

func TestListPages(t *testing.T) {
	service := NewContentService()

	slugs := service.ListPages()
	if len(slugs) == 0 {
		t.Fatal("expected at least one page")
	}
	if slugs[0] != "home" {
		t.Errorf("expected home first, got %q", slugs[0])
	}

	seen := map[string]bool{}
	for _, slug := range slugs {
		if seen[slug] {
			t.Errorf("duplicate slug %q", slug)
		}
		seen[slug] = true
	}
	for _, want := range []string{"home", "about", "services", "careers", "contact"} {
		if !seen[want] {
			t.Errorf("expected slug %q to be listed", want)
		}
	}
}

func TestGetPage(t *testing.T) {
	service := NewContentService()

	for _, slug := range service.ListPages() {
		page, err := service.GetPage(slug)
		if err != nil {
			t.Fatalf("GetPage(%q) returned error: %v", slug, err)
		}
		if page.Slug != slug {
			t.Errorf("expected slug %q, got %q", slug, page.Slug)
		}
		if page.Title == "" {
			t.Errorf("page %q has no title", slug)
		}
	}
}

func TestGetPageUnknownSlug(t *testing.T) {
	service := NewContentService()

	for _, slug := range []string{"", "missing", "HOME"} {
		if _, err := service.GetPage(slug); !errors.Is(err, apperrors.ErrPageNotFound) {
			t.Errorf("slug %q: expected ErrPageNotFound, got %v", slug, err)
		}
	}
}
