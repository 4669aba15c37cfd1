package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/appdotbuilder/dating-app-website/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPageSlugTaken    = errors.New("page slug already exists")
	ErrPageInvalidInput = errors.New("invalid page input")
)

// slugPattern matches URL-safe slugs: lowercase letters, digits, hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// PageService manages the content pages served to the marketing site.
type PageService struct {
	db *gorm.DB
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// PageCreateInput carries the fields accepted when creating a page.
// IsPublished defaults to true when omitted.
type PageCreateInput struct {
	Slug            string
	Title           string
	Content         string
	MetaDescription *string
	MetaKeywords    *string
	IsPublished     *bool
}

// PageUpdateInput carries a partial update: nil pointers mean the field
// keeps its stored value. The nullable meta fields use OptionalString so
// an explicit null clears them while an absent field leaves them alone.
type PageUpdateInput struct {
	Slug            *string
	Title           *string
	Content         *string
	MetaDescription OptionalString
	MetaKeywords    OptionalString
	IsPublished     *bool
}

// Create inserts a new page with a unique slug.
func (s *PageService) Create(input PageCreateInput) (*db.Page, error) {
	if err := validateSlug(input.Slug); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrPageInvalidInput)
	}
	if input.Content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrPageInvalidInput)
	}

	var existing db.Page
	if err := s.db.Where("slug = ?", input.Slug).First(&existing).Error; err == nil {
		return nil, ErrPageSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	published := true
	if input.IsPublished != nil {
		published = *input.IsPublished
	}

	page := db.Page{
		Slug:            input.Slug,
		Title:           input.Title,
		Content:         input.Content,
		MetaDescription: input.MetaDescription,
		MetaKeywords:    input.MetaKeywords,
		IsPublished:     published,
	}
	if err := s.db.Create(&page).Error; err != nil {
		return nil, err
	}

	return &page, nil
}

// GetByID fetches a page by id. A miss returns (nil, nil).
func (s *PageService) GetByID(id uint) (*db.Page, error) {
	var page db.Page
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// GetBySlug fetches a page by its exact slug. A miss returns (nil, nil).
func (s *PageService) GetBySlug(slug string) (*db.Page, error) {
	var page db.Page
	if err := s.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// List returns every page, newest first.
func (s *PageService) List() ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Order("created_at desc").Order("id desc").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// ListPublished returns pages with is_published set, newest first.
func (s *PageService) ListPublished() ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Where("is_published = ?", true).
		Order("created_at desc").Order("id desc").
		Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// Update applies the provided fields to an existing page. Fields left nil
// keep their stored value; updated_at is refreshed even when nothing else
// changes. A missing id returns (nil, nil).
func (s *PageService) Update(id uint, input PageUpdateInput) (*db.Page, error) {
	var page db.Page
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if input.Slug != nil {
		if err := validateSlug(*input.Slug); err != nil {
			return nil, err
		}
		var existing db.Page
		if err := s.db.Where("slug = ? AND id <> ?", *input.Slug, id).First(&existing).Error; err == nil {
			return nil, ErrPageSlugTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		page.Slug = *input.Slug
	}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, fmt.Errorf("%w: title is required", ErrPageInvalidInput)
		}
		page.Title = *input.Title
	}
	if input.Content != nil {
		if *input.Content == "" {
			return nil, fmt.Errorf("%w: content is required", ErrPageInvalidInput)
		}
		page.Content = *input.Content
	}
	if input.MetaDescription.Present {
		page.MetaDescription = input.MetaDescription.Value
	}
	if input.MetaKeywords.Present {
		page.MetaKeywords = input.MetaKeywords.Value
	}
	if input.IsPublished != nil {
		page.IsPublished = *input.IsPublished
	}

	// Save writes every column, so updated_at advances on no-op updates too.
	if err := s.db.Save(&page).Error; err != nil {
		return nil, err
	}

	return &page, nil
}

// Delete removes a page by id. It reports whether a row was removed.
// Navigation items referencing the page's slug are left untouched.
func (s *PageService) Delete(id uint) (bool, error) {
	result := s.db.Delete(&db.Page{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func validateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("%w: slug is required", ErrPageInvalidInput)
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: slug must contain only lowercase letters, numbers, and hyphens", ErrPageInvalidInput)
	}
	return nil
}
