package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/appdotbuilder/dating-app-website/internal/db"
	"gorm.io/gorm"
)

var (
	ErrNavigationInvalidInput = errors.New("invalid navigation item input")
	ErrNavigationPageMissing  = errors.New("referenced page does not exist")
)

// NavigationService manages the ordered site navigation menu.
type NavigationService struct {
	db *gorm.DB
}

// NewNavigationService returns a new NavigationService instance.
func NewNavigationService(gdb *gorm.DB) *NavigationService {
	return &NavigationService{db: gdb}
}

// NavigationItemCreateInput carries the fields accepted when creating a
// navigation item. IsVisible defaults to true when omitted.
type NavigationItemCreateInput struct {
	Label      string
	Slug       string
	OrderIndex int
	IsVisible  *bool
}

// NavigationItemUpdateInput carries a partial update: nil pointers keep
// the stored value.
type NavigationItemUpdateInput struct {
	Label      *string
	Slug       *string
	OrderIndex *int
	IsVisible  *bool
}

// Create inserts a navigation item after verifying that a page with the
// given slug exists. Nothing is written when the reference check fails.
// Sibling indices are not re-normalized; the caller owns ordering.
func (s *NavigationService) Create(input NavigationItemCreateInput) (*db.NavigationItem, error) {
	if strings.TrimSpace(input.Label) == "" {
		return nil, fmt.Errorf("%w: label is required", ErrNavigationInvalidInput)
	}
	if strings.TrimSpace(input.Slug) == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrNavigationInvalidInput)
	}
	if input.OrderIndex < 0 {
		return nil, fmt.Errorf("%w: order_index must not be negative", ErrNavigationInvalidInput)
	}

	var page db.Page
	if err := s.db.Where("slug = ?", input.Slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNavigationPageMissing, input.Slug)
		}
		return nil, err
	}

	visible := true
	if input.IsVisible != nil {
		visible = *input.IsVisible
	}

	item := db.NavigationItem{
		Label:      input.Label,
		Slug:       input.Slug,
		OrderIndex: input.OrderIndex,
		IsVisible:  visible,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

// List returns every navigation item ordered by order_index ascending.
func (s *NavigationService) List() ([]db.NavigationItem, error) {
	var items []db.NavigationItem
	if err := s.db.Order("order_index asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListVisible returns visible navigation items in menu order.
func (s *NavigationService) ListVisible() ([]db.NavigationItem, error) {
	var items []db.NavigationItem
	if err := s.db.Where("is_visible = ?", true).
		Order("order_index asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update applies the provided fields to an existing item. The slug
// reference is not re-checked and sibling indices are not re-normalized.
// A missing id returns (nil, nil).
func (s *NavigationService) Update(id uint, input NavigationItemUpdateInput) (*db.NavigationItem, error) {
	var item db.NavigationItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if input.Label != nil {
		if strings.TrimSpace(*input.Label) == "" {
			return nil, fmt.Errorf("%w: label is required", ErrNavigationInvalidInput)
		}
		item.Label = *input.Label
	}
	if input.Slug != nil {
		if strings.TrimSpace(*input.Slug) == "" {
			return nil, fmt.Errorf("%w: slug is required", ErrNavigationInvalidInput)
		}
		item.Slug = *input.Slug
	}
	if input.OrderIndex != nil {
		if *input.OrderIndex < 0 {
			return nil, fmt.Errorf("%w: order_index must not be negative", ErrNavigationInvalidInput)
		}
		item.OrderIndex = *input.OrderIndex
	}
	if input.IsVisible != nil {
		item.IsVisible = *input.IsVisible
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

// Delete removes a navigation item and closes the gap it leaves: every
// surviving item with a higher order_index is shifted down by one inside
// the same transaction, so readers never observe a gapped menu. It
// reports whether a row was removed.
func (s *NavigationService) Delete(id uint) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item db.NavigationItem
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Delete(&db.NavigationItem{}, item.ID).Error; err != nil {
			return fmt.Errorf("delete navigation item: %w", err)
		}

		if err := tx.Model(&db.NavigationItem{}).
			Where("order_index > ?", item.OrderIndex).
			Updates(map[string]interface{}{
				"order_index": gorm.Expr("order_index - 1"),
				"updated_at":  time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("reorder navigation items: %w", err)
		}

		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
