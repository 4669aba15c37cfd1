package service

import (
	"fmt"

	"github.com/appdotbuilder/dating-app-website/internal/db"
	"gorm.io/gorm"
)

// SeedService installs the default marketing content on an empty store.
type SeedService struct {
	db *gorm.DB
}

// NewSeedService returns a new SeedService instance.
func NewSeedService(gdb *gorm.DB) *SeedService {
	return &SeedService{db: gdb}
}

// Initialize inserts the default pages and navigation items. It is
// idempotent: as soon as any page exists the call is a no-op, so running
// it on every startup is safe.
func (s *SeedService) Initialize() error {
	var count int64
	if err := s.db.Model(&db.Page{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count pages: %w", err)
	}
	if count > 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, page := range seedPages() {
			if err := tx.Create(&page).Error; err != nil {
				return fmt.Errorf("seed page %q: %w", page.Slug, err)
			}
		}
		for _, item := range seedNavigationItems() {
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("seed navigation item %q: %w", item.Label, err)
			}
		}
		return nil
	})
}
