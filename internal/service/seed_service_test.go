package service

import (
	"testing"

	"github.com/appdotbuilder/dating-app-website/internal/db"
)

func TestInitializeSeedsEmptyStore(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSeedService(db.DB)
	if err := svc.Initialize(); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	var pages []db.Page
	if err := db.DB.Find(&pages).Error; err != nil {
		t.Fatalf("failed to read pages: %v", err)
	}
	if len(pages) != 6 {
		t.Fatalf("expected 6 seed pages, got %d", len(pages))
	}
	for _, page := range pages {
		if !page.IsPublished {
			t.Fatalf("expected seed page %s to be published", page.Slug)
		}
		if page.MetaDescription == nil || page.MetaKeywords == nil {
			t.Fatalf("expected seed page %s to carry SEO meta", page.Slug)
		}
	}

	items, err := NewNavigationService(db.DB).List()
	if err != nil {
		t.Fatalf("failed to list navigation items: %v", err)
	}
	if len(items) != 6 {
		t.Fatalf("expected 6 seed navigation items, got %d", len(items))
	}
	for i, item := range items {
		if item.OrderIndex != i {
			t.Fatalf("expected dense seed ordering, got index %d at position %d", item.OrderIndex, i)
		}
	}

	// Every menu entry must point at a seeded page.
	pager := NewPageService(db.DB)
	for _, item := range items {
		page, err := pager.GetBySlug(item.Slug)
		if err != nil {
			t.Fatalf("GetBySlug returned error: %v", err)
		}
		if page == nil {
			t.Fatalf("navigation item %s references missing page %s", item.Label, item.Slug)
		}
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSeedService(db.DB)
	if err := svc.Initialize(); err != nil {
		t.Fatalf("first Initialize returned error: %v", err)
	}
	if err := svc.Initialize(); err != nil {
		t.Fatalf("second Initialize returned error: %v", err)
	}

	var pageCount, itemCount int64
	if err := db.DB.Model(&db.Page{}).Count(&pageCount).Error; err != nil {
		t.Fatalf("failed to count pages: %v", err)
	}
	if err := db.DB.Model(&db.NavigationItem{}).Count(&itemCount).Error; err != nil {
		t.Fatalf("failed to count items: %v", err)
	}
	if pageCount != 6 || itemCount != 6 {
		t.Fatalf("expected exactly one copy of the seed data, got %d pages and %d items", pageCount, itemCount)
	}
}

func TestInitializeSkipsNonEmptyStore(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	existing := db.Page{Slug: "custom", Title: "Custom", Content: "c", IsPublished: true}
	if err := db.DB.Create(&existing).Error; err != nil {
		t.Fatalf("failed to seed page: %v", err)
	}

	if err := NewSeedService(db.DB).Initialize(); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	var pageCount, itemCount int64
	if err := db.DB.Model(&db.Page{}).Count(&pageCount).Error; err != nil {
		t.Fatalf("failed to count pages: %v", err)
	}
	if err := db.DB.Model(&db.NavigationItem{}).Count(&itemCount).Error; err != nil {
		t.Fatalf("failed to count items: %v", err)
	}
	if pageCount != 1 || itemCount != 0 {
		t.Fatalf("expected initialization to be a no-op, got %d pages and %d items", pageCount, itemCount)
	}
}
