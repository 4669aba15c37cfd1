package handler

import (
	"github.com/appdotbuilder/dating-app-website/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	pages      *service.PageService
	navigation *service.NavigationService
	seeds      *service.SeedService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB) *API {
	return &API{
		pages:      service.NewPageService(gdb),
		navigation: service.NewNavigationService(gdb),
		seeds:      service.NewSeedService(gdb),
	}
}
