package handler

import (
	"errors"
	"net/http"

	"github.com/appdotbuilder/dating-app-website/internal/service"
	"github.com/gin-gonic/gin"
)

type createNavigationItemRequest struct {
	Label      string `json:"label"`
	Slug       string `json:"slug"`
	OrderIndex *int   `json:"order_index"`
	IsVisible  *bool  `json:"is_visible"`
}

type updateNavigationItemRequest struct {
	Label      *string `json:"label"`
	Slug       *string `json:"slug"`
	OrderIndex *int    `json:"order_index"`
	IsVisible  *bool   `json:"is_visible"`
}

// CreateNavigationItem adds a menu entry after checking that the
// referenced page exists.
func (a *API) CreateNavigationItem(c *gin.Context) {
	var req createNavigationItemRequest
	if !bindJSON(c, &req, "request body is not valid JSON") {
		return
	}
	if req.OrderIndex == nil {
		respondError(c, http.StatusBadRequest, "order_index is required")
		return
	}

	item, err := a.navigation.Create(service.NavigationItemCreateInput{
		Label:      req.Label,
		Slug:       req.Slug,
		OrderIndex: *req.OrderIndex,
		IsVisible:  req.IsVisible,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNavigationPageMissing):
			respondError(c, http.StatusBadRequest, "no page exists with this slug")
		case errors.Is(err, service.ErrNavigationInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "failed to create navigation item")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"navigation_item": item})
}

// GetNavigationItems lists every menu entry in display order.
func (a *API) GetNavigationItems(c *gin.Context) {
	items, err := a.navigation.List()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to list navigation items")
		return
	}
	c.JSON(http.StatusOK, gin.H{"navigation_items": items})
}

// GetVisibleNavigationItems lists visible menu entries in display order.
func (a *API) GetVisibleNavigationItems(c *gin.Context) {
	items, err := a.navigation.ListVisible()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to list navigation items")
		return
	}
	c.JSON(http.StatusOK, gin.H{"navigation_items": items})
}

// UpdateNavigationItem applies a partial update to a menu entry.
func (a *API) UpdateNavigationItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid navigation item id")
		return
	}

	var req updateNavigationItemRequest
	if !bindJSON(c, &req, "request body is not valid JSON") {
		return
	}

	item, err := a.navigation.Update(id, service.NavigationItemUpdateInput{
		Label:      req.Label,
		Slug:       req.Slug,
		OrderIndex: req.OrderIndex,
		IsVisible:  req.IsVisible,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNavigationInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "failed to update navigation item")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"navigation_item": item})
}

// DeleteNavigationItem removes a menu entry and compacts the order of
// the items behind it.
func (a *API) DeleteNavigationItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid navigation item id")
		return
	}

	deleted, err := a.navigation.Delete(id)
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to delete navigation item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
