package handler

import (
	"errors"
	"net/http"

	"github.com/appdotbuilder/dating-app-website/internal/service"
	"github.com/gin-gonic/gin"
)

type createPageRequest struct {
	Slug            string  `json:"slug"`
	Title           string  `json:"title"`
	Content         string  `json:"content"`
	MetaDescription *string `json:"meta_description"`
	MetaKeywords    *string `json:"meta_keywords"`
	IsPublished     *bool   `json:"is_published"`
}

type updatePageRequest struct {
	Slug            *string                `json:"slug"`
	Title           *string                `json:"title"`
	Content         *string                `json:"content"`
	MetaDescription service.OptionalString `json:"meta_description"`
	MetaKeywords    service.OptionalString `json:"meta_keywords"`
	IsPublished     *bool                  `json:"is_published"`
}

// CreatePage creates a new content page.
func (a *API) CreatePage(c *gin.Context) {
	var req createPageRequest
	if !bindJSON(c, &req, "request body is not valid JSON") {
		return
	}

	page, err := a.pages.Create(service.PageCreateInput{
		Slug:            req.Slug,
		Title:           req.Title,
		Content:         req.Content,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		IsPublished:     req.IsPublished,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageSlugTaken):
			respondError(c, http.StatusBadRequest, "a page with this slug already exists")
		case errors.Is(err, service.ErrPageInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "failed to create page")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// GetPages lists every page, newest first.
func (a *API) GetPages(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to list pages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// GetPublishedPages lists published pages, newest first.
func (a *API) GetPublishedPages(c *gin.Context) {
	pages, err := a.pages.ListPublished()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to list pages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// GetPageByID fetches one page by id. A miss is a 200 with a null page,
// not an error.
func (a *API) GetPageByID(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid page id")
		return
	}

	page, err := a.pages.GetByID(id)
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to fetch page")
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// GetPageBySlug fetches one page by its exact slug.
func (a *API) GetPageBySlug(c *gin.Context) {
	page, err := a.pages.GetBySlug(c.Param("slug"))
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to fetch page")
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// UpdatePage applies a partial update to a page.
func (a *API) UpdatePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid page id")
		return
	}

	var req updatePageRequest
	if !bindJSON(c, &req, "request body is not valid JSON") {
		return
	}

	page, err := a.pages.Update(id, service.PageUpdateInput{
		Slug:            req.Slug,
		Title:           req.Title,
		Content:         req.Content,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		IsPublished:     req.IsPublished,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageSlugTaken):
			respondError(c, http.StatusBadRequest, "a page with this slug already exists")
		case errors.Is(err, service.ErrPageInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "failed to update page")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// DeletePage removes a page. Navigation items referencing its slug are
// left alone; the response reports whether a row was removed.
func (a *API) DeletePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid page id")
		return
	}

	deleted, err := a.pages.Delete(id)
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to delete page")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
