package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InitializeData installs the default site content. The call is a no-op
// when any page already exists.
func (a *API) InitializeData(c *gin.Context) {
	if err := a.seeds.Initialize(); err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to initialize default content")
		return
	}
	c.Status(http.StatusNoContent)
}
