package router

import (
	"time"

	"github.com/appdotbuilder/dating-app-website/internal/handler"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures the gin engine and registers the API routes.
// allowedOrigins lists the SPA origins permitted by CORS.
func SetupRouter(api *handler.API, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	apiGroup := r.Group("/api")
	{
		pages := apiGroup.Group("/pages")
		{
			pages.POST("", api.CreatePage)
			pages.GET("", api.GetPages)
			pages.GET("/published", api.GetPublishedPages)
			pages.GET("/slug/:slug", api.GetPageBySlug)
			pages.GET("/:id", api.GetPageByID)
			pages.PUT("/:id", api.UpdatePage)
			pages.DELETE("/:id", api.DeletePage)
		}

		navigation := apiGroup.Group("/navigation-items")
		{
			navigation.POST("", api.CreateNavigationItem)
			navigation.GET("", api.GetNavigationItems)
			navigation.GET("/visible", api.GetVisibleNavigationItems)
			navigation.PUT("/:id", api.UpdateNavigationItem)
			navigation.DELETE("/:id", api.DeleteNavigationItem)
		}

		apiGroup.POST("/initialize", api.InitializeData)
	}

	return r
}
