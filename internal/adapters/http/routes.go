package http

import (
	"signage/internal/core/ports"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, signageSvc ports.SignageService) {

	h := NewHandler(signageSvc)

	api := r.Group("/api/v1")
	{
		screensGroup := api.Group("/screens")
		{
			screensGroup.GET("", h.ListScreens)
			screensGroup.POST("", h.CreateScreen)
			screensGroup.GET("/:screen_id/playlist", h.GetPlaylist)
			screensGroup.POST("/:screen_id/deck", h.UploadDeck)
			screensGroup.POST("/:screen_id/images", h.UploadImage)
			screensGroup.PUT("/:screen_id/order", h.ReorderSlides)
			screensGroup.PUT("/:screen_id/slides/:filename/duration", h.SetSlideDuration)
			screensGroup.DELETE("/:screen_id/slides/:filename", h.DeleteSlide)
		}
	}

	// Display devices fetch slide images from here; no /api prefix so the
	// path matches the on-disk layout.
	r.GET("/slides/:screen_id/:filename", h.ServeSlide)

	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
