package api

import (
	"choppinzskys-backend/internal/config"
	"choppinzskys-backend/internal/database"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the full HTTP surface over the given store.
func NewRouter(cfg *config.Config, store *database.Store) *gin.Engine {
	gin.EnableJsonDecoderDisallowUnknownFields()

	r := gin.Default()

	// CORS Middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	systemHandler := NewSystemHandler(cfg, store)
	menuHandler := NewMenuHandler()
	inquiryHandler := NewInquiryHandler(store)

	r.GET("/", systemHandler.Root)
	r.GET("/test", systemHandler.TestDatabase)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/hello", systemHandler.Hello)
		apiGroup.GET("/menu", menuHandler.GetMenu)
		apiGroup.POST("/inquiries", inquiryHandler.CreateInquiry)
		apiGroup.GET("/inquiries", inquiryHandler.ListInquiries)
	}

	return r
}
