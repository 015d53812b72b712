package api

import (
	"net/http"

	"choppinzskys-backend/internal/config"
	"choppinzskys-backend/internal/database"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	Config *config.Config
	Store  *database.Store
}

func NewSystemHandler(cfg *config.Config, store *database.Store) *SystemHandler {
	return &SystemHandler{Config: cfg, Store: store}
}

func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from Choppinzskys Backend!"})
}

func (h *SystemHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// TestDatabase reports store availability and configuration presence. Every
// failure mode becomes a descriptive field value; this endpoint returns 200
// no matter what state the store is in.
func (h *SystemHandler) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      presence(h.Config.DatabaseURL),
		"database_name":     presence(h.Config.DatabaseName),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.Store.Available() {
		response["database"] = "available"
		response["connection_status"] = "connected"

		if err := h.Store.Ping(); err != nil {
			response["database"] = "connected but error: " + truncate(err.Error(), 50)
		} else if collections, err := h.Store.Collections(10); err != nil {
			response["database"] = "connected but error: " + truncate(err.Error(), 50)
		} else {
			response["database"] = "connected and working"
			response["collections"] = collections
		}
	} else if err := h.Store.Err(); err != nil {
		response["database"] = "error: " + truncate(err.Error(), 50)
	}

	c.JSON(http.StatusOK, response)
}

func presence(value string) string {
	if value != "" {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
