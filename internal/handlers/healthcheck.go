package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Index is the API directory served at the root path.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Uni-verse API is running!",
		"endpoints": gin.H{
			"match_programs":    "/api/match-programs",
			"universities":      "/api/universities",
			"programs":          "/api/programs",
			"campuses":          "/api/campuses",
			"program_offerings": "/api/program-offerings",
			"program_detail":    "/api/program/:id",
			"university_detail": "/api/university/:id",
			"search_programs":   "/api/search-programs",
			"stats":             "/api/stats",
		},
	})
}
