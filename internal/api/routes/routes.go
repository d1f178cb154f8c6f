package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/apexshade/playbook/internal/api/handlers"
	"github.com/apexshade/playbook/internal/api/middleware"
)

type Deps struct {
	Simulator *handlers.SimulatorHandler
	Library   *handlers.LibraryHandler
	Admin     *handlers.AdminHandler

	AdminJWTSecret string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rep-facing surface
	r.GET("/catalog", d.Simulator.Catalog)
	r.POST("/simulate", d.Simulator.Simulate)
	r.GET("/library", d.Library.List)

	// Moderation surface
	r.POST("/admin/login", d.Admin.Login)

	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth(d.AdminJWTSecret))

	admin.GET("/pending", d.Admin.ListPending)
	admin.POST("/interactions/:id/approve", d.Admin.Approve)
	admin.DELETE("/interactions/:id", d.Admin.Reject)
}
