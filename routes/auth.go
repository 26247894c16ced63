package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sph0ngl3/Pazarm/auth"
	"gorm.io/gorm"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.PhoneLogin(db)) // POST /auth/login
	}
}
