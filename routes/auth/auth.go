package auth

import (
	"github.com/Dr-Min/TalKR-Add-DB/controllers"
	"github.com/Dr-Min/TalKR-Add-DB/pkg/store"

	"github.com/gin-gonic/gin"
)

// RegisterPublic registers public auth routes: /signup, /login
func RegisterPublic(r *gin.Engine, users *store.UserStore) {
	r.POST("/signup", controllers.Signup(users))
	r.POST("/login", controllers.Login(users))
}

// RegisterProtected registers protected auth routes (logout)
func RegisterProtected(g *gin.RouterGroup) {
	g.GET("/logout", controllers.Logout())
}
