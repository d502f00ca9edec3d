package routes

import (
	"net/http"
	"time"

	"github.com/Dr-Min/TalKR-Add-DB/middleware"
	"github.com/Dr-Min/TalKR-Add-DB/pkg/config"
	"github.com/Dr-Min/TalKR-Add-DB/pkg/services"
	"github.com/Dr-Min/TalKR-Add-DB/pkg/session"
	"github.com/Dr-Min/TalKR-Add-DB/pkg/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authRoutes "github.com/Dr-Min/TalKR-Add-DB/routes/auth"
	chatRoutes "github.com/Dr-Min/TalKR-Add-DB/routes/chat"
	historyRoutes "github.com/Dr-Min/TalKR-Add-DB/routes/history"
	usageRoutes "github.com/Dr-Min/TalKR-Add-DB/routes/usage"
)

// RegisterRoutes builds the stores and services once and hands them to each
// route area. Handlers receive their dependencies explicitly; nothing global.
func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	users := store.NewUserStore(db)
	convs := store.NewConversationStore(db)
	ai := services.NewOpenAIService()
	sessions := session.NewManager(convs, ai)

	middleware.SetRateLimitConfig(time.Duration(config.RateLimitWindowSeconds)*time.Second, config.RateLimitCapacity)

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	authRoutes.RegisterPublic(r, users)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	authRoutes.RegisterProtected(protected)
	chatRoutes.Register(protected, sessions, ai)
	historyRoutes.Register(protected, convs)
	usageRoutes.Register(protected, users)
}
