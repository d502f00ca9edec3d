package chat

import (
	"github.com/Dr-Min/TalKR-Add-DB/controllers"
	"github.com/Dr-Min/TalKR-Add-DB/middleware"
	"github.com/Dr-Min/TalKR-Add-DB/pkg/services"
	"github.com/Dr-Min/TalKR-Add-DB/pkg/session"

	"github.com/gin-gonic/gin"
)

// Register wires the AI-backed endpoints (protected). Both call the provider,
// so both sit behind the rate limit.
func Register(g *gin.RouterGroup, sessions *session.Manager, ai *services.OpenAIService) {
	g.POST("/chat", middleware.RateLimit(), controllers.Chat(sessions, ai))
	g.POST("/translate", middleware.RateLimit(), controllers.Translate(ai))
}
