package history

import (
	"github.com/Dr-Min/TalKR-Add-DB/controllers"
	"github.com/Dr-Min/TalKR-Add-DB/pkg/store"

	"github.com/gin-gonic/gin"
)

// Register registers the history route (protected)
func Register(g *gin.RouterGroup, convs *store.ConversationStore) {
	g.GET("/get_history", controllers.GetHistory(convs))
}
