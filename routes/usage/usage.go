package usage

import (
	"github.com/Dr-Min/TalKR-Add-DB/controllers"
	"github.com/Dr-Min/TalKR-Add-DB/pkg/store"

	"github.com/gin-gonic/gin"
)

// Register registers the usage-time route (protected)
func Register(g *gin.RouterGroup, users *store.UserStore) {
	g.POST("/update_usage_time", controllers.UpdateUsageTime(users))
}
