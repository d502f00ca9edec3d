package controllers

import (
	"net/http"

	"github.com/Dr-Min/TalKR-Add-DB/pkg/store"

	"github.com/gin-gonic/gin"
)

// UpdateUsageTime adds the client-reported seconds to the user's cumulative
// counter. The value is trusted as-is; the tracking client owns it.
func UpdateUsageTime(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Time *int `json:"time"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Time == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "time is required"})
			return
		}

		if err := users.AddUsageTime(currentUserID(c), *body.Time); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "failed to update usage time"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
