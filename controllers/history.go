package controllers

import (
	"net/http"
	"strconv"

	"github.com/Dr-Min/TalKR-Add-DB/pkg/store"

	"github.com/gin-gonic/gin"
)

const historyPageSize = 10

// GetHistory pages through the user's conversations, newest first, ten per
// page. Each conversation carries its date and full transcript.
func GetHistory(convs *store.ConversationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}

		items, hasNext, err := convs.ListByUser(currentUserID(c), page, historyPageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "db error"})
			return
		}

		history := make([]gin.H, 0, len(items))
		for _, conv := range items {
			messages := make([]gin.H, 0, len(conv.Messages))
			for _, m := range conv.Messages {
				messages = append(messages, gin.H{
					"content":   m.Content,
					"is_user":   m.IsUser,
					"timestamp": m.Timestamp.Format("15:04"),
				})
			}
			history = append(history, gin.H{
				"date":     conv.StartTime.Format("2006-01-02"),
				"messages": messages,
			})
		}

		c.JSON(http.StatusOK, gin.H{"history": history, "has_next": hasNext})
	}
}
