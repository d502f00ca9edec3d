package controllers

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Dr-Min/TalKR-Add-DB/middleware"
	"github.com/Dr-Min/TalKR-Add-DB/models"

	"github.com/gin-gonic/gin"
)

// chatFailureMessage goes to the client verbatim whenever a turn fails,
// whatever the underlying cause.
const chatFailureMessage = "죄송합니다. 오류가 발생했습니다."

// TurnHandler runs one user turn against the active conversation.
type TurnHandler interface {
	HandleUserTurn(ctx context.Context, userID uint, text string) (string, *models.Conversation, error)
}

// Synthesizer renders reply text as audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

func currentUserID(c *gin.Context) uint {
	raw, _ := c.Get(middleware.ContextUserIDKey)
	s, _ := raw.(string)
	id, _ := strconv.Atoi(s)
	return uint(id)
}

// Chat appends the user's message, fetches the AI reply and returns it with a
// base64 speech rendering. Any failure maps to one generic 500; rows persisted
// before the failure stay persisted.
func Chat(turns TurnHandler, tts Synthesizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Message) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "message is required"})
			return
		}

		uid := currentUserID(c)
		reply, _, err := turns.HandleUserTurn(c.Request.Context(), uid, body.Message)
		if err != nil {
			log.Printf("[chat] turn failed for user %d: %v", uid, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": chatFailureMessage, "success": false})
			return
		}

		audio, err := tts.Synthesize(c.Request.Context(), reply)
		if err != nil {
			log.Printf("[chat] speech synthesis failed for user %d: %v", uid, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": chatFailureMessage, "success": false})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": reply,
			"audio":   base64.StdEncoding.EncodeToString(audio),
			"success": true,
		})
	}
}
