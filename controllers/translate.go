package controllers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Translator runs the one-shot Korean-to-English completion.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

func Translate(tr Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Text string `json:"text"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}

		translation, err := tr.Translate(c.Request.Context(), body.Text)
		if err != nil {
			log.Printf("[translate] failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Translation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"translation": translation})
	}
}
