package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dr-Min/TalKR-Add-DB/models"
	"github.com/Dr-Min/TalKR-Add-DB/pkg/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func getHistory(t *testing.T, r *gin.Engine, page string) (int, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	path := "/get_history"
	if page != "" {
		path += "?page=" + page
	}
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	return w.Code, resp
}

func seedConversations(t *testing.T, db *gorm.DB, convs *store.ConversationStore, n int) {
	t.Helper()
	base := time.Now().Add(-time.Duration(n) * time.Hour)
	for i := 0; i < n; i++ {
		conv, err := convs.Create(1)
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		start := base.Add(time.Duration(i) * time.Hour)
		if err := db.Model(&models.Conversation{}).Where("id = ?", conv.ID).
			Update("start_time", start).Error; err != nil {
			t.Fatalf("set start: %v", err)
		}
		if _, err := convs.AppendMessage(conv.ID, fmt.Sprintf("질문 %d", i), true); err != nil {
			t.Fatalf("append: %v", err)
		}
		if _, err := convs.AppendMessage(conv.ID, fmt.Sprintf("답변 %d", i), false); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
}

func TestGetHistoryPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	convs := store.NewConversationStore(db)
	seedConversations(t, db, convs, 11)

	r := gin.New()
	r.GET("/get_history", asUser(1), GetHistory(convs))

	code, resp := getHistory(t, r, "1")
	if code != http.StatusOK {
		t.Fatalf("page 1: status %d", code)
	}
	history := resp["history"].([]any)
	if len(history) != 10 || resp["has_next"] != true {
		t.Fatalf("expected 10 items + has_next on page 1, got %d hasNext=%v", len(history), resp["has_next"])
	}

	code, resp = getHistory(t, r, "2")
	if code != http.StatusOK {
		t.Fatalf("page 2: status %d", code)
	}
	history = resp["history"].([]any)
	if len(history) != 1 || resp["has_next"] != false {
		t.Fatalf("expected 1 item without has_next on page 2, got %d hasNext=%v", len(history), resp["has_next"])
	}
}

func TestGetHistoryShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	convs := store.NewConversationStore(db)
	seedConversations(t, db, convs, 1)

	r := gin.New()
	r.GET("/get_history", asUser(1), GetHistory(convs))

	_, resp := getHistory(t, r, "")
	history := resp["history"].([]any)
	if len(history) != 1 {
		t.Fatalf("expected one conversation, got %d", len(history))
	}
	entry := history[0].(map[string]any)
	if _, err := time.Parse("2006-01-02", entry["date"].(string)); err != nil {
		t.Fatalf("date must be YYYY-MM-DD, got %v", entry["date"])
	}
	messages := entry["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("expected both turns in the transcript, got %d", len(messages))
	}
	first := messages[0].(map[string]any)
	if first["is_user"] != true {
		t.Fatalf("expected the user turn first, got %v", first)
	}
	if _, err := time.Parse("15:04", first["timestamp"].(string)); err != nil {
		t.Fatalf("timestamp must be HH:MM, got %v", first["timestamp"])
	}
}

func TestGetHistoryIsolatedPerUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	convs := store.NewConversationStore(db)
	seedConversations(t, db, convs, 2)

	r := gin.New()
	r.GET("/get_history", asUser(99), GetHistory(convs))

	_, resp := getHistory(t, r, "1")
	if len(resp["history"].([]any)) != 0 || resp["has_next"] != false {
		t.Fatalf("expected empty history for another user, got %v", resp)
	}
}
