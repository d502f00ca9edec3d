package store

import (
	"errors"
	"time"

	"github.com/Dr-Min/TalKR-Add-DB/models"

	"gorm.io/gorm"
)

// ConversationStore is the transcript store: conversations and their ordered
// messages.
type ConversationStore struct {
	db *gorm.DB
}

func NewConversationStore(db *gorm.DB) *ConversationStore {
	return &ConversationStore{db: db}
}

// FindActive returns the user's open conversation (NULL end time), or nil when
// none exists. Concurrent first turns can leave more than one open row; then
// whichever row the database yields first wins.
func (s *ConversationStore) FindActive(userID uint) (*models.Conversation, error) {
	var conv models.Conversation
	err := s.db.Where("user_id = ? AND end_time IS NULL", userID).First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (s *ConversationStore) Create(userID uint) (*models.Conversation, error) {
	conv := models.Conversation{UserID: userID, StartTime: time.Now()}
	if err := s.db.Create(&conv).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

func (s *ConversationStore) AppendMessage(conversationID uint, content string, isUser bool) (*models.Message, error) {
	msg := models.Message{
		ConversationID: conversationID,
		Content:        content,
		IsUser:         isUser,
		Timestamp:      time.Now(),
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListMessages returns the transcript oldest first. Equal timestamps fall back
// to insertion order.
func (s *ConversationStore) ListMessages(conversationID uint) ([]models.Message, error) {
	var msgs []models.Message
	if err := s.db.Where("conversation_id = ?", conversationID).
		Order("timestamp ASC, id ASC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// ListByUser returns one page of the user's conversations, newest first, with
// messages preloaded in transcript order. The bool reports whether a further
// page exists; it is probed by fetching one row beyond the page.
func (s *ConversationStore) ListByUser(userID uint, page, pageSize int) ([]models.Conversation, bool, error) {
	if page < 1 {
		page = 1
	}
	var convs []models.Conversation
	err := s.db.
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC, id ASC")
		}).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize + 1).
		Find(&convs).Error
	if err != nil {
		return nil, false, err
	}
	hasNext := len(convs) > pageSize
	if hasNext {
		convs = convs[:pageSize]
	}
	return convs, hasNext, nil
}
