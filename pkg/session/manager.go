package session

import (
	"context"

	"github.com/Dr-Min/TalKR-Add-DB/models"
	"github.com/Dr-Min/TalKR-Add-DB/pkg/services"
	"github.com/Dr-Min/TalKR-Add-DB/pkg/store"
)

// Completer is the slice of the AI gateway the session manager needs.
type Completer interface {
	Complete(ctx context.Context, messages []services.ChatMessage) (string, error)
}

// Manager resolves the active conversation for a user and runs single chat
// turns against the completion provider.
type Manager struct {
	convs *store.ConversationStore
	ai    Completer
}

func NewManager(convs *store.ConversationStore, ai Completer) *Manager {
	return &Manager{convs: convs, ai: ai}
}

// HandleUserTurn appends the user's message to the active conversation
// (creating one when none is open), replays the full ordered transcript behind
// the persona instruction, and persists the provider reply.
//
// On error the turn is abandoned as-is: rows already written stay written, so
// a completion failure leaves the user message stored without an AI reply.
//
// The find-or-create step takes no lock. Two concurrent first turns from the
// same user can each open a conversation.
func (m *Manager) HandleUserTurn(ctx context.Context, userID uint, text string) (string, *models.Conversation, error) {
	conv, err := m.convs.FindActive(userID)
	if err != nil {
		return "", nil, err
	}
	if conv == nil {
		if conv, err = m.convs.Create(userID); err != nil {
			return "", nil, err
		}
	}

	if _, err := m.convs.AppendMessage(conv.ID, text, true); err != nil {
		return "", nil, err
	}

	transcript, err := m.convs.ListMessages(conv.ID)
	if err != nil {
		return "", nil, err
	}

	payload := make([]services.ChatMessage, 0, len(transcript)+1)
	payload = append(payload, services.ChatMessage{Role: "system", Content: services.PersonaInstruction})
	for _, msg := range transcript {
		role := "assistant"
		if msg.IsUser {
			role = "user"
		}
		payload = append(payload, services.ChatMessage{Role: role, Content: msg.Content})
	}

	reply, err := m.ai.Complete(ctx, payload)
	if err != nil {
		return "", nil, err
	}

	if _, err := m.convs.AppendMessage(conv.ID, reply, false); err != nil {
		return "", nil, err
	}
	return reply, conv, nil
}
