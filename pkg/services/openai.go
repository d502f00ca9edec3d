package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/Dr-Min/TalKR-Add-DB/pkg/config"
)

// ChatMessage is one role-tagged turn in a completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIService wraps the provider's completion and speech endpoints. Models,
// voice and sampling are fixed configuration; callers cannot tune requests.
type OpenAIService struct {
	baseURL   string
	apiKey    string
	chatModel string
	ttsModel  string
	ttsVoice  string
}

func NewOpenAIService() *OpenAIService {
	return &OpenAIService{
		baseURL:   strings.TrimRight(config.OpenAIBaseURL, "/"),
		apiKey:    config.OpenAIAPIKey,
		chatModel: config.ChatModel,
		ttsModel:  config.TTSModel,
		ttsVoice:  config.TTSVoice,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type speechRequest struct {
	Model string `json:"model"`
	Voice string `json:"voice"`
	Input string `json:"input"`
}

// Complete sends the ordered message list and returns the generated reply.
func (s *OpenAIService) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	if strings.TrimSpace(s.apiKey) == "" {
		log.Printf("[openai] OPENAI_API_KEY is not set")
		return "", fmt.Errorf("OPENAI_API_KEY is not set")
	}

	body, err := json.Marshal(chatRequest{Model: s.chatModel, Messages: messages})
	if err != nil {
		return "", err
	}

	respBytes, err := s.post(ctx, "/chat/completions", body)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", fmt.Errorf("decode error: %w", err)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty completion from provider")
	}
	return parsed.Choices[0].Message.Content, nil
}

// Synthesize renders text as speech and returns the raw audio bytes. Callers
// encode for transport.
func (s *OpenAIService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(s.apiKey) == "" {
		log.Printf("[openai] OPENAI_API_KEY is not set")
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	body, err := json.Marshal(speechRequest{Model: s.ttsModel, Voice: s.ttsVoice, Input: text})
	if err != nil {
		return nil, err
	}
	return s.post(ctx, "/audio/speech", body)
}

// Translate runs a one-shot Korean-to-English completion. It carries no
// conversation history.
func (s *OpenAIService) Translate(ctx context.Context, text string) (string, error) {
	return s.Complete(ctx, []ChatMessage{
		{Role: "system", Content: translatorInstruction},
		{Role: "user", Content: translatePrefix + text},
	})
}

func (s *OpenAIService) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	url := s.baseURL + path
	log.Printf("[openai] POST %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope errorResponse
		if json.Unmarshal(respBytes, &envelope) == nil && envelope.Error.Message != "" {
			return nil, fmt.Errorf("status %d: %s", resp.StatusCode, envelope.Error.Message)
		}
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBytes)))
	}
	return respBytes, nil
}
