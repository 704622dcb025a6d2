package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/aurora/internal/ai"
	"github.com/terraincognita07/aurora/internal/models"
)

var (
	ErrChatMessageRequired = errors.New("chat message required")
	ErrChatMessageTooLong  = errors.New("chat message too long")
)

const (
	maxChatMessageLength = 2000
	chatHistoryWindow    = 50
)

type ChatRepository interface {
	Create(message *models.ChatMessage) error
	ListByUser(userID uint, limit int) ([]models.ChatMessage, error)
}

type ChatCoach interface {
	ChatWithAI(ctx context.Context, history []ai.Message) string
}

type ChatService struct {
	messages ChatRepository
	coach    ChatCoach
}

func NewChatService(messages ChatRepository, coach ChatCoach) *ChatService {
	return &ChatService{messages: messages, coach: coach}
}

// Send stores the user's message, asks the coach with the recent
// conversation and stores the reply.
func (service *ChatService) Send(ctx context.Context, session Session, content string, now time.Time) (models.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.ChatMessage{}, ErrChatMessageRequired
	}
	if len([]rune(content)) > maxChatMessageLength {
		return models.ChatMessage{}, ErrChatMessageTooLong
	}

	userMessage := models.ChatMessage{
		UserID:    session.UserID(),
		Role:      models.ChatRoleUser,
		Content:   content,
		CreatedAt: now.UTC(),
	}
	if err := service.messages.Create(&userMessage); err != nil {
		return models.ChatMessage{}, err
	}

	history, err := service.messages.ListByUser(session.UserID(), chatHistoryWindow)
	if err != nil {
		return models.ChatMessage{}, err
	}

	reply := models.ChatMessage{
		UserID:    session.UserID(),
		Role:      models.ChatRoleAssistant,
		Content:   service.coach.ChatWithAI(ctx, toCoachHistory(history)),
		CreatedAt: userMessage.CreatedAt.Add(time.Millisecond),
	}
	if err := service.messages.Create(&reply); err != nil {
		return models.ChatMessage{}, err
	}
	return reply, nil
}

func (service *ChatService) History(session Session) ([]models.ChatMessage, error) {
	return service.messages.ListByUser(session.UserID(), 0)
}

func toCoachHistory(messages []models.ChatMessage) []ai.Message {
	history := make([]ai.Message, 0, len(messages))
	for _, message := range messages {
		role := ai.RoleUser
		if message.Role == models.ChatRoleAssistant {
			role = ai.RoleAssistant
		}
		history = append(history, ai.Message{Role: role, Content: message.Content})
	}
	return history
}
