package db

import (
	"github.com/terraincognita07/aurora/internal/models"
	"gorm.io/gorm"
)

type ChatMessageRepository struct {
	database *gorm.DB
}

func NewChatMessageRepository(database *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{database: database}
}

func (repo *ChatMessageRepository) Create(message *models.ChatMessage) error {
	return repo.database.Create(message).Error
}

// ListByUser returns the conversation oldest first. A positive limit keeps
// only the newest messages.
func (repo *ChatMessageRepository) ListByUser(userID uint, limit int) ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0)
	query := repo.database.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}

	for left, right := 0, len(messages)-1; left < right; left, right = left+1, right-1 {
		messages[left], messages[right] = messages[right], messages[left]
	}
	return messages, nil
}
