package services

import "github.com/terraincognita07/aurora/internal/models"

type AchievementReader interface {
	ListByUser(userID uint) ([]models.Achievement, error)
}

type AchievementService struct {
	achievements AchievementReader
}

func NewAchievementService(achievements AchievementReader) *AchievementService {
	return &AchievementService{achievements: achievements}
}

func (service *AchievementService) List(session Session) ([]models.Achievement, error) {
	return service.achievements.ListByUser(session.UserID())
}
