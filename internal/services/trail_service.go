package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/aurora/internal/db"
	"github.com/terraincognita07/aurora/internal/models"
	"gorm.io/gorm"
)

var (
	ErrTrailNotFound   = errors.New("trail not found")
	ErrTrailNotStarted = errors.New("trail not started")
)

type TrailRepository interface {
	ListCatalog() ([]models.WellnessTrail, error)
	FindByID(trailID uint) (models.WellnessTrail, error)
	ListProgressByUser(userID uint) ([]models.TrailProgress, error)
	StartProgress(userID uint, trailID uint, now time.Time) (models.TrailProgress, error)
	AdvanceProgress(userID uint, trailID uint, now time.Time) (db.TrailAdvanceResult, error)
}

type TrailView struct {
	models.WellnessTrail
	Progress *models.TrailProgress `json:"progress"`
}

type TrailService struct {
	trails TrailRepository
}

func NewTrailService(trails TrailRepository) *TrailService {
	return &TrailService{trails: trails}
}

// Catalog lists every trail with the session's progress attached when started.
func (service *TrailService) Catalog(session Session) ([]TrailView, error) {
	trails, err := service.trails.ListCatalog()
	if err != nil {
		return nil, err
	}
	progress, err := service.trails.ListProgressByUser(session.UserID())
	if err != nil {
		return nil, err
	}

	byTrail := make(map[uint]*models.TrailProgress, len(progress))
	for index := range progress {
		byTrail[progress[index].TrailID] = &progress[index]
	}

	views := make([]TrailView, 0, len(trails))
	for _, trail := range trails {
		views = append(views, TrailView{WellnessTrail: trail, Progress: byTrail[trail.ID]})
	}
	return views, nil
}

func (service *TrailService) Start(session Session, trailID uint, now time.Time) (models.TrailProgress, error) {
	if _, err := service.trails.FindByID(trailID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TrailProgress{}, ErrTrailNotFound
		}
		return models.TrailProgress{}, err
	}
	return service.trails.StartProgress(session.UserID(), trailID, now)
}

func (service *TrailService) Advance(session Session, trailID uint, now time.Time) (db.TrailAdvanceResult, error) {
	if _, err := service.trails.FindByID(trailID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return db.TrailAdvanceResult{}, ErrTrailNotFound
		}
		return db.TrailAdvanceResult{}, err
	}

	result, err := service.trails.AdvanceProgress(session.UserID(), trailID, now)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.TrailAdvanceResult{}, ErrTrailNotStarted
	}
	return result, err
}
