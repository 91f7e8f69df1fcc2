package db

import (
	"github.com/terraincognita07/ovella/internal/models"
	"gorm.io/gorm"
)

type BleedIntervalRepository struct {
	database *gorm.DB
}

func NewBleedIntervalRepository(database *gorm.DB) *BleedIntervalRepository {
	return &BleedIntervalRepository{database: database}
}

func (repo *BleedIntervalRepository) ListBySession(sessionID string) ([]models.BleedInterval, error) {
	intervals := make([]models.BleedInterval, 0)
	if err := repo.database.
		Where("session_id = ?", sessionID).
		Order("start_date ASC, id ASC").
		Find(&intervals).Error; err != nil {
		return nil, err
	}
	return intervals, nil
}

func (repo *BleedIntervalRepository) Create(interval *models.BleedInterval) error {
	return repo.database.Create(interval).Error
}

// DeleteBySession clears the whole history collection for a session.
func (repo *BleedIntervalRepository) DeleteBySession(sessionID string) error {
	return repo.database.Where("session_id = ?", sessionID).Delete(&models.BleedInterval{}).Error
}
