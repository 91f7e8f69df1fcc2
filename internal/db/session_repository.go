package db

import (
	"time"

	"github.com/terraincognita07/ovella/internal/models"
	"gorm.io/gorm"
)

type SessionRepository struct {
	database *gorm.DB
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{database: database}
}

func (repo *SessionRepository) Create(session *models.Session) error {
	return repo.database.Create(session).Error
}

func (repo *SessionRepository) FindByID(sessionID string) (models.Session, bool, error) {
	session := models.Session{}
	result := repo.database.Where("id = ?", sessionID).Limit(1).Find(&session)
	if result.Error != nil {
		return models.Session{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Session{}, false, nil
	}
	return session, true, nil
}

func (repo *SessionRepository) Touch(sessionID string, seenAt time.Time) error {
	return repo.database.Model(&models.Session{}).
		Where("id = ?", sessionID).
		Update("last_seen_at", seenAt).Error
}

// DeleteStale removes sessions idle since before the cutoff along with their
// bleed intervals, and reports how many sessions were removed.
func (repo *SessionRepository) DeleteStale(olderThan time.Time) (int64, error) {
	var removed int64
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("session_id IN (?)", tx.Model(&models.Session{}).Select("id").Where("last_seen_at < ?", olderThan)).
			Delete(&models.BleedInterval{}).Error; err != nil {
			return err
		}

		result := tx.Where("last_seen_at < ?", olderThan).Delete(&models.Session{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected
		return nil
	})
	return removed, err
}
