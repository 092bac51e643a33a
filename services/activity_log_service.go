package services

import (
	"github.com/johpaz/apiGestion-api/config"
	"github.com/johpaz/apiGestion-api/models"
)

// RecordActivity writes an audit feed entry. Callers treat failures as
// non-fatal; the feed is advisory.
func RecordActivity(userID uint, typ, title, description, entityType string, entityID uint, entityName, status string) error {
	return config.DB.Create(&models.Activity{
		Type:        typ,
		Title:       title,
		Description: description,
		EntityType:  entityType,
		EntityID:    entityID,
		EntityName:  entityName,
		Status:      status,
		UserID:      userID,
	}).Error
}

func ListActivities(userID uint, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 50
	}
	var items []models.Activity
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
