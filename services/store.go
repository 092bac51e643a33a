package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/johpaz/apiGestion-api/models"
)

// Store is everything the alert engine needs from persistence. Controllers
// talk to GORM directly; the engine goes through this interface so sweeps can
// be tested without a database.
type Store interface {
	// Alerts.
	CreateAlert(ctx context.Context, a *models.Alert) error
	DueTemplates(ctx context.Context, now time.Time) ([]models.Alert, error)
	AdvanceTemplate(ctx context.Context, id uint, lastFired, nextDue time.Time) error
	DeactivateTemplate(ctx context.Context, id uint) error
	MarkAlertRead(ctx context.Context, id, userID uint) (int64, error)
	AlertsByUser(ctx context.Context, userID uint, limit int) ([]models.Alert, error)
	HasRecentAlertForEntity(ctx context.Context, entityType string, entityID uint, titlePart string, since time.Time) (bool, error)
	HasActiveTemplateForEntity(ctx context.Context, entityType string, entityID uint, titlePart string) (bool, error)

	// Monitored entities.
	GetHive(ctx context.Context, id uint) (*models.Hive, error)
	GetSwarm(ctx context.Context, id uint) (*models.Swarm, error)
	GetNucleus(ctx context.Context, id uint) (*models.Nucleus, error)
	TouchHiveLastAlert(ctx context.Context, id uint, at time.Time) error
	TouchSwarmLastAlert(ctx context.Context, id uint, at time.Time) error
	TouchNucleusLastAlert(ctx context.Context, id uint, at time.Time) error
	ActiveHivesWithQueen(ctx context.Context) ([]models.Hive, error)

	// Users and audit feed.
	GetUser(ctx context.Context, id uint) (*models.User, error)
	CreateActivity(ctx context.Context, act *models.Activity) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

var _ Store = (*gormStore)(nil)

func (s *gormStore) CreateAlert(ctx context.Context, a *models.Alert) error {
	return s.db.WithContext(ctx).Create(a).Error
}

func (s *gormStore) DueTemplates(ctx context.Context, now time.Time) ([]models.Alert, error) {
	var templates []models.Alert
	err := s.db.WithContext(ctx).
		Where("is_recurring = ? AND active = ? AND next_due_at <= ?", true, true, now).
		Find(&templates).Error
	return templates, err
}

func (s *gormStore) AdvanceTemplate(ctx context.Context, id uint, lastFired, nextDue time.Time) error {
	return s.db.WithContext(ctx).Model(&models.Alert{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_fired_at": lastFired,
			"next_due_at":   nextDue,
		}).Error
}

func (s *gormStore) DeactivateTemplate(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Model(&models.Alert{}).
		Where("id = ?", id).
		Update("active", false).Error
}

func (s *gormStore) MarkAlertRead(ctx context.Context, id, userID uint) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Alert{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	return res.RowsAffected, res.Error
}

func (s *gormStore) AlertsByUser(ctx context.Context, userID uint, limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}

func (s *gormStore) HasRecentAlertForEntity(ctx context.Context, entityType string, entityID uint, titlePart string, since time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Alert{}).
		Where("entity_type = ? AND entity_id = ? AND title LIKE ? AND created_at >= ?",
			entityType, entityID, "%"+titlePart+"%", since).
		Count(&count).Error
	return count > 0, err
}

func (s *gormStore) HasActiveTemplateForEntity(ctx context.Context, entityType string, entityID uint, titlePart string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Alert{}).
		Where("entity_type = ? AND entity_id = ? AND is_recurring = ? AND active = ? AND title LIKE ?",
			entityType, entityID, true, true, "%"+titlePart+"%").
		Count(&count).Error
	return count > 0, err
}

func (s *gormStore) GetHive(ctx context.Context, id uint) (*models.Hive, error) {
	var h models.Hive
	if err := s.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *gormStore) GetSwarm(ctx context.Context, id uint) (*models.Swarm, error) {
	var sw models.Swarm
	if err := s.db.WithContext(ctx).First(&sw, id).Error; err != nil {
		return nil, err
	}
	return &sw, nil
}

func (s *gormStore) GetNucleus(ctx context.Context, id uint) (*models.Nucleus, error) {
	var n models.Nucleus
	if err := s.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *gormStore) TouchHiveLastAlert(ctx context.Context, id uint, at time.Time) error {
	return s.db.WithContext(ctx).Model(&models.Hive{}).
		Where("id = ?", id).
		Update("last_control_alert_at", at).Error
}

func (s *gormStore) TouchSwarmLastAlert(ctx context.Context, id uint, at time.Time) error {
	return s.db.WithContext(ctx).Model(&models.Swarm{}).
		Where("id = ?", id).
		Update("last_control_alert_at", at).Error
}

func (s *gormStore) TouchNucleusLastAlert(ctx context.Context, id uint, at time.Time) error {
	return s.db.WithContext(ctx).Model(&models.Nucleus{}).
		Where("id = ?", id).
		Update("last_control_alert_at", at).Error
}

func (s *gormStore) ActiveHivesWithQueen(ctx context.Context) ([]models.Hive, error) {
	var hives []models.Hive
	err := s.db.WithContext(ctx).
		Preload("Apiary").
		Where("status = ? AND queen_date IS NOT NULL", models.HiveStatusActive).
		Find(&hives).Error
	return hives, err
}

func (s *gormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *gormStore) CreateActivity(ctx context.Context, act *models.Activity) error {
	return s.db.WithContext(ctx).Create(act).Error
}
