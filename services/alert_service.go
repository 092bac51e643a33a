package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johpaz/apiGestion-api/models"
	"github.com/johpaz/apiGestion-api/utils"
)

// ErrAlertNotFound is returned by MarkAsRead when no alert matches the id and
// owner, which also covers alerts owned by somebody else.
var ErrAlertNotFound = errors.New("alerta no encontrada")

const (
	routineCheckFrequencyDays    = 15
	monthlyReminderFrequencyDays = 30

	// Dedupe window for queen milestone alerts.
	queenDedupeWindow = 24 * time.Hour

	// These titles double as dedupe keys: the milestone sweeps look for
	// recent alerts whose title contains them. Creation and lookup share the
	// constants so they cannot drift apart.
	queenTwoYearTitle    = "Reemplazo de reina programado"
	queenFiveYearTitle   = "Reina de 5 años"
	monthlyReminderTitle = "Recordatorio mensual - Reemplazo de reina"
)

// NotifyResult reports what happened to a best-effort notification attempt.
// Failures never propagate; the engine logs the result instead.
type NotifyResult int

const (
	NotifySkipped NotifyResult = iota
	NotifySent
	NotifyFailed
)

func (r NotifyResult) String() string {
	switch r {
	case NotifySent:
		return "sent"
	case NotifyFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// Mailer is the outbound email channel. SendEmail must never panic or block
// indefinitely; false signals failure.
type Mailer interface {
	SendEmail(to, subject, htmlBody string) bool
}

// CreateAlertInput carries the content of a one-off alert. EntityType and
// EntityID are optional and link the alert to the monitored entity it is
// about; the queen milestone dedupe depends on them.
type CreateAlertInput struct {
	Title      string `json:"titulo" binding:"required"`
	Message    string `json:"mensaje" binding:"required"`
	Kind       string `json:"tipo" binding:"required"`
	Priority   string `json:"prioridad" binding:"required"`
	UserID     uint   `json:"-"`
	EntityType string `json:"-"`
	EntityID   uint   `json:"-"`
}

// RecurringAlertInput carries the content plus schedule of a template.
type RecurringAlertInput struct {
	Title         string
	Message       string
	Kind          string
	Priority      string
	UserID        uint
	FrequencyDays int
	EntityType    string
	EntityID      uint
}

// AlertService is the alert engine: it owns alert creation, the recurring
// templates seeded for monitored entities, the inspection-derived alerts and
// the two periodic sweeps the scheduler drives.
type AlertService struct {
	store  Store
	mailer Mailer
	hub    *RealtimeHub
	logger *zap.Logger
	now    func() time.Time
}

func NewAlertService(store Store, mailer Mailer, hub *RealtimeHub, logger *zap.Logger) *AlertService {
	return &AlertService{
		store:  store,
		mailer: mailer,
		hub:    hub,
		logger: logger.Named("alert-service"),
		now:    time.Now,
	}
}

// CreateAlert persists a one-off alert. High and critical alerts additionally
// trigger an email and every alert gets an activity entry; both side effects
// are best-effort and never fail the creation.
func (s *AlertService) CreateAlert(ctx context.Context, in CreateAlertInput) (*models.Alert, error) {
	alert := &models.Alert{
		Title:      in.Title,
		Message:    in.Message,
		Kind:       in.Kind,
		Priority:   in.Priority,
		UserID:     in.UserID,
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
	}
	if err := s.store.CreateAlert(ctx, alert); err != nil {
		s.logger.Error("Failed to create alert",
			zap.String("titulo", in.Title),
			zap.Error(err))
		return nil, fmt.Errorf("error al crear la alerta: %w", err)
	}

	if alert.Priority == models.AlertPriorityHigh || alert.Priority == models.AlertPriorityCritical {
		res := s.sendAlertEmail(ctx, alert)
		s.logger.Info("Alert email notification",
			zap.Uint("alerta_id", alert.ID),
			zap.String("resultado", res.String()))
	}

	activityStatus := "success"
	if alert.Priority == models.AlertPriorityHigh || alert.Priority == models.AlertPriorityCritical {
		activityStatus = "warning"
	}
	if err := s.store.CreateActivity(ctx, &models.Activity{
		Type:        "alerta",
		Title:       alert.Title,
		Description: alert.Message,
		EntityType:  "alerta",
		EntityID:    alert.ID,
		EntityName:  "Sistema de Alertas",
		Status:      activityStatus,
		UserID:      alert.UserID,
	}); err != nil {
		s.logger.Warn("Failed to record alert activity",
			zap.Uint("alerta_id", alert.ID),
			zap.Error(err))
	}

	if s.hub != nil {
		s.hub.BroadcastAlert(alert.UserID, alert)
	}

	return alert, nil
}

// CreateRecurringTemplate persists a recurrence schedule. The first firing is
// due FrequencyDays from now.
func (s *AlertService) CreateRecurringTemplate(ctx context.Context, in RecurringAlertInput) (*models.Alert, error) {
	nextDue := s.now().AddDate(0, 0, in.FrequencyDays)
	tpl := &models.Alert{
		Title:         in.Title,
		Message:       in.Message,
		Kind:          in.Kind,
		Priority:      in.Priority,
		UserID:        in.UserID,
		IsRecurring:   true,
		FrequencyDays: in.FrequencyDays,
		EntityType:    in.EntityType,
		EntityID:      in.EntityID,
		NextDueAt:     &nextDue,
		Active:        true,
	}
	if err := s.store.CreateAlert(ctx, tpl); err != nil {
		s.logger.Error("Failed to create recurring template",
			zap.String("entidad_tipo", in.EntityType),
			zap.Uint("entidad_id", in.EntityID),
			zap.Error(err))
		return nil, fmt.Errorf("error al crear la alerta recurrente: %w", err)
	}
	return tpl, nil
}

// SeedRecurrenceForEntity creates the routine-check template for a freshly
// created monitored entity. Unknown entity types seed nothing and are not an
// error.
func (s *AlertService) SeedRecurrenceForEntity(ctx context.Context, entityType string, entityID uint, entityName string, userID uint) ([]models.Alert, error) {
	kind, ok := entityKinds[entityType]
	if !ok {
		return nil, nil
	}

	title, message := kind.seedText(entityName)
	tpl, err := s.CreateRecurringTemplate(ctx, RecurringAlertInput{
		Title:         title,
		Message:       message,
		Kind:          models.AlertKindRoutineControl,
		Priority:      models.AlertPriorityMedium,
		UserID:        userID,
		FrequencyDays: routineCheckFrequencyDays,
		EntityType:    entityType,
		EntityID:      entityID,
	})
	if err != nil {
		return nil, err
	}
	return []models.Alert{*tpl}, nil
}

// DeriveInspectionAlerts evaluates an inspection and emits one alert per
// matching condition. Each creation failure is logged and skipped; only the
// successfully created alerts are returned.
func (s *AlertService) DeriveInspectionAlerts(ctx context.Context, insp *models.Inspection, hiveName string, userID uint) []models.Alert {
	if hiveName == "" {
		hiveName = "desconocida"
	}

	var candidates []CreateAlertInput

	if insp.SanitaryStatus == models.SanitaryStatusDiseased || insp.SanitaryStatus == models.SanitaryStatusQuarantine {
		msg := fmt.Sprintf("La colmena %s presenta problemas de sanidad. Estado: %s.", hiveName, insp.SanitaryStatus)
		if insp.Observations != "" {
			msg += " Observaciones: " + insp.Observations
		}
		candidates = append(candidates, CreateAlertInput{
			Title:    "Problema de sanidad detectado",
			Message:  msg,
			Kind:     models.AlertKindSanitary,
			Priority: models.AlertPriorityHigh,
			UserID:   userID,
		})
	}

	if strings.TrimSpace(insp.Treatments) != "" {
		candidates = append(candidates, CreateAlertInput{
			Title:    "Tratamiento aplicado",
			Message:  fmt.Sprintf("Se ha aplicado tratamiento en la colmena %s: %s", hiveName, insp.Treatments),
			Kind:     models.AlertKindSanitary,
			Priority: models.AlertPriorityMedium,
			UserID:   userID,
		})
	}

	if insp.Population == models.LevelLow {
		candidates = append(candidates, CreateAlertInput{
			Title:    "Población baja detectada",
			Message:  fmt.Sprintf("La colmena %s tiene población baja. Considere medidas para fortalecer la colmena.", hiveName),
			Kind:     models.AlertKindInspection,
			Priority: models.AlertPriorityMedium,
			UserID:   userID,
		})
	}

	if insp.Production == models.LevelLow {
		candidates = append(candidates, CreateAlertInput{
			Title:    "Producción baja detectada",
			Message:  fmt.Sprintf("La colmena %s muestra baja producción. Revise las condiciones de la colmena.", hiveName),
			Kind:     models.AlertKindProduction,
			Priority: models.AlertPriorityLow,
			UserID:   userID,
		})
	}

	var created []models.Alert
	for _, c := range candidates {
		alert, err := s.CreateAlert(ctx, c)
		if err != nil {
			s.logger.Error("Failed to create inspection alert",
				zap.String("titulo", c.Title),
				zap.Error(err))
			continue
		}
		created = append(created, *alert)
	}
	return created
}

// SweepRecurringAlerts fires every due active template once. Ineligible
// entities get their template deactivated instead. Each template is processed
// independently; one failure never aborts the sweep. The schedule advances by
// exactly one interval per firing, so after downtime a template fires once
// per sweep until it catches up rather than flooding.
func (s *AlertService) SweepRecurringAlerts(ctx context.Context) ([]models.Alert, error) {
	now := s.now()

	due, err := s.store.DueTemplates(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("error al generar alertas recurrentes: %w", err)
	}

	var fired []models.Alert
	for i := range due {
		tpl := &due[i]

		kind, ok := entityKinds[tpl.EntityType]
		eligible := false
		if ok {
			var elErr error
			eligible, elErr = kind.eligible(ctx, s.store, tpl.EntityID)
			if elErr != nil {
				s.logger.Warn("Entity eligibility check failed, treating as inactive",
					zap.Uint("plantilla_id", tpl.ID),
					zap.String("entidad_tipo", tpl.EntityType),
					zap.Uint("entidad_id", tpl.EntityID),
					zap.Error(elErr))
				eligible = false
			}
		}

		if !eligible {
			if err := s.store.DeactivateTemplate(ctx, tpl.ID); err != nil {
				s.logger.Error("Failed to deactivate template",
					zap.Uint("plantilla_id", tpl.ID),
					zap.Error(err))
			}
			continue
		}

		alert := &models.Alert{
			Title:    tpl.Title,
			Message:  tpl.Message,
			Kind:     tpl.Kind,
			Priority: tpl.Priority,
			UserID:   tpl.UserID,
		}
		if err := s.store.CreateAlert(ctx, alert); err != nil {
			// Template not advanced: it stays due and is retried next sweep.
			s.logger.Error("Failed to fire recurring alert",
				zap.Uint("plantilla_id", tpl.ID),
				zap.Error(err))
			continue
		}

		nextDue := tpl.NextDueAt.AddDate(0, 0, tpl.FrequencyDays)
		if err := s.store.AdvanceTemplate(ctx, tpl.ID, now, nextDue); err != nil {
			s.logger.Error("Failed to advance template",
				zap.Uint("plantilla_id", tpl.ID),
				zap.Error(err))
			continue
		}

		if err := kind.touchLastAlert(ctx, s.store, tpl.EntityID, now); err != nil {
			s.logger.Warn("Failed to update entity last control alert",
				zap.String("entidad_tipo", tpl.EntityType),
				zap.Uint("entidad_id", tpl.EntityID),
				zap.Error(err))
		}

		fired = append(fired, *alert)

		if tpl.Priority == models.AlertPriorityHigh || tpl.Priority == models.AlertPriorityCritical {
			res := s.sendAlertEmail(ctx, alert)
			s.logger.Info("Recurring alert email notification",
				zap.Uint("alerta_id", alert.ID),
				zap.String("resultado", res.String()))
		}

		if s.hub != nil {
			s.hub.BroadcastAlert(alert.UserID, alert)
		}
	}

	return fired, nil
}

// SweepQueenAlerts walks every active hive with a known queen installation
// date and emits the replacement milestone alerts: a fixed high-priority
// alert inside the 18-24 month window, a fixed critical alert inside the
// 57-60 month window, and a monthly reminder template during the last month
// before the two-year mark. Fixed alerts are deduped by title over a 24h
// window. Per-hive failures are logged and do not halt the pass.
func (s *AlertService) SweepQueenAlerts(ctx context.Context) ([]models.Alert, error) {
	now := s.now()

	hives, err := s.store.ActiveHivesWithQueen(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al generar alertas de reina: %w", err)
	}

	var generated []models.Alert
	for i := range hives {
		created, err := s.queenAlertsForHive(ctx, &hives[i], now)
		if err != nil {
			s.logger.Error("Queen alert pass failed for hive",
				zap.Uint("colmena_id", hives[i].ID),
				zap.Error(err))
			continue
		}
		generated = append(generated, created...)
	}
	return generated, nil
}

func (s *AlertService) queenAlertsForHive(ctx context.Context, hive *models.Hive, now time.Time) ([]models.Alert, error) {
	if hive.QueenDate == nil {
		return nil, nil
	}
	queenDate := *hive.QueenDate

	ageMonths := int(math.Floor(now.Sub(queenDate).Hours() / (24 * 30)))
	s.logger.Debug("Checking queen milestones",
		zap.Uint("colmena_id", hive.ID),
		zap.Int("edad_meses", ageMonths))

	twoYearDate := queenDate.AddDate(2, 0, 0)
	fiveYearDate := queenDate.AddDate(5, 0, 0)
	windowStart2y := queenDate.AddDate(0, 18, 0)
	windowStart5y := queenDate.AddDate(0, 57, 0)
	since := now.Add(-queenDedupeWindow)

	var created []models.Alert

	if !now.Before(windowStart2y) && now.Before(twoYearDate) {
		exists, err := s.store.HasRecentAlertForEntity(ctx, models.EntityHive, hive.ID, queenTwoYearTitle, since)
		if err != nil {
			return created, err
		}
		if !exists {
			alert, err := s.CreateAlert(ctx, CreateAlertInput{
				Title: fmt.Sprintf("%s: %s", queenTwoYearTitle, hive.Name),
				Message: fmt.Sprintf("La reina de la colmena %s en el apiario %s cumple 2 años en %s. Considere programar el reemplazo de la reina para mantener la productividad de la colmena.",
					hive.Name, hive.Apiary.Name, twoYearDate.Format("02/01/2006")),
				Kind:       models.AlertKindMaintenance,
				Priority:   models.AlertPriorityHigh,
				UserID:     hive.UserID,
				EntityType: models.EntityHive,
				EntityID:   hive.ID,
			})
			if err != nil {
				return created, err
			}
			created = append(created, *alert)
		}
	}

	if !now.Before(windowStart5y) && now.Before(fiveYearDate) {
		exists, err := s.store.HasRecentAlertForEntity(ctx, models.EntityHive, hive.ID, queenFiveYearTitle, since)
		if err != nil {
			return created, err
		}
		if !exists {
			alert, err := s.CreateAlert(ctx, CreateAlertInput{
				Title: fmt.Sprintf("%s: %s", queenFiveYearTitle, hive.Name),
				Message: fmt.Sprintf("La reina de la colmena %s en el apiario %s cumple 5 años en %s. Es altamente recomendable reemplazar la reina para evitar problemas de productividad y enjambrazón.",
					hive.Name, hive.Apiary.Name, fiveYearDate.Format("02/01/2006")),
				Kind:       models.AlertKindMaintenance,
				Priority:   models.AlertPriorityCritical,
				UserID:     hive.UserID,
				EntityType: models.EntityHive,
				EntityID:   hive.ID,
			})
			if err != nil {
				return created, err
			}
			created = append(created, *alert)
		}
	}

	monthsToTwoYears := int(math.Floor(twoYearDate.Sub(now).Hours() / (24 * 30)))
	if monthsToTwoYears >= 0 && monthsToTwoYears <= 1 {
		exists, err := s.store.HasActiveTemplateForEntity(ctx, models.EntityHive, hive.ID, monthlyReminderTitle)
		if err != nil {
			return created, err
		}
		if !exists {
			tpl, err := s.CreateRecurringTemplate(ctx, RecurringAlertInput{
				Title: fmt.Sprintf("%s: %s", monthlyReminderTitle, hive.Name),
				Message: fmt.Sprintf("Recordatorio mensual: La reina de la colmena %s cumple 2 años en %s (%d meses restantes). Planifique el reemplazo de la reina.",
					hive.Name, twoYearDate.Format("02/01/2006"), monthsToTwoYears),
				Kind:          models.AlertKindMaintenance,
				Priority:      models.AlertPriorityMedium,
				UserID:        hive.UserID,
				FrequencyDays: monthlyReminderFrequencyDays,
				EntityType:    models.EntityHive,
				EntityID:      hive.ID,
			})
			if err != nil {
				return created, err
			}
			created = append(created, *tpl)
		}
	}

	return created, nil
}

// MarkAsRead flags an alert as read for its owner. A mismatching id or owner
// yields ErrAlertNotFound and leaves the row untouched.
func (s *AlertService) MarkAsRead(ctx context.Context, alertID, userID uint) error {
	rows, err := s.store.MarkAlertRead(ctx, alertID, userID)
	if err != nil {
		return fmt.Errorf("error al marcar la alerta como leída: %w", err)
	}
	if rows == 0 {
		return ErrAlertNotFound
	}
	return nil
}

// ListAlerts returns the owner's alerts, newest first. A non-positive limit
// falls back to 50.
func (s *AlertService) ListAlerts(ctx context.Context, userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 50
	}
	alerts, err := s.store.AlertsByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error al obtener las alertas: %w", err)
	}
	return alerts, nil
}

// sendAlertEmail resolves the owner's address and pushes the alert through
// the mailer. All failure modes collapse into the result value.
func (s *AlertService) sendAlertEmail(ctx context.Context, alert *models.Alert) NotifyResult {
	if s.mailer == nil {
		return NotifySkipped
	}

	user, err := s.store.GetUser(ctx, alert.UserID)
	if err != nil {
		s.logger.Warn("Cannot resolve alert owner for email",
			zap.Uint("usuario_id", alert.UserID),
			zap.Error(err))
		return NotifySkipped
	}
	if user.Email == "" {
		s.logger.Warn("Alert owner has no email configured",
			zap.Uint("usuario_id", alert.UserID))
		return NotifySkipped
	}

	html := utils.RenderAlertEmail(alert, user.Name)
	subject := fmt.Sprintf("🚨 Alerta Crítica: %s", alert.Title)
	if s.mailer.SendEmail(user.Email, subject, html) {
		return NotifySent
	}
	return NotifyFailed
}
