package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johpaz/apiGestion-api/models"
)

// fakeStore is an in-memory Store for exercising the alert engine without a
// database. Individual operations can be forced to fail.
type fakeStore struct {
	mu sync.Mutex

	alerts   []models.Alert
	nextID   uint
	hives    map[uint]*models.Hive
	swarms   map[uint]*models.Swarm
	nuclei   map[uint]*models.Nucleus
	users    map[uint]*models.User
	activity []models.Activity

	failCreateAlert    bool
	failCreateForTitle string
	failGetHive        bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		hives:  make(map[uint]*models.Hive),
		swarms: make(map[uint]*models.Swarm),
		nuclei: make(map[uint]*models.Nucleus),
		users:  make(map[uint]*models.User),
	}
}

var errStore = errors.New("store unavailable")

func (f *fakeStore) CreateAlert(ctx context.Context, a *models.Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreateAlert {
		return errStore
	}
	if f.failCreateForTitle != "" && strings.Contains(a.Title, f.failCreateForTitle) {
		return errStore
	}
	f.nextID++
	a.ID = f.nextID
	a.CreatedAt = time.Now()
	f.alerts = append(f.alerts, *a)
	return nil
}

func (f *fakeStore) DueTemplates(ctx context.Context, now time.Time) ([]models.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var due []models.Alert
	for _, a := range f.alerts {
		if a.IsRecurring && a.Active && a.NextDueAt != nil && !a.NextDueAt.After(now) {
			due = append(due, a)
		}
	}
	return due, nil
}

func (f *fakeStore) AdvanceTemplate(ctx context.Context, id uint, lastFired, nextDue time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.alerts {
		if f.alerts[i].ID == id {
			lf, nd := lastFired, nextDue
			f.alerts[i].LastFiredAt = &lf
			f.alerts[i].NextDueAt = &nd
			return nil
		}
	}
	return errStore
}

func (f *fakeStore) DeactivateTemplate(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.alerts {
		if f.alerts[i].ID == id {
			f.alerts[i].Active = false
			return nil
		}
	}
	return errStore
}

func (f *fakeStore) MarkAlertRead(ctx context.Context, id, userID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.alerts {
		if f.alerts[i].ID == id && f.alerts[i].UserID == userID {
			f.alerts[i].Read = true
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) AlertsByUser(ctx context.Context, userID uint, limit int) ([]models.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Alert
	for _, a := range f.alerts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) HasRecentAlertForEntity(ctx context.Context, entityType string, entityID uint, titlePart string, since time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.alerts {
		if a.EntityType == entityType && a.EntityID == entityID &&
			strings.Contains(a.Title, titlePart) && !a.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) HasActiveTemplateForEntity(ctx context.Context, entityType string, entityID uint, titlePart string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.alerts {
		if a.IsRecurring && a.Active && a.EntityType == entityType &&
			a.EntityID == entityID && strings.Contains(a.Title, titlePart) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) GetHive(ctx context.Context, id uint) (*models.Hive, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGetHive {
		return nil, errStore
	}
	h, ok := f.hives[id]
	if !ok {
		return nil, errStore
	}
	cp := *h
	return &cp, nil
}

func (f *fakeStore) GetSwarm(ctx context.Context, id uint) (*models.Swarm, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.swarms[id]
	if !ok {
		return nil, errStore
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStore) GetNucleus(ctx context.Context, id uint) (*models.Nucleus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.nuclei[id]
	if !ok {
		return nil, errStore
	}
	cp := *n
	return &cp, nil
}

func (f *fakeStore) TouchHiveLastAlert(ctx context.Context, id uint, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if h, ok := f.hives[id]; ok {
		t := at
		h.LastControlAlertAt = &t
		return nil
	}
	return errStore
}

func (f *fakeStore) TouchSwarmLastAlert(ctx context.Context, id uint, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.swarms[id]; ok {
		t := at
		s.LastControlAlertAt = &t
		return nil
	}
	return errStore
}

func (f *fakeStore) TouchNucleusLastAlert(ctx context.Context, id uint, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n, ok := f.nuclei[id]; ok {
		t := at
		n.LastControlAlertAt = &t
		return nil
	}
	return errStore
}

func (f *fakeStore) ActiveHivesWithQueen(ctx context.Context) ([]models.Hive, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Hive
	for _, h := range f.hives {
		if h.Status == models.HiveStatusActive && h.QueenDate != nil {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (f *fakeStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, errStore
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) CreateActivity(ctx context.Context, act *models.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activity = append(f.activity, *act)
	return nil
}

func (f *fakeStore) storedAlerts() []models.Alert {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Alert, len(f.alerts))
	copy(out, f.alerts)
	return out
}

func (f *fakeStore) templateByID(id uint) *models.Alert {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.alerts {
		if f.alerts[i].ID == id {
			cp := f.alerts[i]
			return &cp
		}
	}
	return nil
}

// fakeMailer records every send and can be told to fail.
type fakeMailer struct {
	mu    sync.Mutex
	sends []string
	fail  bool
}

func (m *fakeMailer) SendEmail(to, subject, htmlBody string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends = append(m.sends, subject)
	return !m.fail
}

func (m *fakeMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sends)
}

func newTestService(store Store, mailer Mailer, now time.Time) *AlertService {
	svc := NewAlertService(store, mailer, nil, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestCreateAlertSendsEmailOnlyForHighPriorities(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		priority      string
		notifications bool
		wantSends     int
	}{
		{"baja", models.AlertPriorityLow, true, 0},
		{"media", models.AlertPriorityMedium, true, 0},
		{"alta", models.AlertPriorityHigh, true, 1},
		{"critica", models.AlertPriorityCritical, true, 1},
		// Delivery is attempted for every high/critical alert; the stored
		// email preference does not gate the alert path.
		{"alta preferencia desactivada", models.AlertPriorityHigh, false, 1},
		{"critica preferencia desactivada", models.AlertPriorityCritical, false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.users[1] = &models.User{ID: 1, Name: "Ana", Email: "ana@example.com", EmailNotifications: tt.notifications}
			mailer := &fakeMailer{}
			svc := newTestService(store, mailer, now)

			alert, err := svc.CreateAlert(ctx, CreateAlertInput{
				Title:    "Revisión pendiente",
				Message:  "Detalle",
				Kind:     models.AlertKindInspection,
				Priority: tt.priority,
				UserID:   1,
			})
			require.NoError(t, err)
			assert.NotZero(t, alert.ID)
			assert.Equal(t, tt.wantSends, mailer.sentCount())
		})
	}
}

func TestCreateAlertMailerFailureDoesNotFailCreation(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.users[1] = &models.User{ID: 1, Name: "Ana", Email: "ana@example.com", EmailNotifications: true}
	mailer := &fakeMailer{fail: true}
	svc := newTestService(store, mailer, time.Now())

	alert, err := svc.CreateAlert(ctx, CreateAlertInput{
		Title:    "Alerta crítica",
		Message:  "Detalle",
		Kind:     models.AlertKindSanitary,
		Priority: models.AlertPriorityCritical,
		UserID:   1,
	})
	require.NoError(t, err)
	assert.NotZero(t, alert.ID)
	assert.Equal(t, 1, mailer.sentCount())
}

func TestCreateAlertStoreFailurePropagates(t *testing.T) {
	store := newFakeStore()
	store.failCreateAlert = true
	svc := newTestService(store, nil, time.Now())

	_, err := svc.CreateAlert(context.Background(), CreateAlertInput{
		Title: "x", Message: "y", Kind: models.AlertKindOther, Priority: models.AlertPriorityLow, UserID: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errStore)
}

func TestSeedRecurrenceForHive(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	svc := newTestService(store, nil, now)

	created, err := svc.SeedRecurrenceForEntity(context.Background(), models.EntityHive, 7, "Colmena Norte", 1)
	require.NoError(t, err)
	require.Len(t, created, 1)

	tpl := created[0]
	assert.True(t, tpl.IsRecurring)
	assert.True(t, tpl.Active)
	assert.Equal(t, 15, tpl.FrequencyDays)
	assert.Equal(t, models.EntityHive, tpl.EntityType)
	assert.Equal(t, uint(7), tpl.EntityID)
	assert.Equal(t, models.AlertKindRoutineControl, tpl.Kind)
	assert.Contains(t, tpl.Title, "Colmena Norte")
	require.NotNil(t, tpl.NextDueAt)
	assert.Equal(t, now.AddDate(0, 0, 15), *tpl.NextDueAt)
}

func TestSeedRecurrenceUnknownEntityType(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, nil, time.Now())

	created, err := svc.SeedRecurrenceForEntity(context.Background(), "invernadero", 1, "X", 1)
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Empty(t, store.storedAlerts())
}

func TestDeriveInspectionAlertsAllConditions(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, nil, time.Now())

	insp := &models.Inspection{
		SanitaryStatus: models.SanitaryStatusQuarantine,
		Treatments:     "ácido oxálico",
		Population:     models.LevelLow,
		Production:     models.LevelLow,
	}
	created := svc.DeriveInspectionAlerts(context.Background(), insp, "Colmena 3", 1)
	require.Len(t, created, 4)

	kinds := make([]string, 0, 4)
	priorities := make([]string, 0, 4)
	for _, a := range created {
		kinds = append(kinds, a.Kind)
		priorities = append(priorities, a.Priority)
	}
	assert.Equal(t, []string{
		models.AlertKindSanitary,
		models.AlertKindSanitary,
		models.AlertKindInspection,
		models.AlertKindProduction,
	}, kinds)
	assert.Equal(t, []string{
		models.AlertPriorityHigh,
		models.AlertPriorityMedium,
		models.AlertPriorityMedium,
		models.AlertPriorityLow,
	}, priorities)
}

func TestDeriveInspectionAlertsHealthyInspection(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, nil, time.Now())

	insp := &models.Inspection{
		SanitaryStatus: models.SanitaryStatusHealthy,
		Population:     models.LevelHigh,
		Production:     models.LevelMedium,
	}
	created := svc.DeriveInspectionAlerts(context.Background(), insp, "Colmena 3", 1)
	assert.Empty(t, created)
}

func TestDeriveInspectionAlertsFailureIsolation(t *testing.T) {
	store := newFakeStore()
	store.failCreateForTitle = "Problema de sanidad"
	svc := newTestService(store, nil, time.Now())

	insp := &models.Inspection{
		SanitaryStatus: models.SanitaryStatusDiseased,
		Population:     models.LevelLow,
	}
	created := svc.DeriveInspectionAlerts(context.Background(), insp, "Colmena 3", 1)
	require.Len(t, created, 1)
	assert.Equal(t, models.AlertKindInspection, created[0].Kind)
}

func TestSweepFiresDueTemplateAndAdvancesOneInterval(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	store.hives[7] = &models.Hive{ID: 7, Status: models.HiveStatusActive, RecurringAlertsEnabled: true}
	svc := newTestService(store, nil, now)

	due := now.Add(-time.Hour)
	tpl := &models.Alert{
		Title: "Control rutinario de colmena: Norte", Message: "m",
		Kind: models.AlertKindRoutineControl, Priority: models.AlertPriorityMedium,
		UserID: 1, IsRecurring: true, Active: true, FrequencyDays: 15,
		EntityType: models.EntityHive, EntityID: 7, NextDueAt: &due,
	}
	require.NoError(t, store.CreateAlert(ctx, tpl))

	fired, err := svc.SweepRecurringAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, fired, 1)
	assert.False(t, fired[0].IsRecurring)
	assert.Equal(t, tpl.Title, fired[0].Title)

	advanced := store.templateByID(tpl.ID)
	require.NotNil(t, advanced.NextDueAt)
	assert.Equal(t, due.AddDate(0, 0, 15), *advanced.NextDueAt)
	require.NotNil(t, advanced.LastFiredAt)
	assert.Equal(t, now, *advanced.LastFiredAt)

	require.NotNil(t, store.hives[7].LastControlAlertAt)
	assert.Equal(t, now, *store.hives[7].LastControlAlertAt)
}

func TestSweepAdvancesSingleStepAfterDowntime(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	store.hives[7] = &models.Hive{ID: 7, Status: models.HiveStatusActive, RecurringAlertsEnabled: true}
	svc := newTestService(store, nil, now)

	// Overdue by several intervals: three 15-day periods were missed.
	due := now.AddDate(0, 0, -50)
	tpl := &models.Alert{
		Title: "Control rutinario de colmena: Norte", Message: "m",
		Kind: models.AlertKindRoutineControl, Priority: models.AlertPriorityMedium,
		UserID: 1, IsRecurring: true, Active: true, FrequencyDays: 15,
		EntityType: models.EntityHive, EntityID: 7, NextDueAt: &due,
	}
	require.NoError(t, store.CreateAlert(ctx, tpl))

	fired, err := svc.SweepRecurringAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, fired, 1, "one sweep fires exactly once, never a burst")

	advanced := store.templateByID(tpl.ID)
	assert.Equal(t, due.AddDate(0, 0, 15), *advanced.NextDueAt)
	assert.True(t, advanced.NextDueAt.Before(now), "still overdue, catches up one step per sweep")

	// Next sweep fires again and advances another single step.
	fired, err = svc.SweepRecurringAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, fired, 1)
	advanced = store.templateByID(tpl.ID)
	assert.Equal(t, due.AddDate(0, 0, 30), *advanced.NextDueAt)
}

func TestSweepDeactivatesTemplateForIneligibleEntity(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := newFakeStore()
	store.hives[7] = &models.Hive{ID: 7, Status: models.HiveStatusInactive, RecurringAlertsEnabled: true}
	svc := newTestService(store, nil, now)

	due := now.Add(-time.Hour)
	tpl := &models.Alert{
		Title: "Control rutinario de colmena: Norte", Message: "m",
		Kind: models.AlertKindRoutineControl, Priority: models.AlertPriorityMedium,
		UserID: 1, IsRecurring: true, Active: true, FrequencyDays: 15,
		EntityType: models.EntityHive, EntityID: 7, NextDueAt: &due,
	}
	require.NoError(t, store.CreateAlert(ctx, tpl))

	fired, err := svc.SweepRecurringAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, fired)

	deactivated := store.templateByID(tpl.ID)
	assert.False(t, deactivated.Active, "template is deactivated, not deleted")
	assert.Len(t, store.storedAlerts(), 1, "no alert fired for ineligible entity")
}

func TestSweepEligibilityErrorTreatedAsIneligible(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := newFakeStore()
	store.failGetHive = true
	svc := newTestService(store, nil, now)

	due := now.Add(-time.Hour)
	tpl := &models.Alert{
		Title: "Control rutinario de colmena: Norte", Message: "m",
		Kind: models.AlertKindRoutineControl, Priority: models.AlertPriorityMedium,
		UserID: 1, IsRecurring: true, Active: true, FrequencyDays: 15,
		EntityType: models.EntityHive, EntityID: 7, NextDueAt: &due,
	}
	require.NoError(t, store.CreateAlert(ctx, tpl))

	fired, err := svc.SweepRecurringAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, fired)
	assert.False(t, store.templateByID(tpl.ID).Active)
}

func TestSweepNucleusIgnoresRecurringAlertsFlag(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := newFakeStore()
	store.nuclei[3] = &models.Nucleus{ID: 3, Status: models.NucleusStatusGood, RecurringAlertsEnabled: false}
	svc := newTestService(store, nil, now)

	due := now.Add(-time.Hour)
	tpl := &models.Alert{
		Title: "Control rutinario de núcleo: 3", Message: "m",
		Kind: models.AlertKindRoutineControl, Priority: models.AlertPriorityMedium,
		UserID: 1, IsRecurring: true, Active: true, FrequencyDays: 15,
		EntityType: models.EntityNucleus, EntityID: 3, NextDueAt: &due,
	}
	require.NoError(t, store.CreateAlert(ctx, tpl))

	fired, err := svc.SweepRecurringAlerts(ctx)
	require.NoError(t, err)
	assert.Len(t, fired, 1, "nucleus eligibility depends on status only")
}

func TestSweepFailureIsolationBetweenTemplates(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := newFakeStore()
	store.hives[1] = &models.Hive{ID: 1, Status: models.HiveStatusActive, RecurringAlertsEnabled: true}
	store.swarms[2] = &models.Swarm{ID: 2, Status: models.SwarmStatusActive, RecurringAlertsEnabled: true}
	svc := newTestService(store, nil, now)

	due := now.Add(-time.Hour)
	broken := &models.Alert{
		Title: "Control rutinario de colmena: rota", Message: "m",
		Kind: models.AlertKindRoutineControl, Priority: models.AlertPriorityMedium,
		UserID: 1, IsRecurring: true, Active: true, FrequencyDays: 15,
		EntityType: models.EntityHive, EntityID: 1, NextDueAt: &due,
	}
	healthy := &models.Alert{
		Title: "Control rutinario de enjambre: sano", Message: "m",
		Kind: models.AlertKindRoutineControl, Priority: models.AlertPriorityMedium,
		UserID: 1, IsRecurring: true, Active: true, FrequencyDays: 15,
		EntityType: models.EntitySwarm, EntityID: 2, NextDueAt: &due,
	}
	require.NoError(t, store.CreateAlert(ctx, broken))
	require.NoError(t, store.CreateAlert(ctx, healthy))

	// Template copies fail only for the broken title.
	store.failCreateForTitle = "rota"

	fired, err := svc.SweepRecurringAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, fired, 1)
	assert.Contains(t, fired[0].Title, "sano")

	// The broken template was not advanced and stays due for the next sweep.
	assert.Equal(t, due, *store.templateByID(broken.ID).NextDueAt)
}

func queenTestHive(id uint, queenDate time.Time) *models.Hive {
	qd := queenDate
	return &models.Hive{
		ID:        id,
		Name:      "Norte",
		Status:    models.HiveStatusActive,
		QueenDate: &qd,
		UserID:    1,
		Apiary:    models.Apiary{Name: "Cerro Alto"},
	}
}

func TestQueenSweepTwoYearWindow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	store.hives[1] = queenTestHive(1, now.AddDate(0, -19, 0))
	svc := newTestService(store, nil, now)

	generated, err := svc.SweepQueenAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, generated, 1)
	assert.Contains(t, generated[0].Title, "Reemplazo de reina programado")
	assert.Equal(t, models.AlertPriorityHigh, generated[0].Priority)
	assert.Equal(t, models.AlertKindMaintenance, generated[0].Kind)
	assert.Equal(t, models.EntityHive, generated[0].EntityType)
	assert.Equal(t, uint(1), generated[0].EntityID)
}

func TestQueenSweepDedupesWithin24Hours(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	store.hives[1] = queenTestHive(1, now.AddDate(0, -19, 0))
	svc := newTestService(store, nil, now)

	first, err := svc.SweepQueenAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.SweepQueenAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, second, "repeated sweep within the dedupe window emits nothing")
}

func TestQueenSweepFiveYearWindow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	store.hives[1] = queenTestHive(1, now.AddDate(0, -58, 0))
	svc := newTestService(store, nil, now)

	generated, err := svc.SweepQueenAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, generated, 1)
	assert.Contains(t, generated[0].Title, "Reina de 5 años")
	assert.Equal(t, models.AlertPriorityCritical, generated[0].Priority)
}

func TestQueenSweepYoungQueenEmitsNothing(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	store.hives[1] = queenTestHive(1, now.AddDate(0, -6, 0))
	svc := newTestService(store, nil, now)

	generated, err := svc.SweepQueenAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, generated)
}

func TestQueenSweepMonthlyReminderTemplate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	// 23 months old: inside the 2y window and within a month of the milestone.
	store.hives[1] = queenTestHive(1, now.AddDate(0, -23, 0))
	svc := newTestService(store, nil, now)

	generated, err := svc.SweepQueenAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, generated, 2)

	var tpl *models.Alert
	for i := range generated {
		if generated[i].IsRecurring {
			tpl = &generated[i]
		}
	}
	require.NotNil(t, tpl, "monthly reminder template created")
	assert.Contains(t, tpl.Title, "Recordatorio mensual")
	assert.Equal(t, 30, tpl.FrequencyDays)
	assert.True(t, tpl.Active)

	// While the template stays active no duplicate is created.
	later := svc
	later.now = func() time.Time { return now.Add(25 * time.Hour) }
	again, err := later.SweepQueenAlerts(ctx)
	require.NoError(t, err)
	for _, a := range again {
		assert.False(t, a.IsRecurring, "no second reminder template while one is active")
	}
}

func TestMarkAsRead(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newTestService(store, nil, time.Now())

	alert := &models.Alert{Title: "t", UserID: 1}
	require.NoError(t, store.CreateAlert(ctx, alert))

	require.NoError(t, svc.MarkAsRead(ctx, alert.ID, 1))
	assert.True(t, store.templateByID(alert.ID).Read)
}

func TestMarkAsReadWrongOwner(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newTestService(store, nil, time.Now())

	alert := &models.Alert{Title: "t", UserID: 1}
	require.NoError(t, store.CreateAlert(ctx, alert))

	err := svc.MarkAsRead(ctx, alert.ID, 2)
	assert.ErrorIs(t, err, ErrAlertNotFound)
	assert.False(t, store.templateByID(alert.ID).Read, "row untouched on owner mismatch")
}

func TestListAlertsDefaultLimit(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newTestService(store, nil, time.Now())

	for i := 0; i < 60; i++ {
		require.NoError(t, store.CreateAlert(ctx, &models.Alert{Title: "t", UserID: 1}))
	}

	alerts, err := svc.ListAlerts(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, alerts, 50)
}

func TestSendEmailSkippedWithoutMailer(t *testing.T) {
	store := newFakeStore()
	store.users[1] = &models.User{ID: 1, Email: "ana@example.com", EmailNotifications: true}
	svc := newTestService(store, nil, time.Now())

	res := svc.sendAlertEmail(context.Background(), &models.Alert{UserID: 1, Priority: models.AlertPriorityHigh})
	assert.Equal(t, NotifySkipped, res)
}
