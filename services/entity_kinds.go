package services

import (
	"context"
	"fmt"
	"time"

	"github.com/johpaz/apiGestion-api/models"
)

// entityKind bundles the per-kind operations the alert engine needs for a
// monitored entity: the routine-check text seeded at creation, the recurrence
// eligibility rule, and the "last control alert" touch. Adding a kind means
// adding one variant here and registering it, nothing else.
type entityKind interface {
	seedText(entityName string) (title, message string)
	eligible(ctx context.Context, store Store, id uint) (bool, error)
	touchLastAlert(ctx context.Context, store Store, id uint, at time.Time) error
}

var entityKinds = map[string]entityKind{
	models.EntityHive:    hiveKind{},
	models.EntitySwarm:   swarmKind{},
	models.EntityNucleus: nucleusKind{},
}

type hiveKind struct{}

func (hiveKind) seedText(name string) (string, string) {
	return fmt.Sprintf("Control rutinario de colmena: %s", name),
		fmt.Sprintf("Es momento de realizar el control rutinario de la colmena %s. Verifique el estado general, población, reina y producción.", name)
}

func (hiveKind) eligible(ctx context.Context, store Store, id uint) (bool, error) {
	h, err := store.GetHive(ctx, id)
	if err != nil {
		return false, err
	}
	return h.Status == models.HiveStatusActive && h.RecurringAlertsEnabled, nil
}

func (hiveKind) touchLastAlert(ctx context.Context, store Store, id uint, at time.Time) error {
	return store.TouchHiveLastAlert(ctx, id, at)
}

type swarmKind struct{}

func (swarmKind) seedText(name string) (string, string) {
	return fmt.Sprintf("Control rutinario de enjambre: %s", name),
		fmt.Sprintf("Es momento de verificar el desarrollo del enjambre %s. Controle la alimentación y comportamiento.", name)
}

func (swarmKind) eligible(ctx context.Context, store Store, id uint) (bool, error) {
	sw, err := store.GetSwarm(ctx, id)
	if err != nil {
		return false, err
	}
	return sw.Status == models.SwarmStatusActive && sw.RecurringAlertsEnabled, nil
}

func (swarmKind) touchLastAlert(ctx context.Context, store Store, id uint, at time.Time) error {
	return store.TouchSwarmLastAlert(ctx, id, at)
}

type nucleusKind struct{}

func (nucleusKind) seedText(name string) (string, string) {
	return fmt.Sprintf("Control rutinario de núcleo: %s", name),
		fmt.Sprintf("Es momento de inspeccionar el núcleo %s. Verifique el estado y cría.", name)
}

// Nuclei qualify by status alone; the recurring-alerts flag is not consulted
// for them (historical behavior the frontend depends on).
func (nucleusKind) eligible(ctx context.Context, store Store, id uint) (bool, error) {
	n, err := store.GetNucleus(ctx, id)
	if err != nil {
		return false, err
	}
	return n.Status == models.NucleusStatusNew || n.Status == models.NucleusStatusGood, nil
}

func (nucleusKind) touchLastAlert(ctx context.Context, store Store, id uint, at time.Time) error {
	return store.TouchNucleusLastAlert(ctx, id, at)
}
