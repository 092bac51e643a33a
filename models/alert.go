package models

import "time"

// Alert kinds, stored as the Spanish values the frontend and the email
// templates expect.
const (
	AlertKindInspection     = "inspeccion"
	AlertKindProduction     = "produccion"
	AlertKindSanitary       = "sanidad"
	AlertKindMaintenance    = "mantenimiento"
	AlertKindRoutineControl = "control_rutinario"
	AlertKindOther          = "otros"
)

const (
	AlertPriorityLow      = "baja"
	AlertPriorityMedium   = "media"
	AlertPriorityHigh     = "alta"
	AlertPriorityCritical = "critica"
)

// Monitored entity types a recurring template can be linked to.
const (
	EntityHive    = "colmena"
	EntitySwarm   = "enjambre"
	EntityNucleus = "nucleo"
)

// Alert is both the user-visible alert row and, when IsRecurring is true,
// a recurrence template. A template is never shown as an actionable alert;
// each time it comes due the engine copies its content into a new
// non-recurring row and advances NextDueAt.
type Alert struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion"`

	Title    string `gorm:"not null" json:"titulo"`
	Message  string `gorm:"type:text" json:"mensaje"`
	Kind     string `gorm:"size:30;index" json:"tipo"`
	Priority string `gorm:"size:10" json:"prioridad"`
	Read     bool   `gorm:"default:false" json:"leida"`
	UserID   uint   `gorm:"index" json:"usuarioId"`

	// Recurrence fields, only meaningful on template rows.
	IsRecurring   bool       `gorm:"default:false;index" json:"esRecurrente"`
	FrequencyDays int        `json:"frecuenciaDias,omitempty"`
	EntityType    string     `gorm:"size:20;index" json:"entidadTipo,omitempty"`
	EntityID      uint       `gorm:"index" json:"entidadId,omitempty"`
	NextDueAt     *time.Time `json:"proximaEjecucion,omitempty"`
	LastFiredAt   *time.Time `json:"ultimaEjecucion,omitempty"`
	Active        bool       `gorm:"default:false" json:"activa"`
}

func ValidAlertKind(k string) bool {
	switch k {
	case AlertKindInspection, AlertKindProduction, AlertKindSanitary,
		AlertKindMaintenance, AlertKindRoutineControl, AlertKindOther:
		return true
	}
	return false
}

func ValidAlertPriority(p string) bool {
	switch p {
	case AlertPriorityLow, AlertPriorityMedium, AlertPriorityHigh, AlertPriorityCritical:
		return true
	}
	return false
}
