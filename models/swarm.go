package models

import "time"

const (
	SwarmStatusActive   = "activo"
	SwarmStatusInactive = "inactivo"
	SwarmStatusDivided  = "dividido"
	SwarmStatusMerged   = "fusionado"
)

type Swarm struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion"`

	Name   string `gorm:"not null" json:"nombre"`
	Status string `gorm:"size:15;default:activo;index" json:"estado"`
	Notes  string `gorm:"type:text" json:"notas,omitempty"`

	RecurringAlertsEnabled bool       `gorm:"default:true" json:"alertasRecurrentesActivadas"`
	LastControlAlertAt     *time.Time `json:"ultimaAlertaControl,omitempty"`

	HiveID uint `gorm:"index" json:"colmenaId"`
	UserID uint `gorm:"index" json:"usuarioId"`
}
