package models

import "time"

const (
	HiveStatusActive    = "activa"
	HiveStatusInactive  = "inactiva"
	HiveStatusAbandoned = "abandonada"
)

type Hive struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion"`

	Name        string    `gorm:"not null" json:"nombre"`
	Status      string    `gorm:"size:15;default:activa;index" json:"estado"`
	InstalledAt time.Time `json:"fechaInstalacion"`
	Frames      *int      `json:"cuadros,omitempty"`
	HasQueen    *bool     `json:"reyna,omitempty"`
	QueenType   string    `json:"tipoReyna,omitempty"`
	// Queen installation date, drives the replacement milestone alerts.
	QueenDate *time.Time `json:"fechaReyna,omitempty"`

	RecurringAlertsEnabled bool       `gorm:"default:true" json:"alertasRecurrentesActivadas"`
	LastControlAlertAt     *time.Time `json:"ultimaAlertaControl,omitempty"`

	UserID   uint   `gorm:"index" json:"usuarioId"`
	ApiaryID uint   `gorm:"index" json:"apiarioId"`
	Apiary   Apiary `gorm:"foreignKey:ApiaryID" json:"apiario,omitempty"`
}
