package models

import "time"

const (
	NucleusStatusNew     = "Nuevo"
	NucleusStatusGood    = "Bueno"
	NucleusStatusRegular = "Regular"
	NucleusStatusBad     = "Malo"
)

type Nucleus struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion"`

	Number      int       `json:"numero"`
	Type        string    `json:"tipo"`
	Status      string    `gorm:"size:15;default:Nuevo" json:"estado"`
	InstalledAt time.Time `json:"fechaInstalacion"`

	RecurringAlertsEnabled bool       `gorm:"default:true" json:"alertasRecurrentesActivadas"`
	LastControlAlertAt     *time.Time `json:"ultimaAlertaControl,omitempty"`

	HiveID uint `gorm:"index" json:"colmenaId"`
	UserID uint `gorm:"index" json:"usuarioId"`
}
