package models

import "time"

const (
	SanitaryStatusHealthy    = "sana"
	SanitaryStatusDiseased   = "enferma"
	SanitaryStatusQuarantine = "cuarentena"
)

// Level values used for population and production readings.
const (
	LevelLow    = "Baja"
	LevelMedium = "Media"
	LevelHigh   = "Alta"
)

type Inspection struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion"`

	Date           time.Time `json:"fecha"`
	SanitaryStatus string    `gorm:"size:15" json:"estadoSanidad"`
	Treatments     string    `gorm:"type:text" json:"tratamientos,omitempty"`
	Population     string    `gorm:"size:10" json:"poblacion,omitempty"`
	Production     string    `gorm:"size:10" json:"produccion,omitempty"`
	Observations   string    `gorm:"type:text" json:"observaciones,omitempty"`

	HiveID uint `gorm:"index" json:"colmenaId"`
	UserID uint `gorm:"index" json:"usuarioId"`
	Hive   Hive `gorm:"foreignKey:HiveID" json:"colmena,omitempty"`
}
