package models

import "time"

// Activity is the audit feed entry written alongside alert creation and
// entity changes.
type Activity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"fecha"`

	Type        string `gorm:"size:20" json:"tipo"`
	Title       string `json:"titulo"`
	Description string `gorm:"type:text" json:"descripcion"`
	EntityType  string `gorm:"size:20" json:"entidadTipo"`
	EntityID    uint   `json:"entidadId"`
	EntityName  string `json:"entidadNombre"`
	Status      string `gorm:"size:10" json:"estado"` // "success" | "warning"
	UserID      uint   `gorm:"index" json:"usuarioId"`
}
