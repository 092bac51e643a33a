package models

import "time"

type Apiary struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion"`

	Name       string `gorm:"not null" json:"nombre"`
	City       string `json:"ciudad"`
	Country    string `json:"pais"`
	Address    string `json:"direccion"`
	Directions string `gorm:"type:text" json:"comoLlegar,omitempty"`
	ImageURL   string `json:"imagenApiario,omitempty"`
	UserID     uint   `gorm:"index" json:"usuarioId"`
}
