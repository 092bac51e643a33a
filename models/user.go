package models

import "time"

const (
	RoleBeekeeper = "apicultor"
	RoleAdmin     = "administrador"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"fechaRegistro"`
	UpdatedAt time.Time `json:"-"`

	Name               string     `gorm:"not null" json:"nombre"`
	Email              string     `gorm:"uniqueIndex;not null" json:"email"`
	Password           string     `gorm:"not null" json:"-"`
	Role               string     `gorm:"size:20;default:apicultor" json:"rol"`
	Active             bool       `gorm:"default:true" json:"activo"`
	Currency           string     `gorm:"size:3;default:COP" json:"moneda"`
	AlertsEnabled      bool       `gorm:"default:true" json:"alertasActivadas"`
	EmailNotifications bool       `gorm:"default:true" json:"notificacionesEmail"`
	Language           string     `gorm:"size:5;default:es" json:"idioma"`
	LastAccessAt       *time.Time `json:"ultimoAcceso,omitempty"`
}
