package models

import "time"

const (
	FinanceIncome  = "ingreso"
	FinanceExpense = "egreso"
)

type FinanceRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion"`

	Date        time.Time `json:"fecha"`
	Type        string    `gorm:"size:10" json:"tipo"`
	Category    string    `gorm:"size:30" json:"categoria"`
	Description string    `json:"descripcion"`
	Amount      float64   `json:"monto"`
	Receipt     string    `json:"comprobante,omitempty"`
	UserID      uint      `gorm:"index" json:"usuarioId"`
}
