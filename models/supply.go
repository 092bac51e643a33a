package models

import "time"

const (
	StockOut    = "agotado"
	StockLow    = "stock_bajo"
	StockMedium = "stock_medio"
	StockGood   = "stock_bueno"
)

type Supply struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion"`

	Name        string     `gorm:"not null" json:"nombre"`
	Category    string     `gorm:"size:30" json:"categoria"`
	Description string     `gorm:"type:text" json:"descripcion,omitempty"`
	CurrentQty  float64    `json:"cantidadActual"`
	MinimumQty  float64    `json:"cantidadMinima"`
	Unit        string     `gorm:"size:10" json:"unidad"`
	UnitPrice   *float64   `json:"precioUnitario,omitempty"`
	Location    string     `json:"ubicacion,omitempty"`
	ExpiresAt   *time.Time `json:"fechaCaducidad,omitempty"`
	Lot         string     `json:"lote,omitempty"`
	Supplier    string     `json:"proveedor,omitempty"`
	Notes       string     `gorm:"type:text" json:"notas,omitempty"`
	UserID      uint       `gorm:"index" json:"usuarioId"`
}

// StockStatus derives the inventory state from current vs minimum quantity.
func (s *Supply) StockStatus() string {
	switch {
	case s.CurrentQty <= 0:
		return StockOut
	case s.CurrentQty <= s.MinimumQty:
		return StockLow
	case s.CurrentQty <= s.MinimumQty*2:
		return StockMedium
	default:
		return StockGood
	}
}
