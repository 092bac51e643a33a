package models

import "time"

const (
	ProductHoney   = "miel"
	ProductWax     = "cera"
	ProductPollen  = "polen"
	ProductPropoli = "propoleo"
)

type ProductionBatch struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion"`

	Date         time.Time `json:"fecha"`
	ProductType  string    `gorm:"size:20" json:"tipoProducto"`
	Quantity     float64   `json:"cantidad"`
	Unit         string    `gorm:"size:10" json:"unidad"`
	Quality      string    `json:"calidad,omitempty"`
	Lot          string    `json:"lote,omitempty"`
	Destination  string    `json:"destino,omitempty"`
	Observations string    `gorm:"type:text" json:"observaciones,omitempty"`

	HiveID   uint `gorm:"index" json:"colmenaId"`
	ApiaryID uint `gorm:"index" json:"apiarioId"`
	UserID   uint `gorm:"index" json:"usuarioId"`
}

func ValidProductType(p string) bool {
	switch p {
	case ProductHoney, ProductWax, ProductPollen, ProductPropoli:
		return true
	}
	return false
}
