package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is the catalog entry. Cantidad is the live stock level — the only
// mutable shared field in the system. It is never written with a
// read-modify-write cycle: all adjustments go through
// ProductoRepository.AjustarStockTx, which issues a server-side atomic
// increment.
type Producto struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NegocioID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SucursalID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CodigoBarras *string   `gorm:"uniqueIndex"`
	Nombre       string    `gorm:"index;not null"`
	Descripcion  *string
	Categoria    string          `gorm:"index;not null"`
	PrecioCompra decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioVenta  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Cantidad     int             `gorm:"not null;default:0"`
	StockMinimo  int             `gorm:"not null;default:5"`
	Activo       bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
