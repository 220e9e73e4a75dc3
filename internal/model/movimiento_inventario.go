package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de movimiento de inventario.
const (
	MovimientoEntrada = "ENTRADA"
	MovimientoSalida  = "SALIDA"
	MovimientoAjuste  = "AJUSTE"
)

// MovimientoInventario is an immutable entry in the stock audit ledger.
// One SALIDA per cart item at checkout, one ENTRADA per restored line at
// refund, one AJUSTE per manual correction. Rows are NEVER updated or
// deleted — corrections append new entries.
type MovimientoInventario struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SucursalID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UsuarioID     uuid.UUID `gorm:"type:uuid;not null"`
	Tipo          string    `gorm:"type:varchar(20);not null"`
	Cantidad      int       `gorm:"not null"` // always positive; Tipo carries the direction
	StockAnterior int       `gorm:"not null"`
	StockNuevo    int       `gorm:"not null"`
	Motivo        string
	// ReferenciaID links back to the originating Venta when applicable.
	ReferenciaID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

// TableName overrides GORM's default pluralization.
func (MovimientoInventario) TableName() string { return "movimientos_inventario" }
