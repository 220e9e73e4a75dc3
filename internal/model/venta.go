package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de una venta. El flujo de checkout crea ventas directamente en
// PAGADA (cobro completo al momento). La única transición soportada desde
// ahí es PAGADA → REEMBOLSO.
const (
	EstadoPendiente = "PENDIENTE"
	EstadoPagada    = "PAGADA"
	EstadoCancelada = "CANCELADA"
	EstadoReembolso = "REEMBOLSO"
	EstadoEnProceso = "EN_PROCESO"
)

const (
	TipoVentaContado = "CONTADO"
	TipoVentaCredito = "CREDITO"
)

// Venta is the sale header. Child records (Detalles, Pagos) are created in the
// same transaction and reference it by VentaID. A Venta is never physically
// deleted — refunds flip Estado and append compensating movimientos.
type Venta struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NegocioID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	SucursalID uuid.UUID       `gorm:"type:uuid;not null;index"`
	UsuarioID  uuid.UUID       `gorm:"type:uuid;not null"`
	Fecha      time.Time       `gorm:"not null;index"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Descuento  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estado     string          `gorm:"type:varchar(20);not null;index"`
	TipoVenta  string          `gorm:"type:varchar(20);not null;default:'CONTADO'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Detalles []DetalleVenta `gorm:"foreignKey:VentaID"`
	Pagos    []Pago         `gorm:"foreignKey:VentaID"`
}
