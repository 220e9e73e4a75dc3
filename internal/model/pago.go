package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Métodos de pago. El checkout actual registra exactamente un pago EFECTIVO
// por el total de la venta; los demás métodos existen en el enum para los
// registros históricos y futuras extensiones.
const (
	MetodoEfectivo      = "EFECTIVO"
	MetodoTarjeta       = "TARJETA"
	MetodoTransferencia = "TRANSFERENCIA"
)

// Pago is a settlement record tied to a Venta.
type Pago struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MetodoPago string          `gorm:"type:varchar(20);not null"`
	Monto      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Referencia *string
	CreatedAt  time.Time
}
