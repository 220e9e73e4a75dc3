package model

import (
	"time"

	"github.com/google/uuid"
)

// Negocio is the tenant: every producto, venta y movimiento belongs to one.
type Negocio struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	RFC       *string
	Telefono  *string
	Direccion *string
	Activo    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sucursal is a physical branch under a Negocio. Stock and ventas are scoped
// per sucursal.
type Sucursal struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NegocioID uuid.UUID `gorm:"type:uuid;not null;index"`
	Nombre    string    `gorm:"not null"`
	Direccion *string
	Activo    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Negocio *Negocio `gorm:"foreignKey:NegocioID"`
}

// TableName overrides GORM's default pluralization (sucursals → sucursales).
func (Sucursal) TableName() string { return "sucursales" }
