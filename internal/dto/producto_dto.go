package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	SucursalID   string          `json:"sucursal_id"   validate:"required,uuid"`
	CodigoBarras *string         `json:"codigo_barras" validate:"omitempty,min=8,max=14"`
	Nombre       string          `json:"nombre"        validate:"required,min=2,max=120"`
	Descripcion  *string         `json:"descripcion"`
	Categoria    string          `json:"categoria"     validate:"required"`
	PrecioCompra decimal.Decimal `json:"precio_compra" validate:"min=0"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"  validate:"required"`
	Cantidad     int             `json:"cantidad"      validate:"min=0"`
	StockMinimo  int             `json:"stock_minimo"  validate:"min=0"`
}

type ActualizarProductoRequest struct {
	Nombre       string          `json:"nombre"        validate:"required,min=2,max=120"`
	Descripcion  *string         `json:"descripcion"`
	Categoria    string          `json:"categoria"     validate:"required"`
	PrecioCompra decimal.Decimal `json:"precio_compra" validate:"min=0"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"  validate:"required"`
	StockMinimo  int             `json:"stock_minimo"  validate:"min=0"`
}

// AjustarStockRequest is bound from PATCH /v1/productos/{id}/stock.
// Delta may be negative; Motivo is recorded in the AJUSTE movimiento.
type AjustarStockRequest struct {
	Delta  int    `json:"delta"  validate:"required"`
	Motivo string `json:"motivo" validate:"required,min=5"`
}

type ProductoResponse struct {
	ID           string          `json:"id"`
	SucursalID   string          `json:"sucursal_id"`
	CodigoBarras *string         `json:"codigo_barras,omitempty"`
	Nombre       string          `json:"nombre"`
	Descripcion  *string         `json:"descripcion,omitempty"`
	Categoria    string          `json:"categoria"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	Cantidad     int             `json:"cantidad"`
	StockMinimo  int             `json:"stock_minimo"`
	Activo       bool            `json:"activo"`
}

// ProductoFilter is bound from the query string of GET /v1/productos.
type ProductoFilter struct {
	Nombre    string `form:"nombre"`
	Categoria string `form:"categoria"`
	Barcode   string `form:"barcode"`
	Activo    string `form:"activo"` // "false" | "all" | default activos
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// ConsultaPrecioResponse is served by the public price-check endpoint.
type ConsultaPrecioResponse struct {
	Nombre          string          `json:"nombre"`
	PrecioVenta     decimal.Decimal `json:"precio_venta"`
	StockDisponible int             `json:"stock_disponible"`
	Categoria       string          `json:"categoria"`
}
