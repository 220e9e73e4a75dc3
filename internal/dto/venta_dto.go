package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemCarritoRequest is one cart line as the client last saw it: the unit
// price is the client-observed precio_venta at cart-build time and is what
// gets frozen into the DetalleVenta.
type ItemCarritoRequest struct {
	ProductoID     string          `json:"producto_id"     validate:"required,uuid"`
	Cantidad       int             `json:"cantidad"        validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
}

// CompletarVentaRequest is bound from POST /v1/ventas.
// Subtotal and Total are precomputed client-side by summing line totals; the
// service persists them as-is (reconciliation is the caller's responsibility).
type CompletarVentaRequest struct {
	SucursalID string               `json:"sucursal_id" validate:"required,uuid"`
	Items      []ItemCarritoRequest `json:"items"       validate:"required,min=1,dive"`
	Subtotal   decimal.Decimal      `json:"subtotal"    validate:"required"`
	Total      decimal.Decimal      `json:"total"       validate:"required"`
	// ClienteEmail: optional — when present, the recibo worker mails the PDF.
	ClienteEmail *string `json:"cliente_email" validate:"omitempty,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// CompletarVentaResponse is the checkout result surfaced to the UI for the
// receipt / success state.
type CompletarVentaResponse struct {
	VentaID string          `json:"venta_id"`
	Fecha   string          `json:"fecha"` // RFC 3339
	Total   decimal.Decimal `json:"total"`
}

// DetalleVentaResponse is one line of a sale as returned to clients.
type DetalleVentaResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto,omitempty"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	TotalLinea     decimal.Decimal `json:"total_linea"`
}

// ReembolsoResponse is returned by POST /v1/ventas/{id}/reembolso.
type ReembolsoResponse struct {
	VentaID  string                 `json:"venta_id"`
	Detalles []DetalleVentaResponse `json:"detalles"`
}

type PagoResponse struct {
	MetodoPago string          `json:"metodo_pago"`
	Monto      decimal.Decimal `json:"monto"`
	Referencia *string         `json:"referencia,omitempty"`
}

// VentaResponse is the full sale detail for GET /v1/ventas/{id}.
type VentaResponse struct {
	ID        string                 `json:"id"`
	Fecha     string                 `json:"fecha"`
	Subtotal  decimal.Decimal        `json:"subtotal"`
	Descuento decimal.Decimal        `json:"descuento"`
	Total     decimal.Decimal        `json:"total"`
	Estado    string                 `json:"estado"`
	TipoVenta string                 `json:"tipo_venta"`
	Detalles  []DetalleVentaResponse `json:"detalles"`
	Pagos     []PagoResponse         `json:"pagos"`
}

// ─── Filter / List ──────────────────────────────────────────────────────────

// VentaFilter is bound from the query string of GET /v1/ventas.
type VentaFilter struct {
	Fecha  string `form:"fecha"`  // YYYY-MM-DD; empty = today
	Estado string `form:"estado"` // PAGADA | REEMBOLSO | all (default PAGADA)
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
