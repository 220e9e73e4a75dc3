package dto

import "github.com/shopspring/decimal"

// ResumenFilter selects the reporting period for GET /v1/reportes/resumen.
type ResumenFilter struct {
	// Periodo: hoy | semana | mes (default hoy)
	Periodo string `form:"periodo,default=hoy" validate:"omitempty,oneof=hoy semana mes"`
}

// ProductoVendido is one row of the top-sellers ranking.
type ProductoVendido struct {
	ProductoID string          `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Unidades   int             `json:"unidades"`
	Importe    decimal.Decimal `json:"importe"`
}

// ResumenVentasResponse is the dashboard summary for a period.
type ResumenVentasResponse struct {
	Periodo        string            `json:"periodo"`
	Desde          string            `json:"desde"`
	Hasta          string            `json:"hasta"`
	NumVentas      int64             `json:"num_ventas"`
	NumReembolsos  int64             `json:"num_reembolsos"`
	ImporteTotal   decimal.Decimal   `json:"importe_total"`
	TicketPromedio decimal.Decimal   `json:"ticket_promedio"`
	TopProductos   []ProductoVendido `json:"top_productos"`
}
