package infra_test

import (
	"os"
	"testing"
	"time"

	"github.com/francost15/La-Pape-sub000/internal/infra"
	"github.com/francost15/La-Pape-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReciboPDF(t *testing.T) {
	nombre := "Cuaderno profesional"
	venta := &model.Venta{
		ID:        uuid.New(),
		Fecha:     time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC),
		Subtotal:  decimal.NewFromFloat(25.00),
		Descuento: decimal.Zero,
		Total:     decimal.NewFromFloat(25.00),
		Estado:    model.EstadoPagada,
		Detalles: []model.DetalleVenta{
			{
				Cantidad:       2,
				PrecioUnitario: decimal.NewFromFloat(10.00),
				TotalLinea:     decimal.NewFromFloat(20.00),
				Producto:       &model.Producto{Nombre: nombre},
			},
			{
				Cantidad:       1,
				PrecioUnitario: decimal.NewFromFloat(5.00),
				TotalLinea:     decimal.NewFromFloat(5.00),
				Producto:       &model.Producto{Nombre: "Pluma gel negra"},
			},
		},
		Pagos: []model.Pago{
			{MetodoPago: model.MetodoEfectivo, Monto: decimal.NewFromFloat(25.00)},
		},
	}

	dir := t.TempDir()
	path, err := infra.GenerateReciboPDF(venta, dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Contains(t, path, "recibo_"+venta.ID.String())
}

func TestGenerateReciboPDF_NombreLargoConAcentos(t *testing.T) {
	// Long name with a multi-byte rune near the truncation boundary
	venta := &model.Venta{
		ID:        uuid.New(),
		Fecha:     time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
		Subtotal:  decimal.NewFromFloat(55.00),
		Descuento: decimal.Zero,
		Total:     decimal.NewFromFloat(55.00),
		Estado:    model.EstadoPagada,
		Detalles: []model.DetalleVenta{
			{
				Cantidad:       1,
				PrecioUnitario: decimal.NewFromFloat(55.00),
				TotalLinea:     decimal.NewFromFloat(55.00),
				Producto:       &model.Producto{Nombre: "Lápiz de dibujo artístico número dos"},
			},
		},
		Pagos: []model.Pago{
			{MetodoPago: model.MetodoEfectivo, Monto: decimal.NewFromFloat(55.00)},
		},
	}

	path, err := infra.GenerateReciboPDF(venta, t.TempDir())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
