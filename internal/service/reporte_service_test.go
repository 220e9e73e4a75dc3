package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/francost15/La-Pape-sub000/internal/dto"
	"github.com/francost15/La-Pape-sub000/internal/model"
	"github.com/francost15/La-Pape-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumenVentas_CalculaTicketPromedio(t *testing.T) {
	ventaRepo := newStubVentaRepo()
	svc := service.NewReporteService(ventaRepo, nil)
	negocioID := uuid.New()
	ahora := time.Now().UTC()

	productoID := uuid.New()
	for _, total := range []float64{120.00, 80.00} {
		venta := &model.Venta{
			NegocioID: negocioID,
			Fecha:     ahora,
			Total:     decimal.NewFromFloat(total),
			Estado:    model.EstadoPagada,
			Detalles: []model.DetalleVenta{
				{ProductoID: productoID, Cantidad: 2, TotalLinea: decimal.NewFromFloat(total)},
			},
		}
		require.NoError(t, ventaRepo.CreateTx(context.Background(), nil, venta))
	}
	// Refunds count separately and never inflate the total
	require.NoError(t, ventaRepo.CreateTx(context.Background(), nil, &model.Venta{
		NegocioID: negocioID,
		Fecha:     ahora,
		Total:     decimal.NewFromFloat(50.00),
		Estado:    model.EstadoReembolso,
	}))

	resp, err := svc.ResumenVentas(context.Background(), negocioID, dto.ResumenFilter{Periodo: "hoy"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.NumVentas)
	assert.Equal(t, int64(1), resp.NumReembolsos)
	assert.Equal(t, "200", resp.ImporteTotal.String())
	assert.Equal(t, "100", resp.TicketPromedio.String())
	require.Len(t, resp.TopProductos, 1)
	assert.Equal(t, 4, resp.TopProductos[0].Unidades)
}

func TestResumenVentas_PeriodoVacio(t *testing.T) {
	ventaRepo := newStubVentaRepo()
	svc := service.NewReporteService(ventaRepo, nil)

	resp, err := svc.ResumenVentas(context.Background(), uuid.New(), dto.ResumenFilter{})
	require.NoError(t, err)
	assert.Equal(t, "hoy", resp.Periodo)
	assert.Equal(t, int64(0), resp.NumVentas)
	assert.True(t, resp.TicketPromedio.IsZero())
	assert.Empty(t, resp.TopProductos)
}
