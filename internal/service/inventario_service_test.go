package service_test

import (
	"context"
	"testing"

	"github.com/francost15/La-Pape-sub000/internal/dto"
	"github.com/francost15/La-Pape-sub000/internal/model"
	"github.com/francost15/La-Pape-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObtenerAlertas_SoloBajoMinimo(t *testing.T) {
	prodRepo := newStubProductoRepo()
	movRepo := &stubMovimientoRepo{}
	svc := service.NewInventarioService(movRepo, prodRepo)
	negocioID, sucursalID := uuid.New(), uuid.New()

	bajo := seedProducto(prodRepo, negocioID, sucursalID, "Goma de borrar", 4.00, 2, 5)
	seedProducto(prodRepo, negocioID, sucursalID, "Cartulina", 6.00, 80, 10)
	inactivo := seedProducto(prodRepo, negocioID, sucursalID, "Plumon viejo", 9.00, 0, 5)
	inactivo.Activo = false

	alertas, err := svc.ObtenerAlertas(context.Background(), negocioID)
	require.NoError(t, err)
	require.Len(t, alertas, 1)
	assert.Equal(t, bajo.ID.String(), alertas[0].ProductoID)
	assert.Equal(t, 2, alertas[0].Cantidad)
	assert.Equal(t, 5, alertas[0].StockMinimo)
}

func TestListarMovimientos_FiltraPorTipo(t *testing.T) {
	prodRepo := newStubProductoRepo()
	movRepo := &stubMovimientoRepo{}
	svc := service.NewInventarioService(movRepo, prodRepo)

	productoID := uuid.New()
	_ = movRepo.CreateTx(nil, &model.MovimientoInventario{
		ProductoID: productoID, SucursalID: uuid.New(), UsuarioID: uuid.New(),
		Tipo: model.MovimientoSalida, Cantidad: 2, StockAnterior: 10, StockNuevo: 8,
	})
	_ = movRepo.CreateTx(nil, &model.MovimientoInventario{
		ProductoID: productoID, SucursalID: uuid.New(), UsuarioID: uuid.New(),
		Tipo: model.MovimientoEntrada, Cantidad: 2, StockAnterior: 8, StockNuevo: 10,
	})

	resp, err := svc.ListarMovimientos(context.Background(), dto.MovimientoFilter{Tipo: model.MovimientoEntrada})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, model.MovimientoEntrada, resp.Data[0].Tipo)
	assert.Equal(t, int64(1), resp.Total)
}
