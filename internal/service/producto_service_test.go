package service_test

import (
	"context"
	"testing"

	"github.com/francost15/La-Pape-sub000/internal/dto"
	"github.com/francost15/La-Pape-sub000/internal/model"
	"github.com/francost15/La-Pape-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProductoSvc() (service.ProductoService, *stubProductoRepo, *stubMovimientoRepo) {
	prodRepo := newStubProductoRepo()
	movRepo := &stubMovimientoRepo{}
	return service.NewProductoService(prodRepo, movRepo, nil), prodRepo, movRepo
}

func TestCrearProducto(t *testing.T) {
	svc, prodRepo, _ := buildProductoSvc()
	negocioID := uuid.New()

	resp, err := svc.Crear(context.Background(), negocioID, dto.CrearProductoRequest{
		SucursalID:   uuid.New().String(),
		Nombre:       "Marcador permanente",
		Categoria:    "escritura",
		PrecioCompra: decimal.NewFromFloat(8.00),
		PrecioVenta:  decimal.NewFromFloat(14.50),
		Cantidad:     40,
		StockMinimo:  10,
	})
	require.NoError(t, err)
	assert.True(t, resp.Activo)

	stored := prodRepo.productos[uuid.MustParse(resp.ID)]
	require.NotNil(t, stored)
	assert.Equal(t, negocioID, stored.NegocioID)
	assert.Equal(t, 40, stored.Cantidad)
}

func TestAjustarStock_RegistraMovimientoAjuste(t *testing.T) {
	svc, prodRepo, movRepo := buildProductoSvc()
	negocioID, sucursalID, usuarioID := uuid.New(), uuid.New(), uuid.New()
	p := seedProducto(prodRepo, negocioID, sucursalID, "Resma A4", 95.00, 12, 3)

	resp, err := svc.AjustarStock(context.Background(), p.ID, usuarioID, dto.AjustarStockRequest{
		Delta:  -4,
		Motivo: "Merma por humedad",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, resp.Cantidad)

	ajustes := movRepo.porTipo(model.MovimientoAjuste)
	require.Len(t, ajustes, 1)
	m := ajustes[0]
	assert.Equal(t, 4, m.Cantidad) // magnitude, direction lives in stock fields
	assert.Equal(t, 12, m.StockAnterior)
	assert.Equal(t, 8, m.StockNuevo)
	assert.Equal(t, "Merma por humedad", m.Motivo)
	assert.Equal(t, usuarioID, m.UsuarioID)
}

func TestAjustarStock_ProductoInexistente(t *testing.T) {
	svc, _, movRepo := buildProductoSvc()
	_, err := svc.AjustarStock(context.Background(), uuid.New(), uuid.New(), dto.AjustarStockRequest{
		Delta:  5,
		Motivo: "Conteo fisico",
	})
	assert.ErrorIs(t, err, service.ErrProductoNoEncontrado)
	assert.Empty(t, movRepo.movimientos)
}

func TestDesactivarProducto(t *testing.T) {
	svc, prodRepo, _ := buildProductoSvc()
	p := seedProducto(prodRepo, uuid.New(), uuid.New(), "Tijeras escolares", 22.00, 15, 5)

	require.NoError(t, svc.Desactivar(context.Background(), p.ID))
	assert.False(t, p.Activo)

	err := svc.Desactivar(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrProductoNoEncontrado)
}
