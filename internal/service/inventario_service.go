package service

import (
	"context"
	"time"

	"github.com/francost15/La-Pape-sub000/internal/dto"
	"github.com/francost15/La-Pape-sub000/internal/repository"

	"github.com/google/uuid"
)

// InventarioService exposes the read side of the stock ledger.
type InventarioService interface {
	ListarMovimientos(ctx context.Context, filter dto.MovimientoFilter) (*dto.MovimientoListResponse, error)
	ObtenerAlertas(ctx context.Context, negocioID uuid.UUID) ([]dto.AlertaStockResponse, error)
}

type inventarioService struct {
	movRepo  repository.MovimientoInventarioRepository
	prodRepo repository.ProductoRepository
}

func NewInventarioService(movRepo repository.MovimientoInventarioRepository, prodRepo repository.ProductoRepository) InventarioService {
	return &inventarioService{movRepo: movRepo, prodRepo: prodRepo}
}

func (s *inventarioService) ListarMovimientos(ctx context.Context, filter dto.MovimientoFilter) (*dto.MovimientoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 500 {
		filter.Limit = 100
	}
	movimientos, total, err := s.movRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := make([]dto.MovimientoResponse, 0, len(movimientos))
	for _, m := range movimientos {
		nombre := ""
		if m.Producto != nil {
			nombre = m.Producto.Nombre
		}
		var ref *string
		if m.ReferenciaID != nil {
			r := m.ReferenciaID.String()
			ref = &r
		}
		data = append(data, dto.MovimientoResponse{
			ID:            m.ID.String(),
			ProductoID:    m.ProductoID.String(),
			Producto:      nombre,
			SucursalID:    m.SucursalID.String(),
			Tipo:          m.Tipo,
			Cantidad:      m.Cantidad,
			StockAnterior: m.StockAnterior,
			StockNuevo:    m.StockNuevo,
			Motivo:        m.Motivo,
			ReferenciaID:  ref,
			CreatedAt:     m.CreatedAt.Format(time.RFC3339),
		})
	}
	return &dto.MovimientoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *inventarioService) ObtenerAlertas(ctx context.Context, negocioID uuid.UUID) ([]dto.AlertaStockResponse, error) {
	productos, err := s.prodRepo.ListBajoMinimo(ctx, negocioID)
	if err != nil {
		return nil, err
	}
	alertas := make([]dto.AlertaStockResponse, 0, len(productos))
	for _, p := range productos {
		alertas = append(alertas, dto.AlertaStockResponse{
			ProductoID:  p.ID.String(),
			Nombre:      p.Nombre,
			Cantidad:    p.Cantidad,
			StockMinimo: p.StockMinimo,
		})
	}
	return alertas, nil
}
