package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/francost15/La-Pape-sub000/internal/dto"
	"github.com/francost15/La-Pape-sub000/internal/model"
	"github.com/francost15/La-Pape-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ProductoService defines the business logic contract for the catalog.
type ProductoService interface {
	Crear(ctx context.Context, negocioID uuid.UUID, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, negocioID uuid.UUID, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	AjustarStock(ctx context.Context, id, usuarioID uuid.UUID, req dto.AjustarStockRequest) (*dto.ProductoResponse, error)
}

type productoService struct {
	repo    repository.ProductoRepository
	movRepo repository.MovimientoInventarioRepository
	rdb     *redis.Client
}

func NewProductoService(repo repository.ProductoRepository, movRepo repository.MovimientoInventarioRepository, rdb *redis.Client) ProductoService {
	return &productoService{repo: repo, movRepo: movRepo, rdb: rdb}
}

func (s *productoService) Crear(ctx context.Context, negocioID uuid.UUID, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	sucursalID, err := uuid.Parse(req.SucursalID)
	if err != nil {
		return nil, fmt.Errorf("sucursal_id inválido: %w", err)
	}
	p := &model.Producto{
		NegocioID:    negocioID,
		SucursalID:   sucursalID,
		CodigoBarras: req.CodigoBarras,
		Nombre:       req.Nombre,
		Descripcion:  req.Descripcion,
		Categoria:    req.Categoria,
		PrecioCompra: req.PrecioCompra,
		PrecioVenta:  req.PrecioVenta,
		Cantidad:     req.Cantidad,
		StockMinimo:  req.StockMinimo,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context, negocioID uuid.UUID, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	productos, total, err := s.repo.List(ctx, negocioID, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		data = append(data, *productoToResponse(&productos[i]))
	}
	return &dto.ProductoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}
	p.Nombre = req.Nombre
	p.Descripcion = req.Descripcion
	p.Categoria = req.Categoria
	p.PrecioCompra = req.PrecioCompra
	p.PrecioVenta = req.PrecioVenta
	p.StockMinimo = req.StockMinimo
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidarCachePrecio(ctx, p)
	return productoToResponse(p), nil
}

func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductoNoEncontrado
		}
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidarCachePrecio(ctx, p)
	return nil
}

// AjustarStock applies a manual correction: atomic delta on cantidad plus an
// AJUSTE entry in the ledger, both in one transaction. The same
// stock-never-moves-without-a-movimiento rule the sale flows follow.
func (s *productoService) AjustarStock(ctx context.Context, id, usuarioID uuid.UUID, req dto.AjustarStockRequest) (*dto.ProductoResponse, error) {
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		prodBefore, err := s.repo.FindByIDTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductoNoEncontrado
			}
			return err
		}

		// The ledger records the pre-adjust value; snapshot it before the
		// atomic update touches the row.
		stockAntes := prodBefore.Cantidad

		if err := s.repo.AjustarStockTx(tx, id, req.Delta); err != nil {
			return err
		}

		cantidad := req.Delta
		if cantidad < 0 {
			cantidad = -cantidad
		}
		mov := &model.MovimientoInventario{
			ProductoID:    id,
			SucursalID:    prodBefore.SucursalID,
			UsuarioID:     usuarioID,
			Tipo:          model.MovimientoAjuste,
			Cantidad:      cantidad,
			StockAnterior: stockAntes,
			StockNuevo:    stockAntes + req.Delta,
			Motivo:        req.Motivo,
		}
		return s.movRepo.CreateTx(tx, mov)
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.ObtenerPorID(ctx, id)
}

// invalidarCachePrecio drops the public price-check cache entry after a
// price/visibility change. Best effort.
func (s *productoService) invalidarCachePrecio(ctx context.Context, p *model.Producto) {
	if s.rdb == nil || p.CodigoBarras == nil {
		return
	}
	_ = s.rdb.Del(ctx, "precio:"+*p.CodigoBarras).Err()
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:           p.ID.String(),
		SucursalID:   p.SucursalID.String(),
		CodigoBarras: p.CodigoBarras,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		Categoria:    p.Categoria,
		PrecioCompra: p.PrecioCompra,
		PrecioVenta:  p.PrecioVenta,
		Cantidad:     p.Cantidad,
		StockMinimo:  p.StockMinimo,
		Activo:       p.Activo,
	}
}
