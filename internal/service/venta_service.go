package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/francost15/La-Pape-sub000/internal/dto"
	"github.com/francost15/La-Pape-sub000/internal/model"
	"github.com/francost15/La-Pape-sub000/internal/repository"
	"github.com/francost15/La-Pape-sub000/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	CompletarVenta(ctx context.Context, negocioID, usuarioID uuid.UUID, req dto.CompletarVentaRequest) (*dto.CompletarVentaResponse, error)
	ReembolsarVenta(ctx context.Context, ventaID, sucursalID, usuarioID uuid.UUID) (*dto.ReembolsoResponse, error)
	ObtenerVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	ListarVentas(ctx context.Context, negocioID uuid.UUID, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	repo        repository.VentaRepository
	detalleRepo repository.DetalleVentaRepository
	pagoRepo    repository.PagoRepository
	prodRepo    repository.ProductoRepository
	movRepo     repository.MovimientoInventarioRepository
	dispatcher  *worker.Dispatcher
}

func NewVentaService(
	repo repository.VentaRepository,
	detalleRepo repository.DetalleVentaRepository,
	pagoRepo repository.PagoRepository,
	prodRepo repository.ProductoRepository,
	movRepo repository.MovimientoInventarioRepository,
	dispatcher *worker.Dispatcher,
) VentaService {
	return &ventaService{
		repo:        repo,
		detalleRepo: detalleRepo,
		pagoRepo:    pagoRepo,
		prodRepo:    prodRepo,
		movRepo:     movRepo,
		dispatcher:  dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── CompletarVenta ────────────────────────────────────────────────────────────
// Converts a cart into persisted records, all inside ONE transaction:
//   1. Venta header (PAGADA, CONTADO, descuento 0)
//   2. One DetalleVenta per item, total_linea = cantidad × precio_unitario
//   3. One Pago EFECTIVO por el total
//   4. Per item: atomic stock decrement (cantidad = cantidad - ?)
//   5. Per item: MovimientoInventario SALIDA referencing the venta
//   6. COMMIT, then (async, best-effort) enqueue the PDF receipt job
//
// Either everything lands or nothing does: a failure at any step rolls back
// the header, detalles, pago and every stock write. There is NO idempotency
// key — submitting the same cart twice creates two independent ventas.

func (s *ventaService) CompletarVenta(ctx context.Context, negocioID, usuarioID uuid.UUID, req dto.CompletarVentaRequest) (*dto.CompletarVentaResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrCarritoVacio
	}

	sucursalID, err := uuid.Parse(req.SucursalID)
	if err != nil {
		return nil, fmt.Errorf("sucursal_id inválido: %w", err)
	}

	// Resolve item product IDs up front so a malformed cart never reaches the TX.
	type carritoItem struct {
		productoID uuid.UUID
		cantidad   int
		precio     decimal.Decimal
	}
	items := make([]carritoItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Cantidad <= 0 {
			return nil, ErrCantidadInvalida
		}
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("producto_id inválido: %w", err)
		}
		items = append(items, carritoItem{productoID: pid, cantidad: item.Cantidad, precio: item.PrecioUnitario})
	}

	venta := model.Venta{
		NegocioID:  negocioID,
		SucursalID: sucursalID,
		UsuarioID:  usuarioID,
		Fecha:      time.Now().UTC(),
		Subtotal:   req.Subtotal,
		Descuento:  decimal.Zero,
		Total:      req.Total,
		Estado:     model.EstadoPagada,
		TipoVenta:  model.TipoVentaContado,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(ctx, tx, &venta); err != nil {
			return err
		}

		for _, item := range items {
			detalle := &model.DetalleVenta{
				VentaID:        venta.ID,
				ProductoID:     item.productoID,
				Cantidad:       item.cantidad,
				PrecioUnitario: item.precio,
				TotalLinea:     item.precio.Mul(decimal.NewFromInt(int64(item.cantidad))),
			}
			if err := s.detalleRepo.CreateTx(tx, detalle); err != nil {
				return err
			}
		}

		pago := &model.Pago{
			VentaID:    venta.ID,
			MetodoPago: model.MetodoEfectivo,
			Monto:      req.Total,
		}
		if err := s.pagoRepo.CreateTx(tx, pago); err != nil {
			return err
		}

		for _, item := range items {
			// Fetch current stock inside the TX; the snapshot must be taken
			// before the atomic decrement.
			prodBefore, err := s.prodRepo.FindByIDTx(tx, item.productoID)
			if err != nil {
				return fmt.Errorf("producto %s: %w", item.productoID, err)
			}
			stockAntes := prodBefore.Cantidad

			if err := s.prodRepo.AjustarStockTx(tx, item.productoID, -item.cantidad); err != nil {
				return fmt.Errorf("error descontando stock de %s: %w", prodBefore.Nombre, err)
			}

			ventaRef := venta.ID
			mov := &model.MovimientoInventario{
				ProductoID:    item.productoID,
				SucursalID:    sucursalID,
				UsuarioID:     usuarioID,
				Tipo:          model.MovimientoSalida,
				Cantidad:      item.cantidad,
				StockAnterior: stockAntes,
				StockNuevo:    stockAntes - item.cantidad,
				Motivo:        fmt.Sprintf("Venta %s", venta.ID),
				ReferenciaID:  &ventaRef,
			}
			if err := s.movRepo.CreateTx(tx, mov); err != nil {
				return err
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Async receipt job — fire & forget, never affects the committed sale.
	if s.dispatcher != nil {
		payload := map[string]interface{}{"venta_id": venta.ID.String()}
		if req.ClienteEmail != nil && *req.ClienteEmail != "" {
			payload["cliente_email"] = *req.ClienteEmail
		}
		if err := s.dispatcher.EnqueueRecibo(ctx, payload); err != nil {
			log.Warn().Err(err).Str("venta_id", venta.ID.String()).Msg("no se pudo encolar el recibo")
		}
	}

	return &dto.CompletarVentaResponse{
		VentaID: venta.ID.String(),
		Fecha:   venta.Fecha.Format(time.RFC3339),
		Total:   venta.Total,
	}, nil
}

// ── ReembolsarVenta ───────────────────────────────────────────────────────────
// Inverse of CompletarVenta, also single-transaction:
//   1. Guard: only PAGADA → REEMBOLSO is legal (double refunds rejected)
//   2. Flip estado
//   3. Re-read detalles; per line: atomic stock increment + MovimientoInventario
//      ENTRADA. A line whose product was deleted restores nothing — it is
//      skipped with a logged warning, the rest of the refund proceeds.

func (s *ventaService) ReembolsarVenta(ctx context.Context, ventaID, sucursalID, usuarioID uuid.UUID) (*dto.ReembolsoResponse, error) {
	venta, err := s.repo.FindByID(ctx, ventaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVentaNoEncontrada
		}
		return nil, err
	}
	if venta.Estado != model.EstadoPagada {
		return nil, ErrVentaNoReembolsable
	}

	detalles, err := s.detalleRepo.ListByVenta(ctx, ventaID)
	if err != nil {
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// The conditional flip is the real guard; the pre-check above only
		// shapes the error for the common cases. Two concurrent refunds can
		// both read PAGADA, but only one matches the WHERE clause here. The
		// loser rolls back before touching stock.
		cambiadas, err := s.repo.UpdateEstadoTx(tx, ventaID, model.EstadoPagada, model.EstadoReembolso)
		if err != nil {
			return err
		}
		if cambiadas == 0 {
			return ErrVentaNoReembolsable
		}

		for _, d := range detalles {
			prod, err := s.prodRepo.FindByIDTx(tx, d.ProductoID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Known design risk: the stock of a deleted product is never
				// restored. Surfaced in the log for reconciliation.
				log.Warn().
					Str("venta_id", ventaID.String()).
					Str("producto_id", d.ProductoID.String()).
					Int("cantidad", d.Cantidad).
					Msg("reembolso: producto inexistente, stock no restaurado")
				continue
			}
			if err != nil {
				return err
			}

			stockAntes := prod.Cantidad
			if err := s.prodRepo.AjustarStockTx(tx, d.ProductoID, d.Cantidad); err != nil {
				return err
			}

			ventaRef := ventaID
			mov := &model.MovimientoInventario{
				ProductoID:    d.ProductoID,
				SucursalID:    sucursalID,
				UsuarioID:     usuarioID,
				Tipo:          model.MovimientoEntrada,
				Cantidad:      d.Cantidad,
				StockAnterior: stockAntes,
				StockNuevo:    stockAntes + d.Cantidad,
				Motivo:        fmt.Sprintf("Reembolso venta %s", ventaID),
				ReferenciaID:  &ventaRef,
			}
			if err := s.movRepo.CreateTx(tx, mov); err != nil {
				return err
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.ReembolsoResponse{
		VentaID:  ventaID.String(),
		Detalles: detallesToResponse(detalles),
	}, nil
}

// ObtenerVenta returns the full sale detail (detalles + pagos).
func (s *ventaService) ObtenerVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVentaNoEncontrada
		}
		return nil, err
	}
	return ventaToResponse(venta), nil
}

// ListarVentas returns a paginated list of sales, filtered by date and estado.
// Default filter: today's paid sales.
func (s *ventaService) ListarVentas(ctx context.Context, negocioID uuid.UUID, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	if filter.Estado == "" {
		filter.Estado = model.EstadoPagada
	}
	ventas, total, err := s.repo.List(ctx, negocioID, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		data = append(data, *ventaToResponse(&ventas[i]))
	}
	return &dto.VentaListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// ── Mappers ──────────────────────────────────────────────────────────────────

func detallesToResponse(detalles []model.DetalleVenta) []dto.DetalleVentaResponse {
	out := make([]dto.DetalleVentaResponse, 0, len(detalles))
	for _, d := range detalles {
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		out = append(out, dto.DetalleVentaResponse{
			ID:             d.ID.String(),
			ProductoID:     d.ProductoID.String(),
			Producto:       nombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			TotalLinea:     d.TotalLinea,
		})
	}
	return out
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	pagos := make([]dto.PagoResponse, 0, len(v.Pagos))
	for _, p := range v.Pagos {
		pagos = append(pagos, dto.PagoResponse{
			MetodoPago: p.MetodoPago,
			Monto:      p.Monto,
			Referencia: p.Referencia,
		})
	}
	return &dto.VentaResponse{
		ID:        v.ID.String(),
		Fecha:     v.Fecha.Format(time.RFC3339),
		Subtotal:  v.Subtotal,
		Descuento: v.Descuento,
		Total:     v.Total,
		Estado:    v.Estado,
		TipoVenta: v.TipoVenta,
		Detalles:  detallesToResponse(v.Detalles),
		Pagos:     pagos,
	}
}
