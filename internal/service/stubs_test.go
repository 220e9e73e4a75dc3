package service_test

// In-memory repository stubs. The services open no real transaction when
// repo.DB() returns nil, so every Tx method here tolerates a nil *gorm.DB.

import (
	"context"
	"strings"
	"time"

	"github.com/francost15/La-Pape-sub000/internal/dto"
	"github.com/francost15/La-Pape-sub000/internal/model"
	"github.com/francost15/La-Pape-sub000/internal/repository"
	"github.com/francost15/La-Pape-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Producto ─────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductoRepo) FindByBarcode(_ context.Context, barcode string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.CodigoBarras != nil && *p.CodigoBarras == barcode && p.Activo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) List(_ context.Context, negocioID uuid.UUID, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.NegocioID != negocioID {
			continue
		}
		if filter.Activo != "all" && filter.Activo != "false" && !p.Activo {
			continue
		}
		if filter.Activo == "false" && p.Activo {
			continue
		}
		if filter.Nombre != "" && !strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(filter.Nombre)) {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

func (r *stubProductoRepo) ListBajoMinimo(_ context.Context, negocioID uuid.UUID) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.NegocioID == negocioID && p.Activo && p.Cantidad <= p.StockMinimo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) AjustarStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Cantidad += delta
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── Venta ────────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) CreateTx(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, desde, hacia string) (int64, error) {
	v, ok := r.ventas[id]
	if !ok || v.Estado != desde {
		return 0, nil
	}
	v.Estado = hacia
	return 1, nil
}

func (r *stubVentaRepo) List(_ context.Context, negocioID uuid.UUID, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if v.NegocioID != negocioID {
			continue
		}
		if filter.Estado != "" && filter.Estado != "all" && v.Estado != filter.Estado {
			continue
		}
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) Resumen(_ context.Context, negocioID uuid.UUID, desde, hasta time.Time) (*repository.ResumenVentas, error) {
	res := &repository.ResumenVentas{ImporteTotal: decimal.Zero}
	for _, v := range r.ventas {
		if v.NegocioID != negocioID || v.Fecha.Before(desde) || !v.Fecha.Before(hasta) {
			continue
		}
		switch v.Estado {
		case model.EstadoPagada:
			res.NumVentas++
			res.ImporteTotal = res.ImporteTotal.Add(v.Total)
		case model.EstadoReembolso:
			res.NumReembolsos++
		}
	}
	return res, nil
}

func (r *stubVentaRepo) TopProductos(_ context.Context, negocioID uuid.UUID, desde, hasta time.Time, limit int) ([]repository.ProductoVendidoRow, error) {
	agg := make(map[uuid.UUID]*repository.ProductoVendidoRow)
	for _, v := range r.ventas {
		if v.NegocioID != negocioID || v.Estado != model.EstadoPagada ||
			v.Fecha.Before(desde) || !v.Fecha.Before(hasta) {
			continue
		}
		for _, d := range v.Detalles {
			row, ok := agg[d.ProductoID]
			if !ok {
				row = &repository.ProductoVendidoRow{ProductoID: d.ProductoID, Importe: decimal.Zero}
				agg[d.ProductoID] = row
			}
			row.Unidades += d.Cantidad
			row.Importe = row.Importe.Add(d.TotalLinea)
		}
	}
	out := make([]repository.ProductoVendidoRow, 0, len(agg))
	for _, row := range agg {
		out = append(out, *row)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── DetalleVenta ─────────────────────────────────────────────────────────────

type stubDetalleRepo struct {
	detalles []model.DetalleVenta
}

func (r *stubDetalleRepo) CreateTx(_ *gorm.DB, d *model.DetalleVenta) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.detalles = append(r.detalles, *d)
	return nil
}

func (r *stubDetalleRepo) ListByVenta(_ context.Context, ventaID uuid.UUID) ([]model.DetalleVenta, error) {
	var out []model.DetalleVenta
	for _, d := range r.detalles {
		if d.VentaID == ventaID {
			out = append(out, d)
		}
	}
	return out, nil
}

var _ repository.DetalleVentaRepository = (*stubDetalleRepo)(nil)

// ── Pago ─────────────────────────────────────────────────────────────────────

type stubPagoRepo struct {
	pagos []model.Pago
}

func (r *stubPagoRepo) CreateTx(_ *gorm.DB, p *model.Pago) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pagos = append(r.pagos, *p)
	return nil
}

func (r *stubPagoRepo) ListByVenta(_ context.Context, ventaID uuid.UUID) ([]model.Pago, error) {
	var out []model.Pago
	for _, p := range r.pagos {
		if p.VentaID == ventaID {
			out = append(out, p)
		}
	}
	return out, nil
}

var _ repository.PagoRepository = (*stubPagoRepo)(nil)

// ── MovimientoInventario ─────────────────────────────────────────────────────

type stubMovimientoRepo struct {
	movimientos []model.MovimientoInventario
}

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoInventario) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now().UTC()
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoRepo) List(_ context.Context, filter dto.MovimientoFilter) ([]model.MovimientoInventario, int64, error) {
	var out []model.MovimientoInventario
	for _, m := range r.movimientos {
		if filter.ProductoID != "" && m.ProductoID.String() != filter.ProductoID {
			continue
		}
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *stubMovimientoRepo) porTipo(tipo string) []model.MovimientoInventario {
	var out []model.MovimientoInventario
	for _, m := range r.movimientos {
		if m.Tipo == tipo {
			out = append(out, m)
		}
	}
	return out
}

var _ repository.MovimientoInventarioRepository = (*stubMovimientoRepo)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

type ventaFixture struct {
	svc         service.VentaService
	ventaRepo   *stubVentaRepo
	detalleRepo *stubDetalleRepo
	pagoRepo    *stubPagoRepo
	prodRepo    *stubProductoRepo
	movRepo     *stubMovimientoRepo
}

func newVentaFixture() *ventaFixture {
	f := &ventaFixture{
		ventaRepo:   newStubVentaRepo(),
		detalleRepo: &stubDetalleRepo{},
		pagoRepo:    &stubPagoRepo{},
		prodRepo:    newStubProductoRepo(),
		movRepo:     &stubMovimientoRepo{},
	}
	f.svc = service.NewVentaService(f.ventaRepo, f.detalleRepo, f.pagoRepo, f.prodRepo, f.movRepo, nil)
	return f
}

func seedProducto(repo *stubProductoRepo, negocioID, sucursalID uuid.UUID, nombre string, precio float64, cantidad, stockMinimo int) *model.Producto {
	p := &model.Producto{
		ID:          uuid.New(),
		NegocioID:   negocioID,
		SucursalID:  sucursalID,
		Nombre:      nombre,
		Categoria:   "escritura",
		PrecioVenta: decimal.NewFromFloat(precio),
		Cantidad:    cantidad,
		StockMinimo: stockMinimo,
		Activo:      true,
	}
	repo.productos[p.ID] = p
	return p
}
