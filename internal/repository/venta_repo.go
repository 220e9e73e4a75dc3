package repository

import (
	"context"
	"time"

	"github.com/francost15/La-Pape-sub000/internal/dto"
	"github.com/francost15/La-Pape-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)

	// UpdateEstadoTx flips estado only while the row still holds the expected
	// value. Returns the number of rows changed: 0 means another request won
	// the race and the caller must not proceed.
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, desde, hacia string) (int64, error)
	List(ctx context.Context, negocioID uuid.UUID, filter dto.VentaFilter) ([]model.Venta, int64, error)

	// Reporting aggregates over the period [desde, hasta).
	Resumen(ctx context.Context, negocioID uuid.UUID, desde, hasta time.Time) (*ResumenVentas, error)
	TopProductos(ctx context.Context, negocioID uuid.UUID, desde, hasta time.Time, limit int) ([]ProductoVendidoRow, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

// ResumenVentas is the raw aggregate consumed by the reporting service.
type ResumenVentas struct {
	NumVentas     int64
	NumReembolsos int64
	ImporteTotal  decimal.Decimal
}

// ProductoVendidoRow is one row of the top-sellers aggregate.
type ProductoVendidoRow struct {
	ProductoID uuid.UUID
	Nombre     string
	Unidades   int
	Importe    decimal.Decimal
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).Preload("Detalles.Producto").Preload("Pagos").First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, desde, hacia string) (int64, error) {
	res := tx.Model(&model.Venta{}).
		Where("id = ? AND estado = ?", id, desde).
		Update("estado", hacia)
	return res.RowsAffected, res.Error
}

func (r *ventaRepo) List(ctx context.Context, negocioID uuid.UUID, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Venta{}).Where("negocio_id = ?", negocioID)

	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(fecha) = ?", filter.Fecha)
	} else {
		// Default: today
		q = q.Where("DATE(fecha) = CURRENT_DATE")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Detalles.Producto").Preload("Pagos").
		Order("fecha DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&ventas).Error

	return ventas, total, err
}

func (r *ventaRepo) Resumen(ctx context.Context, negocioID uuid.UUID, desde, hasta time.Time) (*ResumenVentas, error) {
	var res ResumenVentas

	base := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("negocio_id = ? AND fecha >= ? AND fecha < ?", negocioID, desde, hasta)

	if err := base.Session(&gorm.Session{}).
		Where("estado = ?", model.EstadoPagada).
		Count(&res.NumVentas).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("estado = ?", model.EstadoReembolso).
		Count(&res.NumReembolsos).Error; err != nil {
		return nil, err
	}

	var row struct{ Importe decimal.Decimal }
	if err := base.Session(&gorm.Session{}).
		Where("estado = ?", model.EstadoPagada).
		Select("COALESCE(SUM(total), 0) AS importe").Scan(&row).Error; err != nil {
		return nil, err
	}
	res.ImporteTotal = row.Importe
	return &res, nil
}

func (r *ventaRepo) TopProductos(ctx context.Context, negocioID uuid.UUID, desde, hasta time.Time, limit int) ([]ProductoVendidoRow, error) {
	var rows []ProductoVendidoRow
	err := r.db.WithContext(ctx).
		Table("detalles_venta d").
		Select("d.producto_id, p.nombre, SUM(d.cantidad) AS unidades, SUM(d.total_linea) AS importe").
		Joins("JOIN ventas v ON v.id = d.venta_id").
		Joins("JOIN productos p ON p.id = d.producto_id").
		Where("v.negocio_id = ? AND v.estado = ? AND v.fecha >= ? AND v.fecha < ?",
			negocioID, model.EstadoPagada, desde, hasta).
		Group("d.producto_id, p.nombre").
		Order("unidades DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
