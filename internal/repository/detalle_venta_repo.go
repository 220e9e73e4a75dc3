package repository

import (
	"context"

	"github.com/francost15/La-Pape-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DetalleVentaRepository interface {
	CreateTx(tx *gorm.DB, d *model.DetalleVenta) error
	ListByVenta(ctx context.Context, ventaID uuid.UUID) ([]model.DetalleVenta, error)
}

type detalleVentaRepo struct{ db *gorm.DB }

func NewDetalleVentaRepository(db *gorm.DB) DetalleVentaRepository {
	return &detalleVentaRepo{db: db}
}

func (r *detalleVentaRepo) CreateTx(tx *gorm.DB, d *model.DetalleVenta) error {
	return tx.Create(d).Error
}

func (r *detalleVentaRepo) ListByVenta(ctx context.Context, ventaID uuid.UUID) ([]model.DetalleVenta, error) {
	var detalles []model.DetalleVenta
	err := r.db.WithContext(ctx).
		Where("venta_id = ?", ventaID).
		Order("created_at ASC").
		Find(&detalles).Error
	return detalles, err
}
