package repository

import (
	"context"

	"github.com/francost15/La-Pape-sub000/internal/dto"
	"github.com/francost15/La-Pape-sub000/internal/model"

	"gorm.io/gorm"
)

// MovimientoInventarioRepository is the append-only stock ledger. There is no
// update or delete on purpose — the ledger is the audit trail.
type MovimientoInventarioRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error
	List(ctx context.Context, filter dto.MovimientoFilter) ([]model.MovimientoInventario, int64, error)
}

type movimientoInventarioRepo struct{ db *gorm.DB }

func NewMovimientoInventarioRepository(db *gorm.DB) MovimientoInventarioRepository {
	return &movimientoInventarioRepo{db: db}
}

func (r *movimientoInventarioRepo) CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error {
	return tx.Create(m).Error
}

func (r *movimientoInventarioRepo) List(ctx context.Context, filter dto.MovimientoFilter) ([]model.MovimientoInventario, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimientoInventario{}).
		Preload("Producto")
	if filter.ProductoID != "" {
		q = q.Where("producto_id = ?", filter.ProductoID)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	var movimientos []model.MovimientoInventario
	err := q.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&movimientos).Error
	return movimientos, total, err
}
