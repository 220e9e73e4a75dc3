package repository

import (
	"context"

	"github.com/francost15/La-Pape-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PagoRepository interface {
	CreateTx(tx *gorm.DB, p *model.Pago) error
	ListByVenta(ctx context.Context, ventaID uuid.UUID) ([]model.Pago, error)
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) CreateTx(tx *gorm.DB, p *model.Pago) error {
	return tx.Create(p).Error
}

func (r *pagoRepo) ListByVenta(ctx context.Context, ventaID uuid.UUID) ([]model.Pago, error) {
	var pagos []model.Pago
	err := r.db.WithContext(ctx).Where("venta_id = ?", ventaID).Find(&pagos).Error
	return pagos, err
}
