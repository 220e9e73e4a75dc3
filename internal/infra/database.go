package infra

import (
	"fmt"

	"github.com/francost15/La-Pape-sub000/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the indexes GORM cannot express.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies AutoMigrate plus idempotent schema patches.
// Also used by integration tests against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Negocio{},
		&model.Sucursal{},
		&model.Producto{},
		&model.Venta{},
		&model.DetalleVenta{},
		&model.Pago{},
		&model.MovimientoInventario{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot fully handle
// (partial indexes). Each statement guards itself so re-running is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Partial index for the low-stock alert query: only active rows under
		// their minimum participate.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_productos_bajo_minimo') THEN
		    CREATE INDEX idx_productos_bajo_minimo
		        ON productos (negocio_id)
		        WHERE activo = true AND cantidad <= stock_minimo;
		  END IF;
		END $$`,
		// Movement history is always read newest-first per producto.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_movimientos_producto_fecha') THEN
		    CREATE INDEX idx_movimientos_producto_fecha
		        ON movimientos_inventario (producto_id, created_at DESC);
		  END IF;
		END $$`,
		// Daily sales listing filters by negocio + day.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_ventas_negocio_fecha') THEN
		    CREATE INDEX idx_ventas_negocio_fecha
		        ON ventas (negocio_id, fecha DESC);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("schema patch: %w", err)
		}
	}
	return nil
}
