package router

import (
	"time"

	"github.com/francost15/La-Pape-sub000/internal/config"
	"github.com/francost15/La-Pape-sub000/internal/handler"
	"github.com/francost15/La-Pape-sub000/internal/middleware"
	"github.com/francost15/La-Pape-sub000/internal/repository"
	"github.com/francost15/La-Pape-sub000/internal/service"
	"github.com/francost15/La-Pape-sub000/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(200, time.Minute)) // 200 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	detalleRepo := repository.NewDetalleVentaRepository(db)
	pagoRepo := repository.NewPagoRepository(db)
	movimientoRepo := repository.NewMovimientoInventarioRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	ventaSvc := service.NewVentaService(ventaRepo, detalleRepo, pagoRepo, productoRepo, movimientoRepo, dispatcher)
	productoSvc := service.NewProductoService(productoRepo, movimientoRepo, rdb)
	inventarioSvc := service.NewInventarioService(movimientoRepo, productoRepo)
	reporteSvc := service.NewReporteService(ventaRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	ventasH := handler.NewVentasHandler(ventaSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)
	consultaH := handler.NewConsultaPreciosHandler(productoRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Price check — no auth required (in-store kiosk scanners)
	r.GET("/v1/precio/:barcode", consultaH.GetPrecioPorBarcode)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: cajero, supervisor, administrador — declared per-endpoint
		v1.POST("/ventas", middleware.RequireRole("cajero", "supervisor", "administrador"), ventasH.CompletarVenta)
		v1.GET("/ventas", middleware.RequireRole("cajero", "supervisor", "administrador"), ventasH.Listar)
		v1.GET("/ventas/:id", middleware.RequireRole("cajero", "supervisor", "administrador"), ventasH.Obtener)
		v1.POST("/ventas/:id/reembolso", middleware.RequireRole("supervisor", "administrador"), ventasH.Reembolsar)

		// Catalog reads — every authenticated role (POS needs the full list)
		v1.GET("/productos", middleware.RequireRole("cajero", "supervisor", "administrador"), productosH.Listar)
		v1.GET("/productos/:id", middleware.RequireRole("cajero", "supervisor", "administrador"), productosH.ObtenerPorID)
		// Manual stock correction — supervisor or administrador
		v1.PATCH("/productos/:id/stock", middleware.RequireRole("supervisor", "administrador"), productosH.AjustarStock)
		// Catalog writes — administrador only
		prods := v1.Group("/productos", middleware.RequireRole("administrador"))
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Desactivar)
		}

		inv := v1.Group("/inventario", middleware.RequireRole("administrador", "supervisor"))
		{
			inv.GET("/movimientos", inventarioH.Movimientos)
			inv.GET("/alertas", inventarioH.Alertas)
		}

		v1.GET("/reportes/resumen", middleware.RequireRole("supervisor", "administrador"), reportesH.Resumen)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
