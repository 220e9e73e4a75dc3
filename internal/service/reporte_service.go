package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/francost15/La-Pape-sub000/internal/dto"
	"github.com/francost15/La-Pape-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	resumenCacheTTL  = 5 * time.Minute
	topProductosSize = 5
)

// ReporteService computes the dashboard summary for a period.
// Results are cached in Redis per negocio+periodo; a checkout or refund within
// the TTL window may therefore be up to 5 minutes late on the dashboard.
type ReporteService interface {
	ResumenVentas(ctx context.Context, negocioID uuid.UUID, filter dto.ResumenFilter) (*dto.ResumenVentasResponse, error)
}

type reporteService struct {
	ventaRepo repository.VentaRepository
	rdb       *redis.Client
}

func NewReporteService(ventaRepo repository.VentaRepository, rdb *redis.Client) ReporteService {
	return &reporteService{ventaRepo: ventaRepo, rdb: rdb}
}

func (s *reporteService) ResumenVentas(ctx context.Context, negocioID uuid.UUID, filter dto.ResumenFilter) (*dto.ResumenVentasResponse, error) {
	periodo := filter.Periodo
	if periodo == "" {
		periodo = "hoy"
	}
	desde, hasta := rangoPeriodo(periodo, time.Now().UTC())

	cacheKey := fmt.Sprintf("reporte:resumen:%s:%s", negocioID, periodo)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.ResumenVentasResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	resumen, err := s.ventaRepo.Resumen(ctx, negocioID, desde, hasta)
	if err != nil {
		return nil, err
	}
	top, err := s.ventaRepo.TopProductos(ctx, negocioID, desde, hasta, topProductosSize)
	if err != nil {
		return nil, err
	}

	ticketPromedio := decimal.Zero
	if resumen.NumVentas > 0 {
		ticketPromedio = resumen.ImporteTotal.Div(decimal.NewFromInt(resumen.NumVentas)).Round(2)
	}

	topProductos := make([]dto.ProductoVendido, 0, len(top))
	for _, t := range top {
		topProductos = append(topProductos, dto.ProductoVendido{
			ProductoID: t.ProductoID.String(),
			Nombre:     t.Nombre,
			Unidades:   t.Unidades,
			Importe:    t.Importe,
		})
	}

	resp := &dto.ResumenVentasResponse{
		Periodo:        periodo,
		Desde:          desde.Format(time.RFC3339),
		Hasta:          hasta.Format(time.RFC3339),
		NumVentas:      resumen.NumVentas,
		NumReembolsos:  resumen.NumReembolsos,
		ImporteTotal:   resumen.ImporteTotal,
		TicketPromedio: ticketPromedio,
		TopProductos:   topProductos,
	}

	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, cacheKey, b, resumenCacheTTL).Err()
		}
	}
	return resp, nil
}

// rangoPeriodo resolves a period keyword to [desde, hasta).
func rangoPeriodo(periodo string, now time.Time) (time.Time, time.Time) {
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch periodo {
	case "semana":
		return hoy.AddDate(0, 0, -6), hoy.AddDate(0, 0, 1)
	case "mes":
		return hoy.AddDate(0, -1, 0), hoy.AddDate(0, 0, 1)
	default: // hoy
		return hoy, hoy.AddDate(0, 0, 1)
	}
}
