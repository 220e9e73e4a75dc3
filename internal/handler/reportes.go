package handler

import (
	"net/http"

	"github.com/francost15/La-Pape-sub000/internal/apierror"
	"github.com/francost15/La-Pape-sub000/internal/dto"
	"github.com/francost15/La-Pape-sub000/internal/middleware"
	"github.com/francost15/La-Pape-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Resumen godoc
// @Summary      Resumen de ventas del periodo
// @Description  Totales, reembolsos, ticket promedio y top de productos. Cacheado 5 minutos.
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        periodo query string false "hoy | semana | mes"
// @Success      200 {object} dto.ResumenVentasResponse
// @Router       /v1/reportes/resumen [get]
func (h *ReportesHandler) Resumen(c *gin.Context) {
	var filter dto.ResumenFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	claims := middleware.GetClaims(c)
	negocioID, _ := uuid.Parse(claims.NegocioID)

	resp, err := h.svc.ResumenVentas(c.Request.Context(), negocioID, filter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
