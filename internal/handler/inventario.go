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

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// Movimientos godoc
// @Summary      Historial de movimientos de inventario
// @Description  Lista paginada del libro de movimientos, filtrable por producto y tipo.
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Param        producto_id query string false "UUID del producto"
// @Param        tipo        query string false "ENTRADA | SALIDA | AJUSTE"
// @Success      200 {object} dto.MovimientoListResponse
// @Router       /v1/inventario/movimientos [get]
func (h *InventarioHandler) Movimientos(c *gin.Context) {
	var filter dto.MovimientoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListarMovimientos(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Alertas godoc
// @Summary      Productos en o bajo su stock minimo
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.AlertaStockResponse
// @Router       /v1/inventario/alertas [get]
func (h *InventarioHandler) Alertas(c *gin.Context) {
	claims := middleware.GetClaims(c)
	negocioID, _ := uuid.Parse(claims.NegocioID)

	alertas, err := h.svc.ObtenerAlertas(c.Request.Context(), negocioID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, alertas)
}
