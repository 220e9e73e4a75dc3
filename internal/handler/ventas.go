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

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// CompletarVenta godoc
// @Summary      Completar una venta
// @Description  Convierte el carrito en una venta PAGADA: crea detalles y pago, descuenta stock y registra movimientos SALIDA, todo en una transaccion. Despacha el recibo PDF asincrono.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CompletarVentaRequest true "Carrito"
// @Success      201  {object} dto.CompletarVentaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/ventas [post]
func (h *VentasHandler) CompletarVenta(c *gin.Context) {
	var req dto.CompletarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	negocioID, _ := uuid.Parse(claims.NegocioID)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.CompletarVenta(c.Request.Context(), negocioID, usuarioID, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Reembolsar godoc
// @Summary      Reembolsar una venta
// @Description  Cambia la venta PAGADA a REEMBOLSO, restaura stock por linea y registra movimientos ENTRADA. Doble reembolso rechazado con 409.
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200  {object} dto.ReembolsoResponse
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/ventas/{id}/reembolso [post]
func (h *VentasHandler) Reembolsar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	claims := middleware.GetClaims(c)
	sucursalID, _ := uuid.Parse(claims.SucursalID)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.ReembolsarVenta(c.Request.Context(), id, sucursalID, usuarioID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar ventas
// @Description  Lista paginada de ventas filtrada por fecha y estado (default: PAGADA de hoy).
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        fecha  query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Param        estado query string false "PAGADA | REEMBOLSO | all"
// @Param        page   query int    false "Pagina (default 1)"
// @Param        limit  query int    false "Registros por pagina (default 50)"
// @Success      200    {object} dto.VentaListResponse
// @Failure      400    {object} apierror.APIError
// @Router       /v1/ventas [get]
func (h *VentasHandler) Listar(c *gin.Context) {
	var filter dto.VentaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	claims := middleware.GetClaims(c)
	negocioID, _ := uuid.Parse(claims.NegocioID)

	resp, err := h.svc.ListarVentas(c.Request.Context(), negocioID, filter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Detalle de una venta
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200  {object} dto.VentaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/ventas/{id} [get]
func (h *VentasHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerVenta(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
