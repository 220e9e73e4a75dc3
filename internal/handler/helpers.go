package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/francost15/La-Pape-sub000/internal/apierror"
	"github.com/francost15/La-Pape-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// statusFromError maps service sentinel errors to HTTP status codes.
// Unknown errors become 500 without leaking internals to the client.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrCarritoVacio),
		errors.Is(err, service.ErrCantidadInvalida):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrVentaNoEncontrada),
		errors.Is(err, service.ErrProductoNoEncontrado):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrVentaNoReembolsable):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "Error interno del servidor"
	}
}

// abortWithError writes the mapped error response for a service failure.
func abortWithError(c *gin.Context, err error) {
	status, msg := statusFromError(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err) // logged by the ErrorHandler middleware
	}
	c.JSON(status, apierror.New(msg))
}
