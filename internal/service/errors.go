package service

import "errors"

// Errores de negocio que los handlers traducen a códigos HTTP.
// Todo lo demás (fallos de red, de driver, de constraint) se propaga sin
// envolver y termina en 500.
var (
	ErrCarritoVacio         = errors.New("el carrito está vacío")
	ErrCantidadInvalida     = errors.New("la cantidad de cada artículo debe ser mayor a cero")
	ErrVentaNoEncontrada    = errors.New("venta no encontrada")
	ErrVentaNoReembolsable  = errors.New("solo una venta PAGADA puede reembolsarse")
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
)
