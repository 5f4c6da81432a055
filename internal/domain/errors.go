package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrCategoryNotFound     = errors.New("categoría no encontrada")
	ErrInvalidCategoryLevel = errors.New("nivel de categoría inválido")
	ErrProductNotFound      = errors.New("producto no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrOTPInvalid           = errors.New("código OTP inválido")
	ErrOTPExpired           = errors.New("código OTP expirado")
	ErrOTPMaxAttempts       = errors.New("demasiados intentos de verificación")
	ErrKYCNotApproved       = errors.New("KYC no aprobado")
	ErrInsufficientStock    = errors.New("stock insuficiente")
)
