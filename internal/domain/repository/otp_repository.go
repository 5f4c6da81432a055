package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// OTPRepository define el puerto de persistencia para códigos OTP.
type OTPRepository interface {
	Create(code *entity.OTPCode) error
	// GetActiveByPhone devuelve el código no consumido más reciente del teléfono, o nil.
	GetActiveByPhone(phone string) (*entity.OTPCode, error)
	IncrementAttempts(id string) error
	MarkConsumed(id string) error
	// InvalidateByPhone consume todos los códigos pendientes del teléfono
	// (al emitir uno nuevo solo el último debe ser válido).
	InvalidateByPhone(phone string) error
}
