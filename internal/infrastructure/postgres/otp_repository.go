package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.OTPRepository = (*OTPRepo)(nil)

// OTPRepo implementación del puerto OTPRepository sobre PostgreSQL.
type OTPRepo struct {
	q Querier
}

// NewOTPRepository construye el adaptador de persistencia para códigos OTP. Pasar pool o tx (Querier).
func NewOTPRepository(q Querier) *OTPRepo {
	return &OTPRepo{q: q}
}

// Create persiste un código OTP (solo el hash, nunca el código en claro).
func (r *OTPRepo) Create(code *entity.OTPCode) error {
	query := `
		INSERT INTO otp_codes (id, phone, code_hash, expires_at, attempts, consumed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		code.ID, code.Phone, code.CodeHash, code.ExpiresAt, code.Attempts, code.Consumed, code.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert otp: %w", err)
	}
	return nil
}

// GetActiveByPhone devuelve el código no consumido más reciente del teléfono, o nil.
func (r *OTPRepo) GetActiveByPhone(phone string) (*entity.OTPCode, error) {
	query := `
		SELECT id, phone, code_hash, expires_at, attempts, consumed, created_at
		FROM otp_codes WHERE phone = $1 AND NOT consumed
		ORDER BY created_at DESC LIMIT 1`
	var o entity.OTPCode
	err := r.q.QueryRow(context.Background(), query, phone).Scan(
		&o.ID, &o.Phone, &o.CodeHash, &o.ExpiresAt, &o.Attempts, &o.Consumed, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active otp: %w", err)
	}
	return &o, nil
}

// IncrementAttempts suma un intento fallido de verificación.
func (r *OTPRepo) IncrementAttempts(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE otp_codes SET attempts = attempts + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment otp attempts: %w", err)
	}
	return nil
}

// MarkConsumed marca el código como usado (un solo uso).
func (r *OTPRepo) MarkConsumed(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE otp_codes SET consumed = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("consume otp: %w", err)
	}
	return nil
}

// InvalidateByPhone consume todos los códigos pendientes del teléfono.
func (r *OTPRepo) InvalidateByPhone(phone string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE otp_codes SET consumed = TRUE WHERE phone = $1 AND NOT consumed`, phone)
	if err != nil {
		return fmt.Errorf("invalidate otps: %w", err)
	}
	return nil
}
