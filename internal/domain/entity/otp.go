package entity

import "time"

// OTPCode código de un solo uso para login por teléfono.
// El código nunca se persiste en claro: solo su hash bcrypt.
type OTPCode struct {
	ID        string
	Phone     string
	CodeHash  string
	ExpiresAt time.Time
	Attempts  int
	Consumed  bool
	CreatedAt time.Time
}

// Expired indica si el código ya venció.
func (o *OTPCode) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
