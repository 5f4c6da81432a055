package dto

import "time"

// RequestOTPRequest entrada para solicitar un código OTP.
type RequestOTPRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

// RequestOTPResponse confirmación del envío (nunca incluye el código).
type RequestOTPResponse struct {
	Phone     string    `json:"phone"`
	ExpiresAt time.Time `json:"expires_at"`
}

// VerifyOTPRequest entrada para verificar el código y obtener un token.
type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
	Code  string `json:"code" validate:"required,min=4,max=8"`
	Name  string `json:"name"` // opcional: nombre en primer login
}

// UserResponse usuario autenticado.
type UserResponse struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token + usuario tras verificar el OTP.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
