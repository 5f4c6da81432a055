package dto

import (
	"encoding/json"
	"time"
)

// SubmitKYCRequest entrada del formulario KYC del aspirante a owner.
type SubmitKYCRequest struct {
	FullName       string          `json:"full_name" validate:"required,min=3,max=200"`
	DocumentType   string          `json:"document_type" validate:"required,oneof=cedula pasaporte nit"`
	DocumentNumber string          `json:"document_number" validate:"required,min=5,max=30"`
	Documents      json.RawMessage `json:"documents"` // referencias a archivos subidos
}

// KYCResponse estado de una solicitud KYC.
type KYCResponse struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"owner_id"`
	FullName       string          `json:"full_name"`
	DocumentType   string          `json:"document_type"`
	DocumentNumber string          `json:"document_number"`
	Documents      json.RawMessage `json:"documents,omitempty"`
	Status         string          `json:"status"`
	Reason         string          `json:"reason,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ReviewKYCRequest decisión del admin sobre una solicitud.
type ReviewKYCRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"` // obligatorio al rechazar
}

// CreateStoreRequest entrada para crear la tienda (requiere KYC aprobado).
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,min=3,max=120"`
	Slug    string `json:"slug" validate:"required,min=3,max=120"`
	Address string `json:"address" validate:"max=300"`
}

// StoreResponse tienda del owner.
type StoreResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
