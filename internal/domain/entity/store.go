package entity

import (
	"encoding/json"
	"time"
)

// Estados de una tienda.
const (
	StoreStatusPending   = "pending"
	StoreStatusActive    = "active"
	StoreStatusSuspended = "suspended"
)

// Store tienda de un store-owner. Solo puede crearse con un KYC aprobado;
// un owner tiene a lo sumo una tienda.
type Store struct {
	ID        string
	OwnerID   string
	KYCID     string
	Name      string
	Slug      string
	Address   string
	Status    string // pending, active, suspended
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Estados de una solicitud KYC.
const (
	KYCStatusPending  = "pending"
	KYCStatusApproved = "approved"
	KYCStatusRejected = "rejected"
)

// KYCSubmission solicitud de verificación de identidad de un aspirante a owner.
// Documents guarda las referencias a los archivos subidos (ids/urls) como JSON opaco.
type KYCSubmission struct {
	ID             string
	OwnerID        string
	FullName       string
	DocumentType   string // cedula, pasaporte, nit
	DocumentNumber string
	Documents      json.RawMessage
	Status         string // pending, approved, rejected
	Reason         string // motivo de rechazo (vacío si no aplica)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
