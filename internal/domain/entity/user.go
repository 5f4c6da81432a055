package entity

import "time"

// Roles de usuario.
const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
)

// User usuario de la plataforma. El login es por teléfono + OTP; el primer
// login crea el usuario con rol customer. El rol owner se obtiene al aprobarse el KYC.
type User struct {
	ID        string
	Phone     string // formato E.164 (+573001234567)
	Name      string
	Role      string // customer, owner, admin
	Status    string // active, suspended
	CreatedAt time.Time
	UpdatedAt time.Time
}
