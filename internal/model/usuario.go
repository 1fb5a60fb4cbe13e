package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles de usuario.
const (
	RolAdmin         = "admin"
	RolRecepcionista = "recepcionista"
)

// Usuario is a staff account. The PIN is the sole login credential: exactly
// four digits, compared by equality, first match wins.
// The super admin cannot be deleted and is the only account allowed to
// manage other users.
type Usuario struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nombre string    `gorm:"not null" json:"nombre"`
	PIN    string    `gorm:"column:pin;type:varchar(4);not null" json:"-"`
	Rol    string    `gorm:"type:varchar(20);not null" json:"rol"`
	// Recepcionista links the account to a commission identity (Helen/Diego).
	Recepcionista *string   `json:"recepcionista,omitempty"`
	SuperAdmin    bool      `gorm:"not null;default:false" json:"super_admin"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}
