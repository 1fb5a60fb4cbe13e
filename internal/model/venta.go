package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Canales de venta. El canal es cerrado; el tipo y el metodo de pago son
// listas configurables (ver Configuracion).
const (
	CanalReservaDirecta = "Reserva Directa"
	CanalExpedia        = "Expedia"
	CanalBooking        = "Booking"
	CanalWebsite        = "Website"
)

// Recepcionistas con identidad de comision. El roster es fijo.
const (
	RecepcionistaHelen   = "Helen"
	RecepcionistaDiego   = "Diego"
	RecepcionistaNinguno = "Ninguno"
)

// Venta is one revenue transaction.
// Comision is computed once at create/update time and stored — it is never
// re-derived from current settings, so historical payouts do not drift.
type Venta struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Fecha         time.Time       `gorm:"not null;index" json:"fecha"`
	Comanda       string          `gorm:"not null" json:"comanda"`
	Monto         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monto"`
	Canal         string          `gorm:"type:varchar(30);not null" json:"canal"`
	Tipo          string          `gorm:"type:varchar(50);not null" json:"tipo"`
	MetodoPago    string          `gorm:"type:varchar(30);not null" json:"metodo_pago"`
	Voucher       *string         `json:"voucher,omitempty"`
	Notas         *string         `json:"notas,omitempty"`
	Propina       *decimal.Decimal `gorm:"type:decimal(12,2)" json:"propina,omitempty"`
	Recepcionista string          `gorm:"type:varchar(20);not null;default:'Ninguno'" json:"recepcionista"`
	Comision      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"comision"`
	CreatedAt     time.Time       `json:"-"`
	UpdatedAt     time.Time       `json:"-"`
}

// FechaDia returns the calendar date (YYYY-MM-DD) a venta belongs to,
// which is the key of the day open/closed state machine.
func (v *Venta) FechaDia() string {
	return v.Fecha.Format("2006-01-02")
}
