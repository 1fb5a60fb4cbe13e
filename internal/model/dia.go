package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// FondoInicialDefault is the cash float a day starts with when nobody has
// ever touched its record.
var FondoInicialDefault = decimal.NewFromInt(200)

// EstadoDia tracks the open/closed state machine of one calendar date.
// A date with no row is implicitly open with the default fund — callers must
// go through ResolverEstadoDia instead of checking for nil themselves.
type EstadoDia struct {
	Fecha        string          `gorm:"type:varchar(10);primaryKey" json:"fecha"`
	Abierto      bool            `gorm:"not null;default:true" json:"abierto"`
	FondoInicial decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"fondo_inicial"`
	FondoFinal   *decimal.Decimal `gorm:"type:decimal(12,2)" json:"fondo_final,omitempty"`
	CerradoEn    *time.Time      `json:"cerrado_en,omitempty"`
	CerradoPor   *string         `json:"cerrado_por,omitempty"`
	UpdatedAt    time.Time       `json:"-"`
}

// ResolverEstadoDia materializes the implicit default for an absent record.
// This is the single place where "no row means open with $200" lives.
func ResolverEstadoDia(fecha string, existente *EstadoDia) *EstadoDia {
	if existente != nil {
		return existente
	}
	return &EstadoDia{
		Fecha:        fecha,
		Abierto:      true,
		FondoInicial: FondoInicialDefault,
	}
}

// SiguienteFecha returns the calendar date after fecha (YYYY-MM-DD).
func SiguienteFecha(fecha string) (string, error) {
	t, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, 1).Format("2006-01-02"), nil
}
