package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos de documento de gasto. Los dos tipos de credito fiscal llevan IVA
// y exigen datos fiscales del contribuyente.
const (
	DocumentoRecibo        = "RECIBO"
	DocumentoCCF           = "CCF"
	DocumentoCreditoFiscal = "CREDITO_FISCAL"
	DocumentoFactura       = "FACTURA"
)

// TasaIVA is the flat tax rate applied to CCF / credito fiscal documents.
var TasaIVA = decimal.NewFromFloat(0.13)

// Gasto is one supplier expense document.
// Invariant: Total = Subtotal + IVA, where IVA = 13% of Subtotal iff the
// document type is CCF or CREDITO_FISCAL, else 0. IVA and Total are derived
// server-side, never trusted from the client.
type Gasto struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Fecha           string          `gorm:"type:varchar(10);not null;index" json:"fecha"`
	Proveedor       string          `gorm:"not null" json:"proveedor"`
	Descripcion     string          `gorm:"not null" json:"descripcion"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	IVA             decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"iva"`
	Total           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	MetodoPago      string          `gorm:"type:varchar(30);not null" json:"metodo_pago"`
	TipoDocumento   string          `gorm:"type:varchar(20);not null" json:"tipo_documento"`
	NumeroDocumento string          `gorm:"not null" json:"numero_documento"`

	// Datos fiscales — solo para CCF / CREDITO_FISCAL.
	RazonSocial *string `json:"razon_social,omitempty"`
	DUINIT      *string `gorm:"column:dui_nit" json:"dui_nit,omitempty"`
	Telefono    *string `json:"telefono,omitempty"`
	Direccion   *string `json:"direccion,omitempty"`

	CreatedAt time.Time `json:"-"`
}

// LlevaIVA reports whether a document type carries the 13% tax.
func LlevaIVA(tipoDocumento string) bool {
	return tipoDocumento == DocumentoCCF || tipoDocumento == DocumentoCreditoFiscal
}
