package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is an ordered list of strings stored as a JSON column.
// Order matters: the configured order drives row ordering in the corte
// breakdown and the sale-entry form.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("StringList: cannot scan %T", src)
	}
}

// Configuracion is the singleton settings row (ID always 1).
type Configuracion struct {
	ID          int        `gorm:"primaryKey" json:"-"`
	TiposVenta  StringList `gorm:"type:jsonb;not null" json:"tipos_venta"`
	MetodosPago StringList `gorm:"type:jsonb;not null" json:"metodos_pago"`
	UpdatedAt   time.Time  `json:"-"`
}

// ConfiguracionDefault returns the initial settings seeded on first run.
func ConfiguracionDefault() *Configuracion {
	return &Configuracion{
		ID: 1,
		TiposVenta: StringList{
			"Daypass", "Restaurante", "Hotel", "Boutique", "Masajes",
			"Transportes", "Tours", "Evento", "Clase de Surf",
		},
		MetodosPago: StringList{
			MetodoEfectivo, MetodoBAC, MetodoPromerica, MetodoLinkDePago,
			MetodoTransferencia, MetodoBitcoin, MetodoOtros,
		},
	}
}
