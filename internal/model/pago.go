package model

// Metodos de pago con semantica propia. La lista configurada puede crecer
// con valores arbitrarios; todo metodo desconocido cae en el bucket "otros".
const (
	MetodoEfectivo      = "Efectivo"
	MetodoBAC           = "BAC"
	MetodoPromerica     = "Promerica"
	MetodoLinkDePago    = "Link de Pago"
	MetodoTransferencia = "Transferencia"
	MetodoBitcoin       = "Bitcoin"
	MetodoOtros         = "Otros"
)

// Classification tables. Lookups by name with a default bucket, never a
// closed switch: a newly configured method simply classifies as "otros".
var (
	metodosTarjeta = map[string]bool{
		MetodoBAC:       true,
		MetodoPromerica: true,
	}

	// Deposit-style methods never pass through the physical drawer.
	metodosDeposito = map[string]bool{
		MetodoTransferencia: true,
		MetodoLinkDePago:    true,
		MetodoBitcoin:       true,
	}

	metodosConVoucher = map[string]bool{
		MetodoBAC:           true,
		MetodoPromerica:     true,
		MetodoLinkDePago:    true,
		MetodoTransferencia: true,
	}

	// Methods that carry the 4.5% bank fee deducted from commission bases.
	metodosConComisionBancaria = map[string]bool{
		MetodoBAC:        true,
		MetodoPromerica:  true,
		MetodoLinkDePago: true,
	}
)

// EsTarjeta reports whether metodo is one of the two card networks.
func EsTarjeta(metodo string) bool { return metodosTarjeta[metodo] }

// EsDeposito reports whether metodo settles outside the cash drawer.
func EsDeposito(metodo string) bool { return metodosDeposito[metodo] }

// RequiereVoucher reports whether a sale paid by metodo must carry a
// proof-of-payment reference.
func RequiereVoucher(metodo string) bool { return metodosConVoucher[metodo] }

// TieneComisionBancaria reports whether metodo carries the 4.5% bank fee.
func TieneComisionBancaria(metodo string) bool { return metodosConComisionBancaria[metodo] }

// Buckets del resumen por canal.
const (
	BucketEfectivo = "efectivo"
	BucketTarjeta  = "tc"
	BucketBitcoin  = "bitcoin"
	BucketTransfer = "transfer"
)

// BucketResumen maps a payment method to its summary-matrix column.
// Transferencia, Link de Pago and anything unrecognized land in "transfer".
func BucketResumen(metodo string) string {
	switch {
	case metodo == MetodoEfectivo:
		return BucketEfectivo
	case EsTarjeta(metodo):
		return BucketTarjeta
	case metodo == MetodoBitcoin:
		return BucketBitcoin
	default:
		return BucketTransfer
	}
}
