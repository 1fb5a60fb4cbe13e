package service

import "errors"

// Sentinel domain errors. Handlers map these to HTTP statuses; everything
// else surfaces as a safe 500 through the error middleware.
var (
	// ErrDiaCerrado rejects any mutation targeting a closed date.
	ErrDiaCerrado = errors.New("el dia esta cerrado")
	// ErrProhibido rejects an operation the actor's role does not allow.
	ErrProhibido = errors.New("operacion no permitida")
	// ErrNoEncontrado signals a missing entity.
	ErrNoEncontrado = errors.New("no encontrado")
	// ErrNoConfirmado rejects a close/reopen without explicit confirmation.
	ErrNoConfirmado = errors.New("se requiere confirmacion del operador")
	// ErrDatosInvalidos tags operator input the domain rejects. Handlers map
	// anything wrapping it to 400; untagged errors are internal failures.
	ErrDatosInvalidos = errors.New("datos invalidos")
)
