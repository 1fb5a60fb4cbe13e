package handler

import (
	"errors"
	"net/http"
	"reflect"
	"time"

	"viewspos/internal/apierror"
	"viewspos/internal/money"
	"viewspos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps domain errors to HTTP statuses. Caller mistakes keep
// their message; anything unrecognized (repository failures, broken
// invariants) is handed to the error middleware, which logs it with the
// request id and answers a safe 500 — raw internals never reach the wire.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDiaCerrado):
		c.JSON(http.StatusConflict, apierror.New("El dia esta cerrado"))
	case errors.Is(err, service.ErrProhibido):
		c.JSON(http.StatusForbidden, apierror.New("Operacion no permitida"))
	case errors.Is(err, service.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New("No encontrado"))
	case esErrorDeEntrada(err):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
		c.Abort()
	}
}

// esErrorDeEntrada reports whether the error came from operator input:
// tagged domain rejections, malformed amounts or counts, and bad dates.
func esErrorDeEntrada(err error) bool {
	var parseErr *time.ParseError
	return errors.Is(err, service.ErrDatosInvalidos) ||
		errors.Is(err, service.ErrNoConfirmado) ||
		errors.Is(err, money.ErrMontoInvalido) ||
		errors.Is(err, money.ErrCantidadInvalida) ||
		errors.As(err, &parseErr)
}
