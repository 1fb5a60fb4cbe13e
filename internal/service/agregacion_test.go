package service

import (
	"testing"

	"viewspos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func venta(tipo, metodo string, monto int64) model.Venta {
	return model.Venta{
		Tipo:       tipo,
		Canal:      model.CanalReservaDirecta,
		MetodoPago: metodo,
		Monto:      decimal.NewFromInt(monto),
	}
}

func TestAnalizarVentas(t *testing.T) {
	ventas := []model.Venta{
		venta("Hotel", model.MetodoEfectivo, 1000),
		venta("Restaurante", model.MetodoBAC, 200),
		venta("Tours", model.MetodoPromerica, 100),
		venta("Hotel", model.MetodoTransferencia, 150),
		venta("Hotel", model.MetodoBitcoin, 50),
	}

	a := AnalizarVentas(ventas)
	assert.Equal(t, "1500.00", a.Total.StringFixed(2))
	assert.Equal(t, "200.00", a.BAC.StringFixed(2))
	assert.Equal(t, "100.00", a.Promerica.StringFixed(2))
	assert.Equal(t, "300.00", a.Tarjeta.StringFixed(2))
	assert.Equal(t, "200.00", a.Deposito.StringFixed(2))
}

func TestAnalizarVentasVacio(t *testing.T) {
	a := AnalizarVentas(nil)
	assert.True(t, a.Total.IsZero())
	assert.True(t, a.Tarjeta.IsZero())
	assert.True(t, a.Deposito.IsZero())
}

func TestDesglosarVentasOrden(t *testing.T) {
	// "Sauna" ya no esta configurado pero existe en los datos historicos:
	// los tipos configurados van primero en su orden, los demas al final
	// en orden alfabetico.
	ventas := []model.Venta{
		venta("Sauna", model.MetodoEfectivo, 30),
		venta("Hotel", model.MetodoBAC, 100),
		venta("Hotel", model.MetodoEfectivo, 50),
		venta("Daypass", model.MetodoEfectivo, 20),
		venta("Alquiler", model.MetodoEfectivo, 10),
	}
	tipos := []string{"Daypass", "Restaurante", "Hotel"}
	metodos := []string{model.MetodoEfectivo, model.MetodoBAC}

	filas := DesglosarVentas(ventas, tipos, metodos)
	require.Len(t, filas, 5)

	orden := make([]string, 0, len(filas))
	for _, f := range filas {
		orden = append(orden, f.Tipo)
	}
	assert.Equal(t, []string{"Daypass", "Hotel", "Hotel", "Alquiler", "Sauna"}, orden)

	// Dentro de Hotel manda el orden configurado de metodos.
	assert.Equal(t, model.MetodoEfectivo, filas[1].Metodo)
	assert.Equal(t, model.MetodoBAC, filas[2].Metodo)
}

func TestDesglosarVentasSoloCeldasPositivas(t *testing.T) {
	ventas := []model.Venta{venta("Hotel", model.MetodoEfectivo, 0)}
	filas := DesglosarVentas(ventas, []string{"Hotel"}, []string{model.MetodoEfectivo})
	assert.Empty(t, filas)
}

func TestDesglosarVentasDeterminista(t *testing.T) {
	ventas := []model.Venta{
		venta("Zebra", model.MetodoEfectivo, 10),
		venta("Alfa", model.MetodoEfectivo, 10),
		venta("Hotel", model.MetodoEfectivo, 10),
	}
	a := DesglosarVentas(ventas, []string{"Hotel"}, []string{model.MetodoEfectivo})
	for i := 0; i < 10; i++ {
		b := DesglosarVentas(ventas, []string{"Hotel"}, []string{model.MetodoEfectivo})
		assert.Equal(t, a, b)
	}
}
