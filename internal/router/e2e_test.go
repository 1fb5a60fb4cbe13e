//go:build integration

package router_test

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"viewspos/internal/config"
	"viewspos/internal/infra"
	"viewspos/internal/model"
	"viewspos/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var reader *bytes.Buffer
	if body == nil {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = body
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server     *httptest.Server
	adminToken string
	recepToken string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("viewspos_test"),
		tcPostgres.WithUsername("viewspos"),
		tcPostgres.WithPassword("viewspos"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
		PDFStoragePath:     t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	recepDiego := model.RecepcionistaDiego
	require.NoError(t, db.Create(&model.Usuario{
		Nombre:        "Diego (Admin)",
		PIN:           "2211",
		Rol:           model.RolAdmin,
		Recepcionista: &recepDiego,
		SuperAdmin:    true,
	}).Error)
	recepHelen := model.RecepcionistaHelen
	require.NoError(t, db.Create(&model.Usuario{
		Nombre:        "Helen",
		PIN:           "4455",
		Rol:           model.RolRecepcionista,
		Recepcionista: &recepHelen,
	}).Error)

	srv := httptest.NewServer(router.New(cfg, db, rdb, nil))
	t.Cleanup(srv.Close)

	return &testEnv{
		server:     srv,
		adminToken: login(t, srv, "2211"),
		recepToken: login(t, srv, "4455"),
	}
}

func login(t *testing.T, srv *httptest.Server, pin string) string {
	t.Helper()
	resp := do(t, srv, "POST", "/v1/auth/login", jsonBody(t, map[string]string{"pin": pin}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

// ── Tests ────────────────────────────────────────────────────────────────────

// Dia completo: venta → gasto → corte → cierre → fondo arrastrado.
func TestE2E_CicloDiaCompleto(t *testing.T) {
	env := setupTestEnv(t)
	hoy := time.Now().Format("2006-01-02")

	ventaResp := do(t, env.server, "POST", "/v1/ventas",
		jsonBody(t, map[string]any{
			"comanda":       "A-101",
			"monto":         "1000",
			"canal":         "Reserva Directa",
			"tipo":          "Hotel",
			"metodo_pago":   "Efectivo",
			"recepcionista": "Diego",
		}), env.recepToken)
	require.Equal(t, http.StatusCreated, ventaResp.StatusCode)
	var venta struct {
		ID       string `json:"id"`
		Comision string `json:"comision"`
	}
	decodeJSON(t, ventaResp, &venta)
	assert.Equal(t, "16.4", venta.Comision)

	gastoResp := do(t, env.server, "POST", "/v1/gastos",
		jsonBody(t, map[string]any{
			"fecha":            hoy,
			"proveedor":        "distribuidora lopez",
			"descripcion":      "hielo",
			"subtotal":         "150",
			"metodo_pago":      "Efectivo",
			"tipo_documento":   "RECIBO",
			"numero_documento": "R-1",
		}), env.recepToken)
	require.Equal(t, http.StatusCreated, gastoResp.StatusCode)

	corteResp := do(t, env.server, "GET", "/v1/corte/"+hoy, nil, env.recepToken)
	require.Equal(t, http.StatusOK, corteResp.StatusCode)
	var corte struct {
		Abierto bool   `json:"abierto"`
		Teorico string `json:"teorico"`
	}
	decodeJSON(t, corteResp, &corte)
	assert.True(t, corte.Abierto)
	// 200 fondo + 1000 efectivo - 150 gastos
	assert.Equal(t, "1050", corte.Teorico)

	cerrarResp := do(t, env.server, "POST", "/v1/corte/"+hoy+"/cerrar",
		jsonBody(t, map[string]any{
			"confirmado":   true,
			"conteo_total": "1050.00",
		}), env.recepToken)
	require.Equal(t, http.StatusOK, cerrarResp.StatusCode)

	// Nueva venta del mismo dia: rechazada, el dia esta cerrado.
	rechazada := do(t, env.server, "POST", "/v1/ventas",
		jsonBody(t, map[string]any{
			"comanda":     "A-102",
			"monto":       "50",
			"canal":       "Reserva Directa",
			"tipo":        "Daypass",
			"metodo_pago": "Efectivo",
		}), env.recepToken)
	assert.Equal(t, http.StatusConflict, rechazada.StatusCode)

	// Sin remesa, el dia siguiente arranca con el conteo completo.
	manana := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	diaResp := do(t, env.server, "GET", "/v1/dias/"+manana, nil, env.recepToken)
	require.Equal(t, http.StatusOK, diaResp.StatusCode)
	var dia struct {
		Abierto      bool   `json:"abierto"`
		FondoInicial string `json:"fondo_inicial"`
	}
	decodeJSON(t, diaResp, &dia)
	assert.True(t, dia.Abierto)
	assert.Equal(t, "1050", dia.FondoInicial)
}

// Reapertura: solo admin; la recepcionista recibe 403.
func TestE2E_ReabrirSoloAdmin(t *testing.T) {
	env := setupTestEnv(t)
	hoy := time.Now().Format("2006-01-02")

	cerrar := do(t, env.server, "POST", "/v1/corte/"+hoy+"/cerrar",
		jsonBody(t, map[string]any{"confirmado": true, "conteo_total": "200.00"}), env.adminToken)
	require.Equal(t, http.StatusOK, cerrar.StatusCode)

	denegado := do(t, env.server, "POST", "/v1/corte/"+hoy+"/reabrir", nil, env.recepToken)
	assert.Equal(t, http.StatusForbidden, denegado.StatusCode)

	permitido := do(t, env.server, "POST", "/v1/corte/"+hoy+"/reabrir", nil, env.adminToken)
	assert.Equal(t, http.StatusOK, permitido.StatusCode)
}

// Usuarios: el grupo exige super admin y el super admin es indestructible.
func TestE2E_GestionUsuarios(t *testing.T) {
	env := setupTestEnv(t)

	denegado := do(t, env.server, "GET", "/v1/usuarios", nil, env.recepToken)
	assert.Equal(t, http.StatusForbidden, denegado.StatusCode)

	listResp := do(t, env.server, "GET", "/v1/usuarios", nil, env.adminToken)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var usuarios []struct {
		ID         string `json:"id"`
		SuperAdmin bool   `json:"super_admin"`
	}
	decodeJSON(t, listResp, &usuarios)
	require.Len(t, usuarios, 2)

	var superID string
	for _, u := range usuarios {
		if u.SuperAdmin {
			superID = u.ID
		}
	}
	require.NotEmpty(t, superID)

	borrar := do(t, env.server, "DELETE", "/v1/usuarios/"+superID, nil, env.adminToken)
	assert.Equal(t, http.StatusForbidden, borrar.StatusCode)
}

// Configuracion: la escritura invalida la cache de Redis y la lectura
// siguiente ve las listas nuevas.
func TestE2E_ConfiguracionCache(t *testing.T) {
	env := setupTestEnv(t)

	// Primera lectura: siembra defaults y cache.
	primera := do(t, env.server, "GET", "/v1/configuracion", nil, env.recepToken)
	require.Equal(t, http.StatusOK, primera.StatusCode)
	var cfg struct {
		TiposVenta  []string `json:"tipos_venta"`
		MetodosPago []string `json:"metodos_pago"`
	}
	decodeJSON(t, primera, &cfg)
	assert.Contains(t, cfg.TiposVenta, "Daypass")

	nuevos := append(cfg.TiposVenta, "Karaoke")
	actualizar := do(t, env.server, "PUT", "/v1/configuracion",
		jsonBody(t, map[string]any{
			"tipos_venta":  nuevos,
			"metodos_pago": cfg.MetodosPago,
		}), env.adminToken)
	require.Equal(t, http.StatusOK, actualizar.StatusCode)

	segunda := do(t, env.server, "GET", "/v1/configuracion", nil, env.recepToken)
	require.Equal(t, http.StatusOK, segunda.StatusCode)
	decodeJSON(t, segunda, &cfg)
	assert.Contains(t, cfg.TiposVenta, "Karaoke")
}
