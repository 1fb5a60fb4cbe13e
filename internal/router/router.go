package router

import (
	"time"

	"viewspos/internal/config"
	"viewspos/internal/handler"
	"viewspos/internal/middleware"
	"viewspos/internal/repository"
	"viewspos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, notifier service.CierreNotifier) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	gastoRepo := repository.NewGastoRepository(db)
	diaRepo := repository.NewDiaRepository(db)
	configRepo := repository.NewConfiguracionRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	configSvc := service.NewConfiguracionService(configRepo, rdb)
	corteSvc := service.NewCorteService(ventaRepo, gastoRepo, diaRepo, configSvc, notifier)
	ventaSvc := service.NewVentaService(ventaRepo, gastoRepo, corteSvc, configSvc)
	gastoSvc := service.NewGastoService(gastoRepo, corteSvc)
	resumenSvc := service.NewResumenService(ventaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	gastosH := handler.NewGastosHandler(gastoSvc)
	corteH := handler.NewCorteHandler(corteSvc)
	resumenH := handler.NewResumenHandler(resumenSvc)
	configH := handler.NewConfiguracionHandler(configSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/v1/auth/login", authH.Login)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Ventas — ambos roles operan el dia a dia
		v1.POST("/ventas", ventasH.Crear)
		v1.GET("/ventas", ventasH.Listar)
		v1.PUT("/ventas/:id", ventasH.Actualizar)
		v1.DELETE("/ventas/:id", ventasH.Eliminar)
		v1.GET("/ventas/export", middleware.RequireRole("admin"), ventasH.Exportar)

		// Gastos
		v1.POST("/gastos", gastosH.Crear)
		v1.GET("/gastos", gastosH.Listar)
		v1.DELETE("/gastos/:id", gastosH.Eliminar)
		v1.GET("/gastos/proveedores", gastosH.Proveedores)

		// Corte de caja
		v1.GET("/corte/:fecha", corteH.Obtener)
		v1.POST("/corte/:fecha/conteo", corteH.Conteo)
		v1.POST("/corte/:fecha/cerrar", corteH.Cerrar)
		v1.POST("/corte/:fecha/reabrir", middleware.RequireRole("admin"), corteH.Reabrir)
		v1.GET("/dias/:fecha", corteH.EstadoDia)

		// Panel diario
		v1.GET("/panel/:fecha", ventasH.Panel)

		// Resumen / nomina — admin
		v1.GET("/resumen", middleware.RequireRole("admin"), resumenH.Obtener)

		// Configuracion — lectura para todos, escritura admin
		v1.GET("/configuracion", configH.Obtener)
		v1.PUT("/configuracion", middleware.RequireRole("admin"), configH.Actualizar)

		// Usuarios — solo el super admin
		usuarios := v1.Group("/usuarios", middleware.RequireSuperAdmin())
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Eliminar)
		}
	}

	return r
}
