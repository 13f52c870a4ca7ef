package router

import (
	"time"

	"github.com/DaviHuene/AppControl/internal/config"
	"github.com/DaviHuene/AppControl/internal/handler"
	"github.com/DaviHuene/AppControl/internal/middleware"
	"github.com/DaviHuene/AppControl/internal/service"

	"github.com/gin-gonic/gin"
)

// New monta o engine Gin com a cadeia de middlewares e as rotas do ledger.
// Grafo de dependências: Handler ← LedgerService ← Store.
func New(cfg *config.Config, ledger service.LedgerService) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Cadeia global de middlewares (a ordem importa)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))

	// ── Handlers ─────────────────────────────────────────────────────────────
	pedidosH := handler.NewPedidosHandler(ledger)
	produtosH := handler.NewProdutosHandler(ledger)
	entregadoresH := handler.NewEntregadoresHandler(ledger)
	financeiroH := handler.NewFinanceiroHandler(ledger)

	// ── Rotas ────────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(cfg.DataDir))

	v1 := r.Group("/v1")
	{
		v1.POST("/pedidos", pedidosH.Registrar)
		v1.GET("/pedidos", pedidosH.Listar)
		v1.PUT("/pedidos/:id", pedidosH.Editar)
		v1.DELETE("/pedidos/:id", pedidosH.Remover)
		v1.POST("/pedidos/remover-lote", pedidosH.RemoverLote)

		v1.POST("/produtos", produtosH.Upsert)
		v1.GET("/produtos", produtosH.Listar)
		v1.DELETE("/produtos/:nome", produtosH.Remover)

		v1.POST("/entregadores", entregadoresH.Upsert)
		v1.GET("/entregadores", entregadoresH.Listar)
		v1.DELETE("/entregadores/:nome", entregadoresH.Remover)

		v1.GET("/financeiro/resumo", financeiroH.Resumo)
	}

	return r
}
