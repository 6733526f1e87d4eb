package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Jaomarks/eternapdv/docs"
	"github.com/Jaomarks/eternapdv/internal/config"
	"github.com/Jaomarks/eternapdv/internal/httpx"
	"github.com/Jaomarks/eternapdv/internal/menu"
	"github.com/Jaomarks/eternapdv/internal/order"
)

// @title        EternaPDV API
// @version      1.0
// @description  Order lifecycle backend for the lanchonete displays (totem, caixa, cozinha, entrega, monitor).
// @BasePath     /
func main() {
	cfg := config.Load()

	catalog := menu.Default()
	store := order.NewStore()
	if cfg.SeedDemoData {
		seedDemoOrders(store, catalog)
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())
	// The displays are browser pages polling from other origins.
	corsCfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	r.Use(cors.New(corsCfg))

	registerRoutes(r, store, catalog, cfg.BaseURL)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("pos-service listening on %s", cfg.Addr)
	log.Fatal(r.Run(cfg.Addr))
}
