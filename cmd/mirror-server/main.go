package main

import (
	"flag"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pokedex/internal/middleware"
	"pokedex/internal/mirror"
	"pokedex/pkg/logger"
	"pokedex/pkg/utils"
)

func main() {
	addr := flag.String("addr", ":9000", "listen address")
	dataDir := flag.String("data", "data", "fixture directory (expects species/<name>.json)")
	flag.Parse()

	log := logger.New(utils.LogConfig{Env: "development", Level: "info"})
	defer log.Sync()

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log))
	mirror.NewHandler(*dataDir).RegisterRoutes(router)

	log.Info("mirror-server listening", zap.String("addr", *addr), zap.String("data", *dataDir))
	if err := http.ListenAndServe(*addr, router); err != nil {
		log.Fatal("mirror-server stopped", zap.Error(err))
	}
}
