package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"pokedex/internal/funtranslations"
	"pokedex/internal/grpcserver"
	"pokedex/internal/middleware"
	"pokedex/internal/pokeapi"
	"pokedex/internal/pokemon"
	"pokedex/pkg/logger"
	"pokedex/pkg/utils"
)

func main() {
	cfg, err := utils.Load()
	log := logger.New(cfg.Log)
	defer log.Sync()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	species := pokeapi.NewClient(cfg.Upstream.PokeAPIURL, cfg.Upstream.Timeout)
	translator := funtranslations.NewClient(cfg.Upstream.FunTranslationsURL, cfg.Upstream.Timeout)
	svc := pokemon.NewService(species, translator, log.Named("pokemon"))

	if cfg.Log.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log.Named("http")))

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "ready",
			"pokeapi":         cfg.Upstream.PokeAPIURL,
			"funtranslations": cfg.Upstream.FunTranslationsURL,
			"timeout":         cfg.Upstream.Timeout.String(),
		})
	})

	pokemon.NewHandler(svc).RegisterRoutes(router.Group("/pokemon"))

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(grpcserver.LoggingInterceptor(log.Named("grpc"))))
	grpcserver.RegisterPokemonServiceServer(grpcSrv, grpcserver.NewServer(svc))

	// Listen first so binding errors show up before we report "listening"
	grpcLis, err := net.Listen("tcp", cfg.GrpcAddr)
	if err != nil {
		log.Fatal("grpc listen failed", zap.String("addr", cfg.GrpcAddr), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("gRPC server listening", zap.String("addr", cfg.GrpcAddr))
		return grpcSrv.Serve(grpcLis)
	})

	g.Go(func() error {
		log.Info("HTTP API server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error("http shutdown error", zap.Error(err))
		}
		grpcSrv.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("servers stopped")
}
