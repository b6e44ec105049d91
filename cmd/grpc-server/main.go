package main

import (
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"pokedex/internal/funtranslations"
	"pokedex/internal/grpcserver"
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

	listener, err := net.Listen("tcp", cfg.GrpcAddr)
	if err != nil {
		log.Fatal("grpc listen failed", zap.Error(err))
	}

	svc := pokemon.NewService(
		pokeapi.NewClient(cfg.Upstream.PokeAPIURL, cfg.Upstream.Timeout),
		funtranslations.NewClient(cfg.Upstream.FunTranslationsURL, cfg.Upstream.Timeout),
		log.Named("pokemon"),
	)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(grpcserver.LoggingInterceptor(log.Named("grpc"))))
	grpcserver.RegisterPokemonServiceServer(grpcServer, grpcserver.NewServer(svc))

	log.Info("gRPC server listening", zap.String("addr", cfg.GrpcAddr))
	if err := grpcServer.Serve(listener); err != nil {
		log.Fatal("grpc server stopped", zap.Error(err))
	}
}
