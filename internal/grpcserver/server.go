package grpcserver

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pokedex/internal/pokemon"
)

type Server struct {
	Service *pokemon.Service
}

func NewServer(svc *pokemon.Service) *Server {
	return &Server{Service: svc}
}

func (s *Server) GetPokemon(ctx context.Context, req *LookupRequest) (*LookupResponse, error) {
	name, err := requireName(req)
	if err != nil {
		return nil, err
	}
	info, err := s.Service.GetPokemon(ctx, name)
	if err != nil {
		return nil, toStatus(err)
	}
	return &LookupResponse{Pokemon: info}, nil
}

func (s *Server) GetTranslatedPokemon(ctx context.Context, req *LookupRequest) (*LookupResponse, error) {
	name, err := requireName(req)
	if err != nil {
		return nil, err
	}
	info, err := s.Service.GetTranslatedPokemon(ctx, name)
	if err != nil {
		return nil, toStatus(err)
	}
	return &LookupResponse{Pokemon: info}, nil
}

func requireName(req *LookupRequest) (string, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return "", status.Error(codes.InvalidArgument, "name required")
	}
	return strings.TrimSpace(req.Name), nil
}

func toStatus(err error) error {
	switch {
	case pokemon.IsNotFound(err):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, pokemon.ErrBlankName):
		return status.Error(codes.InvalidArgument, "name required")
	default:
		return status.Error(codes.Internal, "lookup failed")
	}
}

// LoggingInterceptor logs each unary call with its status code.
func LoggingInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		log.Info("grpc call",
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
		)
		return resp, err
	}
}
