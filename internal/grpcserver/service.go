package grpcserver

import (
	"context"

	"google.golang.org/grpc"

	"pokedex/pkg/models"
)

const (
	serviceName                = "pokedex.v1.PokemonService"
	methodGetPokemon           = "/" + serviceName + "/GetPokemon"
	methodGetTranslatedPokemon = "/" + serviceName + "/GetTranslatedPokemon"
)

type LookupRequest struct {
	Name string `json:"name"`
}

type LookupResponse struct {
	Pokemon *models.PokemonInfo `json:"pokemon"`
}

// PokemonServiceServer is the server API for pokedex.v1.PokemonService.
type PokemonServiceServer interface {
	GetPokemon(context.Context, *LookupRequest) (*LookupResponse, error)
	GetTranslatedPokemon(context.Context, *LookupRequest) (*LookupResponse, error)
}

func RegisterPokemonServiceServer(s grpc.ServiceRegistrar, srv PokemonServiceServer) {
	s.RegisterService(&pokemonServiceDesc, srv)
}

var pokemonServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*PokemonServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetPokemon", Handler: getPokemonHandler},
		{MethodName: "GetTranslatedPokemon", Handler: getTranslatedPokemonHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pokedex/v1/pokemon.proto",
}

func getPokemonHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LookupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokemonServiceServer).GetPokemon(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetPokemon}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PokemonServiceServer).GetPokemon(ctx, req.(*LookupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getTranslatedPokemonHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LookupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokemonServiceServer).GetTranslatedPokemon(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetTranslatedPokemon}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PokemonServiceServer).GetTranslatedPokemon(ctx, req.(*LookupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PokemonServiceClient calls pokedex.v1.PokemonService using the JSON codec.
type PokemonServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPokemonServiceClient(cc grpc.ClientConnInterface) *PokemonServiceClient {
	return &PokemonServiceClient{cc: cc}
}

func (c *PokemonServiceClient) GetPokemon(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupResponse, error) {
	out := new(LookupResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := c.cc.Invoke(ctx, methodGetPokemon, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PokemonServiceClient) GetTranslatedPokemon(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupResponse, error) {
	out := new(LookupResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := c.cc.Invoke(ctx, methodGetTranslatedPokemon, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
