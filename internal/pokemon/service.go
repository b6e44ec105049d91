package pokemon

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"pokedex/internal/funtranslations"
	"pokedex/internal/pokeapi"
	"pokedex/pkg/models"
)

// SpeciesProvider fetches one raw species record by name.
type SpeciesProvider interface {
	Name() string
	GetSpecies(ctx context.Context, name string) (*models.SpeciesRecord, error)
}

// Translator rewrites text in the given style.
type Translator interface {
	Translate(ctx context.Context, t funtranslations.Translation, text string) (string, error)
}

// Service aggregates species data and optional fun translations.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	Species    SpeciesProvider
	Translator Translator
	Log        *zap.Logger
}

func NewService(species SpeciesProvider, translator Translator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{Species: species, Translator: translator, Log: log}
}

// GetPokemon returns the normalized info for name.
//
// Errors: ErrBlankName, *NotFoundError, *UpstreamError or ErrNoValidFlavorText.
func (s *Service) GetPokemon(ctx context.Context, name string) (*models.PokemonInfo, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}

	rec, err := s.Species.GetSpecies(ctx, name)
	if err != nil {
		if errors.Is(err, pokeapi.ErrSpeciesNotFound) {
			s.Log.Error("pokemon not found", zap.String("name", name))
			return nil, &NotFoundError{Name: name}
		}
		s.Log.Error("species lookup failed", zap.String("name", name), zap.Error(err))
		return nil, &UpstreamError{Service: s.Species.Name(), Err: err}
	}
	if rec == nil {
		s.Log.Error("empty response body", zap.String("name", name))
		return nil, &UpstreamError{Service: s.Species.Name(), Err: pokeapi.ErrEmptyBody}
	}

	text, ok := firstEnglish(rec.FlavorTextEntries)
	if !ok {
		s.Log.Error("no valid flavor text found", zap.String("name", name))
		return nil, ErrNoValidFlavorText
	}

	info := &models.PokemonInfo{
		Name:        rec.Name,
		Description: sanitize(text),
		Habitat:     rec.HabitatName(),
		IsLegendary: rec.IsLegendary,
	}
	s.Log.Info("retrieved pokemon information", zap.String("name", name))
	return info, nil
}

// GetTranslatedPokemon is GetPokemon with the description rewritten by
// the translation picked by SelectTranslation. A failed translation keeps
// the original description and is never returned as an error.
func (s *Service) GetTranslatedPokemon(ctx context.Context, name string) (*models.PokemonInfo, error) {
	info, err := s.GetPokemon(ctx, name)
	if err != nil {
		return nil, err
	}

	if translated, ok := s.tryTranslate(ctx, info); ok {
		info.Description = translated
	}
	return info, nil
}

// tryTranslate captures the translation outcome; only errors from the
// translator call itself are absorbed here.
func (s *Service) tryTranslate(ctx context.Context, info *models.PokemonInfo) (string, bool) {
	if s.Translator == nil {
		return "", false
	}
	t := SelectTranslation(info.Habitat, info.IsLegendary)

	translated, err := s.Translator.Translate(ctx, t, info.Description)
	if err != nil {
		s.Log.Warn("translation failed, keeping original description",
			zap.String("name", info.Name),
			zap.String("translation", string(t)),
			zap.Error(err),
		)
		return "", false
	}
	if translated == "" {
		s.Log.Warn("empty translation, keeping original description",
			zap.String("name", info.Name),
			zap.String("translation", string(t)),
		)
		return "", false
	}
	return translated, true
}
