package pokemon

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/funtranslations"
	"pokedex/internal/pokeapi"
	"pokedex/pkg/models"
)

// --- fakes ---

type fakeSpecies struct {
	rec   *models.SpeciesRecord
	err   error
	calls int
}

func (f *fakeSpecies) Name() string { return "pokeapi" }

func (f *fakeSpecies) GetSpecies(_ context.Context, _ string) (*models.SpeciesRecord, error) {
	f.calls++
	return f.rec, f.err
}

type translateCall struct {
	translation funtranslations.Translation
	text        string
}

type fakeTranslator struct {
	out   string
	err   error
	calls []translateCall
}

func (f *fakeTranslator) Translate(_ context.Context, t funtranslations.Translation, text string) (string, error) {
	f.calls = append(f.calls, translateCall{translation: t, text: text})
	return f.out, f.err
}

func strPtr(s string) *string { return &s }

func speciesRecord(name string, habitat *string, legendary bool, entries ...models.FlavorText) *models.SpeciesRecord {
	rec := &models.SpeciesRecord{Name: name, IsLegendary: legendary, FlavorTextEntries: entries}
	if habitat != nil {
		rec.Habitat = &models.NamedResource{Name: *habitat}
	}
	return rec
}

func entry(text, lang string) models.FlavorText {
	return models.FlavorText{FlavorText: text, Language: models.NamedResource{Name: lang}}
}

func mewtwo() *models.SpeciesRecord {
	return speciesRecord("mewtwo", strPtr("rare"), true,
		entry("Il a été créé par un scientifique.", "fr"),
		entry("It was created by\na scientist after\fyears of horrific\ngene splicing.", "en"),
		entry("Second english entry.", "en"),
	)
}

const mewtwoDescription = "It was created by a scientist after years of horrific gene splicing."

// --- GetPokemon ---

func TestGetPokemon_BuildsInfo(t *testing.T) {
	species := &fakeSpecies{rec: mewtwo()}
	svc := NewService(species, &fakeTranslator{}, nil)

	info, err := svc.GetPokemon(context.Background(), "mewtwo")
	require.NoError(t, err)

	assert.Equal(t, "mewtwo", info.Name)
	assert.Equal(t, mewtwoDescription, info.Description)
	require.NotNil(t, info.Habitat)
	assert.Equal(t, "rare", *info.Habitat)
	assert.True(t, info.IsLegendary)
	assert.Equal(t, 1, species.calls)
}

func TestGetPokemon_NilHabitat(t *testing.T) {
	svc := NewService(&fakeSpecies{rec: speciesRecord("eevee", nil, false, entry("Fluffy.", "en"))}, nil, nil)

	info, err := svc.GetPokemon(context.Background(), "eevee")
	require.NoError(t, err)
	assert.Nil(t, info.Habitat)
}

func TestGetPokemon_NoEnglishEntry(t *testing.T) {
	rec := speciesRecord("mewtwo", strPtr("rare"), true, entry("Créé.", "fr"), entry("作られた", "ja"))
	svc := NewService(&fakeSpecies{rec: rec}, nil, nil)

	_, err := svc.GetPokemon(context.Background(), "mewtwo")
	assert.ErrorIs(t, err, ErrNoValidFlavorText)
}

func TestGetPokemon_NotFound(t *testing.T) {
	svc := NewService(&fakeSpecies{err: pokeapi.ErrSpeciesNotFound}, nil, nil)

	_, err := svc.GetPokemon(context.Background(), "missingno")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "missingno", nf.Name)
	assert.Equal(t, "Pokemon 'missingno' not found", err.Error())
	assert.True(t, IsNotFound(err))
}

func TestGetPokemon_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name string
		rec  *models.SpeciesRecord
		err  error
	}{
		{"empty body", nil, pokeapi.ErrEmptyBody},
		{"server error", nil, &pokeapi.StatusError{StatusCode: 500, Body: "boom"}},
		{"transport", nil, fmt.Errorf("pokeapi: request: %w", context.DeadlineExceeded)},
		{"nil record without error", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeSpecies{rec: tt.rec, err: tt.err}, nil, nil)

			_, err := svc.GetPokemon(context.Background(), "mewtwo")
			var ue *UpstreamError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, "pokeapi", ue.Service)
			assert.Equal(t, "unexpected response body from service pokeapi", err.Error())
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestGetPokemon_BlankName(t *testing.T) {
	species := &fakeSpecies{rec: mewtwo()}
	svc := NewService(species, nil, nil)

	_, err := svc.GetPokemon(context.Background(), " \t")
	assert.ErrorIs(t, err, ErrBlankName)
	assert.Zero(t, species.calls)
}

func TestGetPokemon_Idempotent(t *testing.T) {
	svc := NewService(&fakeSpecies{rec: mewtwo()}, nil, nil)

	first, err := svc.GetPokemon(context.Background(), "mewtwo")
	require.NoError(t, err)
	second, err := svc.GetPokemon(context.Background(), "mewtwo")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}

// --- GetTranslatedPokemon ---

func TestGetTranslatedPokemon_LegendaryUsesYoda(t *testing.T) {
	tr := &fakeTranslator{out: "Created by a scientist..., it was."}
	svc := NewService(&fakeSpecies{rec: mewtwo()}, tr, nil)

	info, err := svc.GetTranslatedPokemon(context.Background(), "mewtwo")
	require.NoError(t, err)

	assert.Equal(t, "Created by a scientist..., it was.", info.Description)
	require.Len(t, tr.calls, 1)
	assert.Equal(t, funtranslations.Yoda, tr.calls[0].translation)
	assert.Equal(t, mewtwoDescription, tr.calls[0].text)
	assert.Equal(t, "mewtwo", info.Name)
	assert.Equal(t, "rare", *info.Habitat)
	assert.True(t, info.IsLegendary)
}

func TestGetTranslatedPokemon_SelectsEndpoint(t *testing.T) {
	tests := []struct {
		name      string
		habitat   *string
		legendary bool
		want      funtranslations.Translation
	}{
		{"cave not legendary", strPtr("cave"), false, funtranslations.Yoda},
		{"cave legendary", strPtr("cave"), true, funtranslations.Yoda},
		{"rare legendary", strPtr("rare"), true, funtranslations.Yoda},
		{"rare not legendary", strPtr("rare"), false, funtranslations.Shakespeare},
		{"no habitat not legendary", nil, false, funtranslations.Shakespeare},
		{"no habitat legendary", nil, true, funtranslations.Yoda},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &fakeTranslator{out: "translated"}
			rec := speciesRecord("poke", tt.habitat, tt.legendary, entry("text", "en"))
			svc := NewService(&fakeSpecies{rec: rec}, tr, nil)

			_, err := svc.GetTranslatedPokemon(context.Background(), "poke")
			require.NoError(t, err)
			require.Len(t, tr.calls, 1)
			assert.Equal(t, tt.want, tr.calls[0].translation)
		})
	}
}

func TestGetTranslatedPokemon_FallbackOnFailure(t *testing.T) {
	tests := []struct {
		name string
		out  string
		err  error
	}{
		{"status error", "", &funtranslations.StatusError{StatusCode: 500}},
		{"rate limited", "", &funtranslations.StatusError{StatusCode: 429}},
		{"timeout", "", context.DeadlineExceeded},
		{"empty", "", funtranslations.ErrEmptyTranslation},
		{"empty without error", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := speciesRecord("ponyta", strPtr("rare"), false, entry("It was\ncreated.", "en"))
			tr := &fakeTranslator{out: tt.out, err: tt.err}
			svc := NewService(&fakeSpecies{rec: rec}, tr, nil)

			plain, err := svc.GetPokemon(context.Background(), "ponyta")
			require.NoError(t, err)

			info, err := svc.GetTranslatedPokemon(context.Background(), "ponyta")
			require.NoError(t, err)
			assert.Equal(t, plain, info)
			assert.Equal(t, "It was created.", info.Description)
			assert.Len(t, tr.calls, 1)
		})
	}
}

func TestGetTranslatedPokemon_SpeciesFailureSkipsTranslation(t *testing.T) {
	tests := []struct {
		name  string
		fake  *fakeSpecies
		check func(t *testing.T, err error)
	}{
		{
			name:  "not found",
			fake:  &fakeSpecies{err: pokeapi.ErrSpeciesNotFound},
			check: func(t *testing.T, err error) { assert.True(t, IsNotFound(err)) },
		},
		{
			name:  "no english",
			fake:  &fakeSpecies{rec: speciesRecord("x", nil, false, entry("y", "de"))},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrNoValidFlavorText) },
		},
		{
			name: "upstream",
			fake: &fakeSpecies{err: pokeapi.ErrEmptyBody},
			check: func(t *testing.T, err error) {
				var ue *UpstreamError
				assert.True(t, errors.As(err, &ue))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &fakeTranslator{out: "unused"}
			svc := NewService(tt.fake, tr, nil)

			info, err := svc.GetTranslatedPokemon(context.Background(), "x")
			assert.Nil(t, info)
			tt.check(t, err)
			assert.Empty(t, tr.calls)
		})
	}
}

func TestGetTranslatedPokemon_NoTranslator(t *testing.T) {
	svc := NewService(&fakeSpecies{rec: mewtwo()}, nil, nil)

	info, err := svc.GetTranslatedPokemon(context.Background(), "mewtwo")
	require.NoError(t, err)
	assert.Equal(t, mewtwoDescription, info.Description)
}
