package mirror

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/funtranslations"
	"pokedex/internal/pokeapi"
	"pokedex/internal/pokemon"
)

func writeFixture(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "species"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "species", name+".json"), []byte(body), 0o644))
}

func newMirror(t *testing.T, dir string) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(dir).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestMirror_ServesBundledFixtures(t *testing.T) {
	srv := newMirror(t, filepath.Join("..", "..", "data"))
	svc := pokemon.NewService(
		pokeapi.NewClient(srv.URL, time.Second),
		funtranslations.NewClient(srv.URL, time.Second),
		nil,
	)

	info, err := svc.GetPokemon(context.Background(), "mewtwo")
	require.NoError(t, err)
	assert.Equal(t, "It was created by a scientist after years of horrific gene splicing and DNA engineering experiments.", info.Description)

	translated, err := svc.GetTranslatedPokemon(context.Background(), "zubat")
	require.NoError(t, err)
	assert.Contains(t, translated.Description, "[yoda] Forms colonies in perpetually dark places.")

	translated, err = svc.GetTranslatedPokemon(context.Background(), "ponyta")
	require.NoError(t, err)
	assert.Contains(t, translated.Description, "[shakespeare] Its hooves are 10 times harder")
}

func TestMirror_SpeciesNotFound(t *testing.T) {
	srv := newMirror(t, t.TempDir())

	for _, name := range []string{"missingno", "..%2Fsecret"} {
		resp, err := http.Get(srv.URL + "/api/v2/pokemon-species/" + name)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, name)
	}
}

func TestMirror_InvalidFixture(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "broken", `{"name":`)
	srv := newMirror(t, dir)

	resp, err := http.Get(srv.URL + "/api/v2/pokemon-species/broken")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestMirror_Translate(t *testing.T) {
	srv := newMirror(t, t.TempDir())
	c := funtranslations.NewClient(srv.URL, time.Second)

	out, err := c.Translate(context.Background(), funtranslations.Shakespeare, "hello")
	require.NoError(t, err)
	assert.Equal(t, "[shakespeare] hello", out)

	_, err = c.Translate(context.Background(), funtranslations.Yoda, "  ")
	var se *funtranslations.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
}
