// Package mirror serves PokeAPI- and FunTranslations-shaped responses from
// local fixture files, so the API can run without network access.
package mirror

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"pokedex/internal/funtranslations"
	"pokedex/pkg/models"
)

var validName = regexp.MustCompile(`^[a-z0-9-]+$`)

type Handler struct {
	DataDir string
}

func NewHandler(dataDir string) *Handler {
	return &Handler{DataDir: dataDir}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/v2/pokemon-species/:name", h.species)
	r.POST("/translate/:translation", h.translate)
}

// species serves {DataDir}/species/{name}.json.
func (h *Handler) species(c *gin.Context) {
	name := strings.ToLower(c.Param("name"))
	if !validName.MatchString(name) {
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	b, err := os.ReadFile(filepath.Join(h.DataDir, "species", name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			c.String(http.StatusNotFound, "Not Found")
			return
		}
		c.String(http.StatusInternalServerError, "cannot read fixture: "+err.Error())
		return
	}
	// validate JSON so a bad file doesn't silently break
	if !json.Valid(b) {
		c.String(http.StatusInternalServerError, "fixture "+name+".json is invalid JSON")
		return
	}
	c.Data(http.StatusOK, "application/json", b)
}

// translate echoes the text back tagged with the translation name.
func (h *Handler) translate(c *gin.Context) {
	t := funtranslations.Translation(c.Param("translation"))
	if t != funtranslations.Yoda && t != funtranslations.Shakespeare {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": 404, "message": "Not Found"}})
		return
	}

	text := c.PostForm("text")
	if strings.TrimSpace(text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": 400, "message": "Bad Request: text is missing."}})
		return
	}

	var resp models.TranslationResponse
	resp.Success.Total = 1
	resp.Contents.Text = text
	resp.Contents.Translation = string(t)
	resp.Contents.Translated = "[" + string(t) + "] " + text
	c.JSON(http.StatusOK, resp)
}
