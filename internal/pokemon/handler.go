package pokemon

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pokedex/pkg/models"
)

type Handler struct {
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:name", h.get)                      // GET /pokemon/:name
	rg.GET("/translated/:name", h.getTranslated) // GET /pokemon/translated/:name
}

func (h *Handler) get(c *gin.Context) {
	h.respond(c, h.Service.GetPokemon)
}

func (h *Handler) getTranslated(c *gin.Context) {
	h.respond(c, h.Service.GetTranslatedPokemon)
}

type lookupFunc func(ctx context.Context, name string) (*models.PokemonInfo, error)

func (h *Handler) respond(c *gin.Context, lookup lookupFunc) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrBlankName.Error()})
		return
	}

	info, err := lookup(c.Request.Context(), name)
	if err != nil {
		c.JSON(StatusFor(err), gin.H{"error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, info)
}

// StatusFor maps service errors onto HTTP status codes.
func StatusFor(err error) int {
	var nf *NotFoundError
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.Is(err, ErrBlankName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage names the missing pokemon for 404s and stays generic otherwise.
func errorMessage(err error) string {
	var nf *NotFoundError
	var ue *UpstreamError
	switch {
	case errors.As(err, &nf), errors.Is(err, ErrBlankName), errors.Is(err, ErrNoValidFlavorText):
		return err.Error()
	case errors.As(err, &ue):
		return ue.Error()
	default:
		return "internal server error"
	}
}
