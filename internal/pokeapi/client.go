package pokeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pokedex/pkg/models"
)

const speciesPath = "/api/v2/pokemon-species/"

// maxBody caps how much of an upstream body we read.
const maxBody = 4 << 20

// Client looks up species on PokeAPI.
type Client struct {
	BaseURL string
	Client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string { return "pokeapi" }

// GetSpecies issues a single GET for the named species.
func (c *Client) GetSpecies(ctx context.Context, name string) (*models.SpeciesRecord, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, ErrBlankName
	}

	endpoint := c.BaseURL + speciesPath + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("pokeapi: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pokeapi: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("pokeapi: read body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrSpeciesNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, ErrEmptyBody
	}

	var rec models.SpeciesRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("pokeapi: decode: %w", err)
	}
	if rec.Name == "" {
		return nil, ErrEmptyBody
	}
	return &rec, nil
}
