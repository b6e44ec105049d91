package funtranslations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pokedex/pkg/models"
)

// Translation names one of the FunTranslations endpoints we call.
type Translation string

const (
	Yoda        Translation = "yoda"
	Shakespeare Translation = "shakespeare"
)

var (
	ErrUnknownTranslation = errors.New("funtranslations: unknown translation")
	ErrEmptyTranslation   = errors.New("funtranslations: empty translation")
)

// StatusError is a non-200 answer from FunTranslations.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("funtranslations: status %d: %s", e.StatusCode, e.Body)
}

const maxBody = 1 << 20

// Client posts text to the FunTranslations API.
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

func (c *Client) Name() string { return "funtranslations" }

// Translate sends text to the endpoint for t and returns contents.translated.
func (c *Client) Translate(ctx context.Context, t Translation, text string) (string, error) {
	if t != Yoda && t != Shakespeare {
		return "", fmt.Errorf("%w: %q", ErrUnknownTranslation, string(t))
	}

	form := url.Values{}
	form.Set("text", text)

	endpoint := c.BaseURL + "/translate/" + string(t)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("funtranslations: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("funtranslations: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("funtranslations: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", ErrEmptyTranslation
	}

	var tr models.TranslationResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("funtranslations: decode: %w", err)
	}
	if tr.Contents.Translated == "" {
		return "", ErrEmptyTranslation
	}
	return tr.Contents.Translated, nil
}
