package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pokedex/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

var version = "dev"

type options struct {
	baseURL string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "pokedex",
		Short:        "Query the pokedex API",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.baseURL, "api", defaultBaseURL, "API base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "request timeout")

	root.AddCommand(
		&cobra.Command{
			Use:   "get <name>",
			Short: "Show information about a pokemon",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runLookup(cmd, opts, "/pokemon/", args[0])
			},
		},
		&cobra.Command{
			Use:   "translated <name>",
			Short: "Show information about a pokemon with a fun translated description",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runLookup(cmd, opts, "/pokemon/translated/", args[0])
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version number",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "pokedex version %s\n", version)
			},
		},
	)
	return root
}

func runLookup(cmd *cobra.Command, opts *options, prefix, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	client := &http.Client{Timeout: opts.timeout}
	endpoint := strings.TrimRight(opts.baseURL, "/") + prefix + url.PathEscape(name)

	var info models.PokemonInfo
	if err := getJSON(ctx, client, endpoint, &info); err != nil {
		return err
	}

	b, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("json: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func getJSON(ctx context.Context, client *http.Client, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("GET %s failed (%d): %s", endpoint, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("GET %s failed (%d): %s", endpoint, resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return json.Unmarshal(data, out)
}
