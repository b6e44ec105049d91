package models

// PokemonInfo is the normalized, client-facing form of a species.
//
// Upstream records are mapped into this structure once per request;
// only Description may change afterwards (when a translation succeeds).
type PokemonInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Habitat     *string `json:"habitat"` // null when the species has no habitat
	IsLegendary bool    `json:"isLegendary"`
}
