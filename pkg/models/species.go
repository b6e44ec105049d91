package models

// NamedResource is PokeAPI's {name, url} reference shape.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// FlavorText is one localized description entry of a species.
type FlavorText struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

// SpeciesRecord is the subset of the PokeAPI pokemon-species payload
// the service reads. Entries keep the provider's ordering.
type SpeciesRecord struct {
	Name              string         `json:"name"`
	Habitat           *NamedResource `json:"habitat"`
	IsLegendary       bool           `json:"is_legendary"`
	FlavorTextEntries []FlavorText   `json:"flavor_text_entries"`
}

// HabitatName returns the habitat name, or nil when the species has none.
func (r SpeciesRecord) HabitatName() *string {
	if r.Habitat == nil {
		return nil
	}
	name := r.Habitat.Name
	return &name
}
