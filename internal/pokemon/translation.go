package pokemon

import "pokedex/internal/funtranslations"

const caveHabitat = "cave"

// SelectTranslation picks Yoda for cave dwellers and legendaries,
// Shakespeare for everything else (including species with no habitat).
func SelectTranslation(habitat *string, isLegendary bool) funtranslations.Translation {
	if isLegendary || (habitat != nil && *habitat == caveHabitat) {
		return funtranslations.Yoda
	}
	return funtranslations.Shakespeare
}
