package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electrohub/storefront-api/catalog"
	"github.com/electrohub/storefront-api/models"
)

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestRunMatchesPartialQuery(t *testing.T) {
	results := Run(catalog.All(), Query{Text: "gam"})

	require.NotEmpty(t, results)
	assert.Contains(t, names(results), "Titan Gaming Mouse G50")
}

func TestRunEmptyQueryReturnsNothing(t *testing.T) {
	assert.Empty(t, Run(catalog.All(), Query{Text: ""}))
	assert.Empty(t, Run(catalog.All(), Query{Text: "   "}))
}

func TestRunNoMatchReturnsEmptyNotNil(t *testing.T) {
	results := Run(catalog.All(), Query{Text: "zzz"})
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestTokenPrefixMatchFindsOutOfOrderWords(t *testing.T) {
	results := Run(catalog.All(), Query{Text: "gam mou"})
	require.Len(t, results, 1)
	assert.Equal(t, "Titan Gaming Mouse G50", results[0].Name)

	// "mou gam" hits the same product: token order does not matter.
	results = Run(catalog.All(), Query{Text: "mou gam"})
	require.Len(t, results, 1)
	assert.Equal(t, "Titan Gaming Mouse G50", results[0].Name)
}

func TestRunMatchesDescriptionOnlyInFullView(t *testing.T) {
	// "noise" appears only in the SonicWave description.
	full := Run(catalog.All(), Query{Text: "noise"})
	require.Len(t, full, 1)
	assert.Equal(t, "SonicWave X7 Hybrid ANC", full[0].Name)

	assert.Empty(t, Suggest(catalog.All(), "noise"), "suggestions must not search descriptions")
}

func TestCategoryFilter(t *testing.T) {
	all := Run(catalog.All(), Query{Text: "usb", Category: CategoryAll})
	mobile := Run(catalog.All(), Query{Text: "usb", Category: string(models.CategoryMobile)})

	require.NotEmpty(t, mobile)
	assert.Less(t, len(mobile), len(all))
	for _, p := range mobile {
		assert.Equal(t, models.CategoryMobile, p.Category)
	}
}

func TestPriceCeilingIsInclusive(t *testing.T) {
	results := Run(catalog.All(), Query{Text: "titan", MaxPrice: 79.99})
	require.Len(t, results, 1, "price equal to the ceiling passes")

	results = Run(catalog.All(), Query{Text: "titan", MaxPrice: 79.98})
	assert.Empty(t, results)
}

func TestRelevanceRankingFloatsNamePrefixMatches(t *testing.T) {
	// "usb" matches USB-C Hybrid Hub Pro by name prefix and two other
	// products by description; the prefix match must come first and the
	// rest keep catalog order.
	results := Run(catalog.All(), Query{Text: "usb"})

	require.GreaterOrEqual(t, len(results), 3)
	assert.Equal(t, "USB-C Hybrid Hub Pro", results[0].Name)
	assert.Equal(t, "NitroCharge 65W GaN Charger", results[1].Name)
	assert.Equal(t, "UltraCore Braided Cable 2m", results[2].Name)
}

func TestPriceSorting(t *testing.T) {
	asc := Run(catalog.All(), Query{Text: "usb", Sort: SortPriceLow})
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc := Run(catalog.All(), Query{Text: "usb", Sort: SortPriceHigh})
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}
}

func TestSuggestRequiresTwoCharacters(t *testing.T) {
	assert.Empty(t, Suggest(catalog.All(), ""))
	assert.Empty(t, Suggest(catalog.All(), "g"))
	assert.NotEmpty(t, Suggest(catalog.All(), "ga"))
}

func TestSuggestCapsAtFive(t *testing.T) {
	// Build a catalog with more than five matches.
	products := make([]models.Product, 8)
	for i := range products {
		products[i] = models.Product{
			ID:       string(rune('a' + i)),
			Name:     "Gadget",
			Category: models.CategorySmart,
		}
	}

	assert.Len(t, Suggest(products, "gadget"), SuggestionLimit)
}

func TestSuggestMatchesCategory(t *testing.T) {
	results := Suggest(catalog.All(), "audio")
	require.NotEmpty(t, results)
	assert.Equal(t, models.CategoryAudio, results[0].Category)
}
