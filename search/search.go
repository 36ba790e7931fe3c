// Package search is the catalog matching engine: a free-text query
// plus category and price filters in, a ranked product list out.
package search

import (
	"sort"
	"strings"

	"github.com/electrohub/storefront-api/models"
)

type Sort string

const (
	SortRelevance Sort = "relevance"
	SortPriceLow  Sort = "low"
	SortPriceHigh Sort = "high"
)

// CategoryAll disables category filtering.
const CategoryAll = "All"

// Query carries the full search-view criteria. A zero MaxPrice means no
// price ceiling; an empty Category behaves like CategoryAll.
type Query struct {
	Text     string
	Category string
	MaxPrice float64
	Sort     Sort
}

// SuggestionLimit caps the navbar suggestion list.
const SuggestionLimit = 5

// minQueryLen is the shortest text the suggestion path responds to.
const minQueryLen = 2

// Run executes a full search-view query. An empty query text returns no
// results; a query that matches nothing returns an empty slice.
func Run(products []models.Product, q Query) []models.Product {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	if text == "" {
		return []models.Product{}
	}

	results := []models.Product{}
	for _, p := range products {
		if !matches(p, text, true) {
			continue
		}
		if q.Category != "" && q.Category != CategoryAll && string(p.Category) != q.Category {
			continue
		}
		if q.MaxPrice > 0 && p.Price > q.MaxPrice {
			continue
		}
		results = append(results, p)
	}

	rank(results, text, q.Sort)
	return results
}

// Suggest is the navbar's lightweight path: name and category matching
// only (no descriptions), at least two characters, at most five hits.
func Suggest(products []models.Product, text string) []models.Product {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) < minQueryLen {
		return []models.Product{}
	}

	results := []models.Product{}
	for _, p := range products {
		if matches(p, text, false) {
			results = append(results, p)
			if len(results) == SuggestionLimit {
				break
			}
		}
	}
	return results
}

// matches reports whether product p matches the lower-cased query text.
// A product matches on a name, category or (full view only) description
// substring, or when every query token is a prefix of some name token,
// which lets partial words like "gam mou" find "Titan Gaming Mouse".
func matches(p models.Product, text string, withDescription bool) bool {
	name := strings.ToLower(p.Name)
	category := strings.ToLower(string(p.Category))

	if strings.Contains(name, text) || strings.Contains(category, text) {
		return true
	}
	if withDescription && strings.Contains(strings.ToLower(p.Description), text) {
		return true
	}
	return tokenPrefixMatch(name, text)
}

func tokenPrefixMatch(name, text string) bool {
	nameWords := strings.Fields(name)
	for _, qw := range strings.Fields(text) {
		found := false
		for _, nw := range nameWords {
			if strings.HasPrefix(nw, qw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// rank orders results in place. Relevance keeps catalog order except
// that name-prefix matches float to the front; the price modes are
// stable sorts so ties keep catalog order too.
func rank(results []models.Product, text string, mode Sort) {
	switch mode {
	case SortPriceLow:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Price < results[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Price > results[j].Price
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			iPrefix := strings.HasPrefix(strings.ToLower(results[i].Name), text)
			jPrefix := strings.HasPrefix(strings.ToLower(results[j].Name), text)
			return iPrefix && !jPrefix
		})
	}
}
