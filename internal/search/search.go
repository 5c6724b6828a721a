package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/nikbrunner/catalog/internal/model"
)

// DefaultLimit is the number of suggestions shown in empty states.
const DefaultLimit = 3

// Suggestion is a fuzzy match for a search that found nothing.
type Suggestion struct {
	Product        *model.Product
	MatchedIndexes []int
	Score          int
}

// productTitles implements fuzzy.Source for a product slice.
type productTitles []model.Product

func (pt productTitles) String(i int) string {
	return pt[i].Title
}

func (pt productTitles) Len() int {
	return len(pt)
}

// Suggest fuzzy matches term against product titles and returns up to limit
// results, best first. It is used for "did you mean" hints only and never
// changes which products a substring search keeps.
func Suggest(products []model.Product, term string, limit int) []Suggestion {
	if term == "" || len(products) == 0 || limit <= 0 {
		return nil
	}

	matches := fuzzy.FindFrom(term, productTitles(products))
	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]Suggestion, len(matches))
	for i, m := range matches {
		results[i] = Suggestion{
			Product:        &products[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

// SuggestTitles returns only the titles of Suggest's results, without duplicates.
func SuggestTitles(products []model.Product, term string, limit int) []string {
	seen := make(map[string]bool)
	var titles []string
	for _, s := range Suggest(products, term, limit) {
		if seen[s.Product.Title] {
			continue
		}
		seen[s.Product.Title] = true
		titles = append(titles, s.Product.Title)
	}
	return titles
}
