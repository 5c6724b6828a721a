// Package catalog implements the filter and sort pipeline behind every
// catalog front-end.
//
// A Session is the view-model for one viewing session: it owns the full
// product list, the current search term and sort key, and the derived
// filtered view. Sessions are not safe for concurrent use.
package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"

	"github.com/nikbrunner/catalog/internal/model"
)

// View is a snapshot of the derived product list handed to renderers.
type View struct {
	Products []model.Product
	Sort     SortKey
	Term     string
	Total    int // size of the full list
}

// Count returns the number of products in the view.
func (v View) Count() int {
	return len(v.Products)
}

// Empty returns true if no product matched.
func (v View) Empty() bool {
	return len(v.Products) == 0
}

// Session holds the full product list and the filtered, sorted view of it.
type Session struct {
	all      []model.Product
	filtered []model.Product
	sort     SortKey
	term     string
	collator *collate.Collator
}

// NewSession creates a Session over products. The slice is treated as
// read-only; the initial view is a copy of it in original order.
func NewSession(products []model.Product) *Session {
	if products == nil {
		products = []model.Product{}
	}
	return &Session{
		all:      products,
		filtered: slices.Clone(products),
		sort:     SortNone,
		collator: newCollator(),
	}
}

// All returns the full product list. Callers must not modify it.
func (s *Session) All() []model.Product {
	return s.all
}

// Sort returns the active sort key.
func (s *Session) Sort() SortKey {
	return s.sort
}

// Term returns the normalized search term.
func (s *Session) Term() string {
	return s.term
}

// View returns the current derived list.
func (s *Session) View() View {
	return View{
		Products: s.filtered,
		Sort:     s.sort,
		Term:     s.term,
		Total:    len(s.all),
	}
}

// NormalizeTerm lowercases and trims a raw search term.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Matches reports whether a product title contains the normalized term.
func Matches(p model.Product, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), term)
}

// OnChanged applies a new search term. The filter always starts from the
// full list and the sort is reset to SortNone.
func (s *Session) OnChanged(term string) View {
	s.term = NormalizeTerm(term)

	if s.term == "" {
		s.filtered = slices.Clone(s.all)
	} else {
		filtered := make([]model.Product, 0, len(s.all))
		for _, p := range s.all {
			if Matches(p, s.term) {
				filtered = append(filtered, p)
			}
		}
		s.filtered = filtered
	}

	s.sort = SortNone
	return s.View()
}

// SortBy reorders the current filtered list. The full list is untouched
// and equal keys keep their relative order.
func (s *Session) SortBy(key SortKey) View {
	s.filtered = sortProducts(s.filtered, key, s.collator)
	s.sort = key
	return s.View()
}

// Apply runs the whole pipeline for a term and sort key, as a fresh
// search followed by a sort.
func (s *Session) Apply(term string, key SortKey) View {
	s.OnChanged(term)
	if key == SortNone {
		return s.View()
	}
	return s.SortBy(key)
}
