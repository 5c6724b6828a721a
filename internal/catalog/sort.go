package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nikbrunner/catalog/internal/model"
)

// ErrUnknownSortKey is returned when a sort key name is not recognized.
var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKey selects how the filtered view is ordered.
type SortKey int

const (
	SortNone SortKey = iota
	SortNameAsc
	SortNameDesc
	SortPriceAsc
	SortPriceDesc
)

var sortKeyNames = map[SortKey]string{
	SortNone:      "none",
	SortNameAsc:   "nameAsc",
	SortNameDesc:  "nameDesc",
	SortPriceAsc:  "priceAsc",
	SortPriceDesc: "priceDesc",
}

// SortKeys returns the selectable sort keys in control order.
func SortKeys() []SortKey {
	return []SortKey{SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc}
}

// String returns the key's wire name, e.g. "priceAsc".
func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

// Label returns a short human readable description.
func (k SortKey) Label() string {
	switch k {
	case SortNameAsc:
		return "Name A-Z"
	case SortNameDesc:
		return "Name Z-A"
	case SortPriceAsc:
		return "Price low-high"
	case SortPriceDesc:
		return "Price high-low"
	default:
		return "Unsorted"
	}
}

// ParseSortKey parses a wire name. The empty string means SortNone.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortNone, nil
	}
	for k, name := range sortKeyNames {
		if name == s {
			return k, nil
		}
	}
	return SortNone, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k SortKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *SortKey) UnmarshalText(text []byte) error {
	parsed, err := ParseSortKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// newCollator returns the title collator for the catalog locale.
func newCollator() *collate.Collator {
	return collate.New(language.Vietnamese)
}

// sortProducts returns a stably sorted copy of products.
// SortNone returns an unchanged copy.
func sortProducts(products []model.Product, key SortKey, col *collate.Collator) []model.Product {
	sorted := slices.Clone(products)

	switch key {
	case SortNameAsc:
		slices.SortStableFunc(sorted, func(a, b model.Product) int {
			return col.CompareString(a.Title, b.Title)
		})
	case SortNameDesc:
		slices.SortStableFunc(sorted, func(a, b model.Product) int {
			return col.CompareString(b.Title, a.Title)
		})
	case SortPriceAsc:
		slices.SortStableFunc(sorted, func(a, b model.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(sorted, func(a, b model.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	}

	return sorted
}
