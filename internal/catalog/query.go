package catalog

import (
	"sort"
	"strings"
)

// SortMode orders a filtered product view.
type SortMode string

const (
	SortFeatured     SortMode = "featured"
	SortNewest       SortMode = "newest"
	SortPriceLowHigh SortMode = "price-low-high"
	SortPriceHighLow SortMode = "price-high-low"
)

// ParseSortMode maps a raw query value onto a sort mode. Unknown values
// fall back to featured rather than erroring; the shop UI treats the sort
// select as best-effort.
func ParseSortMode(value string) SortMode {
	switch SortMode(strings.TrimSpace(value)) {
	case SortNewest:
		return SortNewest
	case SortPriceLowHigh:
		return SortPriceLowHigh
	case SortPriceHighLow:
		return SortPriceHighLow
	default:
		return SortFeatured
	}
}

// Query captures the shop page's filter controls.
type Query struct {
	Search string
	Tags   []string
	Sort   SortMode
}

// ApplyQuery filters and orders the product list. It never mutates its
// input; the returned slice is freshly allocated.
//
// Search matches name or any tag as a case-insensitive substring. Tag
// selection is union semantics: a product stays if it carries at least one
// selected tag. Featured keeps seed order, newest reverses it, and the two
// price sorts are stable so ties keep their prior relative order.
func ApplyQuery(products []ProductDTO, q Query) []ProductDTO {
	result := make([]ProductDTO, len(products))
	copy(result, products)

	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		result = filter(result, func(p ProductDTO) bool {
			if strings.Contains(strings.ToLower(p.Name), search) {
				return true
			}
			for _, tag := range p.Tags {
				if strings.Contains(strings.ToLower(tag), search) {
					return true
				}
			}
			return false
		})
	}

	if len(q.Tags) > 0 {
		result = filter(result, func(p ProductDTO) bool {
			return MatchAnyTag(p.Tags, q.Tags)
		})
	}

	switch q.Sort {
	case SortPriceLowHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceHighLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case SortNewest:
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}

	return result
}

// MatchAnyTag reports whether any selected tag appears in the product's
// tag list (exact match, union semantics).
func MatchAnyTag(productTags, selected []string) bool {
	for _, want := range selected {
		for _, have := range productTags {
			if have == want {
				return true
			}
		}
	}
	return false
}

func filter(products []ProductDTO, keep func(ProductDTO) bool) []ProductDTO {
	out := products[:0:0]
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
