package validators

import (
	"net/http"
	"strings"

	"github.com/kanzcollective/storefront-backend/internal/catalog"
)

// CatalogQuery parses the shop page's filter controls from query params:
// ?search=...&tags=a,b,c&sort=price-low-high
func CatalogQuery(r *http.Request) catalog.Query {
	params := r.URL.Query()

	var tags []string
	for _, raw := range params["tags"] {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	return catalog.Query{
		Search: strings.TrimSpace(params.Get("search")),
		Tags:   tags,
		Sort:   catalog.ParseSortMode(params.Get("sort")),
	}
}
