package scanner

import (
	"strings"

	"home-inventory/internal/models"
)

// Matcher decides which catalog product, if any, a detected label refers
// to. It is pluggable so substring matching can be swapped for exact-id
// mapping without touching the reconciler's control flow.
type Matcher interface {
	Match(label string, products []models.Product) (models.Product, bool)
}

// SubstringMatcher matches when the detected label contains the product
// name or the product name contains the label, case-insensitively. Fragile
// for very short names; see Matcher.
type SubstringMatcher struct{}

func (SubstringMatcher) Match(label string, products []models.Product) (models.Product, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return models.Product{}, false
	}
	for _, p := range products {
		n := strings.ToLower(p.Name)
		if n == "" {
			continue
		}
		if strings.Contains(l, n) || strings.Contains(n, l) {
			return p, true
		}
	}
	return models.Product{}, false
}
