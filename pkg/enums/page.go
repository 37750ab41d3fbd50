package enums

import "fmt"

// Page identifies the site section a carousel belongs to.
type Page string

const (
	PageHome       Page = "home"
	PageRecipes    Page = "recipes"
	PageVlogs      Page = "vlogs"
	PageStorefront Page = "storefront"
	PageHealing    Page = "healing"
)

var validPages = []Page{
	PageHome,
	PageRecipes,
	PageVlogs,
	PageStorefront,
	PageHealing,
}

// String implements fmt.Stringer.
func (p Page) String() string {
	return string(p)
}

// IsValid reports whether the value is a known Page.
func (p Page) IsValid() bool {
	for _, candidate := range validPages {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePage converts raw input into a Page.
func ParsePage(value string) (Page, error) {
	for _, candidate := range validPages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid page %q", value)
}
