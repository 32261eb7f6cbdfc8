// Package theme manages page templates for the regions of a site.
//
// A [Template] is a saved layout bound to a [SitePart] (Homepage, Site
// Header, ...) and a display condition saying where the part is shown. At
// most one template per part is active. Templates are grouped into
// categories; the "general" category always exists and receives the
// templates of deleted categories.
//
// [Catalog] operations are pure: they return a new catalog and leave the
// receiver untouched, mirroring the layout package.
package theme

import (
	"slices"
	"strings"
)

// SitePart is a region of a site a template can be assigned to.
type SitePart string

// Site parts in display order.
const (
	Homepage          SitePart = "Homepage"
	SiteHeader        SitePart = "Site Header"
	SiteFooter        SitePart = "Site Footer"
	AboutUsPage       SitePart = "About Us Page"
	ContactUsPage     SitePart = "Contact Us Page"
	ShopPage          SitePart = "Shop Page"
	BlogPage          SitePart = "Blog Page"
	SingleProductPage SitePart = "Single Product Page"
	SinglePost        SitePart = "Single Post"
	SearchResults     SitePart = "Search Results"
	Archive           SitePart = "Archive"
	Cart              SitePart = "Cart"
	Checkout          SitePart = "Checkout"
	AccountPage       SitePart = "Account Page"
	Error404          SitePart = "Error 404"
)

// SiteParts lists every site part in display order.
var SiteParts = []SitePart{
	Homepage, SiteHeader, SiteFooter, AboutUsPage, ContactUsPage,
	ShopPage, BlogPage, SingleProductPage, SinglePost, SearchResults,
	Archive, Cart, Checkout, AccountPage, Error404,
}

var conditionOptions = map[SitePart][]string{
	Homepage:          {"Homepage"},
	SiteHeader:        {"Entire Site"},
	SiteFooter:        {"Entire Site"},
	AboutUsPage:       {"About Us Page"},
	ContactUsPage:     {"Contact Us Page"},
	ShopPage:          {"All Products"},
	BlogPage:          {"All Posts"},
	SingleProductPage: {"All Products", "Products in Category... (coming soon)"},
	SinglePost:        {"All Posts", "Posts in Category... (coming soon)"},
	SearchResults:     {"All Search Results"},
	Archive:           {"All Archives"},
	Cart:              {"Cart Page"},
	Checkout:          {"Checkout Page"},
	AccountPage:       {"My Account Page"},
	Error404:          {"404 Page"},
}

// Valid reports whether p is a known site part.
func (p SitePart) Valid() bool {
	_, ok := conditionOptions[p]
	return ok
}

// Slug returns the lower-case dashed form used in URLs and flags, e.g.
// "site-header".
func (p SitePart) Slug() string {
	return strings.ToLower(strings.ReplaceAll(string(p), " ", "-"))
}

// DefaultCondition returns the condition a new template for p starts with.
func DefaultCondition(p SitePart) string {
	if opts := conditionOptions[p]; len(opts) > 0 {
		return opts[0]
	}
	return ""
}

// ConditionOptions returns the display conditions p accepts.
func ConditionOptions(p SitePart) []string {
	return slices.Clone(conditionOptions[p])
}

// ParseSitePart resolves a part from its name or slug, ignoring case.
func ParseSitePart(s string) (SitePart, bool) {
	s = strings.TrimSpace(s)
	for _, p := range SiteParts {
		if strings.EqualFold(string(p), s) || strings.EqualFold(p.Slug(), s) {
			return p, true
		}
	}
	return "", false
}
