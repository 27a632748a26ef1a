package seo

import (
	"encoding/json"
	"strings"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
// encoding/json escapes <, > and &, so the result is safe inside a script tag.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, email string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if email != "" {
		m["email"] = email
	}
	return m
}

// Offer is a priced service option.
type Offer struct {
	Name  string
	Price string
	Items []string
}

// Service returns a ProfessionalService schema listing the offers. Prices are
// free-form labels ("$149 / 5", "Custom") so they go into the description.
func Service(name, url string, offers []Offer) map[string]any {
	list := make([]map[string]any, 0, len(offers))
	for i, o := range offers {
		list = append(list, map[string]any{
			"@type":       "Offer",
			"position":    i + 1,
			"name":        o.Name,
			"description": o.Price,
			"itemOffered": map[string]any{
				"@type":       "Service",
				"name":        o.Name,
				"description": strings.Join(o.Items, "; "),
			},
		})
	}
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "ProfessionalService",
		"name":     name,
		"hasOfferCatalog": map[string]any{
			"@type":           "OfferCatalog",
			"name":            name + " pricing",
			"itemListElement": list,
		},
	}
	if url != "" {
		m["url"] = url
	}
	return m
}
