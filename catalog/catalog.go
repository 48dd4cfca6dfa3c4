// Package catalog resolves car brand/model identifiers against the embedded
// name table and proxies the full remote catalog. Identifiers stored on
// listings stay foreign: only display names are resolved locally.
package catalog

// CarModel describes one model entry of the external car catalog.
type CarModel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Class    string `json:"class,omitempty"`
	YearFrom int    `json:"year-from,omitempty"`
	YearTo   int    `json:"year-to,omitempty"`
}

// Brand describes one brand entry of the external car catalog.
type Brand struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Country string     `json:"country,omitempty"`
	Popular bool       `json:"popular"`
	Models  []CarModel `json:"models"`
}

// BrandName returns the display name for a brand id, or the id itself when
// the brand is unknown.
func BrandName(brandID string) string {
	for _, brand := range carBrands {
		if brand.ID == brandID {
			return brand.Name
		}
	}
	return brandID
}

// ModelName returns the display name for a model id under a brand, or the id
// itself when unknown.
func ModelName(brandID string, modelID string) string {
	for _, brand := range carBrands {
		if brand.ID != brandID {
			continue
		}
		for _, carModel := range brand.Models {
			if carModel.ID == modelID {
				return carModel.Name
			}
		}
	}
	return modelID
}

// Brands exposes the embedded fallback table.
func Brands() []Brand {
	return carBrands
}
