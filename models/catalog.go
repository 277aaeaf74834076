package models

import "strings"

// CatalogShape tags which document shape a catalog was resolved from, so
// callers can render pricing UI conditionally.
type CatalogShape string

const (
	// ShapePriced means the catalog came from a tier-document with costs.
	ShapePriced CatalogShape = "priced"
	// ShapeFeatureOnly means the catalog came from a flat-feature-document
	// with no pricing data.
	ShapeFeatureOnly CatalogShape = "featureOnly"
)

// CatalogItem is a single purchasable option (service tier or add-on tier).
type CatalogItem struct {
	ID            string   `bson:"id" json:"id"`
	Name          string   `bson:"name" json:"name"`
	Price         float64  `bson:"price" json:"price"`
	Description   string   `bson:"description" json:"description"`
	FeatureIDs    []string `bson:"featureIds" json:"featureIds"`
	Popular       bool     `bson:"popular" json:"popular"`
	OriginalPrice *float64 `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
}

// ResolvedCatalog is the outcome of one catalog resolution: the ordered
// items plus the shape they were built from.
type ResolvedCatalog struct {
	Shape CatalogShape  `json:"shape"`
	Items []CatalogItem `json:"items"`
}

// ItemByID returns the item with the given id, if present.
func (rc ResolvedCatalog) ItemByID(id string) (CatalogItem, bool) {
	for _, it := range rc.Items {
		if it.ID == id {
			return it, true
		}
	}
	return CatalogItem{}, false
}

// TierID derives a catalog item id from its display name: lower-cased,
// whitespace collapsed to single hyphens.
func TierID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// TierEntry is one entry of a tier-document, in document order.
type TierEntry struct {
	Name          string   `bson:"-" json:"name"`
	Cost          float64  `bson:"cost" json:"cost"`
	Features      []string `bson:"features,omitempty" json:"features,omitempty"`
	Popular       bool     `bson:"popular,omitempty" json:"popular,omitempty"`
	Description   string   `bson:"description,omitempty" json:"description,omitempty"`
	OriginalPrice *float64 `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
}

// TierDocument is the priced catalog shape: a name-keyed mapping of tiers.
// Entries preserve the stored key order.
type TierDocument struct {
	Entries []TierEntry
}

// FeatureDetail describes one feature in a feature-document.
type FeatureDetail struct {
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Explanation string   `bson:"explanation,omitempty" json:"explanation,omitempty"`
	Duration    int      `bson:"duration,omitempty" json:"duration,omitempty"`
	Features    []string `bson:"features,omitempty" json:"features,omitempty"`
}

// FeatureDocument maps feature ids to their display details.
type FeatureDocument map[string]FeatureDetail

// FlatFeatureEntry is one entry of a flat-feature-document, in document
// order. The entry key doubles as its sole feature id.
type FlatFeatureEntry struct {
	Key         string   `bson:"-" json:"key"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Features    []string `bson:"features,omitempty" json:"features,omitempty"`
}

// FlatFeatureDocument is the unpriced fallback shape: a feature taxonomy
// with no cost data.
type FlatFeatureDocument struct {
	Entries []FlatFeatureEntry
}
