package salescope

import (
	"fmt"
	"strings"
)

// Anonymize replaces each distinct non-empty value with "{prefix} {i}",
// where i is a 1-based index assigned in the order distinct values are first
// encountered. Empty values pass through unmapped. The returned mapping is
// injective and only meant for debugging: it must never be displayed or
// persisted while anonymization is active.
func Anonymize(values []string, prefix string) ([]string, map[string]string) {
	mapping := make(map[string]string)
	out := make([]string, len(values))
	n := 0
	for i, v := range values {
		if v == "" {
			continue
		}
		label, ok := mapping[v]
		if !ok {
			n++
			label = fmt.Sprintf("%s %d", prefix, n)
			mapping[v] = label
		}
		out[i] = label
	}
	return out, mapping
}

// Deterministic data-quality rules applied at load time, before any
// anonymization. They are package variables so tests can substitute
// alternate tables without code changes.
var (
	// FallbackVendor replaces blank or missing vendor names (house merch
	// is exported without a vendor).
	FallbackVendor = "Capeway Cannabis"

	// AccessoryVendor is the vendor reassigned to fallback-vendor lines
	// whose product name matches an accessory keyword: smoking accessories
	// are routinely mis-tagged under the house vendor.
	AccessoryVendor = "BMB Wholesale"

	// AccessoryKeywords match mis-tagged accessory products, case-insensitive.
	AccessoryKeywords = []string{
		"Raw", "Rolling", "Tray", "Chillum", "Paper", "Cone", "Banger", "High Hemp", "OCB",
	}

	// CategorySynonyms collapses category labels to the canonical set.
	// Values are never themselves keys, so the collapse is idempotent.
	CategorySynonyms = map[string]string{
		"Infuseds":  "Flower",
		"Infused":   "Flower",
		"Infuseds ": "Flower",
		"infuseds":  "Flower",
		"infused":   "Flower",

		"Joint": "Joints",
	}

	// vendorCategoryOverride forces the category for lines of a vendor whose
	// name contains the key, case-insensitive.
	vendorCategoryOverride = map[string]string{
		"Green Gruff": "Dog Treats",
	}
)

// cleanItems applies the deterministic data-quality rules to every item
// line, in place on the given slice. The order matters: vendor fallback
// first, then the accessory mis-tag rule keyed on the fallback vendor.
func cleanItems(items []ItemLine) {
	for i := range items {
		l := &items[i]

		if strings.TrimSpace(l.Vendor) == "" {
			l.Vendor = FallbackVendor
		}
		if l.Vendor == FallbackVendor && matchesAccessory(l.Product) {
			l.Vendor = AccessoryVendor
		}

		l.Product = cleanEncoding(l.Product)

		for key, category := range vendorCategoryOverride {
			if containsFold(l.Vendor, key) {
				l.Category = category
			}
		}

		l.Category = NormalizeCategory(l.Category)
	}
}

// NormalizeCategory collapses a category synonym to its canonical form.
// Unknown categories are returned unchanged.
func NormalizeCategory(category string) string {
	if canonical, ok := CategorySynonyms[category]; ok {
		return canonical
	}
	return category
}

// cleanEncoding strips the corrupted multi-byte artifacts the export leaves
// in product names: a tripled replacement rune stands for a double quote,
// lone ones are noise.
func cleanEncoding(product string) string {
	product = strings.ReplaceAll(product, "���", `"`)
	return strings.ReplaceAll(product, "�", "")
}

func matchesAccessory(product string) bool {
	for _, kw := range AccessoryKeywords {
		if containsFold(product, kw) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
