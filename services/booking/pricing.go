package booking

import "glossify/models"

// ComputeTotal derives the running total from the current selection: the
// selected service tier's price plus every selected add-on tier's price.
// It recomputes from scratch on every call; there is no accumulator to
// drift out of sync. A selection referencing a tier absent from its
// resolved list prices at 0 — a stale selection degrades, it never crashes
// the summary.
func ComputeTotal(
	sel models.SelectionModel,
	serviceTiers *models.ResolvedCatalog,
	addonTiersByCategory map[models.AddonCategory]*models.ResolvedCatalog,
) float64 {
	total := 0.0
	if sel.ServiceTierID != "" && serviceTiers != nil {
		if item, ok := serviceTiers.ItemByID(sel.ServiceTierID); ok {
			total += item.Price
		}
	}
	for category, tierID := range sel.AddonTiers {
		resolved := addonTiersByCategory[category]
		if resolved == nil {
			continue
		}
		if item, ok := resolved.ItemByID(tierID); ok {
			total += item.Price
		}
	}
	return total
}
