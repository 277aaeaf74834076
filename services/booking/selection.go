package booking

import "glossify/models"

// Selection operations are pure: they take the current model and return a
// new one, never failing. Inputs are pre-validated by the caller against
// resolved catalog data; references to unknown tiers are a caller error and
// degrade per the pricing fallback, they are not rejected here.

// VehicleDetailsUpdate is a partial update of vehicle identification
// fields. Nil fields are left untouched.
type VehicleDetailsUpdate struct {
	Make   *string `json:"make,omitempty"`
	Model  *string `json:"model,omitempty"`
	Year   *string `json:"year,omitempty"`
	Color  *string `json:"color,omitempty"`
	Length *string `json:"length,omitempty"`
}

// SelectVehicleType sets the vehicle type and clears all identification
// fields: a type change invalidates make/model/year and the measure, since
// they belong to the previous type's reference catalog.
func SelectVehicleType(s models.SelectionModel, t models.VehicleType) models.SelectionModel {
	s.Vehicle = models.VehicleSelection{Type: t}
	return s
}

// UpdateVehicleDetails merges a partial detail update. Changing the make
// clears a previously chosen model (model lists are make-scoped; a stale
// model is worse than an empty field). Color and length stay mutually
// exclusive: setting one clears the other.
func UpdateVehicleDetails(s models.SelectionModel, upd VehicleDetailsUpdate) models.SelectionModel {
	v := s.Vehicle
	if upd.Make != nil && *upd.Make != v.Make {
		v.Make = *upd.Make
		if upd.Model == nil {
			v.Model = ""
		}
	}
	if upd.Model != nil {
		v.Model = *upd.Model
	}
	if upd.Year != nil {
		v.Year = *upd.Year
	}
	if upd.Color != nil {
		v.Color = *upd.Color
		if v.Color != "" {
			v.Length = ""
		}
	}
	if upd.Length != nil {
		v.Length = *upd.Length
		if v.Length != "" {
			v.Color = ""
		}
	}
	s.Vehicle = v
	return s
}

// SelectServiceTier toggles the service tier: selecting the currently
// selected id deselects it, anything else replaces the selection.
func SelectServiceTier(s models.SelectionModel, tierID string) models.SelectionModel {
	if s.ServiceTierID == tierID {
		s.ServiceTierID = ""
	} else {
		s.ServiceTierID = tierID
	}
	return s
}

// ToggleAddonTier toggles the tier for one add-on category: re-selecting
// the current tier removes the entry, any other tier replaces it. Other
// categories are untouched. Categories with no selection stay absent from
// the map.
func ToggleAddonTier(s models.SelectionModel, category models.AddonCategory, tierID string) models.SelectionModel {
	next := make(map[models.AddonCategory]string, len(s.AddonTiers)+1)
	for c, id := range s.AddonTiers {
		next[c] = id
	}
	if next[category] == tierID {
		delete(next, category)
	} else {
		next[category] = tierID
	}
	if len(next) == 0 {
		next = nil
	}
	s.AddonTiers = next
	return s
}

// SetSchedule replaces the schedule wholesale, de-duplicating dates while
// preserving their order.
func SetSchedule(s models.SelectionModel, dates []string, timeOfDay string) models.SelectionModel {
	seen := make(map[string]bool, len(dates))
	var deduped []string
	for _, d := range dates {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		deduped = append(deduped, d)
	}
	s.Schedule = models.Schedule{Dates: deduped, Time: timeOfDay}
	return s
}

// ToggleScheduleDate adds the date to the schedule, or removes it when
// already present.
func ToggleScheduleDate(s models.SelectionModel, date string) models.SelectionModel {
	if date == "" {
		return s
	}
	if s.Schedule.HasDate(date) {
		var remaining []string
		for _, d := range s.Schedule.Dates {
			if d != date {
				remaining = append(remaining, d)
			}
		}
		s.Schedule.Dates = remaining
		return s
	}
	dates := make([]string, 0, len(s.Schedule.Dates)+1)
	dates = append(dates, s.Schedule.Dates...)
	s.Schedule.Dates = append(dates, date)
	return s
}

// SetPaymentMethod replaces the payment method wholesale.
func SetPaymentMethod(s models.SelectionModel, method models.PaymentMethod) models.SelectionModel {
	s.PaymentMethod = method
	return s
}
