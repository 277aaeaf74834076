package models

// VehicleType enumerates the vehicle categories a customer can book for.
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleTruck      VehicleType = "truck"
	VehicleSUV        VehicleType = "suv"
	VehicleBoat       VehicleType = "boat"
	VehicleRV         VehicleType = "rv"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleOther      VehicleType = "other"
)

// AllVehicleTypes lists every recognized vehicle type.
var AllVehicleTypes = []VehicleType{
	VehicleCar, VehicleTruck, VehicleSUV, VehicleBoat,
	VehicleRV, VehicleMotorcycle, VehicleOther,
}

// IsValidVehicleType reports whether t is a recognized vehicle type.
func IsValidVehicleType(t VehicleType) bool {
	for _, vt := range AllVehicleTypes {
		if vt == t {
			return true
		}
	}
	return false
}

// MeasureField is the type-specific identification field: painted vehicles
// record a color, hull/coach vehicles record a length.
type MeasureField string

const (
	MeasureColor  MeasureField = "color"
	MeasureLength MeasureField = "length"
	MeasureNone   MeasureField = ""
)

// DetailRequirement describes which identification fields a vehicle type
// needs before the wizard may leave the vehicle-selection step.
type DetailRequirement struct {
	NeedsIdentification bool
	Measure             MeasureField
}

// detailRequirements is the single source of truth for per-type required
// fields. Adding a vehicle type means adding a row here, nothing else.
var detailRequirements = map[VehicleType]DetailRequirement{
	VehicleCar:   {NeedsIdentification: true, Measure: MeasureColor},
	VehicleTruck: {NeedsIdentification: true, Measure: MeasureColor},
	VehicleBoat:  {NeedsIdentification: true, Measure: MeasureLength},
	VehicleRV:    {NeedsIdentification: true, Measure: MeasureLength},
}

// RequirementFor returns the detail requirement for a vehicle type. Types
// absent from the table need no identification.
func RequirementFor(t VehicleType) DetailRequirement {
	return detailRequirements[t]
}

// VehicleSelection captures the customer's vehicle and its identification
// details. Color and Length are mutually exclusive; which one applies is
// decided by the type's DetailRequirement.
type VehicleSelection struct {
	Type   VehicleType `bson:"type" json:"type"`
	Make   string      `bson:"make,omitempty" json:"make,omitempty"`
	Model  string      `bson:"model,omitempty" json:"model,omitempty"`
	Year   string      `bson:"year,omitempty" json:"year,omitempty"`
	Color  string      `bson:"color,omitempty" json:"color,omitempty"`
	Length string      `bson:"length,omitempty" json:"length,omitempty"`
}

// DetailsComplete reports whether the selection satisfies its type's
// identification requirement.
func (v VehicleSelection) DetailsComplete() bool {
	if v.Type == "" {
		return false
	}
	req := RequirementFor(v.Type)
	if !req.NeedsIdentification {
		return true
	}
	if v.Make == "" || v.Model == "" || v.Year == "" {
		return false
	}
	switch req.Measure {
	case MeasureColor:
		return v.Color != ""
	case MeasureLength:
		return v.Length != ""
	}
	return true
}

// VehicleReference holds the dropdown reference data for one vehicle type.
// Models are scoped to their make.
type VehicleReference struct {
	Type   VehicleType         `bson:"type" json:"type"`
	Makes  []string            `bson:"makes" json:"makes"`
	Models map[string][]string `bson:"models" json:"models"`
	Years  []string            `bson:"years" json:"years"`
	Colors []string            `bson:"colors,omitempty" json:"colors,omitempty"`
}
