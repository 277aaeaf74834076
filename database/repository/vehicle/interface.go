package vehicle

import (
	"context"
	"errors"

	"glossify/models"
)

// ErrReferenceNotFound is returned when no reference data exists for a
// vehicle type.
var ErrReferenceNotFound = errors.New("vehicle reference data not found")

// ReferenceRepository reads the make/model/year reference data used to
// populate vehicle detail dropdowns. The booking core consumes it as-is and
// never validates against it.
type ReferenceRepository interface {
	GetReference(ctx context.Context, vehicleType models.VehicleType) (*models.VehicleReference, error)
}
