package catalog

import (
	"errors"
	"fmt"
)

// ErrorCode classifies catalog resolution failures.
type ErrorCode string

const (
	// CodeUnsupportedVehicleType means the vehicle type has no catalog
	// partition; no catalog exists for it at all.
	CodeUnsupportedVehicleType ErrorCode = "unsupportedVehicleType"
	// CodeNoDataForCategory means neither document shape resolved for the
	// (partition, category) pair.
	CodeNoDataForCategory ErrorCode = "noDataForCategory"
	// CodeNotFound is the generic variant used for logging.
	CodeNotFound ErrorCode = "notFound"
)

// CatalogError is a resolution failure scoped to one (vehicle type,
// category) pair. It never aborts the rest of the wizard.
type CatalogError struct {
	Code    ErrorCode
	Message string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewUnsupportedVehicleTypeError reports a vehicle type with no partition.
func NewUnsupportedVehicleTypeError(vehicleType string) error {
	return &CatalogError{
		Code:    CodeUnsupportedVehicleType,
		Message: fmt.Sprintf("no services available for vehicle type %q", vehicleType),
	}
}

// NewNoDataForCategoryError reports a category with neither document shape.
func NewNoDataForCategoryError(partition, category string) error {
	return &CatalogError{
		Code:    CodeNoDataForCategory,
		Message: fmt.Sprintf("no catalog data for %s/%s", partition, category),
	}
}

// HasCode reports whether err is a CatalogError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var ce *CatalogError
	return errors.As(err, &ce) && ce.Code == code
}
