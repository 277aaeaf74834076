package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	vehicleRepo "glossify/database/repository/vehicle"
	"glossify/models"
	"glossify/utils"
)

// VehicleHandler serves vehicle type metadata and the make/model/year
// reference lists behind the detail dropdowns.
type VehicleHandler struct {
	Repo   vehicleRepo.ReferenceRepository
	Logger *zap.Logger
}

// NewVehicleHandler constructs a VehicleHandler.
func NewVehicleHandler(repo vehicleRepo.ReferenceRepository, logger *zap.Logger) *VehicleHandler {
	return &VehicleHandler{Repo: repo, Logger: logger}
}

// vehicleTypeInfo describes one selectable vehicle type and which detail
// fields it requires.
type vehicleTypeInfo struct {
	Type                models.VehicleType  `json:"type"`
	NeedsIdentification bool                `json:"needsIdentification"`
	Measure             models.MeasureField `json:"measure,omitempty"`
}

// ListVehicleTypes returns every vehicle type with its detail requirement.
func (h *VehicleHandler) ListVehicleTypes(c *gin.Context) {
	infos := make([]vehicleTypeInfo, 0, len(models.AllVehicleTypes))
	for _, t := range models.AllVehicleTypes {
		req := models.RequirementFor(t)
		infos = append(infos, vehicleTypeInfo{
			Type:                t,
			NeedsIdentification: req.NeedsIdentification,
			Measure:             req.Measure,
		})
	}
	c.JSON(http.StatusOK, gin.H{"vehicleTypes": infos})
}

// GetReference returns the dropdown reference data for one vehicle type.
func (h *VehicleHandler) GetReference(c *gin.Context) {
	vehicleType := models.VehicleType(c.Param("vehicleType"))
	if !models.IsValidVehicleType(vehicleType) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown vehicle type")
		return
	}

	ref, err := h.Repo.GetReference(c.Request.Context(), vehicleType)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrReferenceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "no reference data for this vehicle type"})
			return
		}
		h.Logger.Error("vehicle reference lookup failure",
			zap.String("vehicleType", string(vehicleType)), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load vehicle reference data", "")
		return
	}
	c.JSON(http.StatusOK, ref)
}
