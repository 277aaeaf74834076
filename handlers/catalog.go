package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glossify/models"
	catalogsvc "glossify/services/catalog"
	"glossify/utils"
)

// CatalogHandler exposes resolved catalogs for direct browsing outside a
// session (service pages, admin previews).
type CatalogHandler struct {
	Resolver catalogsvc.Resolver
	Logger   *zap.Logger
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(resolver catalogsvc.Resolver, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Resolver: resolver, Logger: logger}
}

// GetServiceCatalog resolves the service tiers for a vehicle type.
func (h *CatalogHandler) GetServiceCatalog(c *gin.Context) {
	h.resolve(c, catalogsvc.CategoryService)
}

// GetAddonCatalog resolves one add-on category for a vehicle type.
func (h *CatalogHandler) GetAddonCatalog(c *gin.Context) {
	category := c.Param("category")
	if !models.IsValidAddonCategory(models.AddonCategory(category)) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown add-on category")
		return
	}
	h.resolve(c, category)
}

func (h *CatalogHandler) resolve(c *gin.Context, category string) {
	vehicleType := models.VehicleType(c.Param("vehicleType"))
	if !models.IsValidVehicleType(vehicleType) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown vehicle type")
		return
	}

	resolved, err := h.Resolver.Resolve(c.Request.Context(), vehicleType, category)
	if err != nil {
		var ce *catalogsvc.CatalogError
		if errors.As(err, &ce) {
			c.JSON(http.StatusNotFound, gin.H{"code": ce.Code, "message": ce.Message})
			return
		}
		h.Logger.Error("catalog resolution failure",
			zap.String("vehicleType", string(vehicleType)),
			zap.String("category", category),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve catalog", "")
		return
	}
	c.JSON(http.StatusOK, resolved)
}
