package handlers

import (
	"errors"
	"net/http"

	catalogRepo "lablink/database/repository/catalog"
	centreRepo "lablink/database/repository/centre"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the storefront's browsable catalogue: tests, scans,
// packages and the centres that run them. All reads are active-only.
type CatalogHandler struct {
	Catalog catalogRepo.CatalogRepository
	Centres centreRepo.CentreRepository
}

func NewCatalogHandler(catalog catalogRepo.CatalogRepository, centres centreRepo.CentreRepository) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Centres: centres}
}

func (h *CatalogHandler) ListTestsHandler(c *gin.Context) {
	tests, err := h.Catalog.GetTests(c.Request.Context(), true)
	if err != nil {
		getLogger(c).Error("Failed to list tests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tests": tests})
}

func (h *CatalogHandler) GetTestHandler(c *gin.Context) {
	test, err := h.Catalog.GetTestByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Test not found"})
			return
		}
		getLogger(c).Error("Failed to get test", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get test"})
		return
	}
	c.JSON(http.StatusOK, test)
}

func (h *CatalogHandler) ListScansHandler(c *gin.Context) {
	scans, err := h.Catalog.GetScans(c.Request.Context(), true)
	if err != nil {
		getLogger(c).Error("Failed to list scans", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list scans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scans": scans})
}

func (h *CatalogHandler) GetScanHandler(c *gin.Context) {
	scan, err := h.Catalog.GetScanByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Scan not found"})
			return
		}
		getLogger(c).Error("Failed to get scan", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get scan"})
		return
	}
	c.JSON(http.StatusOK, scan)
}

func (h *CatalogHandler) ListPackagesHandler(c *gin.Context) {
	packages, err := h.Catalog.GetPackages(c.Request.Context(), true)
	if err != nil {
		getLogger(c).Error("Failed to list packages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list packages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": packages})
}

func (h *CatalogHandler) GetPackageHandler(c *gin.Context) {
	pkg, err := h.Catalog.GetPackageByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		getLogger(c).Error("Failed to get package", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get package"})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *CatalogHandler) ListCentresHandler(c *gin.Context) {
	centres, err := h.Centres.GetAll(c.Request.Context(), true)
	if err != nil {
		getLogger(c).Error("Failed to list centres", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list centres"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"centres": centres})
}

func (h *CatalogHandler) GetCentreHandler(c *gin.Context) {
	centre, err := h.Centres.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, centreRepo.ErrCentreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Centre not found"})
			return
		}
		getLogger(c).Error("Failed to get centre", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get centre"})
		return
	}
	c.JSON(http.StatusOK, centre)
}

// GetCentrePricingHandler lists a centre's per-service price overrides.
func (h *CatalogHandler) GetCentrePricingHandler(c *gin.Context) {
	pricing, err := h.Centres.GetPricingByCentre(c.Request.Context(), c.Param("id"))
	if err != nil {
		getLogger(c).Error("Failed to get centre pricing", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get centre pricing"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pricing": pricing})
}
