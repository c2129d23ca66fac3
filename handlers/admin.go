package handlers

import (
	"context"
	"errors"
	"net/http"

	catalogRepo "lablink/database/repository/catalog"
	centreRepo "lablink/database/repository/centre"
	"lablink/models"
	"lablink/services/admin"
	"lablink/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminHandler encapsulates the elevated back-office operations: partner and
// booking management, the commission ladder, catalogue upkeep and settings.
type AdminHandler struct {
	Svc      admin.AdminService
	Bookings booking.BookingService
	Catalog  catalogRepo.CatalogRepository
}

func NewAdminHandler(svc admin.AdminService, bookings booking.BookingService, catalog catalogRepo.CatalogRepository) *AdminHandler {
	return &AdminHandler{Svc: svc, Bookings: bookings, Catalog: catalog}
}

// --- Partners ---

func (ah *AdminHandler) GetAllPartnersHandler(c *gin.Context) {
	partners, err := ah.Svc.GetAllPartners(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch all partners", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch partners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

func (ah *AdminHandler) SetPartnerActiveHandler(c *gin.Context) {
	var input struct {
		Active *bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Active == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "active is required"})
		return
	}
	if err := ah.Svc.SetPartnerActive(c.Request.Context(), c.Param("id"), *input.Active); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (ah *AdminHandler) SetPartnerCommissionHandler(c *gin.Context) {
	var input struct {
		RatePercent *float64 `json:"ratePercent"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.RatePercent == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ratePercent is required"})
		return
	}
	if err := ah.Svc.SetPartnerCommissionRate(c.Request.Context(), c.Param("id"), *input.RatePercent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// --- Bookings ---

func (ah *AdminHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := ah.Bookings.GetAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		zap.L().Error("Failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (ah *AdminHandler) GetBookingHandler(c *gin.Context) {
	b, err := ah.Bookings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (ah *AdminHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	b, err := ah.Bookings.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// --- Commissions ---

func (ah *AdminHandler) GetCommissionsHandler(c *gin.Context) {
	commissions, err := ah.Svc.GetCommissions(c.Request.Context(), c.Query("status"))
	if err != nil {
		zap.L().Error("Failed to fetch commissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch commissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"commissions": commissions})
}

func (ah *AdminHandler) ApproveCommissionHandler(c *gin.Context) {
	if err := ah.Svc.ApproveCommission(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}

func (ah *AdminHandler) MarkCommissionPaidHandler(c *gin.Context) {
	if err := ah.Svc.MarkCommissionPaid(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "paid"})
}

// --- Centres ---

func (ah *AdminHandler) CreateCentreHandler(c *gin.Context) {
	var centre models.DiagnosticCentre
	if err := c.ShouldBindJSON(&centre); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if centre.ID == "" {
		centre.ID = uuid.New().String()
	}
	if err := ah.Svc.CreateCentre(c.Request.Context(), &centre); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create centre"})
		return
	}
	c.JSON(http.StatusCreated, centre)
}

func (ah *AdminHandler) UpdateCentreHandler(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := ah.Svc.UpdateCentre(c.Request.Context(), c.Param("id"), fields); err != nil {
		if errors.Is(err, centreRepo.ErrCentreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Centre not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update centre"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (ah *AdminHandler) DeleteCentreHandler(c *gin.Context) {
	if err := ah.Svc.DeleteCentre(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, centreRepo.ErrCentreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Centre not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete centre"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (ah *AdminHandler) SetCentrePricingHandler(c *gin.Context) {
	var pricing models.CentrePricing
	if err := c.ShouldBindJSON(&pricing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	pricing.CentreID = c.Param("id")
	if pricing.ID == "" {
		pricing.ID = uuid.New().String()
	}
	if err := ah.Svc.SetCentrePricing(c.Request.Context(), &pricing); err != nil {
		if errors.Is(err, centreRepo.ErrCentreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Centre not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set pricing"})
		return
	}
	c.JSON(http.StatusCreated, pricing)
}

func (ah *AdminHandler) DeleteCentrePricingHandler(c *gin.Context) {
	if err := ah.Svc.DeleteCentrePricing(c.Request.Context(), c.Param("pricingID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pricing"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Catalogue ---

func (ah *AdminHandler) CreateTestHandler(c *gin.Context) {
	var test models.Test
	if err := c.ShouldBindJSON(&test); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if test.ID == "" {
		test.ID = uuid.New().String()
	}
	if err := ah.Catalog.CreateTest(c.Request.Context(), &test); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create test"})
		return
	}
	c.JSON(http.StatusCreated, test)
}

func (ah *AdminHandler) UpdateTestHandler(c *gin.Context) {
	ah.updateCatalogEntry(c, ah.Catalog.UpdateTest)
}

func (ah *AdminHandler) DeleteTestHandler(c *gin.Context) {
	ah.deleteCatalogEntry(c, ah.Catalog.DeleteTest)
}

func (ah *AdminHandler) CreateScanHandler(c *gin.Context) {
	var scan models.Scan
	if err := c.ShouldBindJSON(&scan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if scan.ID == "" {
		scan.ID = uuid.New().String()
	}
	if err := ah.Catalog.CreateScan(c.Request.Context(), &scan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create scan"})
		return
	}
	c.JSON(http.StatusCreated, scan)
}

func (ah *AdminHandler) UpdateScanHandler(c *gin.Context) {
	ah.updateCatalogEntry(c, ah.Catalog.UpdateScan)
}

func (ah *AdminHandler) DeleteScanHandler(c *gin.Context) {
	ah.deleteCatalogEntry(c, ah.Catalog.DeleteScan)
}

func (ah *AdminHandler) CreatePackageHandler(c *gin.Context) {
	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if pkg.ID == "" {
		pkg.ID = uuid.New().String()
	}
	if err := ah.Catalog.CreatePackage(c.Request.Context(), &pkg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package"})
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func (ah *AdminHandler) UpdatePackageHandler(c *gin.Context) {
	ah.updateCatalogEntry(c, ah.Catalog.UpdatePackage)
}

func (ah *AdminHandler) DeletePackageHandler(c *gin.Context) {
	ah.deleteCatalogEntry(c, ah.Catalog.DeletePackage)
}

func (ah *AdminHandler) updateCatalogEntry(c *gin.Context, update func(ctx context.Context, id string, fields map[string]any) error) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := update(c.Request.Context(), c.Param("id"), fields); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (ah *AdminHandler) deleteCatalogEntry(c *gin.Context, del func(ctx context.Context, id string) error) {
	if err := del(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Settings ---

func (ah *AdminHandler) GetSettingsHandler(c *gin.Context) {
	settings, err := ah.Svc.GetSettings(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (ah *AdminHandler) UpsertSettingHandler(c *gin.Context) {
	var setting models.Setting
	if err := c.ShouldBindJSON(&setting); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := ah.Svc.UpsertSetting(c.Request.Context(), &setting); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, setting)
}

// --- Dashboard ---

func (ah *AdminHandler) DashboardHandler(c *gin.Context) {
	stats, err := ah.Svc.DashboardStats(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to compute dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
