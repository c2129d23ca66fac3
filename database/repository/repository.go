package repository

import (
	bookingRepo "lablink/database/repository/booking"
	catalogRepo "lablink/database/repository/catalog"
	centreRepo "lablink/database/repository/centre"
	commissionRepo "lablink/database/repository/commission"
	partnerRepo "lablink/database/repository/partner"
	settingsRepo "lablink/database/repository/settings"
)

// Re-export the repository interfaces and constructors.
type PartnerRepository = partnerRepo.PartnerRepository

var NewMongoPartnerRepo = partnerRepo.NewMongoPartnerRepo

type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

type CommissionRepository = commissionRepo.CommissionRepository

var NewMongoCommissionRepo = commissionRepo.NewMongoCommissionRepo

type CentreRepository = centreRepo.CentreRepository

var NewMongoCentreRepo = centreRepo.NewMongoCentreRepo

type CatalogRepository = catalogRepo.CatalogRepository

var NewMongoCatalogRepo = catalogRepo.NewMongoCatalogRepo

type SettingsRepository = settingsRepo.SettingsRepository

var NewMongoSettingsRepo = settingsRepo.NewMongoSettingsRepo
