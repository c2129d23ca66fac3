package handlers

import (
	partnerRepoPkg "lablink/database/repository/partner"
)

// HandlerBundle groups the endpoint handlers for route registration.
type HandlerBundle struct {
	PartnerRepo partnerRepoPkg.PartnerRepository

	Partner  *PartnerHandler
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Admin    *AdminHandler
}
