package models

// ServiceType enumerates the bookable service categories.
const (
	ServiceTypeTest    = "test"
	ServiceTypeScan    = "scan"
	ServiceTypePackage = "package"
)

// CartItem is one service line in a partner's cart. The same service offered at two
// different centres is a distinct line; identity is (ID, CentreID).
type CartItem struct {
	ID                 string  `json:"id"`
	Type               string  `json:"type"` // "test", "scan" or "package"
	Name               string  `json:"name"`
	Price              float64 `json:"price"`
	OriginalPrice      float64 `json:"originalPrice,omitempty"`
	CentreID           string  `json:"centreId"`
	CentreName         string  `json:"centreName"`
	ReportDeliveryTime string  `json:"reportDeliveryTime"`
	Quantity           int     `json:"quantity"`
	TestsIncluded      int     `json:"testsIncluded,omitempty"`
}

// Cart is the persisted cart state for one partner session.
type Cart struct {
	Items []CartItem `json:"items"`
}

// TotalItems returns the sum of all line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// TotalPrice returns the cart total using current (possibly discounted) prices.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
