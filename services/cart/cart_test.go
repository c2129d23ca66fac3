package cart

import (
	"encoding/json"
	"testing"

	"lablink/models"

	"github.com/stretchr/testify/require"
)

func lineItem(id, centreID string, price float64) models.CartItem {
	return models.CartItem{
		ID:                 id,
		Type:               models.ServiceTypeTest,
		Name:               "CBC",
		Price:              price,
		CentreID:           centreID,
		CentreName:         "City Diagnostics",
		ReportDeliveryTime: "24 hours",
	}
}

func TestAddItemMergesByIdentity(t *testing.T) {
	c := &models.Cart{}

	for i := 0; i < 5; i++ {
		addItem(c, lineItem("t1", "c1", 500))
	}

	require.Len(t, c.Items, 1)
	require.Equal(t, 5, c.Items[0].Quantity)
}

func TestAddItemSameServiceDifferentCentre(t *testing.T) {
	c := &models.Cart{}

	addItem(c, lineItem("t1", "c1", 500))
	addItem(c, lineItem("t1", "c2", 550))

	require.Len(t, c.Items, 2, "same service at two centres is two distinct lines")
}

func TestRemoveItemAbsentIsNoOp(t *testing.T) {
	c := &models.Cart{}
	addItem(c, lineItem("t1", "c1", 500))

	removeItem(c, "t1", "other-centre")
	require.Len(t, c.Items, 1)

	removeItem(c, "t1", "c1")
	require.Empty(t, c.Items)
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	c := &models.Cart{}
	addItem(c, lineItem("t1", "c1", 500))
	addItem(c, lineItem("s1", "c1", 1200))

	updateQuantity(c, "t1", "c1", 0)
	require.Len(t, c.Items, 1)
	require.Equal(t, "s1", c.Items[0].ID)

	updateQuantity(c, "s1", "c1", -3)
	require.Empty(t, c.Items)
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	c := &models.Cart{}
	addItem(c, lineItem("t1", "c1", 500))

	updateQuantity(c, "t1", "c1", 4)
	require.Equal(t, 4, c.Items[0].Quantity)
}

func TestTotals(t *testing.T) {
	c := &models.Cart{}
	addItem(c, lineItem("t1", "c1", 500))
	addItem(c, lineItem("t1", "c1", 500))
	addItem(c, lineItem("s1", "c2", 1200))
	updateQuantity(c, "s1", "c2", 3)

	require.Equal(t, 5, c.TotalItems())
	require.InDelta(t, 2*500+3*1200, c.TotalPrice(), 1e-9)
}

func TestTotalPriceIgnoresOriginalPrice(t *testing.T) {
	c := &models.Cart{}
	it := lineItem("p1", "c1", 900)
	it.OriginalPrice = 1500
	addItem(c, it)

	require.InDelta(t, 900, c.TotalPrice(), 1e-9)
}

func TestCartSerializationRoundTrip(t *testing.T) {
	c := &models.Cart{}
	addItem(c, lineItem("t1", "c1", 500))
	addItem(c, lineItem("s1", "c2", 1200))
	updateQuantity(c, "t1", "c1", 2)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var reloaded models.Cart
	require.NoError(t, json.Unmarshal(data, &reloaded))
	require.Equal(t, c.Items, reloaded.Items)
	require.Equal(t, c.TotalItems(), reloaded.TotalItems())
	require.InDelta(t, c.TotalPrice(), reloaded.TotalPrice(), 1e-9)
}
