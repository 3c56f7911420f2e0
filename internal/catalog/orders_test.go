package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/orderdesk-agent/internal/catalog"
	"github.com/PabloGalante/orderdesk-agent/internal/domain"
)

func TestFindByID(t *testing.T) {
	c := catalog.NewOrderCatalog(catalog.SeedOrders())

	order, ok := c.FindByID("12345")
	require.True(t, ok)
	assert.Equal(t, domain.StatusShipped, order.Status)
	assert.Equal(t, "TRK78901234", order.TrackingNumber)

	_, ok = c.FindByID("99999")
	assert.False(t, ok)
}

func TestListAllPreservesSeedOrder(t *testing.T) {
	seed := catalog.SeedOrders()
	c := catalog.NewOrderCatalog(seed)

	all := c.ListAll()
	require.Len(t, all, len(seed))
	for i := range seed {
		assert.Equal(t, seed[i].ID, all[i].ID)
	}
}
