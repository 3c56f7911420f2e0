package catalog

import (
	"github.com/PabloGalante/orderdesk-agent/internal/domain"
)

// OrderCatalog is the in-memory implementation of domain.OrderCatalog.
// Orders are reference data seeded at startup and never mutated.
type OrderCatalog struct {
	orders []*domain.Order
	byID   map[string]*domain.Order
}

func NewOrderCatalog(orders []*domain.Order) *OrderCatalog {
	byID := make(map[string]*domain.Order, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}
	return &OrderCatalog{orders: orders, byID: byID}
}

func (c *OrderCatalog) FindByID(id string) (*domain.Order, bool) {
	o, ok := c.byID[id]
	return o, ok
}

// ListAll returns every order in seed order.
func (c *OrderCatalog) ListAll() []*domain.Order {
	return c.orders
}

// SeedOrders returns the built-in demo orders.
func SeedOrders() []*domain.Order {
	return []*domain.Order{
		{ID: "12345", Status: domain.StatusShipped, DeliveryDate: "April 30, 2025", Items: []string{"Laptop", "Mouse", "Keyboard"}, TrackingNumber: "TRK78901234"},
		{ID: "67890", Status: domain.StatusDelivered, DeliveryDate: "April 25, 2025", Items: []string{"Smartphone", "Case"}, TrackingNumber: "TRK56789012"},
		{ID: "11223", Status: domain.StatusPending, DeliveryDate: "Not yet processed", Items: []string{"Headphones", "Charger"}, TrackingNumber: "Not yet assigned"},
		{ID: "44556", Status: domain.StatusInTransit, DeliveryDate: "May 5, 2025", Items: []string{"Tablet", "Stylus"}, TrackingNumber: "TRK34567890"},
		{ID: "77889", Status: domain.StatusProcessing, DeliveryDate: "May 10, 2025", Items: []string{"Smartwatch", "Band"}, TrackingNumber: "Not yet assigned"},
	}
}
