package domain

// OrderStatus is a closed enum; formatting code relies on there being
// exactly these five values.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusInTransit  OrderStatus = "In Transit"
	StatusDelivered  OrderStatus = "Delivered"
)

// Order is immutable reference data, loaded at startup and never mutated.
type Order struct {
	ID             string      `yaml:"id"`
	Status         OrderStatus `yaml:"status"`
	DeliveryDate   string      `yaml:"delivery_date"`
	Items          []string    `yaml:"items"`
	TrackingNumber string      `yaml:"tracking_number"`
}

// FaqEntry is a question/answer pair. Catalog order is significant:
// matching is first-wins over the seeded order.
type FaqEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}
