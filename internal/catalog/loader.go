package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/PabloGalante/orderdesk-agent/internal/domain"
)

type catalogFile struct {
	Orders []*domain.Order    `yaml:"orders"`
	Faqs   []*domain.FaqEntry `yaml:"faqs"`
}

// LoadFile reads orders and FAQs from a YAML document. An empty path means
// "use the built-in seed". A list missing from the file also falls back to
// the corresponding seed, so a deployment can override just one of the two.
func LoadFile(path string) (*OrderCatalog, *FaqCatalog, error) {
	if path == "" {
		return NewOrderCatalog(SeedOrders()), NewFaqCatalog(SeedFaqs()), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	orders := file.Orders
	if len(orders) == 0 {
		orders = SeedOrders()
	}
	faqs := file.Faqs
	if len(faqs) == 0 {
		faqs = SeedFaqs()
	}

	for _, o := range orders {
		if o.ID == "" {
			return nil, nil, fmt.Errorf("catalog file: order with empty id")
		}
	}

	return NewOrderCatalog(orders), NewFaqCatalog(faqs), nil
}
