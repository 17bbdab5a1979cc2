package services

import (
	"backend/entity"

	"github.com/shopspring/decimal"
)

// Fixed rates applied by the till.
var (
	taxRate     = decimal.NewFromFloat(0.10)
	serviceRate = decimal.NewFromFloat(0.05)
)

// Totals is the itemized bill for a cart. All amounts are cents. Total may go
// negative when the discount exceeds the bill; ChargeableTotal is what is
// actually presented and collected.
type Totals struct {
	Subtotal        int64 `json:"subtotal"`
	ServiceCharge   int64 `json:"serviceCharge"`
	Tax             int64 `json:"tax"`
	Discount        int64 `json:"discount"`
	Total           int64 `json:"total"`
	ChargeableTotal int64 `json:"chargeableTotal"`
}

type PricingService struct {
	Catalog *CatalogService
}

func NewPricingService(catalog *CatalogService) *PricingService {
	return &PricingService{Catalog: catalog}
}

// LineSubtotal is (base price + selected option deltas) * quantity. Option
// prices are resolved against the catalog at call time; options the catalog
// no longer knows about contribute 0.
func (p *PricingService) LineSubtotal(line *entity.CartLine) int64 {
	unit := line.Item.Price
	for _, opts := range line.Selections {
		for _, optionID := range opts {
			unit += p.Catalog.OptionPrice(optionID)
		}
	}
	return unit * int64(line.Qty)
}

// Totals computes the bill over committed lines. Service charge applies to
// dine-in only. A negative discount entry is treated as 0.
func (p *PricingService) Totals(lines []*entity.CartLine, mode entity.ServiceMode, discount int64) Totals {
	if discount < 0 {
		discount = 0
	}

	var subtotal int64
	for _, line := range lines {
		subtotal += p.LineSubtotal(line)
	}

	tax := applyRate(subtotal, taxRate)
	var service int64
	if mode == entity.ServiceDineIn {
		service = applyRate(subtotal, serviceRate)
	}

	total := subtotal + tax + service - discount
	chargeable := total
	if chargeable < 0 {
		chargeable = 0
	}

	return Totals{
		Subtotal:        subtotal,
		ServiceCharge:   service,
		Tax:             tax,
		Discount:        discount,
		Total:           total,
		ChargeableTotal: chargeable,
	}
}

func applyRate(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Round(0).IntPart()
}
