package entity

// ServiceMode is the fulfillment channel; only dine-in carries a service charge.
type ServiceMode string

const (
	ServiceDineIn   ServiceMode = "dine-in"
	ServiceTakeaway ServiceMode = "takeaway"
	ServiceDelivery ServiceMode = "delivery"
)

func (m ServiceMode) Valid() bool {
	switch m {
	case ServiceDineIn, ServiceTakeaway, ServiceDelivery:
		return true
	}
	return false
}
