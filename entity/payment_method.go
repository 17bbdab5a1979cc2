package entity

import (
	"gorm.io/gorm"
)

// PaymentMethod is display-only reference data; no payment processing happens here.
type PaymentMethod struct {
	gorm.Model
	Name string `json:"name"`
}
