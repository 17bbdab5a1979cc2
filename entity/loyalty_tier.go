package entity

import (
	"gorm.io/gorm"
)

// LoyaltyTier thresholds are reference data for the front of house; nothing in
// the pricing engine reads them.
type LoyaltyTier struct {
	gorm.Model
	Name      string `json:"name"`
	Threshold int64  `json:"threshold"` // lifetime spend in cents to reach the tier
}
