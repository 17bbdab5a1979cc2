package entity

import (
	"gorm.io/gorm"
)

// Operator is a staff account that can sign in to a POS terminal.
type Operator struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"` // "operator" | "admin"
}
