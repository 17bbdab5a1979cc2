package entity

import (
	"gorm.io/gorm"
)

type DiningTable struct {
	gorm.Model
	Name  string `json:"name"`
	Seats int    `json:"seats"`
}
