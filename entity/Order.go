package entity

import (
	"gorm.io/gorm"
)

// Delivery ถูก snapshot ลง order ตอน checkout
type Delivery struct {
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Phone        string         `json:"phone"`
	Method       DeliveryMethod `gorm:"default:delivery" json:"method"`
	Address      string         `json:"address"`
	Instructions string         `json:"instructions"`
}

type Order struct {
	gorm.Model
	Number string `gorm:"uniqueIndex" json:"number"`
	Total  int64  `json:"total"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"` // preload เฉพาะตอนต้องการ buyer detail

	Delivery Delivery `gorm:"embedded;embeddedPrefix:delivery_" json:"delivery"`

	// derived เท่านั้น เขียนโดย reconciliation หรือการยกเลิกตอน pending
	Status OrderStatus `gorm:"not null;default:pending" json:"status"`

	// preload แค่ตอน detail
	Items        []OrderItem   `json:"-"`
	VendorOrders []VendorOrder `json:"-"`
}
