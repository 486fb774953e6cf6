package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Title     string `json:"title"` // snapshot ไม่อ้าง listing สด
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	ListingID uint    `json:"listingId"`
	Listing   Listing `json:"-"` // preload เฉพาะตอนต้องการรูป/ชื่อปัจจุบัน
}
