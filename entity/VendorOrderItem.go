package entity

import (
	"gorm.io/gorm"
)

type VendorOrderItem struct {
	gorm.Model
	VendorOrderID uint        `gorm:"index" json:"vendorOrderId"`
	VendorOrder   VendorOrder `json:"-"`

	// รายการเดียวกับใน order หลัก partition ต้องครบและไม่ซ้ำ
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	ListingID uint   `json:"listingId"`
	Title     string `json:"title"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`

	Status ItemStatus `gorm:"not null;default:pending" json:"status"`
}
