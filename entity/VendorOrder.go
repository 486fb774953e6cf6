package entity

import (
	"gorm.io/gorm"
)

// VendorOrder คือส่วนแบ่งของ order ต่อหนึ่ง vendor สร้างพร้อม order เสมอ
type VendorOrder struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	VendorID uint `gorm:"index" json:"vendorId"`
	Vendor   User `gorm:"foreignKey:VendorID" json:"-"`

	// denormalized เพื่อแสดงฝั่ง vendor โดยไม่ต้อง join ผ่าน order
	BuyerID uint `json:"buyerId"`
	Buyer   User `gorm:"foreignKey:BuyerID" json:"-"`

	Subtotal int64 `json:"subtotal"`

	// derived จาก items เท่านั้น
	Status VendorStatus `gorm:"not null;default:pending" json:"vendorStatus"`

	// optimistic concurrency guard สำหรับ update สถานะรายการ
	Version uint `gorm:"not null;default:0" json:"-"`

	Items []VendorOrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
