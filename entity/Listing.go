package entity

import (
	"gorm.io/gorm"
)

type Listing struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // หน่วยเป็นเซนต์
	Stock       int    `json:"stock"`
	Image       string `json:"image"` // path ใต้ /uploads
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`

	VendorID uint `gorm:"index" json:"vendorId"`
	Vendor   User `json:"-"` // preload เฉพาะตอนต้องการชื่อร้าน

	CategoryID uint     `gorm:"index" json:"categoryId"`
	Category   Category `json:"-"`
}
