package entity

import (
	"gorm.io/gorm"
)

// หน้าร้านของ vendor หนึ่งร้านต่อหนึ่ง vendor
type Shop struct {
	gorm.Model
	VendorID uint `gorm:"uniqueIndex" json:"vendorId"`
	Vendor   User `gorm:"foreignKey:VendorID" json:"-"`

	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}
