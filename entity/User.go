package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"` // bcrypt hash
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        Role   `gorm:"not null;default:customer" json:"role"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`

	// Relations preload เฉพาะตอนจำเป็น
	Listings      []Listing      `gorm:"foreignKey:VendorID" json:"-"`
	Orders        []Order        `gorm:"foreignKey:UserID" json:"-"`
	VendorOrders  []VendorOrder  `gorm:"foreignKey:VendorID" json:"-"`
	SavedListings []SavedListing `json:"-"`
	Shop          *Shop          `gorm:"foreignKey:VendorID" json:"-"`
	Blogs         []Blog         `gorm:"foreignKey:AuthorID" json:"-"`
}
