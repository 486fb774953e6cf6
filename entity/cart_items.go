package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	ListingID uint    `json:"listingId"`
	Listing   Listing `json:"-"`

	Qty       int   `json:"qty"`
	UnitPrice int64 `json:"unitPrice"` // snapshot ตอนหยิบใส่ตะกร้า
	Total     int64 `json:"total"`
}
