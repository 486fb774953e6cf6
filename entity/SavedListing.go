package entity

import (
	"gorm.io/gorm"
)

// รายการโปรดของลูกค้า unique ต่อ (user, listing)
type SavedListing struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_saved_user_listing" json:"userId"`
	User   User `json:"-"`

	ListingID uint    `gorm:"uniqueIndex:idx_saved_user_listing" json:"listingId"`
	Listing   Listing `json:"-"`
}
