package entity

import (
	"gorm.io/gorm"
)

// ตะกร้าเดียวต่อ user รวมสินค้าได้หลาย vendor
type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
