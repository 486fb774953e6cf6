package entity

import (
	"gorm.io/gorm"
)

type Blog struct {
	gorm.Model
	Title string `gorm:"not null" json:"title"`
	Body  string `json:"body"`
	Image string `json:"image"`

	AuthorID uint `json:"authorId"`
	Author   User `gorm:"foreignKey:AuthorID" json:"-"`
}
