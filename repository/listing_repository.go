package repository

import (
	"strings"

	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"gorm.io/gorm"
)

type ListingRepository struct{ DB *gorm.DB }

func NewListingRepository(db *gorm.DB) *ListingRepository { return &ListingRepository{DB: db} }

type ListingFilter struct {
	Search      string
	CategoryIDs []uint
	ActiveOnly  bool
	VendorID    uint
	Page        int
	Limit       int
}

func (r *ListingRepository) List(f ListingFilter) ([]entity.Listing, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	db := r.DB.Model(&entity.Listing{})
	if f.Search != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	if len(f.CategoryIDs) > 0 {
		db = db.Where("category_id IN ?", f.CategoryIDs)
	}
	if f.ActiveOnly {
		db = db.Where("is_active = ?", true)
	}
	if f.VendorID != 0 {
		db = db.Where("vendor_id = ?", f.VendorID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Listing
	err := db.Order("id DESC").
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&out).Error
	return out, total, err
}

func (r *ListingRepository) Get(id uint) (*entity.Listing, error) {
	var l entity.Listing
	if err := r.DB.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepository) CountForVendor(vendorID uint, activeOnly bool) (int64, error) {
	db := r.DB.Model(&entity.Listing{}).Where("vendor_id = ?", vendorID)
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}
	var cnt int64
	err := db.Count(&cnt).Error
	return cnt, err
}
