package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/sierracataloguebusiness/sierra-catalogue/configs"
	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/sierracataloguebusiness/sierra-catalogue/pkg/resp"
	"github.com/sierracataloguebusiness/sierra-catalogue/repository"
	"github.com/sierracataloguebusiness/sierra-catalogue/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ListingController struct {
	DB   *gorm.DB
	Repo *repository.ListingRepository
	Cfg  *configs.Config
}

func NewListingController(db *gorm.DB, repo *repository.ListingRepository, cfg *configs.Config) *ListingController {
	return &ListingController{DB: db, Repo: repo, Cfg: cfg}
}

// ===== Public =====

// GET /listings?search=&categories=1,2&page=&limit=
func (lc *ListingController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var categoryIDs []uint
	if raw := c.Query("categories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && id > 0 {
				categoryIDs = append(categoryIDs, uint(id))
			}
		}
	}

	items, total, err := lc.Repo.List(repository.ListingFilter{
		Search:      c.Query("search"),
		CategoryIDs: categoryIDs,
		ActiveOnly:  true,
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// GET /listings/:id
func (lc *ListingController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	l, err := lc.Repo.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "listing not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, l)
}

// ===== Vendor / Admin =====

type CreateListingReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=0"`
	Stock       int    `json:"stock" binding:"min=0"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
	ImageBase64 string `json:"imageBase64"`
}

// POST /listings (vendor/admin)
func (lc *ListingController) Create(c *gin.Context) {
	var req CreateListingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var cat entity.Category
	if err := lc.DB.Select("id").First(&cat, req.CategoryID).Error; err != nil {
		resp.BadRequest(c, "invalid category selected")
		return
	}

	l := entity.Listing{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		VendorID:    utils.CurrentUserID(c),
		IsActive:    true,
	}

	if req.ImageBase64 != "" {
		path, err := utils.SaveBase64Image(req.ImageBase64, lc.Cfg.UploadDir)
		if err != nil {
			resp.BadRequest(c, "invalid image")
			return
		}
		l.Image = path
	}

	if err := lc.DB.Create(&l).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, l)
}

type UpdateListingReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Stock       *int    `json:"stock"`
	CategoryID  *uint   `json:"categoryId"`
	IsActive    *bool   `json:"isActive"`
	ImageBase64 *string `json:"imageBase64"`
}

// PUT /listings/:id vendor แก้ได้เฉพาะของตัวเอง admin แก้ได้หมด
func (lc *ListingController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var l entity.Listing
	if err := lc.DB.First(&l, id).Error; err != nil {
		resp.NotFound(c, "listing not found")
		return
	}
	if utils.CurrentRole(c) == entity.RoleVendor && l.VendorID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "you do not own this listing")
		return
	}

	var req UpdateListingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.Price != nil && *req.Price < 0 {
		resp.BadRequest(c, "price cannot be below 0")
		return
	}
	if req.Stock != nil && *req.Stock < 0 {
		resp.BadRequest(c, "stock cannot be below 0")
		return
	}
	if req.CategoryID != nil {
		var cat entity.Category
		if err := lc.DB.Select("id").First(&cat, *req.CategoryID).Error; err != nil {
			resp.BadRequest(c, "invalid category selected")
			return
		}
		l.CategoryID = *req.CategoryID
	}

	if req.Title != nil {
		l.Title = *req.Title
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.Price != nil {
		l.Price = *req.Price
	}
	if req.Stock != nil {
		l.Stock = *req.Stock
	}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}
	if req.ImageBase64 != nil && *req.ImageBase64 != "" {
		path, err := utils.SaveBase64Image(*req.ImageBase64, lc.Cfg.UploadDir)
		if err != nil {
			resp.BadRequest(c, "invalid image")
			return
		}
		l.Image = path
	}

	if err := lc.DB.Save(&l).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, l)
}

// DELETE /listings/:id
func (lc *ListingController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var l entity.Listing
	if err := lc.DB.First(&l, id).Error; err != nil {
		resp.NotFound(c, "listing not found")
		return
	}
	if utils.CurrentRole(c) == entity.RoleVendor && l.VendorID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "you do not own this listing")
		return
	}

	if err := lc.DB.Delete(&l).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// GET /vendor/listings ของร้านตัวเอง รวมที่ปิดขายอยู่
func (lc *ListingController) ListForVendor(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := lc.Repo.List(repository.ListingFilter{
		VendorID: utils.CurrentUserID(c),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}
