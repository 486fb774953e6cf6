package controllers

import (
	"errors"

	"github.com/sierracataloguebusiness/sierra-catalogue/configs"
	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/sierracataloguebusiness/sierra-catalogue/pkg/resp"
	"github.com/sierracataloguebusiness/sierra-catalogue/repository"
	"github.com/sierracataloguebusiness/sierra-catalogue/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// VendorController: dashboard + หน้าร้านของ vendor
type VendorController struct {
	DB          *gorm.DB
	ListingRepo *repository.ListingRepository
	VendorRepo  *repository.VendorOrderRepository
	Cfg         *configs.Config
}

func NewVendorController(db *gorm.DB, lr *repository.ListingRepository, vr *repository.VendorOrderRepository, cfg *configs.Config) *VendorController {
	return &VendorController{DB: db, ListingRepo: lr, VendorRepo: vr, Cfg: cfg}
}

// GET /vendor/dashboard
func (vc *VendorController) Dashboard(c *gin.Context) {
	vendorID := utils.CurrentUserID(c)

	totalListings, err := vc.ListingRepo.CountForVendor(vendorID, false)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	activeListings, err := vc.ListingRepo.CountForVendor(vendorID, true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	totalOrders, err := vc.VendorRepo.CountForVendor(vendorID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"totalListings":  totalListings,
		"activeListings": activeListings,
		"totalOrders":    totalOrders,
	})
}

// GET /vendor/shop
func (vc *VendorController) Shop(c *gin.Context) {
	var shop entity.Shop
	err := vc.DB.Where("vendor_id = ?", utils.CurrentUserID(c)).First(&shop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "shop not set up yet")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, shop)
}

type UpsertShopReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	LogoBase64  string `json:"logoBase64"`
}

// POST /vendor/shop create หรือ update หน้าร้าน
func (vc *VendorController) UpsertShop(c *gin.Context) {
	var req UpsertShopReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	vendorID := utils.CurrentUserID(c)

	var shop entity.Shop
	err := vc.DB.Where("vendor_id = ?", vendorID).First(&shop).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		resp.ServerError(c, err)
		return
	}

	shop.VendorID = vendorID
	shop.Name = req.Name
	shop.Description = req.Description
	shop.Address = req.Address
	shop.Phone = req.Phone

	if req.LogoBase64 != "" {
		path, err := utils.SaveBase64Image(req.LogoBase64, vc.Cfg.UploadDir)
		if err != nil {
			resp.BadRequest(c, "invalid logo image")
			return
		}
		shop.Logo = path
	}

	if err := vc.DB.Save(&shop).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, shop)
}
