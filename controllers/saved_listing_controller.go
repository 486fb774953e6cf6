package controllers

import (
	"strconv"

	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/sierracataloguebusiness/sierra-catalogue/pkg/resp"
	"github.com/sierracataloguebusiness/sierra-catalogue/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SavedListingController struct{ DB *gorm.DB }

func NewSavedListingController(db *gorm.DB) *SavedListingController {
	return &SavedListingController{DB: db}
}

// GET /profile/saved
func (sc *SavedListingController) List(c *gin.Context) {
	var saved []entity.SavedListing
	if err := sc.DB.Preload("Listing").
		Where("user_id = ?", utils.CurrentUserID(c)).
		Order("id DESC").
		Find(&saved).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]entity.Listing, 0, len(saved))
	for _, s := range saved {
		items = append(items, s.Listing)
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /profile/saved/:listingId
func (sc *SavedListingController) Save(c *gin.Context) {
	listingID, _ := strconv.Atoi(c.Param("listingId"))

	var l entity.Listing
	if err := sc.DB.Select("id").First(&l, listingID).Error; err != nil {
		resp.NotFound(c, "listing not found")
		return
	}

	row := entity.SavedListing{UserID: utils.CurrentUserID(c), ListingID: uint(listingID)}
	if err := sc.DB.FirstOrCreate(&row, row).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"saved": true})
}

// DELETE /profile/saved/:listingId
func (sc *SavedListingController) Remove(c *gin.Context) {
	listingID, _ := strconv.Atoi(c.Param("listingId"))

	if err := sc.DB.
		Where("user_id = ? AND listing_id = ?", utils.CurrentUserID(c), listingID).
		Delete(&entity.SavedListing{}).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}
