package controllers

import (
	"strconv"

	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/sierracataloguebusiness/sierra-catalogue/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct{ DB *gorm.DB }

func NewCategoryController(db *gorm.DB) *CategoryController { return &CategoryController{DB: db} }

// GET /category
func (cc *CategoryController) List(c *gin.Context) {
	var cats []entity.Category
	if err := cc.DB.Order("name").Find(&cats).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// POST /category (admin)
func (cc *CategoryController) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.Category{Name: req.Name}
	if err := cc.DB.Create(&cat).Error; err != nil {
		resp.BadRequest(c, "category already exists")
		return
	}
	resp.Created(c, cat)
}

// DELETE /category/:id (admin)
func (cc *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var cnt int64
	cc.DB.Model(&entity.Listing{}).Where("category_id = ?", id).Count(&cnt)
	if cnt > 0 {
		resp.Conflict(c, "category still has listings")
		return
	}

	if err := cc.DB.Delete(&entity.Category{}, id).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
