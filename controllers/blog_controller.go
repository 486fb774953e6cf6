package controllers

import (
	"errors"
	"strconv"

	"github.com/sierracataloguebusiness/sierra-catalogue/configs"
	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/sierracataloguebusiness/sierra-catalogue/pkg/resp"
	"github.com/sierracataloguebusiness/sierra-catalogue/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BlogController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewBlogController(db *gorm.DB, cfg *configs.Config) *BlogController {
	return &BlogController{DB: db, Cfg: cfg}
}

// GET /blogs
func (bc *BlogController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	type row struct {
		ID        uint   `json:"id"`
		Title     string `json:"title"`
		Image     string `json:"image"`
		AuthorID  uint   `json:"authorId"`
		CreatedAt string `json:"createdAt"`
	}
	var items []row
	if err := bc.DB.Model(&entity.Blog{}).
		Select("id, title, image, author_id, created_at").
		Order("id DESC").Limit(limit).
		Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /blogs/:id
func (bc *BlogController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var b entity.Blog
	if err := bc.DB.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "blog not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, b)
}

type BlogReq struct {
	Title       string `json:"title" binding:"required"`
	Body        string `json:"body" binding:"required"`
	ImageBase64 string `json:"imageBase64"`
}

// POST /admin/blogs
func (bc *BlogController) Create(c *gin.Context) {
	var req BlogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	b := entity.Blog{
		Title:    req.Title,
		Body:     req.Body,
		AuthorID: utils.CurrentUserID(c),
	}
	if req.ImageBase64 != "" {
		path, err := utils.SaveBase64Image(req.ImageBase64, bc.Cfg.UploadDir)
		if err != nil {
			resp.BadRequest(c, "invalid image")
			return
		}
		b.Image = path
	}

	if err := bc.DB.Create(&b).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, b)
}

// PUT /admin/blogs/:id
func (bc *BlogController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var b entity.Blog
	if err := bc.DB.First(&b, id).Error; err != nil {
		resp.NotFound(c, "blog not found")
		return
	}

	var req BlogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	b.Title = req.Title
	b.Body = req.Body
	if req.ImageBase64 != "" {
		path, err := utils.SaveBase64Image(req.ImageBase64, bc.Cfg.UploadDir)
		if err != nil {
			resp.BadRequest(c, "invalid image")
			return
		}
		b.Image = path
	}

	if err := bc.DB.Save(&b).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, b)
}

// DELETE /admin/blogs/:id
func (bc *BlogController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	res := bc.DB.Delete(&entity.Blog{}, id)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "blog not found")
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
