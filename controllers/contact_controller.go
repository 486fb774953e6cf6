package controllers

import (
	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/sierracataloguebusiness/sierra-catalogue/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactController struct{ DB *gorm.DB }

func NewContactController(db *gorm.DB) *ContactController { return &ContactController{DB: db} }

// POST /contact (public)
func (cc *ContactController) Submit(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	msg := entity.ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := cc.DB.Create(&msg).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": msg.ID})
}
