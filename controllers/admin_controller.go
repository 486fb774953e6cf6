package controllers

import (
	"strconv"
	"time"

	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/sierracataloguebusiness/sierra-catalogue/pkg/resp"
	"github.com/sierracataloguebusiness/sierra-catalogue/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// Dashboard: ตัวเลขรวม ๆ
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalUsers int64
	var totalVendors int64
	var activeListings int64
	var pendingApps int64
	var ordersToday int64
	var revenue int64

	if err := db.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.User{}).Where("role = ?", entity.RoleVendor).Count(&totalVendors).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Listing{}).Where("is_active = ?", true).Count(&activeListings).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.VendorApplication{}).
		Where("status = ?", entity.ApplicationPending).
		Count(&pendingApps).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	// นับออเดอร์ของวันนี้
	start := time.Now().Truncate(24 * time.Hour)
	if err := db.Model(&entity.Order{}).
		Where("created_at >= ?", start).
		Count(&ordersToday).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	// ยอดขายรวม ไม่นับ order ที่ยกเลิก
	var row struct{ Total int64 }
	if err := db.Model(&entity.Order{}).
		Select("COALESCE(SUM(total),0) AS total").
		Where("status <> ?", entity.OrderCancelled).
		Scan(&row).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	revenue = row.Total

	resp.OK(c, gin.H{
		"totalUsers":          totalUsers,
		"totalVendors":        totalVendors,
		"activeListings":      activeListings,
		"pendingApplications": pendingApps,
		"ordersToday":         ordersToday,
		"revenue":             revenue,
	})
}

// GET /admin/users (page/limit)
func (ac *AdminController) Users(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	ac.DB.Model(&entity.User{}).Count(&total)

	type row struct {
		ID        uint      `json:"id"`
		Email     string    `json:"email"`
		FirstName string    `json:"firstName"`
		LastName  string    `json:"lastName"`
		Role      string    `json:"role"`
		IsActive  bool      `json:"isActive"`
		CreatedAt time.Time `json:"createdAt"`
	}
	var items []row
	if err := ac.DB.Model(&entity.User{}).
		Select("id, email, first_name, last_name, role, is_active, created_at").
		Order("id DESC").Limit(limit).Offset(offset).
		Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// PATCH /admin/users/:id/deactivate
func (ac *AdminController) DeactivateUser(c *gin.Context) {
	ac.setUserActive(c, false)
}

// PATCH /admin/users/:id/activate
func (ac *AdminController) ActivateUser(c *gin.Context) {
	ac.setUserActive(c, true)
}

func (ac *AdminController) setUserActive(c *gin.Context, active bool) {
	id, _ := strconv.Atoi(c.Param("id"))
	if uint(id) == utils.CurrentUserID(c) {
		resp.Conflict(c, "cannot change your own account")
		return
	}

	res := ac.DB.Model(&entity.User{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"id": id, "isActive": active})
}

// DELETE /admin/users/:id
func (ac *AdminController) DeleteUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if uint(id) == utils.CurrentUserID(c) {
		resp.Conflict(c, "cannot delete your own account")
		return
	}

	res := ac.DB.Delete(&entity.User{}, id)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// PATCH /admin/users/:id/role
func (ac *AdminController) UpdateUserRole(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Role string `json:"role" binding:"required,oneof=customer vendor admin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if uint(id) == utils.CurrentUserID(c) {
		resp.Conflict(c, "cannot change your own role")
		return
	}

	res := ac.DB.Model(&entity.User{}).Where("id = ?", id).Update("role", req.Role)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"id": id, "role": req.Role})
}

// GET /admin/contact-messages
func (ac *AdminController) ContactMessages(c *gin.Context) {
	var items []entity.ContactMessage
	if err := ac.DB.Order("id DESC").Limit(200).Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
