// controllers/vendor_application_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/sierracataloguebusiness/sierra-catalogue/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VendorApplicationController struct {
	DB *gorm.DB
}

func NewVendorApplicationController(db *gorm.DB) *VendorApplicationController {
	return &VendorApplicationController{DB: db}
}

// ====== Request DTO ======
type ApplyVendorReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message"`
}

// ====== Response DTO ======
type VendorApplicationResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submittedAt"`

	Applicant struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	} `json:"applicant"`

	Status entity.ApplicationStatus `json:"status"`
}

type ApplyResponse struct {
	ID     uint                     `json:"id"`
	Status entity.ApplicationStatus `json:"status"`
}

type ApproveResponse struct {
	ApplicationID uint                     `json:"applicationId"`
	Status        entity.ApplicationStatus `json:"status"`
	ApplicantID   uint                     `json:"applicantId"`
	NewRole       string                   `json:"newRole"`
}

type RejectResponse struct {
	ApplicationID uint                     `json:"applicationId"`
	Status        entity.ApplicationStatus `json:"status"`
	Reason        string                   `json:"reason"`
}

// ====== User ยื่นสมัครเป็น vendor ======
func (ctl *VendorApplicationController) Apply(c *gin.Context) {
	var req ApplyVendorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applicantID := utils.CurrentUserID(c)

	// กันยื่นซ้ำระหว่างรอผล
	var pendingCount int64
	ctl.DB.Model(&entity.VendorApplication{}).
		Where("applicant_id = ? AND status = ?", applicantID, entity.ApplicationPending).
		Count(&pendingCount)
	if pendingCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "application already pending"})
		return
	}

	app := entity.VendorApplication{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		ApplicantID: applicantID,
		Status:      entity.ApplicationPending,
	}

	if err := ctl.DB.Create(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ApplyResponse{ID: app.ID, Status: entity.ApplicationPending})
}

// ====== Admin ดูรายการ ======
func (ctl *VendorApplicationController) List(c *gin.Context) {
	status := c.DefaultQuery("status", string(entity.ApplicationPending))

	var apps []entity.VendorApplication
	if err := ctl.DB.
		Preload("Applicant").
		Where("status = ?", status).
		Order("id DESC").
		Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var out []VendorApplicationResponse
	for _, app := range apps {
		item := VendorApplicationResponse{
			ID:          app.ID,
			Name:        app.Name,
			Email:       app.Email,
			Phone:       app.Phone,
			Message:     app.Message,
			SubmittedAt: app.CreatedAt.Format(time.RFC3339),
			Status:      app.Status,
		}
		item.Applicant.FirstName = app.Applicant.FirstName
		item.Applicant.LastName = app.Applicant.LastName
		item.Applicant.Email = app.Applicant.Email
		out = append(out, item)
	}

	c.JSON(http.StatusOK, gin.H{"items": out})
}

// ====== Admin อนุมัติ โปรโมท role และเปิด shop เปล่าให้ ======
func (ctl *VendorApplicationController) Approve(c *gin.Context) {
	appID, _ := strconv.Atoi(c.Param("id"))
	adminID := utils.CurrentUserID(c)

	var app entity.VendorApplication
	if err := ctl.DB.First(&app, uint(appID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
		return
	}
	if app.Status != entity.ApplicationPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "application is not pending"})
		return
	}

	now := time.Now()

	tx := ctl.DB.Begin()

	// update role ผู้สมัคร
	if err := tx.Model(&entity.User{}).
		Where("id = ?", app.ApplicantID).
		Where("role = '' OR role = 'customer'").
		Update("role", entity.RoleVendor).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// เปิดหน้าร้านเปล่า ใช้ชื่อจากใบสมัครไปก่อน
	shop := entity.Shop{
		VendorID: app.ApplicantID,
		Name:     app.Name,
		Phone:    app.Phone,
	}
	if err := tx.Create(&shop).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	app.Status = entity.ApplicationApproved
	app.ReviewedAt = &now
	app.AdminID = &adminID
	if err := tx.Save(&app).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	tx.Commit()

	var applicant entity.User
	ctl.DB.First(&applicant, app.ApplicantID)

	c.JSON(http.StatusOK, ApproveResponse{
		ApplicationID: uint(appID),
		Status:        entity.ApplicationApproved,
		ApplicantID:   applicant.ID,
		NewRole:       applicant.Role,
	})
}

// ====== Admin ปฏิเสธ ======
type RejectReq struct {
	Reason string `json:"reason" binding:"required"`
}

func (ctl *VendorApplicationController) Reject(c *gin.Context) {
	appID, _ := strconv.Atoi(c.Param("id"))
	adminID := utils.CurrentUserID(c)

	var req RejectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var app entity.VendorApplication
	if err := ctl.DB.First(&app, uint(appID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
		return
	}
	if app.Status != entity.ApplicationPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "application is not pending"})
		return
	}

	now := time.Now()
	app.Status = entity.ApplicationRejected
	app.ReviewedAt = &now
	app.AdminID = &adminID
	app.RejectReason = &req.Reason

	if err := ctl.DB.Save(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, RejectResponse{
		ApplicationID: uint(appID),
		Status:        entity.ApplicationRejected,
		Reason:        req.Reason,
	})
}
