package entity

import (
	"time"

	"gorm.io/gorm"
)

// ใบสมัครเปิดร้าน ผู้สมัครยังเป็น customer จนกว่า admin จะอนุมัติ
type VendorApplication struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`

	ApplicantID uint `json:"applicantId"` // คนยื่น (vendor ในอนาคต)
	Applicant   User `gorm:"foreignKey:ApplicantID" json:"-"`

	Status ApplicationStatus `gorm:"not null;default:pending" json:"status"`

	AdminID      *uint      `json:"adminId,omitempty"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
	RejectReason *string    `json:"rejectReason,omitempty"`
}
