package repository

import (
	"time"

	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"gorm.io/gorm"
)

type VendorOrderRepository struct {
	DB *gorm.DB
}

func NewVendorOrderRepository(db *gorm.DB) *VendorOrderRepository {
	return &VendorOrderRepository{DB: db}
}

func (r *VendorOrderRepository) Create(tx *gorm.DB, vo *entity.VendorOrder) error {
	return tx.Create(vo).Error
}

// GET /vendor/orders → รายการ vendor order ของร้าน
type VendorOrderSummary struct {
	ID         uint                `json:"id"`
	OrderID    uint                `json:"orderId"`
	BuyerID    uint                `json:"buyerId"`
	BuyerName  string              `json:"buyerName"`
	Subtotal   int64               `json:"subtotal"`
	Status     entity.VendorStatus `json:"vendorStatus"`
	CreatedAt  time.Time           `json:"createdAt"`
}

func (r *VendorOrderRepository) ListForVendor(vendorID uint, status *entity.VendorStatus, page, limit int) ([]VendorOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	dbCount := r.DB.Table("vendor_orders AS vo").
		Where("vo.vendor_id = ? AND vo.deleted_at IS NULL", vendorID)
	if status != nil && *status != "" {
		dbCount = dbCount.Where("vo.status = ?", *status)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// join users → ชื่อผู้ซื้อ
	var rows []struct {
		ID        uint
		OrderID   uint
		BuyerID   uint
		Subtotal  int64
		Status    entity.VendorStatus
		CreatedAt time.Time
		FirstName string
		LastName  string
	}
	db := r.DB.Table("vendor_orders AS vo").
		Select("vo.id, vo.order_id, vo.buyer_id, vo.subtotal, vo.status, vo.created_at, u.first_name, u.last_name").
		Joins("JOIN users u ON u.id = vo.buyer_id").
		Where("vo.vendor_id = ? AND vo.deleted_at IS NULL", vendorID)
	if status != nil && *status != "" {
		db = db.Where("vo.status = ?", *status)
	}
	if err := db.Order("vo.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]VendorOrderSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, VendorOrderSummary{
			ID:        row.ID,
			OrderID:   row.OrderID,
			BuyerID:   row.BuyerID,
			BuyerName: row.FirstName + " " + row.LastName,
			Subtotal:  row.Subtotal,
			Status:    row.Status,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, total, nil
}

func (r *VendorOrderRepository) GetForVendor(tx *gorm.DB, vendorID, vendorOrderID uint) (*entity.VendorOrder, error) {
	var vo entity.VendorOrder
	if err := tx.Preload("Items").
		Where("id = ? AND vendor_id = ?", vendorOrderID, vendorID).
		First(&vo).Error; err != nil {
		return nil, err
	}
	return &vo, nil
}

func (r *VendorOrderRepository) UpdateItemStatus(tx *gorm.DB, itemID uint, status entity.ItemStatus) error {
	return tx.Model(&entity.VendorOrderItem{}).
		Where("id = ?", itemID).
		Update("status", status).Error
}

// UpdateAggregateGuard เขียนสถานะรวมพร้อมเช็ค version rows=0 แปลว่าแพ้ race
func (r *VendorOrderRepository) UpdateAggregateGuard(tx *gorm.DB, vendorOrderID, version uint, status entity.VendorStatus) (int64, error) {
	res := tx.Model(&entity.VendorOrder{}).
		Where("id = ? AND version = ?", vendorOrderID, version).
		Updates(map[string]any{"status": status, "version": version + 1})
	return res.RowsAffected, res.Error
}

// สถานะของทุก vendor order ใต้ order หลัก เรียงตาม id ให้ deterministic
func (r *VendorOrderRepository) StatusesForOrder(tx *gorm.DB, orderID uint) ([]entity.VendorStatus, error) {
	var statuses []entity.VendorStatus
	err := tx.Model(&entity.VendorOrder{}).
		Where("order_id = ?", orderID).
		Order("id").
		Pluck("status", &statuses).Error
	return statuses, err
}

func (r *VendorOrderRepository) ListForOrder(orderID uint) ([]entity.VendorOrder, error) {
	var out []entity.VendorOrder
	err := r.DB.Preload("Items").
		Where("order_id = ?", orderID).
		Order("id").
		Find(&out).Error
	return out, err
}

func (r *VendorOrderRepository) CountForVendor(vendorID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.VendorOrder{}).Where("vendor_id = ?", vendorID).Count(&cnt).Error
	return cnt, err
}
