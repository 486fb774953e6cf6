package repository

import (
	"time"

	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders (ลูกค้า) → รายการ order ของ user
type OrderSummary struct {
	ID        uint               `json:"id"`
	Number    string             `json:"number"`
	Total     int64              `json:"total"`
	Status    entity.OrderStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, number, total, status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, title, qty, unit_price, total, listing_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// ยกเลิกได้เฉพาะตอน pending guard ที่ SQL กัน race กับ reconciliation
func (r *OrderRepository) CancelPendingOrder(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.OrderPending).
		Update("status", entity.OrderCancelled)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) SetStatus(tx *gorm.DB, orderID uint, status entity.OrderStatus) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}

// ---------------- Listing lookups สำหรับ partition ----------------

// เอาข้อมูลพื้นฐานของ listing (id, title, price, vendor_id, stock, is_active)
func (r *OrderRepository) GetListingBasics(tx *gorm.DB, id uint) (entity.Listing, error) {
	var l entity.Listing
	err := tx.Select("id, title, price, vendor_id, stock, is_active").First(&l, id).Error
	return l, err
}
