package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/sierracataloguebusiness/sierra-catalogue/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	VendorRepo *repository.VendorOrderRepository
	CartRepo   *repository.CartRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	vendorRepo *repository.VendorOrderRepository,
	cartRepo *repository.CartRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, VendorRepo: vendorRepo, CartRepo: cartRepo}
}

// ----- DTOs from Controller -----

type DeliveryIn struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone" binding:"required"`
	Method       string `json:"method" binding:"omitempty,oneof=delivery pickup"`
	Address      string `json:"address"`
	Instructions string `json:"instructions"`
}

type OrderItemIn struct {
	ListingID uint `json:"listingId" binding:"required"`
	Qty       int  `json:"qty" binding:"required,min=1"`
}

type CreateOrderReq struct {
	Items    []OrderItemIn `json:"items" binding:"required,min=1"`
	Delivery DeliveryIn    `json:"delivery" binding:"required"`
}

type CreateOrderRes struct {
	ID           uint                 `json:"id"`
	Number       string               `json:"number"`
	Total        int64                `json:"total"`
	Status       entity.OrderStatus   `json:"status"`
	VendorOrders []entity.VendorOrder `json:"vendorOrders"`
}

func (in *DeliveryIn) toEntity() entity.Delivery {
	method := entity.DeliveryMethod(in.Method)
	if !method.Valid() {
		method = entity.DeliveryShip
	}
	return entity.Delivery{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Method:       method,
		Address:      in.Address,
		Instructions: in.Instructions,
	}
}

// ----- Create -----

// Create สร้าง order จากรายการที่ส่งมาตรง ๆ แล้วแตกเป็น vendor order ต่อร้าน
// ทั้งก้อนอยู่ใน transaction เดียว ล้มที่ขั้นไหนก็ไม่เหลืออะไรค้าง
func (s *OrderService) Create(buyerID uint, req *CreateOrderReq) (*CreateOrderRes, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var out *CreateOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res, err := s.createWithItems(tx, buyerID, req.Items, req.Delivery.toEntity())
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CheckoutFromCart สร้าง order จากตะกร้าใน DB แล้วล้างตะกร้าใน transaction เดียวกัน
func (s *OrderService) CheckoutFromCart(buyerID uint, delivery *DeliveryIn) (*CreateOrderRes, error) {
	cart, err := s.CartRepo.GetCartWithItems(buyerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]OrderItemIn, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, OrderItemIn{ListingID: it.ListingID, Qty: it.Qty})
	}

	var out *CreateOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		res, err := s.createWithItems(tx, buyerID, items, delivery.toEntity())
		if err != nil {
			return err
		}
		if err := s.CartRepo.ClearCart(tx, buyerID); err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// createWithItems คือแกนของ checkout: snapshot ราคา รวมยอด
// แล้ว partition รายการตาม vendor ของ listing หนึ่ง vendor order ต่อหนึ่งร้าน
func (s *OrderService) createWithItems(tx *gorm.DB, buyerID uint, items []OrderItemIn, delivery entity.Delivery) (*CreateOrderRes, error) {
	type row struct {
		listingID uint
		vendorID  uint
		title     string
		qty       int
		unitPrice int64
	}

	var total int64
	rows := make([]row, 0, len(items))
	for _, it := range items {
		l, err := s.Repo.GetListingBasics(tx, it.ListingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("listing %d: %w", it.ListingID, ErrNotFound)
			}
			return nil, err
		}
		if l.VendorID == 0 {
			// listing กำพร้า partition ไม่ได้ ต้องล้มทั้ง order
			return nil, fmt.Errorf("listing %d has no vendor: %w", l.ID, ErrTransaction)
		}
		total += l.Price * int64(it.Qty)
		rows = append(rows, row{
			listingID: l.ID,
			vendorID:  l.VendorID,
			title:     l.Title,
			qty:       it.Qty,
			unitPrice: l.Price,
		})
	}

	order := entity.Order{
		Number:   uuid.NewString(),
		Total:    total,
		UserID:   buyerID,
		Delivery: delivery,
		Status:   entity.OrderPending,
	}
	if err := s.Repo.CreateOrder(tx, &order); err != nil {
		return nil, err
	}

	// เก็บลำดับ vendor ตามที่เจอครั้งแรก ให้ผลลัพธ์ deterministic
	groups := map[uint][]entity.VendorOrderItem{}
	vendorSeq := make([]uint, 0, len(rows))
	subtotals := map[uint]int64{}

	for _, r := range rows {
		oi := entity.OrderItem{
			Title:     r.title,
			Qty:       r.qty,
			UnitPrice: r.unitPrice,
			Total:     r.unitPrice * int64(r.qty),
			OrderID:   order.ID,
			ListingID: r.listingID,
		}
		if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
			return nil, err
		}

		if _, seen := groups[r.vendorID]; !seen {
			vendorSeq = append(vendorSeq, r.vendorID)
		}
		groups[r.vendorID] = append(groups[r.vendorID], entity.VendorOrderItem{
			OrderItemID: oi.ID,
			ListingID:   r.listingID,
			Title:       r.title,
			Qty:         r.qty,
			UnitPrice:   r.unitPrice,
			Total:       oi.Total,
			Status:      entity.ItemPending,
		})
		subtotals[r.vendorID] += oi.Total
	}

	vendorOrders := make([]entity.VendorOrder, 0, len(vendorSeq))
	for _, vendorID := range vendorSeq {
		vo := entity.VendorOrder{
			OrderID:  order.ID,
			VendorID: vendorID,
			BuyerID:  buyerID,
			Subtotal: subtotals[vendorID],
			Status:   entity.VendorPending,
			Items:    groups[vendorID],
		}
		if err := s.VendorRepo.Create(tx, &vo); err != nil {
			return nil, err
		}
		vendorOrders = append(vendorOrders, vo)
	}

	return &CreateOrderRes{
		ID:           order.ID,
		Number:       order.Number,
		Total:        order.Total,
		Status:       order.Status,
		VendorOrders: vendorOrders,
	}, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForBuyer(buyerID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(buyerID, limit)
}

type OrderDetail struct {
	ID           uint                 `json:"id"`
	Number       string               `json:"number"`
	Total        int64                `json:"total"`
	Status       entity.OrderStatus   `json:"status"`
	Delivery     entity.Delivery      `json:"delivery"`
	Items        []entity.OrderItem   `json:"items"`
	VendorOrders []entity.VendorOrder `json:"vendorOrders"`
}

func (s *OrderService) DetailForBuyer(buyerID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(buyerID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	vendorOrders, err := s.VendorRepo.ListForOrder(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, Number: o.Number, Total: o.Total, Status: o.Status,
		Delivery: o.Delivery, Items: items, VendorOrders: vendorOrders,
	}, nil
}

// ----- Cancel -----

// Cancel ยกเลิกได้เฉพาะตอน order ยัง pending ร้านใดตัดสินแล้วถือว่าสายไป
func (s *OrderService) Cancel(buyerID, orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.GetOrderForUser(buyerID, orderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		affected, err := s.Repo.CancelPendingOrder(tx, orderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
}
