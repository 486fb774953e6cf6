// services/vendor_order_service.go
package services

import (
	"errors"

	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/sierracataloguebusiness/sierra-catalogue/repository"

	"gorm.io/gorm"
)

type VendorOrderService struct {
	DB        *gorm.DB
	Repo      *repository.VendorOrderRepository
	OrderRepo *repository.OrderRepository
}

func NewVendorOrderService(db *gorm.DB, repo *repository.VendorOrderRepository, orderRepo *repository.OrderRepository) *VendorOrderService {
	return &VendorOrderService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

type ItemStatusIn struct {
	ItemID uint              `json:"itemId" binding:"required"`
	Status entity.ItemStatus `json:"status" binding:"required"`
}

// ----- List & Detail -----

type VendorOrderListOut struct {
	Items []repository.VendorOrderSummary `json:"items"`
	Total int64                           `json:"total"`
	Page  int                             `json:"page"`
	Limit int                             `json:"limit"`
}

func (s *VendorOrderService) ListForVendor(vendorID uint, status *entity.VendorStatus, page, limit int) (*VendorOrderListOut, error) {
	items, total, err := s.Repo.ListForVendor(vendorID, status, page, limit)
	if err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	return &VendorOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *VendorOrderService) DetailForVendor(vendorID, vendorOrderID uint) (*entity.VendorOrder, error) {
	vo, err := s.Repo.GetForVendor(s.DB, vendorID, vendorOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vo, nil
}

// ----- Item status updates -----

// UpdateItemStatus: vendor ตัดสินหนึ่งรายการ แล้ว reconcile ทั้งสองชั้นใน transaction เดียว
func (s *VendorOrderService) UpdateItemStatus(vendorID, vendorOrderID, itemID uint, status entity.ItemStatus) (*entity.VendorOrder, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var out *entity.VendorOrder
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		vo, err := s.Repo.GetForVendor(tx, vendorID, vendorOrderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := s.guardNotCancelled(tx, vo.OrderID); err != nil {
			return err
		}

		idx := -1
		for i := range vo.Items {
			if vo.Items[i].ID == itemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrNotFound
		}

		// การตัดสินไม่ย้อนกลับ ขอ pending ได้เฉพาะรายการที่ยัง pending
		if status == entity.ItemPending && vo.Items[idx].Status.Decided() {
			return ErrConflict
		}

		if err := s.Repo.UpdateItemStatus(tx, itemID, status); err != nil {
			return err
		}
		vo.Items[idx].Status = status

		updated, err := s.reconcile(tx, vo)
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BulkUpdateItemStatus: ใช้กับปุ่ม Accept All / Reject All
// แต่ละคู่ validate แยกกัน คู่ที่ไม่ผ่านถูกข้าม แล้ว reconcile ครั้งเดียวทั้ง batch
func (s *VendorOrderService) BulkUpdateItemStatus(vendorID, vendorOrderID uint, updates []ItemStatusIn) (*entity.VendorOrder, error) {
	var out *entity.VendorOrder
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		vo, err := s.Repo.GetForVendor(tx, vendorID, vendorOrderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := s.guardNotCancelled(tx, vo.OrderID); err != nil {
			return err
		}

		byID := make(map[uint]int, len(vo.Items))
		for i := range vo.Items {
			byID[vo.Items[i].ID] = i
		}

		for _, u := range updates {
			if !u.Status.Valid() {
				continue
			}
			idx, ok := byID[u.ItemID]
			if !ok {
				continue
			}
			if u.Status == entity.ItemPending && vo.Items[idx].Status.Decided() {
				continue
			}
			if err := s.Repo.UpdateItemStatus(tx, u.ItemID, u.Status); err != nil {
				return err
			}
			vo.Items[idx].Status = u.Status
		}

		updated, err := s.reconcile(tx, vo)
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// reconcile เขียนสถานะรวมของ vendor order (version-guarded)
// แล้วคำนวณสถานะ order หลักซ้ำจาก vendor orders ทั้งชุด
func (s *VendorOrderService) reconcile(tx *gorm.DB, vo *entity.VendorOrder) (*entity.VendorOrder, error) {
	itemStatuses := make([]entity.ItemStatus, 0, len(vo.Items))
	for _, it := range vo.Items {
		itemStatuses = append(itemStatuses, it.Status)
	}
	vendorStatus := AggregateItemStatus(itemStatuses)

	affected, err := s.Repo.UpdateAggregateGuard(tx, vo.ID, vo.Version, vendorStatus)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// มีคนเขียนแทรกระหว่างที่เราถือ snapshot อยู่ ให้ caller retry
		return nil, ErrConflict
	}
	vo.Status = vendorStatus
	vo.Version++

	statuses, err := s.Repo.StatusesForOrder(tx, vo.OrderID)
	if err != nil {
		return nil, err
	}
	if err := s.OrderRepo.SetStatus(tx, vo.OrderID, AggregateVendorStatus(statuses)); err != nil {
		return nil, err
	}
	return vo, nil
}

// guardNotCancelled กันการตัดสินหลังลูกค้ายกเลิก order ไปแล้ว
// (cancelled ที่ derive จากทุกร้าน reject ยังแก้ไขต่อได้ reconcile จะคำนวณซ้ำเอง)
func (s *VendorOrderService) guardNotCancelled(tx *gorm.DB, orderID uint) error {
	var o entity.Order
	if err := tx.Select("id, status").First(&o, orderID).Error; err != nil {
		return err
	}
	if o.Status != entity.OrderCancelled {
		return nil
	}
	statuses, err := s.Repo.StatusesForOrder(tx, orderID)
	if err != nil {
		return err
	}
	if AggregateVendorStatus(statuses) != entity.OrderCancelled {
		// cancelled แบบ explicit โดยผู้ซื้อ ไม่ใช่ derive จากสถานะร้าน
		return ErrConflict
	}
	return nil
}
