// services/order_status.go
package services

import (
	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
)

// สถานะรวมทั้งสองชั้นเป็น pure function ของสถานะลูกเสมอ คำนวณใหม่ทุกครั้ง ไม่ memoize

// AggregateItemStatus คำนวณสถานะของ vendor order จากสถานะรายการทั้งหมด
//   - ทุกชิ้น accepted → accepted
//   - ทุกชิ้น rejected → rejected
//   - มีการตัดสินใด ๆ แล้ว (ไม่ pending ทั้งหมด) → partially_accepted
//   - นอกนั้น → pending
func AggregateItemStatus(statuses []entity.ItemStatus) entity.VendorStatus {
	if len(statuses) == 0 {
		return entity.VendorPending
	}

	var accepted, rejected, decided int
	for _, s := range statuses {
		switch s {
		case entity.ItemAccepted:
			accepted++
			decided++
		case entity.ItemRejected:
			rejected++
			decided++
		case entity.ItemOutOfStock:
			decided++
		case entity.ItemPending:
		}
	}

	switch {
	case accepted == len(statuses):
		return entity.VendorAccepted
	case rejected == len(statuses):
		return entity.VendorRejected
	case decided > 0:
		return entity.VendorPartiallyAccepted
	default:
		return entity.VendorPending
	}
}

// AggregateVendorStatus คำนวณสถานะ order หลักจากสถานะ vendor orders ทั้งหมด
//   - ทุกร้าน accepted → completed
//   - ทุกร้าน rejected → cancelled
//   - มีทั้ง accepted และ rejected → partially_completed
//   - นอกนั้น (ยังมี pending / partially_accepted) → pending
func AggregateVendorStatus(statuses []entity.VendorStatus) entity.OrderStatus {
	if len(statuses) == 0 {
		return entity.OrderPending
	}

	var accepted, rejected int
	for _, s := range statuses {
		switch s {
		case entity.VendorAccepted:
			accepted++
		case entity.VendorRejected:
			rejected++
		case entity.VendorPending, entity.VendorPartiallyAccepted:
		}
	}

	switch {
	case accepted == len(statuses):
		return entity.OrderCompleted
	case rejected == len(statuses):
		return entity.OrderCancelled
	case accepted > 0 && rejected > 0:
		return entity.OrderPartiallyCompleted
	default:
		return entity.OrderPending
	}
}
