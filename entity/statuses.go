package entity

// สถานะทั้งหมดเป็น closed set ห้ามเขียนค่า status เป็น string ตรง ๆ นอก package นี้

type Role = string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

// ItemStatus สถานะรายการเดี่ยวใน vendor order ตัดสินโดย vendor
type ItemStatus string

const (
	ItemPending    ItemStatus = "pending"
	ItemAccepted   ItemStatus = "accepted"
	ItemRejected   ItemStatus = "rejected"
	ItemOutOfStock ItemStatus = "out_of_stock"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case ItemPending, ItemAccepted, ItemRejected, ItemOutOfStock:
		return true
	}
	return false
}

// Decided = ออกจาก pending แล้ว และจะไม่ย้อนกลับ
func (s ItemStatus) Decided() bool {
	return s != ItemPending
}

// VendorStatus สถานะรวมของ vendor order คำนวณจาก items เท่านั้น
type VendorStatus string

const (
	VendorPending           VendorStatus = "pending"
	VendorAccepted          VendorStatus = "accepted"
	VendorRejected          VendorStatus = "rejected"
	VendorPartiallyAccepted VendorStatus = "partially_accepted"
)

// OrderStatus สถานะ order ฝั่งลูกค้า คำนวณจาก vendor orders หรือยกเลิกตอน pending
type OrderStatus string

const (
	OrderPending            OrderStatus = "pending"
	OrderAccepted           OrderStatus = "accepted"
	OrderRejected           OrderStatus = "rejected"
	OrderPartiallyAccepted  OrderStatus = "partially_accepted"
	OrderPartiallyCompleted OrderStatus = "partially_completed"
	OrderCompleted          OrderStatus = "completed"
	OrderCancelled          OrderStatus = "cancelled"
)

type DeliveryMethod string

const (
	DeliveryShip   DeliveryMethod = "delivery"
	DeliveryPickup DeliveryMethod = "pickup"
)

func (m DeliveryMethod) Valid() bool {
	return m == DeliveryShip || m == DeliveryPickup
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)
