package services

import (
	"testing"

	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// twoVendorOrder: ร้าน A สองรายการ ร้าน B หนึ่งรายการ ใช้เป็นฉากหลักของการ reconcile
type twoVendorOrder struct {
	buyer, vendorA, vendorB uint
	orderID                 uint
	voA, voB                entity.VendorOrder
}

func setupTwoVendorOrder(t *testing.T, db *gorm.DB) twoVendorOrder {
	t.Helper()
	svc := newOrderService(db)

	buyer := seedUser(t, db, entity.RoleCustomer)
	vendorA := seedUser(t, db, entity.RoleVendor)
	vendorB := seedUser(t, db, entity.RoleVendor)
	a1 := seedListing(t, db, vendorA, "Batik Scarf", 2000)
	a2 := seedListing(t, db, vendorA, "Raffia Bag", 3500)
	b1 := seedListing(t, db, vendorB, "Honey Jar", 1800)

	res, err := svc.Create(buyer, &CreateOrderReq{
		Items: []OrderItemIn{
			{ListingID: a1, Qty: 1},
			{ListingID: a2, Qty: 1},
			{ListingID: b1, Qty: 1},
		},
		Delivery: testDelivery(),
	})
	require.NoError(t, err)
	require.Len(t, res.VendorOrders, 2)

	return twoVendorOrder{
		buyer: buyer, vendorA: vendorA, vendorB: vendorB,
		orderID: res.ID,
		voA:     res.VendorOrders[0], voB: res.VendorOrders[1],
	}
}

func orderStatus(t *testing.T, db *gorm.DB, orderID uint) entity.OrderStatus {
	t.Helper()
	var o entity.Order
	require.NoError(t, db.First(&o, orderID).Error)
	return o.Status
}

func TestUpdateItemStatusReconciles(t *testing.T) {
	db := newTestDB(t)
	svc := newVendorOrderService(db)
	f := setupTwoVendorOrder(t, db)

	// A รับรายการแรก ยังไม่ครบ ถือว่า partial
	vo, err := svc.UpdateItemStatus(f.vendorA, f.voA.ID, f.voA.Items[0].ID, entity.ItemAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.VendorPartiallyAccepted, vo.Status)
	assert.Equal(t, entity.OrderPending, orderStatus(t, db, f.orderID))

	// A รับครบทั้งร้าน ร้าน accepted แต่ order รอ B อยู่
	vo, err = svc.UpdateItemStatus(f.vendorA, f.voA.ID, f.voA.Items[1].ID, entity.ItemAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.VendorAccepted, vo.Status)
	assert.Equal(t, entity.OrderPending, orderStatus(t, db, f.orderID))

	// B ปฏิเสธ มีทั้งรับและปฏิเสธ order จบแบบ partially_completed
	vo, err = svc.UpdateItemStatus(f.vendorB, f.voB.ID, f.voB.Items[0].ID, entity.ItemRejected)
	require.NoError(t, err)
	assert.Equal(t, entity.VendorRejected, vo.Status)
	assert.Equal(t, entity.OrderPartiallyCompleted, orderStatus(t, db, f.orderID))
}

func TestSingleVendorAcceptCompletes(t *testing.T) {
	db := newTestDB(t)
	orderSvc := newOrderService(db)
	svc := newVendorOrderService(db)

	buyer := seedUser(t, db, entity.RoleCustomer)
	vendor := seedUser(t, db, entity.RoleVendor)
	l := seedListing(t, db, vendor, "Shea Butter", 900)

	res, err := orderSvc.Create(buyer, &CreateOrderReq{
		Items:    []OrderItemIn{{ListingID: l, Qty: 2}},
		Delivery: testDelivery(),
	})
	require.NoError(t, err)
	vo := res.VendorOrders[0]

	updated, err := svc.UpdateItemStatus(vendor, vo.ID, vo.Items[0].ID, entity.ItemAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.VendorAccepted, updated.Status)
	assert.Equal(t, entity.OrderCompleted, orderStatus(t, db, res.ID))
}

func TestAllVendorsRejectCancels(t *testing.T) {
	db := newTestDB(t)
	svc := newVendorOrderService(db)
	f := setupTwoVendorOrder(t, db)

	for _, it := range f.voA.Items {
		_, err := svc.UpdateItemStatus(f.vendorA, f.voA.ID, it.ID, entity.ItemRejected)
		require.NoError(t, err)
	}
	_, err := svc.UpdateItemStatus(f.vendorB, f.voB.ID, f.voB.Items[0].ID, entity.ItemRejected)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderCancelled, orderStatus(t, db, f.orderID))

	// cancelled แบบ derive ยังแก้ใจได้ B กลับมารับ
	vo, err := svc.UpdateItemStatus(f.vendorB, f.voB.ID, f.voB.Items[0].ID, entity.ItemAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.VendorAccepted, vo.Status)
	assert.Equal(t, entity.OrderPartiallyCompleted, orderStatus(t, db, f.orderID))
}

func TestBulkRejectAllOverridesPriorAccept(t *testing.T) {
	db := newTestDB(t)
	svc := newVendorOrderService(db)
	f := setupTwoVendorOrder(t, db)

	_, err := svc.UpdateItemStatus(f.vendorA, f.voA.ID, f.voA.Items[0].ID, entity.ItemAccepted)
	require.NoError(t, err)

	updates := []ItemStatusIn{
		{ItemID: f.voA.Items[0].ID, Status: entity.ItemRejected},
		{ItemID: f.voA.Items[1].ID, Status: entity.ItemRejected},
	}
	vo, err := svc.BulkUpdateItemStatus(f.vendorA, f.voA.ID, updates)
	require.NoError(t, err)
	assert.Equal(t, entity.VendorRejected, vo.Status)

	// apply ซ้ำต้องให้ผลเดิม
	vo, err = svc.BulkUpdateItemStatus(f.vendorA, f.voA.ID, updates)
	require.NoError(t, err)
	assert.Equal(t, entity.VendorRejected, vo.Status)
}

func TestBulkSkipsBadPairs(t *testing.T) {
	db := newTestDB(t)
	svc := newVendorOrderService(db)
	f := setupTwoVendorOrder(t, db)

	_, err := svc.UpdateItemStatus(f.vendorA, f.voA.ID, f.voA.Items[0].ID, entity.ItemAccepted)
	require.NoError(t, err)

	vo, err := svc.BulkUpdateItemStatus(f.vendorA, f.voA.ID, []ItemStatusIn{
		{ItemID: f.voA.Items[0].ID, Status: entity.ItemPending},  // ถอยจาก decided ข้าม
		{ItemID: 9999, Status: entity.ItemAccepted},              // ไม่ใช่ของ vendor order นี้ ข้าม
		{ItemID: f.voA.Items[1].ID, Status: "shipped"},           // สถานะนอกชุด ข้าม
		{ItemID: f.voA.Items[1].ID, Status: entity.ItemAccepted}, // คู่เดียวที่ผ่าน
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VendorAccepted, vo.Status)
	for _, it := range vo.Items {
		assert.Equal(t, entity.ItemAccepted, it.Status)
	}
}

func TestUpdateItemStatusErrors(t *testing.T) {
	db := newTestDB(t)
	svc := newVendorOrderService(db)
	f := setupTwoVendorOrder(t, db)

	t.Run("status outside the set", func(t *testing.T) {
		_, err := svc.UpdateItemStatus(f.vendorA, f.voA.ID, f.voA.Items[0].ID, "shipped")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("another vendor's sub-order", func(t *testing.T) {
		_, err := svc.UpdateItemStatus(f.vendorB, f.voA.ID, f.voA.Items[0].ID, entity.ItemAccepted)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("item from another sub-order", func(t *testing.T) {
		_, err := svc.UpdateItemStatus(f.vendorA, f.voA.ID, f.voB.Items[0].ID, entity.ItemAccepted)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("pending after a decision", func(t *testing.T) {
		_, err := svc.UpdateItemStatus(f.vendorA, f.voA.ID, f.voA.Items[0].ID, entity.ItemAccepted)
		require.NoError(t, err)
		_, err = svc.UpdateItemStatus(f.vendorA, f.voA.ID, f.voA.Items[0].ID, entity.ItemPending)
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestBuyerCancelBlocksVendorDecision(t *testing.T) {
	db := newTestDB(t)
	orderSvc := newOrderService(db)
	svc := newVendorOrderService(db)
	f := setupTwoVendorOrder(t, db)

	require.NoError(t, orderSvc.Cancel(f.buyer, f.orderID))

	_, err := svc.UpdateItemStatus(f.vendorA, f.voA.ID, f.voA.Items[0].ID, entity.ItemAccepted)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.BulkUpdateItemStatus(f.vendorA, f.voA.ID, []ItemStatusIn{
		{ItemID: f.voA.Items[0].ID, Status: entity.ItemAccepted},
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestReconcileVersionConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newVendorOrderService(db)
	f := setupTwoVendorOrder(t, db)

	// จำลองคนเขียนแทรก: ดัน version ไปข้างหน้าเอง guard ต้องไม่ทับ
	require.NoError(t, db.Model(&entity.VendorOrder{}).
		Where("id = ?", f.voA.ID).
		Update("version", gorm.Expr("version + 1")).Error)

	vo := f.voA
	vo.Items[0].Status = entity.ItemAccepted
	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := svc.reconcile(tx, &vo)
		return err
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestListForVendor(t *testing.T) {
	db := newTestDB(t)
	svc := newVendorOrderService(db)
	f := setupTwoVendorOrder(t, db)

	out, err := svc.ListForVendor(f.vendorA, nil, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	require.Len(t, out.Items, 1)
	assert.Equal(t, f.voA.ID, out.Items[0].ID)

	// กรองตามสถานะ
	accepted := entity.VendorAccepted
	out, err = svc.ListForVendor(f.vendorA, &accepted, 1, 20)
	require.NoError(t, err)
	assert.Zero(t, out.Total)
	assert.Empty(t, out.Items)
}

func TestDetailForVendor(t *testing.T) {
	db := newTestDB(t)
	svc := newVendorOrderService(db)
	f := setupTwoVendorOrder(t, db)

	vo, err := svc.DetailForVendor(f.vendorA, f.voA.ID)
	require.NoError(t, err)
	assert.Len(t, vo.Items, 2)

	_, err = svc.DetailForVendor(f.vendorB, f.voA.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
