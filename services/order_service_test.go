package services

import (
	"testing"

	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderSplitsByVendor(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	buyer := seedUser(t, db, entity.RoleCustomer)
	vendorA := seedUser(t, db, entity.RoleVendor)
	vendorB := seedUser(t, db, entity.RoleVendor)

	a1 := seedListing(t, db, vendorA, "Woven Basket", 2500)
	a2 := seedListing(t, db, vendorA, "Clay Pot", 1500)
	b1 := seedListing(t, db, vendorB, "Palm Oil 1L", 4000)

	res, err := svc.Create(buyer, &CreateOrderReq{
		Items: []OrderItemIn{
			{ListingID: a1, Qty: 2},
			{ListingID: b1, Qty: 1},
			{ListingID: a2, Qty: 3},
		},
		Delivery: testDelivery(),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Number)
	assert.Equal(t, entity.OrderPending, res.Status)
	assert.Equal(t, int64(2*2500+1*4000+3*1500), res.Total)

	require.Len(t, res.VendorOrders, 2)
	// แบ่งตามลำดับ vendor ที่เจอครั้งแรกในรายการ
	voA, voB := res.VendorOrders[0], res.VendorOrders[1]
	assert.Equal(t, vendorA, voA.VendorID)
	assert.Equal(t, vendorB, voB.VendorID)

	assert.Len(t, voA.Items, 2)
	assert.Len(t, voB.Items, 1)
	assert.Equal(t, int64(2*2500+3*1500), voA.Subtotal)
	assert.Equal(t, int64(4000), voB.Subtotal)
	assert.Equal(t, entity.VendorPending, voA.Status)
	assert.Equal(t, entity.VendorPending, voB.Status)
	for _, vo := range res.VendorOrders {
		assert.Equal(t, buyer, vo.BuyerID)
		for _, it := range vo.Items {
			assert.Equal(t, entity.ItemPending, it.Status)
		}
	}

	// partition ต้องครบและไม่ซ้ำเทียบกับรายการใน order หลัก
	var orderItems []entity.OrderItem
	require.NoError(t, db.Where("order_id = ?", res.ID).Find(&orderItems).Error)
	want := map[uint]bool{}
	for _, oi := range orderItems {
		want[oi.ID] = true
	}
	seen := map[uint]bool{}
	for _, vo := range res.VendorOrders {
		for _, it := range vo.Items {
			assert.True(t, want[it.OrderItemID], "vendor order item points at unknown order item")
			assert.False(t, seen[it.OrderItemID], "order item assigned twice")
			seen[it.OrderItemID] = true
		}
	}
	assert.Len(t, seen, len(orderItems))
}

func TestCreateOrderEmptyItems(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	buyer := seedUser(t, db, entity.RoleCustomer)

	_, err := svc.Create(buyer, &CreateOrderReq{Items: nil, Delivery: testDelivery()})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCreateOrderUnknownListingRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	buyer := seedUser(t, db, entity.RoleCustomer)
	vendor := seedUser(t, db, entity.RoleVendor)
	good := seedListing(t, db, vendor, "Gara Cloth", 3000)

	_, err := svc.Create(buyer, &CreateOrderReq{
		Items: []OrderItemIn{
			{ListingID: good, Qty: 1},
			{ListingID: 9999, Qty: 1},
		},
		Delivery: testDelivery(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	// ล้มกลางทางต้องไม่เหลืออะไรค้าง
	var orders, vendorOrders int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.VendorOrder{}).Count(&vendorOrders).Error)
	assert.Zero(t, orders)
	assert.Zero(t, vendorOrders)
}

func TestCheckoutFromCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	buyer := seedUser(t, db, entity.RoleCustomer)
	vendor := seedUser(t, db, entity.RoleVendor)
	l1 := seedListing(t, db, vendor, "Cassava Flour", 1200)
	l2 := seedListing(t, db, vendor, "Ginger Beer", 800)

	cart := entity.Cart{UserID: buyer}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&entity.CartItem{CartID: cart.ID, ListingID: l1, Qty: 2, UnitPrice: 1200}).Error)
	require.NoError(t, db.Create(&entity.CartItem{CartID: cart.ID, ListingID: l2, Qty: 1, UnitPrice: 800}).Error)

	d := testDelivery()
	res, err := svc.CheckoutFromCart(buyer, &d)
	require.NoError(t, err)
	assert.Equal(t, int64(2*1200+800), res.Total)
	require.Len(t, res.VendorOrders, 1)
	assert.Len(t, res.VendorOrders[0].Items, 2)

	// ตะกร้าต้องว่างหลัง checkout สำเร็จ
	var left int64
	require.NoError(t, db.Model(&entity.CartItem{}).Where("cart_id = ?", cart.ID).Count(&left).Error)
	assert.Zero(t, left)

	// checkout ซ้ำบนตะกร้าว่าง
	_, err = svc.CheckoutFromCart(buyer, &d)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCancelOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	voSvc := newVendorOrderService(db)

	buyer := seedUser(t, db, entity.RoleCustomer)
	vendor := seedUser(t, db, entity.RoleVendor)
	listing := seedListing(t, db, vendor, "Kola Nuts", 500)

	newOrder := func() *CreateOrderRes {
		res, err := svc.Create(buyer, &CreateOrderReq{
			Items:    []OrderItemIn{{ListingID: listing, Qty: 1}},
			Delivery: testDelivery(),
		})
		require.NoError(t, err)
		return res
	}

	t.Run("pending order cancels", func(t *testing.T) {
		res := newOrder()
		require.NoError(t, svc.Cancel(buyer, res.ID))

		var o entity.Order
		require.NoError(t, db.First(&o, res.ID).Error)
		assert.Equal(t, entity.OrderCancelled, o.Status)
	})

	t.Run("too late once a vendor decided", func(t *testing.T) {
		res := newOrder()
		vo := res.VendorOrders[0]
		_, err := voSvc.UpdateItemStatus(vendor, vo.ID, vo.Items[0].ID, entity.ItemAccepted)
		require.NoError(t, err)

		assert.ErrorIs(t, svc.Cancel(buyer, res.ID), ErrConflict)
	})

	t.Run("unknown order", func(t *testing.T) {
		assert.ErrorIs(t, svc.Cancel(buyer, 9999), ErrNotFound)
	})

	t.Run("someone else's order", func(t *testing.T) {
		res := newOrder()
		other := seedUser(t, db, entity.RoleCustomer)
		assert.ErrorIs(t, svc.Cancel(other, res.ID), ErrNotFound)
	})
}
